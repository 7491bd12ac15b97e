package generate

import (
	"context"
	"time"

	"github.com/handiism/qrgen/internal/config"
	ioutils "github.com/handiism/qrgen/internal/io"
	"github.com/handiism/qrgen/internal/model"
	"github.com/handiism/qrgen/internal/qr"
	"github.com/handiism/qrgen/internal/validate"
)

// Result describes how one run ended.
type Result struct {
	// State is always terminal once Generate returns.
	State State

	// URL is the input that was processed.
	URL string

	// Output is where the image was, or would have been, written.
	Output model.Output

	// Version is the QR version used. Zero unless the matrix was encoded.
	Version int

	// Err is a *StageError for Aborted and Failed results.
	Err error
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now for output file naming.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithStateHook registers a callback invoked on every state transition.
func WithStateHook(fn func(State)) Option {
	return func(g *Generator) {
		g.onState = fn
	}
}

// Generator runs the validate, encode, rasterize and write pipeline for one URL.
type Generator struct {
	params    model.RenderParams
	outputDir string
	workDir   string
	writer    *ioutils.ImageWriter

	now     func() time.Time
	onState func(State)
}

// NewGenerator creates a Generator writing below workDir according to settings.
func NewGenerator(settings *config.Settings, workDir string, opts ...Option) *Generator {
	g := &Generator{
		params:    settings.ToRenderParams(),
		outputDir: settings.OutputDir,
		workDir:   workDir,
		writer:    ioutils.NewImageWriter(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Prepare computes the timestamped output location and creates its directory.
//
// A returned error matches ErrDirectory; nothing useful can follow it.
func (g *Generator) Prepare() (model.Output, error) {
	out := model.NewOutput(g.workDir, g.outputDir, g.now())
	if err := ioutils.EnsureDir(out.Dir); err != nil {
		return out, stageErr(StageDirectory, out.Dir, err)
	}
	return out, nil
}

// Generate validates rawURL and, if valid, renders it into out.Path.
//
// Failures are reported in the Result, never returned: an invalid URL ends
// in StateAborted, any encode, render or write failure in StateFailed.
func (g *Generator) Generate(ctx context.Context, rawURL string, out model.Output) Result {
	res := Result{URL: rawURL, Output: out}
	g.transition(&res, StateIdle)

	g.transition(&res, StateValidating)
	if !validate.IsURL(rawURL) {
		res.Err = stageErr(StageValidate, rawURL, nil)
		g.transition(&res, StateAborted)
		return res
	}

	g.transition(&res, StateRendering)
	if err := g.render(ctx, &res); err != nil {
		res.Err = err
		g.transition(&res, StateFailed)
		return res
	}

	g.transition(&res, StateSaved)
	return res
}

// Run prepares the output directory and generates the image.
//
// The error is non-nil only when the directory could not be created;
// every other outcome is described by the Result.
func (g *Generator) Run(ctx context.Context, rawURL string) (Result, error) {
	out, err := g.Prepare()
	if err != nil {
		return Result{State: StateIdle, URL: rawURL, Output: out, Err: err}, err
	}
	return g.Generate(ctx, rawURL, out), nil
}

func (g *Generator) render(ctx context.Context, res *Result) error {
	matrix, err := qr.Encode(res.URL, g.params.Version)
	if err != nil {
		return stageErr(StageEncode, res.URL, err)
	}
	res.Version = matrix.Version

	img, err := qr.Rasterize(matrix, g.params)
	if err != nil {
		return stageErr(StageRender, res.URL, err)
	}

	if err := g.writer.WritePNG(ctx, res.Output.Path, img); err != nil {
		return stageErr(StageWrite, res.Output.Path, err)
	}
	return nil
}

func (g *Generator) transition(res *Result, s State) {
	res.State = s
	if g.onState != nil {
		g.onState(s)
	}
}
