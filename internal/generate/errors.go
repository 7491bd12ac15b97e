package generate

import (
	"errors"
	"fmt"
)

// Error kinds, one per pipeline stage. Every error returned by the Generator
// matches exactly one of them with errors.Is.
var (
	// ErrDirectory indicates the output directory could not be created.
	ErrDirectory = errors.New("cannot create output directory")

	// ErrInvalidURL indicates the input is not a valid absolute URL.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrEncode indicates the data could not be encoded as a QR matrix.
	ErrEncode = errors.New("encoding failed")

	// ErrRender indicates the matrix could not be rasterized.
	ErrRender = errors.New("rendering failed")

	// ErrWrite indicates the image could not be written to disk.
	ErrWrite = errors.New("writing image failed")
)

// Stage names a step of the pipeline.
type Stage string

const (
	StageDirectory Stage = "directory"
	StageValidate  Stage = "validate"
	StageEncode    Stage = "encode"
	StageRender    Stage = "render"
	StageWrite     Stage = "write"
)

func (s Stage) kind() error {
	switch s {
	case StageDirectory:
		return ErrDirectory
	case StageValidate:
		return ErrInvalidURL
	case StageEncode:
		return ErrEncode
	case StageRender:
		return ErrRender
	default:
		return ErrWrite
	}
}

// StageError is a failure of one stage together with the input it worked on.
type StageError struct {
	Stage Stage  // Stage that failed
	Input string // URL or path the stage was handling
	Err   error  // Underlying error, nil for validation failures
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage.kind(), e.Input)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage.kind(), e.Input, e.Err)
}

// Unwrap exposes both the stage kind and the underlying cause.
func (e *StageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Stage.kind()}
	}
	return []error{e.Stage.kind(), e.Err}
}

func stageErr(stage Stage, input string, err error) *StageError {
	return &StageError{Stage: stage, Input: input, Err: err}
}
