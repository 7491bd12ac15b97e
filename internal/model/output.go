package model

import (
	"path/filepath"
	"time"
)

const (
	// FilePrefix starts every generated file name.
	FilePrefix = "QRCode_"

	// FileExt ends every generated file name.
	FileExt = ".png"

	// TimestampLayout formats the creation time to second precision.
	TimestampLayout = "20060102150405"
)

// Output is the destination of one generated image.
type Output struct {
	// Dir is the directory the image is written into.
	Dir string

	// Path is the full file path, Dir joined with the file name.
	Path string
}

// NewOutput composes the output location for an image created at t.
//
// A relative baseDir is resolved against workDir; an absolute one is used
// as-is. Names only have second resolution, so two runs within the same
// second produce the same Path and the later one overwrites the earlier.
func NewOutput(workDir, baseDir string, t time.Time) Output {
	dir := baseDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(workDir, dir)
	}
	return Output{
		Dir:  dir,
		Path: filepath.Join(dir, FileName(t)),
	}
}

// FileName returns the file name for an image created at t.
func FileName(t time.Time) string {
	return FilePrefix + t.Format(TimestampLayout) + FileExt
}
