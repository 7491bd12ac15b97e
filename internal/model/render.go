package model

import "fmt"

// RenderParams describes how a URL is turned into a raster image.
//
// All values are fixed for one run. Version is the smallest symbol version
// the encoder starts from; larger versions are chosen when the data does not
// fit. Colours are colour names or #rgb / #rrggbb strings and are parsed by
// the qr package.
type RenderParams struct {
	// Version is the starting symbol version (1-40).
	Version int

	// BoxSize is the number of pixels per module edge.
	BoxSize int

	// Border is the quiet zone width in modules.
	Border int

	// FillColor is used for dark modules.
	FillColor string

	// BackColor is used for light modules and the quiet zone.
	BackColor string
}

// Validate checks the numeric parameters.
func (p RenderParams) Validate() error {
	if p.Version < 1 || p.Version > 40 {
		return fmt.Errorf("version %d out of range 1-40", p.Version)
	}
	if p.BoxSize < 1 {
		return fmt.Errorf("box size must be positive, got %d", p.BoxSize)
	}
	if p.Border < 0 {
		return fmt.Errorf("border must not be negative, got %d", p.Border)
	}
	return nil
}

// ImageSize returns the edge length in pixels of a symbol with the given
// number of modules per side.
func (p RenderParams) ImageSize(modules int) int {
	return (modules + 2*p.Border) * p.BoxSize
}
