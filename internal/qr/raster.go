package qr

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/handiism/qrgen/internal/model"
)

// Rasterize draws m into an image.
//
// Each module becomes a BoxSize x BoxSize square: dark modules in the fill
// colour, light modules and the Border-module quiet zone in the background
// colour.
func Rasterize(m *Matrix, p model.RenderParams) (image.Image, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	fill, err := ParseColor(p.FillColor)
	if err != nil {
		return nil, fmt.Errorf("fill colour: %w", err)
	}
	back, err := ParseColor(p.BackColor)
	if err != nil {
		return nil, fmt.Errorf("background colour: %w", err)
	}

	size := p.ImageSize(m.Size())
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(back), image.Point{}, draw.Src)

	dark := image.NewUniform(fill)
	for row, modules := range m.Modules {
		for col, on := range modules {
			if !on {
				continue
			}
			x := (col + p.Border) * p.BoxSize
			y := (row + p.Border) * p.BoxSize
			r := image.Rect(x, y, x+p.BoxSize, y+p.BoxSize)
			draw.Draw(img, r, dark, image.Point{}, draw.Src)
		}
	}

	return img, nil
}
