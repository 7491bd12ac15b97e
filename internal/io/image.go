package ioutils

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
)

// ImageWriter serializes rendered images as PNG.
//
// PNG is lossless, so the module grid can be read back pixel-exact:
//
//	w := NewImageWriter()
//	err := w.WritePNG(ctx, "/work/qr_codes/QRCode_20240102150405.png", img)
type ImageWriter struct {
	encoder *png.Encoder
}

// NewImageWriter creates a new ImageWriter using best compression.
func NewImageWriter() *ImageWriter {
	return &ImageWriter{
		encoder: &png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// WritePNG writes img to path as PNG.
//
// The file is created with mode 0644 or truncated if it already exists.
// The parent directory must exist. On failure a partially written file may
// remain at path.
//
// Parameters:
//   - ctx: Context for cancellation (checked before the file is opened)
//   - path: File path to write to
//   - img: Image to encode
func (iw *ImageWriter) WritePNG(ctx context.Context, path string, img image.Image) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return iw.encoder.Encode(f, img)
}
