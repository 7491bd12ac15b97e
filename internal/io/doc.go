// Package ioutils provides file system and image output utilities.
//
// # File Operations
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Image Output
//
// The ImageWriter serializes rendered QR codes:
//
//	w := ioutils.NewImageWriter()
//
//	// Write straight to disk, overwriting any existing file
//	err := w.WritePNG(ctx, "/work/qr_codes/QRCode_20240102150405.png", img)
package ioutils
