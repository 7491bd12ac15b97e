// Package ioutils provides file system utilities for qrgen.
//
// This package contains functions for:
//   - Directory creation
//   - Writing images to disk
package ioutils

import (
	"os"
)

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned. If path, or one of
// its parents, exists as a regular file an error is returned.
//
// Example:
//
//	err := EnsureDir("/work/qr_codes")
//	// Creates /work and /work/qr_codes if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
