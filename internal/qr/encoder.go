package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// MinVersion and MaxVersion bound the symbol versions a Matrix can have.
	MinVersion = 1
	MaxVersion = 40
)

// Level is the error correction level used for every symbol.
const Level = qrcode.Medium

// ErrTooLong is returned when no supported version can hold the data.
var ErrTooLong = errors.New("data does not fit in any QR version")

// Matrix is an encoded QR symbol without its quiet zone.
type Matrix struct {
	// Version is the symbol version actually used.
	Version int

	// Modules is indexed [row][column]; true marks a dark module.
	Modules [][]bool
}

// Size returns the number of modules per side.
func (m *Matrix) Size() int {
	return len(m.Modules)
}

// Encode builds the QR matrix for data.
//
// The smallest version that holds data is chosen, but never one below
// minVersion. Encoding fails with ErrTooLong when even version 40 is too
// small.
func Encode(data string, minVersion int) (*Matrix, error) {
	if minVersion < MinVersion || minVersion > MaxVersion {
		return nil, fmt.Errorf("version %d out of range %d-%d", minVersion, MinVersion, MaxVersion)
	}

	code, err := qrcode.New(data, Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTooLong, err)
	}
	if code.VersionNumber < minVersion {
		code, err = qrcode.NewWithForcedVersion(data, minVersion, Level)
		if err != nil {
			return nil, err
		}
	}

	// The quiet zone is drawn by Rasterize so its width can be configured.
	code.DisableBorder = true

	return &Matrix{
		Version: code.VersionNumber,
		Modules: code.Bitmap(),
	}, nil
}
