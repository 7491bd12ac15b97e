// Package qr turns a string into a QR code raster image.
//
// Encoding and rasterization are separate steps so the module pattern
// does not depend on colours or pixel geometry:
//
//	m, err := qr.Encode("https://example.com", 1)
//	if err != nil {
//	    // data too long for version 40
//	}
//	img, err := qr.Rasterize(m, params)
//
// Encode chooses the smallest version that holds the data, starting at the
// requested version ("fit"). The error correction level is always Medium.
package qr
