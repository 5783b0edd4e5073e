// Package colorutil provides shared color utilities for the face cropper.
package colorutil

import (
	"image/color"
)

// Common overlay colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// RGBToYCbCr converts RGB (0-255) to full-range YCbCr using the BT.601
// broadcast coefficients (the JPEG convention, chroma centered on 128).
func RGBToYCbCr(r, g, b float64) (y, cb, cr float64) {
	y = 0.299*r + 0.587*g + 0.114*b
	cb = 128 - 0.168736*r - 0.331264*g + 0.5*b
	cr = 128 + 0.5*r - 0.418688*g - 0.081312*b
	return y, cb, cr
}
