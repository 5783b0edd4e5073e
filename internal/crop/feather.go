package crop

import (
	"math"
)

const (
	// DefaultFeatherRatio is the inner radius of full opacity before the
	// falloff starts.
	DefaultFeatherRatio = 0.92

	// maxFeatherRatio caps the plateau so the ramp never degenerates.
	maxFeatherRatio = 0.98
)

// FeatherAlpha returns a row-major h×w grid of 8-bit opacity values forming a
// radial ramp: 255 inside the inner radius, a linear falloff between inner
// and the frame edge, 0 outside. The radius is normalized per axis, so a
// non-square extent yields an elliptical feather matching its aspect.
// innerRatio is clamped to [0, 0.98].
func FeatherAlpha(h, w int, innerRatio float64) []uint8 {
	inner := clampRatio(innerRatio)
	cy := float64(h-1) / 2
	cx := float64(w-1) / 2
	ry := float64(h) / 2
	rx := float64(w) / 2

	alpha := make([]uint8, h*w)
	for y := 0; y < h; y++ {
		ny := (float64(y) - cy) / ry
		for x := 0; x < w; x++ {
			nx := (float64(x) - cx) / rx
			r := math.Sqrt(nx*nx + ny*ny)

			var a float64
			switch {
			case r <= inner:
				a = 1
			case r < 1:
				a = (1 - r) / (1 - inner)
			}
			alpha[y*w+x] = uint8(a * 255)
		}
	}
	return alpha
}

func clampRatio(ratio float64) float64 {
	if ratio < 0 {
		return 0
	}
	if ratio > maxFeatherRatio {
		return maxFeatherRatio
	}
	return ratio
}
