package crop

import (
	"image"
	"image/color"
	"testing"

	"face-cropper/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite_CopiesPixelsAndAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}

	box := geometry.CropBox{Top: 1, Bottom: 3, Left: 1, Right: 3}
	alpha := []uint8{255, 128, 64, 0}

	got := Composite(src, box, alpha)
	require.Equal(t, image.Rect(0, 0, 2, 2), got.Bounds())

	assert.Equal(t, color.NRGBA{R: 10, G: 10, B: 200, A: 255}, got.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 20, G: 10, B: 200, A: 128}, got.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 200, A: 64}, got.NRGBAAt(0, 1))
	assert.Equal(t, color.NRGBA{R: 20, G: 20, B: 200, A: 0}, got.NRGBAAt(1, 1))
}

func TestComposite_OffsetSourceBounds(t *testing.T) {
	// Source images whose bounds do not start at the origin must still crop
	// the intended region.
	src := image.NewNRGBA(image.Rect(10, 20, 14, 24))
	src.SetNRGBA(11, 21, color.NRGBA{R: 7, G: 8, B: 9, A: 255})

	box := geometry.CropBox{Top: 1, Bottom: 2, Left: 1, Right: 2}
	got := Composite(src, box, []uint8{255})

	assert.Equal(t, color.NRGBA{R: 7, G: 8, B: 9, A: 255}, got.NRGBAAt(0, 0))
}

func TestFallbackBox(t *testing.T) {
	tests := []struct {
		name   string
		frameH int
		frameW int
		want   geometry.CropBox
	}{
		{"portrait lifts upward", 200, 100, geometry.CropBox{Top: 34, Bottom: 134, Left: 0, Right: 100}},
		{"landscape clamps lift", 100, 200, geometry.CropBox{Top: 0, Bottom: 100, Left: 50, Right: 150}},
		{"square clamps lift", 100, 100, geometry.CropBox{Top: 0, Bottom: 100, Left: 0, Right: 100}},
		{"tall and narrow", 900, 300, geometry.CropBox{Top: 250, Bottom: 550, Left: 0, Right: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackBox(tt.frameH, tt.frameW)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Width(), got.Height())
		})
	}
}
