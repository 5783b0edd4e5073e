package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToYCbCr(t *testing.T) {
	tests := []struct {
		name      string
		r, g, b   float64
		y, cb, cr float64
		tolerance float64
	}{
		{"black", 0, 0, 0, 0, 128, 128, 0.01},
		{"white", 255, 255, 255, 255, 128, 128, 0.01},
		{"mid gray", 128, 128, 128, 128, 128, 128, 0.01},
		{"pure red", 255, 0, 0, 76.245, 84.972, 255.5, 0.01},
		{"pure blue", 0, 0, 255, 29.07, 255.5, 107.265, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, cb, cr := RGBToYCbCr(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.y, y, tt.tolerance)
			assert.InDelta(t, tt.cb, cb, tt.tolerance)
			assert.InDelta(t, tt.cr, cr, tt.tolerance)
		})
	}
}
