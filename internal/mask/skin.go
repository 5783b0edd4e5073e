package mask

import (
	"image"

	"face-cropper/pkg/colorutil"
)

// Skin classification thresholds. Chroma ranges are the widely used YCbCr
// skin envelope; the RGB guards reject near-gray and oversaturated pixels
// that land inside it.
const (
	skinCbMin   = 77
	skinCbMax   = 127
	skinCrMin   = 133
	skinCrMax   = 173
	skinLumaMin = 60

	skinRedMin    = 70
	skinGreenMin  = 40
	skinBlueMin   = 20
	skinRGDiffMin = 5
)

// Skin returns a Bitmap of the image extent marking pixels whose color is
// plausibly human skin. Pure function of the pixel values; the image is only
// read.
func Skin(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewBitmap(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r := float64(r16 >> 8)
			g := float64(g16 >> 8)
			b := float64(b16 >> 8)

			out.Bits[y*w+x] = isSkin(r, g, b)
		}
	}
	return out
}

func isSkin(r, g, b float64) bool {
	luma, cb, cr := colorutil.RGBToYCbCr(r, g, b)
	if cb < skinCbMin || cb > skinCbMax {
		return false
	}
	if cr < skinCrMin || cr > skinCrMax {
		return false
	}
	if luma <= skinLumaMin {
		return false
	}

	diff := r - g
	if diff < 0 {
		diff = -diff
	}
	return r > skinRedMin && g > skinGreenMin && b > skinBlueMin && diff > skinRGDiffMin
}
