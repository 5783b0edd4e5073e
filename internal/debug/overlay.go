// Package debug renders intermediate pipeline artifacts for inspection.
package debug

import (
	"image"

	"face-cropper/internal/mask"
	"face-cropper/pkg/colorutil"
	"face-cropper/pkg/geometry"
)

// dimAlpha is the opacity applied to the source photo under the box overlay.
const dimAlpha = 120

// MaskPreview renders a boolean mask as an 8-bit grayscale image, true pixels
// white.
func MaskPreview(m *mask.Bitmap) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.Bits[y*m.W+x] {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

// BoundsOverlay draws the crop box as a one-pixel red outline over a dimmed
// copy of the source photo.
func BoundsOverlay(src image.Image, box geometry.CropBox) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(b >> 8)
			out.Pix[i+3] = dimAlpha
		}
	}

	for x := box.Left; x < box.Right; x++ {
		setPixel(out, x, box.Top)
		setPixel(out, x, box.Bottom-1)
	}
	for y := box.Top; y < box.Bottom; y++ {
		setPixel(out, box.Left, y)
		setPixel(out, box.Right-1, y)
	}
	return out
}

func setPixel(img *image.NRGBA, x, y int) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i+0] = colorutil.Red.R
	img.Pix[i+1] = colorutil.Red.G
	img.Pix[i+2] = colorutil.Red.B
	img.Pix[i+3] = colorutil.Red.A
}
