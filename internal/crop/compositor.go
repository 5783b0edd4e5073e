package crop

import (
	"image"

	"face-cropper/pkg/geometry"
)

// fallbackLiftDivisor shifts the fallback crop upward by side/6. Portrait
// subjects sit above frame center often enough that a strictly centered crop
// tends to cut the forehead.
const fallbackLiftDivisor = 6

// Composite stacks the boxed region of src with the given alpha grid into a
// fresh NRGBA image of the box extent. alpha must hold box.Height()*box.Width()
// values in row-major order.
func Composite(src image.Image, box geometry.CropBox, alpha []uint8) *image.NRGBA {
	w, h := box.Width(), box.Height()
	bounds := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+box.Left+x, bounds.Min.Y+box.Top+y).RGBA()
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(b >> 8)
			out.Pix[i+3] = alpha[y*w+x]
		}
	}
	return out
}

// FallbackBox returns the crop used when no skin region is found: a centered
// square of side min(H, W), lifted by a sixth of the side and clamped.
func FallbackBox(frameH, frameW int) geometry.CropBox {
	side := min(frameH, frameW)
	left := (frameW - side) / 2
	top := max((frameH-side)/2-side/fallbackLiftDivisor, 0)
	return geometry.CropBox{Top: top, Bottom: top + side, Left: left, Right: left + side}
}
