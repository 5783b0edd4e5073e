// Package crop derives the face crop: box geometry, alpha feathering, and
// RGBA composition, with a deterministic fallback when no skin is found.
package crop

import (
	"face-cropper/pkg/geometry"
)

// Asymmetric expansion factors applied to the detected face box. Empirically
// tuned: generous headroom for hair and forehead, restrained growth below the
// chin to keep neck and shoulders out.
const (
	ExpandTopFactor    = 0.55
	ExpandBottomFactor = 0.25
	ExpandSideFactor   = 0.45
)

// FaceBox turns the bounding box of the selected skin region into the final
// crop box: expand asymmetrically, force a square by translation, and clamp
// to the frame. The result is always well-formed and inside the frame, even
// when the frame is smaller than the desired square.
func FaceBox(face geometry.RectInt, frameH, frameW int) geometry.CropBox {
	top := face.Y
	bottom := face.Y + face.Height - 1
	left := face.X
	right := face.X + face.Width - 1

	expandTop := int(float64(face.Height) * ExpandTopFactor)
	expandBottom := int(float64(face.Height) * ExpandBottomFactor)
	expandSide := int(float64(face.Width) * ExpandSideFactor)

	top = max(top-expandTop, 0)
	bottom = min(bottom+expandBottom, frameH-1)
	left = max(left-expandSide, 0)
	right = min(right+expandSide, frameW-1)

	box := geometry.CropBox{Top: top, Bottom: bottom + 1, Left: left, Right: right + 1}
	return box.Square(frameH, frameW).Clamp(frameH, frameW)
}
