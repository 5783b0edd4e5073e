package geometry

// CropBox is an axis-aligned region of a source frame expressed as edge
// coordinates. Top and Left are inclusive, Bottom and Right exclusive, so a
// well-formed box satisfies 0 <= Top < Bottom <= frame height and
// 0 <= Left < Right <= frame width.
type CropBox struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Height returns the box height in pixels.
func (b CropBox) Height() int {
	return b.Bottom - b.Top
}

// Width returns the box width in pixels.
func (b CropBox) Width() int {
	return b.Right - b.Left
}

// Empty reports whether the box has zero or negative area.
func (b CropBox) Empty() bool {
	return b.Height() <= 0 || b.Width() <= 0
}

// Center returns the box center.
func (b CropBox) Center() Point2D {
	return Point2D{
		X: float64(b.Left) + float64(b.Width())/2,
		Y: float64(b.Top) + float64(b.Height())/2,
	}
}

// Clamp restricts the box to a frame of the given extent.
func (b CropBox) Clamp(frameH, frameW int) CropBox {
	return CropBox{
		Top:    max(b.Top, 0),
		Bottom: min(b.Bottom, frameH),
		Left:   max(b.Left, 0),
		Right:  min(b.Right, frameW),
	}
}

// Square recenters the box as a side×side square where side is the larger of
// the box dimensions. If the square overhangs the frame it is translated back
// inside rather than rescaled, then clamped. When the frame itself is smaller
// than the desired side the result follows the frame extent.
func (b CropBox) Square(frameH, frameW int) CropBox {
	height := b.Height()
	width := b.Width()
	side := max(height, width)

	centerY := b.Top + height/2
	centerX := b.Left + width/2

	half := side / 2
	top := centerY - half
	bottom := top + side
	left := centerX - half
	right := left + side

	// Translate back inside the frame if an edge fell outside.
	if top < 0 {
		bottom -= top
		top = 0
	}
	if left < 0 {
		right -= left
		left = 0
	}
	if bottom > frameH {
		top -= bottom - frameH
		bottom = frameH
	}
	if right > frameW {
		left -= right - frameW
		right = frameW
	}

	return CropBox{Top: top, Bottom: bottom, Left: left, Right: right}.Clamp(frameH, frameW)
}
