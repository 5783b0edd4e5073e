// Package mask implements skin segmentation over raw pixel grids: color
// thresholding, square-kernel morphology, and connected-component selection.
package mask

// Bitmap is a boolean pixel grid stored row-major, indexed y*W+x.
type Bitmap struct {
	W, H int
	Bits []bool
}

// NewBitmap creates an all-false Bitmap of the given extent.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, Bits: make([]bool, w*h)}
}

// At reports the value at (x, y). Coordinates outside the grid read false,
// matching the zero-padding convention the morphology primitives assume.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return false
	}
	return b.Bits[y*b.W+x]
}

// Set assigns the value at (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, v bool) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	b.Bits[y*b.W+x] = v
}

// Count returns the number of true pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.Bits {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	out := NewBitmap(b.W, b.H)
	copy(out.Bits, b.Bits)
	return out
}
