package mask

import (
	"fmt"
)

// Kernel is a square structuring element of odd side length. The zero value
// is unusable; construct kernels with NewKernel.
type Kernel struct {
	size int
	half int
}

// NewKernel validates a structuring-element side length. An even or
// non-positive size is a configuration error and must be rejected before any
// pixel work begins.
func NewKernel(size int) (Kernel, error) {
	if size < 1 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("kernel size must be a positive odd number, got %d", size)
	}
	return Kernel{size: size, half: size / 2}, nil
}

// Size returns the kernel side length.
func (k Kernel) Size() int {
	return k.size
}

// Erode returns a mask that is true only where every pixel inside the kernel
// window is true. Pixels beyond the frame count as false (zero padding), so
// erosion always clears a border of kernel-half width.
func Erode(m *Bitmap, k Kernel) *Bitmap {
	return separable(m, k.half, true)
}

// Dilate returns a mask that is true where any pixel inside the kernel window
// is true. Each iteration re-reads the previous iteration's output.
func Dilate(m *Bitmap, k Kernel, iterations int) *Bitmap {
	out := m
	for i := 0; i < iterations; i++ {
		out = separable(out, k.half, false)
	}
	if out == m {
		out = m.Clone()
	}
	return out
}

// Open removes specks smaller than the kernel without growing what remains.
func Open(m *Bitmap, k Kernel) *Bitmap {
	return Dilate(Erode(m, k), k, 1)
}

// Close fills holes smaller than the kernel without shrinking the outer
// boundary.
func Close(m *Bitmap, k Kernel) *Bitmap {
	return Erode(Dilate(m, k, 1), k)
}

// separable runs one erosion (all=true) or dilation (all=false) pass as a
// horizontal sweep followed by a vertical one. A square kernel factors into
// the two 1-D sweeps, which keeps the work linear in the kernel size instead
// of quadratic.
func separable(m *Bitmap, half int, all bool) *Bitmap {
	w, h := m.W, m.H
	tmp := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		row := m.Bits[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			tmp.Bits[y*w+x] = spanHit(row, x-half, x+half, all)
		}
	}

	out := NewBitmap(w, h)
	col := make([]bool, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = tmp.Bits[y*w+x]
		}
		for y := 0; y < h; y++ {
			out.Bits[y*w+x] = spanHit(col, y-half, y+half, all)
		}
	}
	return out
}

// spanHit evaluates a 1-D window over line[lo..hi]. Indices outside the line
// read false. With all=true it requires every sample true (erode); otherwise
// any true sample suffices (dilate).
func spanHit(line []bool, lo, hi int, all bool) bool {
	if all && (lo < 0 || hi >= len(line)) {
		return false
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= len(line) {
		hi = len(line) - 1
	}
	for i := lo; i <= hi; i++ {
		if line[i] != all {
			return !all
		}
	}
	return all
}

// RefineSchedule holds the kernel sizes and iteration count for the fixed
// cleanup sequence applied to a raw skin mask.
type RefineSchedule struct {
	OpenKernel     int
	CloseKernel    int
	GrowKernel     int
	GrowIterations int
}

// DefaultSchedule returns the cleanup schedule tuned for portrait photos:
// open(5) to drop speckle, close(9) to fill eyes and mouth, then two dilate(7)
// passes to reconnect the face with ears and hairline.
func DefaultSchedule() RefineSchedule {
	return RefineSchedule{
		OpenKernel:     5,
		CloseKernel:    9,
		GrowKernel:     7,
		GrowIterations: 2,
	}
}

// Refine cleans a raw skin mask using the schedule. Kernel sizes are
// validated up front; an invalid size fails before any pixel work.
func (s RefineSchedule) Refine(m *Bitmap) (*Bitmap, error) {
	openK, err := NewKernel(s.OpenKernel)
	if err != nil {
		return nil, fmt.Errorf("open kernel: %w", err)
	}
	closeK, err := NewKernel(s.CloseKernel)
	if err != nil {
		return nil, fmt.Errorf("close kernel: %w", err)
	}
	growK, err := NewKernel(s.GrowKernel)
	if err != nil {
		return nil, fmt.Errorf("grow kernel: %w", err)
	}

	clean := Open(m, openK)
	clean = Close(clean, closeK)
	clean = Dilate(clean, growK, s.GrowIterations)
	return clean, nil
}
