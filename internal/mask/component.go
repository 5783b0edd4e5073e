package mask

import (
	"face-cropper/pkg/geometry"
)

// Region summarizes one 8-connected set of true pixels.
type Region struct {
	Area     int
	Bounds   geometry.RectInt
	Centroid geometry.Point2D
}

// LargestComponent returns the largest 8-connected region of m as a fresh
// mask of the same extent, together with its summary. The second return is
// false when m has no true pixels. Regions are discovered in row-major scan
// order and a tie on pixel count keeps the first one found.
func LargestComponent(m *Bitmap) (*Bitmap, Region, bool) {
	var best []int
	var bestRegion Region

	scanComponents(m, func(pixels []int, r Region) {
		if len(pixels) > len(best) {
			best = append(best[:0], pixels...)
			bestRegion = r
		}
	})

	if len(best) == 0 {
		return nil, Region{}, false
	}

	out := NewBitmap(m.W, m.H)
	for _, idx := range best {
		out.Bits[idx] = true
	}
	return out, bestRegion, true
}

// Regions returns summaries of every 8-connected region in row-major
// discovery order.
func Regions(m *Bitmap) []Region {
	var regions []Region
	scanComponents(m, func(_ []int, r Region) {
		regions = append(regions, r)
	})
	return regions
}

// scanComponents visits each 8-connected region once, calling visit with the
// region's flat pixel indices and summary. The flood fill uses an explicit
// worklist over a flat visited grid so large regions cannot exhaust the call
// stack; each pixel is enqueued at most once, so total work is O(W*H).
// The pixels slice is reused between calls.
func scanComponents(m *Bitmap, visit func(pixels []int, r Region)) {
	w, h := m.W, m.H
	visited := make([]bool, w*h)
	var pixels []int
	var queue []int

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			start := y*w + x
			if !m.Bits[start] || visited[start] {
				continue
			}

			pixels = pixels[:0]
			queue = append(queue[:0], start)
			visited[start] = true

			minX, maxX := x, x
			minY, maxY := y, y
			var sumX, sumY int

			for len(queue) > 0 {
				idx := queue[0]
				queue = queue[1:]
				py, px := idx/w, idx%w
				pixels = append(pixels, idx)
				sumX += px
				sumY += py
				if px < minX {
					minX = px
				}
				if px > maxX {
					maxX = px
				}
				if py < minY {
					minY = py
				}
				if py > maxY {
					maxY = py
				}

				for ny := py - 1; ny <= py+1; ny++ {
					if ny < 0 || ny >= h {
						continue
					}
					for nx := px - 1; nx <= px+1; nx++ {
						if nx < 0 || nx >= w {
							continue
						}
						nidx := ny*w + nx
						if m.Bits[nidx] && !visited[nidx] {
							visited[nidx] = true
							queue = append(queue, nidx)
						}
					}
				}
			}

			n := len(pixels)
			visit(pixels, Region{
				Area: n,
				Bounds: geometry.RectInt{
					X:      minX,
					Y:      minY,
					Width:  maxX - minX + 1,
					Height: maxY - minY + 1,
				},
				Centroid: geometry.Point2D{
					X: float64(sumX) / float64(n),
					Y: float64(sumY) / float64(n),
				},
			})
		}
	}
}
