package detect

import "image"

// Mask is a per-pixel boolean grid stored as a row-major flat array:
// index = y*W + x. The flat layout keeps flood-fill and erosion state in a
// single allocation with trivial bounds checks.
type Mask struct {
	W, H int
	Bits []bool
}

// NewMask allocates a cleared mask of the given dimensions.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

// At reports whether (x, y) is set. Out-of-range coordinates are false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	return m.Bits[y*m.W+x]
}

// Set marks (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	m.Bits[y*m.W+x] = true
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Bounds returns the tight bounding rectangle of all set pixels, using the
// usual inclusive-min / exclusive-max convention. The second return value
// is false when the mask is empty.
func (m *Mask) Bounds() (image.Rectangle, bool) {
	minX, minY := m.W, m.H
	maxX, maxY := -1, -1
	for y := 0; y < m.H; y++ {
		row := m.Bits[y*m.W : (y+1)*m.W]
		for x, b := range row {
			if !b {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Erode unsets every set pixel that lies on the mask border or has at
// least one unset 4-neighbor, repeated for the given number of iterations.
// Used to trim anti-aliased border fringe leaking into a fill region.
func (m *Mask) Erode(iterations int) {
	next := make([]bool, len(m.Bits))
	for i := 0; i < iterations; i++ {
		copy(next, m.Bits)
		for y := 0; y < m.H; y++ {
			for x := 0; x < m.W; x++ {
				idx := y*m.W + x
				if !m.Bits[idx] {
					continue
				}
				if x == 0 || y == 0 || x == m.W-1 || y == m.H-1 ||
					!m.Bits[idx-1] || !m.Bits[idx+1] ||
					!m.Bits[idx-m.W] || !m.Bits[idx+m.W] {
					next[idx] = false
				}
			}
		}
		m.Bits, next = next, m.Bits
	}
}
