package raster

import "image"

// Mask is a width×height occupancy grid.
//
// A mask belongs to exactly one fill or scanline operation at a time; every
// operation that uses one resets it, or the region it touches, on entry. Writes outside the grid are
// silently discarded and reads outside it report false.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// NewMask creates a cleared mask. Negative sizes are treated as zero.
func NewMask(width, height int) *Mask {
	width = max(width, 0)
	height = max(height, 0)
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Reset clears every cell.
func (m *Mask) Reset() {
	clear(m.bits)
}

// ResetRect clears the cells inside r, clipped to the mask. An operation
// that only marks and reads cells within r may use it in place of Reset.
func (m *Mask) ResetRect(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, m.width, m.height))
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * m.width
		clear(m.bits[row+r.Min.X : row+r.Max.X])
	}
}

// InBounds reports whether (x, y) addresses a cell of the mask.
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Set marks the cell at (x, y).
func (m *Mask) Set(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	m.bits[y*m.width+x] = true
}

// At reports whether the cell at (x, y) is marked.
func (m *Mask) At(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.bits[y*m.width+x]
}

// Count returns the number of marked cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Span scans row y over the inclusive range [x0, x1], clipped to the mask,
// and returns the leftmost and rightmost marked columns together with the
// number of marked cells seen. When hits is zero, left and right are
// meaningless.
func (m *Mask) Span(y, x0, x1 int) (left, right, hits int) {
	if y < 0 || y >= m.height {
		return 0, 0, 0
	}
	x0 = max(x0, 0)
	x1 = min(x1, m.width-1)
	row := m.bits[y*m.width : (y+1)*m.width]
	for x := x0; x <= x1; x++ {
		if !row[x] {
			continue
		}
		if hits == 0 {
			left = x
		}
		right = x
		hits++
	}
	return left, right, hits
}
