// Package fill implements region filling on top of the raster package.
//
// Two fills are provided. FloodEllipse grows a region from a seed pixel
// using an implicit ellipse membership test; Triangle marks the three edges
// of a triangle in an occupancy mask and fills the span between the
// outermost marked pixels of every row.
//
// Both operations take a caller-owned *raster.Mask and reset it on entry.
// The mask also defines the viewport: pixels outside it are never filled.
package fill

import (
	"image"
	"image/color"

	"github.com/zyfsa/graphic/raster"
)

// Ellipse describes the region bounded by a rotated ellipse.
type Ellipse struct {
	Center      image.Point
	RA, RB      float64 // semi-axes along the local x and y axes
	RotationDeg float64
}

// Contains reports whether pixel (x, y) lies strictly inside e.
// Ellipses with a zero semi-axis contain nothing.
func (e Ellipse) Contains(x, y int) bool {
	return e.contains(raster.NewRotation(e.RotationDeg), x, y)
}

func (e Ellipse) contains(rot raster.Rotation, x, y int) bool {
	if e.RA == 0 || e.RB == 0 {
		return false
	}
	lx, ly := rot.Inverse(float64(x-e.Center.X), float64(y-e.Center.Y))
	return lx*lx/(e.RA*e.RA)+ly*ly/(e.RB*e.RB) < 1
}

// FloodEllipse fills the 4-connected region of pixels inside e that
// contains seed and returns the number of pixels filled.
//
// The fill is an explicit-stack scanline fill: every popped seed is extended
// left and right along its row, and one new seed is pushed per unvisited run
// in the rows directly above and below. A seed outside e or outside the mask
// fills nothing.
func FloodEllipse(dst raster.Sink, m *raster.Mask, seed image.Point, e Ellipse, c color.RGBA) int {
	m.Reset()

	rot := raster.NewRotation(e.RotationDeg)
	open := func(x, y int) bool {
		return m.InBounds(x, y) && !m.At(x, y) && e.contains(rot, x, y)
	}
	if !open(seed.X, seed.Y) {
		return 0
	}

	filled := 0
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !open(p.X, p.Y) {
			continue
		}

		xl, xr := p.X, p.X
		for open(xl-1, p.Y) {
			xl--
		}
		for open(xr+1, p.Y) {
			xr++
		}
		for x := xl; x <= xr; x++ {
			m.Set(x, p.Y)
			dst.Plot(x, p.Y, c)
		}
		filled += xr - xl + 1

		for _, y := range [2]int{p.Y - 1, p.Y + 1} {
			for x := xl; x <= xr; {
				if !open(x, y) {
					x++
					continue
				}
				stack = append(stack, image.Pt(x, y))
				for x <= xr && open(x, y) {
					x++
				}
			}
		}
	}
	return filled
}

// Triangle fills the triangle p1 p2 p3 and returns the number of rows filled.
//
// The three edges are marked with raster.MarkLine. Each row of the bounding
// box, extended by one pixel on every side, is scanned for its leftmost and
// rightmost marked pixel; rows with at least two marked pixels are filled
// across that span padded by one pixel on each side. Rows with fewer hits
// are skipped, so slivers thinner than two pixels may be left unfilled.
func Triangle(dst raster.Sink, m *raster.Mask, p1, p2, p3 image.Point, c color.RGBA) int {
	m.Reset()
	raster.MarkLine(m, p1, p2)
	raster.MarkLine(m, p2, p3)
	raster.MarkLine(m, p3, p1)

	bounds := image.Rectangle{Min: p1, Max: p1}
	for _, p := range [2]image.Point{p2, p3} {
		bounds.Min.X = min(bounds.Min.X, p.X)
		bounds.Min.Y = min(bounds.Min.Y, p.Y)
		bounds.Max.X = max(bounds.Max.X, p.X)
		bounds.Max.Y = max(bounds.Max.Y, p.Y)
	}

	rows := 0
	for y := bounds.Min.Y - 1; y <= bounds.Max.Y+1; y++ {
		left, right, hits := m.Span(y, bounds.Min.X-1, bounds.Max.X+1)
		if hits < 2 {
			continue
		}
		for x := left - 1; x <= right+1; x++ {
			dst.Plot(x, y, c)
		}
		rows++
	}
	return rows
}
