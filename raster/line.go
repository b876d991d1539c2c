package raster

import (
	"image"
	"image/color"
)

// PlotLine draws the segment p0→p1 one pixel wide.
//
// Pixels are emitted exactly once each, in walk order from p0 to p1, both
// endpoints included. Vertical, horizontal and 45° segments take a direct
// path; everything else uses integer Bresenham along the dominant axis.
func PlotLine(dst Sink, p0, p1 image.Point, c color.RGBA) {
	walkLine(p0, p1, func(x, y int) { dst.Plot(x, y, c) })
}

// MarkLine marks the pixels of p0→p1 in m. It visits exactly the pixels
// PlotLine would plot for the same endpoints.
func MarkLine(m *Mask, p0, p1 image.Point) {
	walkLine(p0, p1, m.Set)
}

// LinePixels returns the pixels of p0→p1 in walk order.
func LinePixels(p0, p1 image.Point) []image.Point {
	n := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1
	pts := make([]image.Point, 0, n)
	walkLine(p0, p1, func(x, y int) { pts = append(pts, image.Pt(x, y)) })
	return pts
}

// walkLine is the single line walker behind PlotLine and MarkLine. The step
// direction on each axis is taken once from the endpoint displacement.
func walkLine(p0, p1 image.Point, visit func(x, y int)) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	sx, sy := sign(dx), sign(dy)
	adx, ady := abs(dx), abs(dy)

	switch {
	case dx == 0:
		for i := 0; i <= ady; i++ {
			visit(p0.X, p0.Y+i*sy)
		}
	case dy == 0:
		for i := 0; i <= adx; i++ {
			visit(p0.X+i*sx, p0.Y)
		}
	case adx == ady:
		for i := 0; i <= adx; i++ {
			visit(p0.X+i*sx, p0.Y+i*sy)
		}
	case adx > ady:
		x, y := p0.X, p0.Y
		d := 2*ady - adx
		for i := 0; i <= adx; i++ {
			visit(x, y)
			if d >= 0 {
				y += sy
				d -= 2 * adx
			}
			d += 2 * ady
			x += sx
		}
	default:
		x, y := p0.X, p0.Y
		d := 2*adx - ady
		for i := 0; i <= ady; i++ {
			visit(x, y)
			if d >= 0 {
				x += sx
				d -= 2 * ady
			}
			d += 2 * adx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
