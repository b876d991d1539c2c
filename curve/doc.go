// Package curve generates parametric and fractal curves and plots them
// through a raster.Sink.
//
// Control points and curve states are real-valued vec.Vec2 values; they are
// converted to pixels by truncation toward zero, the same conversion used
// for pointer positions everywhere else in the module.
package curve

import (
	"image"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Pixel converts a real point to the pixel that contains it.
func Pixel(p vec.Vec2) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// Bounds returns the smallest rectangle containing all points.
// The zero rectangle is returned for an empty slice.
func Bounds(points []vec.Vec2) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: points[0].X, LLy: points[0].Y, URx: points[0].X, URy: points[0].Y}
	for _, p := range points[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}
