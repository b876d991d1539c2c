package curve

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/zyfsa/graphic/raster"
)

// BezierOptions controls recursive Bezier subdivision.
type BezierOptions struct {
	// Adjacency is the largest per-axis pixel distance at which two
	// consecutive points count as touching. Zero means 1.
	Adjacency float64

	// MaxDepth bounds the recursion. At this depth the current points are
	// emitted as they are. Zero means DefaultBezierDepth.
	MaxDepth int
}

// DefaultBezierDepth is the recursion limit used when MaxDepth is zero.
const DefaultBezierDepth = 16

func (o BezierOptions) withDefaults() BezierOptions {
	if o.Adjacency <= 0 {
		o.Adjacency = 1
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultBezierDepth
	}
	return o
}

// Subdivide approximates the Bezier curve with the given control points by
// recursive subdivision and passes every resulting point to emit. It
// returns the number of recursive calls made; a polygon whose consecutive
// points are already pixel-adjacent is emitted unchanged with zero calls.
//
// A non-adjacent polygon is first chord-cut, inserting the midpoint between
// every third point and its successor. Repeated midpoint passes then reduce
// the polygon to a single point; the first point of every pass forms the
// left half (starting at the first control point) and the last point of
// every pass forms the right half (starting at the last control point).
// Both halves are subdivided in turn.
func Subdivide(points []vec.Vec2, opts BezierOptions, emit func(vec.Vec2)) int {
	if len(points) == 0 {
		return 0
	}
	opts = opts.withDefaults()
	return subdivide(points, opts, 0, emit)
}

func subdivide(points []vec.Vec2, opts BezierOptions, depth int, emit func(vec.Vec2)) int {
	if depth >= opts.MaxDepth || adjacent(points, opts.Adjacency) {
		for _, p := range points {
			emit(p)
		}
		return 0
	}

	work := make([]vec.Vec2, 0, len(points)+len(points)/3)
	for i, p := range points {
		work = append(work, p)
		if (i+1)%3 == 0 && i+1 < len(points) {
			work = append(work, midpoint(p, points[i+1]))
		}
	}

	n := len(work)
	left := make([]vec.Vec2, 0, n)
	right := make([]vec.Vec2, 0, n)
	left = append(left, points[0])
	right = append(right, points[len(points)-1])
	for len(work) > 1 {
		for j := 0; j+1 < len(work); j++ {
			work[j] = midpoint(work[j], work[j+1])
		}
		work = work[:len(work)-1]
		left = append(left, work[0])
		right = append(right, work[len(work)-1])
	}

	calls := 2
	calls += subdivide(left, opts, depth+1, emit)
	calls += subdivide(right, opts, depth+1, emit)
	return calls
}

func adjacent(points []vec.Vec2, limit float64) bool {
	for i := 0; i+1 < len(points); i++ {
		a, b := Pixel(points[i]), Pixel(points[i+1])
		if math.Abs(float64(a.X-b.X)) > limit || math.Abs(float64(a.Y-b.Y)) > limit {
			return false
		}
	}
	return true
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return a.Add(b).Mul(0.5)
}

// PlotBezier subdivides the curve and plots every resulting point.
// It returns the number of recursive calls, as Subdivide does.
func PlotBezier(dst raster.Sink, points []vec.Vec2, opts BezierOptions, c color.RGBA) int {
	return Subdivide(points, opts, func(p vec.Vec2) {
		q := Pixel(p)
		dst.Plot(q.X, q.Y, c)
	})
}
