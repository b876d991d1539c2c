package curve

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/zyfsa/graphic/raster"
)

// bsplineDensity is the parameter step per unit of chord length.
const bsplineDensity = 0.1

// Step returns the parameter increment used for every window of a uniform
// cubic B-spline through points: 0.1 divided by the distance between the
// first and last control point. A zero chord falls back to the length of
// the control polygon; if that is zero too, Step returns +Inf and every
// window yields a single sample.
func Step(points []vec.Vec2) float64 {
	if len(points) < 2 {
		return math.Inf(1)
	}
	chord := points[len(points)-1].Sub(points[0]).Length()
	if chord == 0 {
		for i := 0; i+1 < len(points); i++ {
			chord += points[i+1].Sub(points[i]).Length()
		}
	}
	if chord == 0 {
		return math.Inf(1)
	}
	return bsplineDensity / chord
}

// BSpline evaluates the uniform cubic B-spline defined by points and passes
// every sample to emit. Each run of four consecutive control points forms
// one window, sampled at t = 0, step, 2·step, ... up to and including 1.
// It returns the total number of samples; fewer than four control points
// produce none.
func BSpline(points []vec.Vec2, emit func(vec.Vec2)) int {
	if len(points) < 4 {
		return 0
	}
	step := Step(points)
	perWindow := 1
	if !math.IsInf(step, 1) {
		perWindow = int(math.Floor(1/step+1e-9)) + 1
	}

	total := 0
	for k := 0; k+3 < len(points); k++ {
		p0, p1, p2, p3 := points[k], points[k+1], points[k+2], points[k+3]
		for i := range perWindow {
			t := 0.0
			if i > 0 {
				t = float64(i) * step
			}
			emit(bsplineAt(p0, p1, p2, p3, t))
			total++
		}
	}
	return total
}

// bsplineAt evaluates one uniform cubic B-spline segment at t in [0, 1].
func bsplineAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	t2 := t * t
	t3 := t2 * t
	b0 := (1 - 3*t + 3*t2 - t3) / 6
	b1 := (4 - 6*t2 + 3*t3) / 6
	b2 := (1 + 3*t + 3*t2 - 3*t3) / 6
	b3 := t3 / 6
	return p0.Mul(b0).Add(p1.Mul(b1)).Add(p2.Mul(b2)).Add(p3.Mul(b3))
}

// PlotBSpline plots every sample of the B-spline through points and
// returns the number of samples.
func PlotBSpline(dst raster.Sink, points []vec.Vec2, c color.RGBA) int {
	return BSpline(points, func(p vec.Vec2) {
		q := Pixel(p)
		dst.Plot(q.X, q.Y, c)
	})
}
