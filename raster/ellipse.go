package raster

import (
	"image"
	"image/color"
	"math"
)

// rotationEpsilon snaps tiny trigonometric values to zero so that axis
// aligned rotations (0°, 90°, 180°, ...) produce exact integer offsets.
const rotationEpsilon = 1e-3

// Rotation holds the snapped cosine and sine of an ellipse rotation.
type Rotation struct {
	Cos, Sin float64
}

// NewRotation returns the rotation for deg degrees. Components whose
// magnitude is below 1e-3 are replaced by zero.
func NewRotation(deg float64) Rotation {
	rad := deg * math.Pi / 180
	return Rotation{Cos: snap(math.Cos(rad)), Sin: snap(math.Sin(rad))}
}

// Apply rotates the offset (x, y) about the origin.
func (r Rotation) Apply(x, y float64) (float64, float64) {
	return x*r.Cos + y*r.Sin, y*r.Cos - x*r.Sin
}

// Inverse rotates (x, y) by the opposite angle.
func (r Rotation) Inverse(x, y float64) (float64, float64) {
	return x*r.Cos - y*r.Sin, y*r.Cos + x*r.Sin
}

func snap(v float64) float64 {
	if math.Abs(v) < rotationEpsilon {
		return 0
	}
	return v
}

// PlotEllipse draws the outline of an ellipse with semi-axes rx and ry
// centred at center and rotated by rotationDeg degrees.
//
// The outline is traced with the two-region midpoint algorithm in the
// ellipse's local frame; each of the four symmetric points is rotated,
// truncated to integers and offset by the centre. Negative radii are
// treated as their absolute value.
func PlotEllipse(dst Sink, center image.Point, rx, ry int, rotationDeg float64, c color.RGBA) {
	rot := NewRotation(rotationDeg)
	midpointEllipse(abs(rx), abs(ry), func(x, y int) {
		plotSymmetric(dst, center, rot, x, y, c)
	})
}

// EllipsePixels returns the pixels PlotEllipse would plot, in plot order.
// Pixels lying on an axis appear more than once.
func EllipsePixels(center image.Point, rx, ry int, rotationDeg float64) []image.Point {
	var pts []image.Point
	PlotEllipse(SinkFunc(func(x, y int, _ color.RGBA) {
		pts = append(pts, image.Pt(x, y))
	}), center, rx, ry, rotationDeg, color.RGBA{})
	return pts
}

func plotSymmetric(dst Sink, center image.Point, rot Rotation, x, y int, c color.RGBA) {
	for _, q := range [4][2]int{{x, y}, {-x, y}, {x, -y}, {-x, -y}} {
		rx, ry := rot.Apply(float64(q[0]), float64(q[1]))
		dst.Plot(center.X+int(rx), center.Y+int(ry), c)
	}
}

// midpointEllipse visits the first-quadrant points of an axis-aligned
// ellipse. Decision variables are kept scaled by 4 so that they stay integral.
func midpointEllipse(rx, ry int, visit func(x, y int)) {
	if ry == 0 {
		for x := 0; x <= rx; x++ {
			visit(x, 0)
		}
		return
	}

	rx2, ry2 := rx*rx, ry*ry
	x, y := 0, ry
	dx, dy := 0, 2*rx2*y

	// Region 1: slope magnitude below 1.
	d := 4*ry2 - 4*rx2*ry + rx2
	for dx < dy {
		visit(x, y)
		x++
		dx += 2 * ry2
		if d < 0 {
			d += 4 * (dx + ry2)
		} else {
			y--
			dy -= 2 * rx2
			d += 4 * (dx - dy + ry2)
		}
	}

	// Region 2: slope magnitude above 1.
	d = ry2*(2*x+1)*(2*x+1) + 4*rx2*(y-1)*(y-1) - 4*rx2*ry2
	last := x
	for y >= 0 {
		visit(x, y)
		last = x
		y--
		dy -= 2 * rx2
		if d > 0 {
			d += 4 * (rx2 - dy)
		} else {
			x++
			dx += 2 * ry2
			d += 4 * (dx - dy + rx2)
		}
	}

	// Very flat ellipses leave region 2 before reaching the major axis.
	for x := last + 1; x <= rx; x++ {
		visit(x, 0)
	}
}
