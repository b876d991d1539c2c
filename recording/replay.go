package recording

import (
	"image"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"

	"github.com/zyfsa/graphic/curve"
	"github.com/zyfsa/graphic/fill"
	"github.com/zyfsa/graphic/internal/logging"
	"github.com/zyfsa/graphic/raster"
	"github.com/zyfsa/graphic/sphere"
)

// Surface is the target of a replay: a pixel sink of known size.
type Surface interface {
	raster.Sink
	Width() int
	Height() int
}

// Stats summarises one replay.
type Stats struct {
	Drawn   int // elements that produced output
	Skipped int // elements with nothing to draw or of unknown kind
	Flushed int // Bezier and B-spline curves generated
}

// Replayer draws element lists onto a Surface.
//
// The zero value replays with DefaultPhong, default Bezier options, the
// default fern scale and seed 0, but with no lighting; sphere elements then
// shade with zero light and view vectors. Callers that draw spheres set
// Lighting.
type Replayer struct {
	Lighting          sphere.Lighting
	Phong             sphere.Phong
	Bezier            curve.BezierOptions
	FernScale         float64
	MaxRadiusFraction float64
	Workers           int

	// Rand drives the fern. When nil, every Replay uses a fresh generator
	// seeded with Seed so repeated redraws look the same.
	Rand *rand.Rand
	Seed uint64
}

// curveBuffer accumulates the control points of one Bezier or B-spline
// group.
type curveBuffer struct {
	kind   Kind
	group  GroupID
	style  Style
	points []vec.Vec2
}

// Replay draws elements in order and returns a summary.
//
// Fill elements look at the element just before them: an Ellipse is flood
// filled from the fill's press point, and a Line closes the triangle formed
// with the Line before it. Consecutive Bezier (or B-spline) elements of one
// group collect control points: the first contributes both ends of its last
// segment, later ones the end only. The curve is generated as soon as the
// group ends. Elements of unknown kind are logged and skipped.
func (r *Replayer) Replay(elements []Element, dst Surface) Stats {
	var st Stats
	w, h := dst.Width(), dst.Height()
	clip := raster.Clip(dst, w, h)
	rng := r.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(r.Seed, r.Seed))
	}

	var buf curveBuffer
	flush := func() {
		if len(buf.points) == 0 {
			return
		}
		pen := raster.Pen(clip, buf.style.Width)
		switch buf.kind {
		case KindBezier:
			curve.PlotBezier(pen, buf.points, r.Bezier, buf.style.Color)
		case KindBSpline:
			curve.PlotBSpline(pen, buf.points, buf.style.Color)
		}
		logging.Logger().Debug("replay: curve",
			"kind", buf.kind,
			"group", buf.group,
			"points", len(buf.points),
		)
		st.Flushed++
		buf = curveBuffer{}
	}

	for i, e := range elements {
		if len(buf.points) > 0 && (e.Kind() != buf.kind || groupOf(e) != buf.group) {
			flush()
		}

		last, ok := e.Segments().Last()
		if !ok {
			logging.Logger().Debug("replay: empty trace", "index", i, "kind", e.Kind())
			st.Skipped++
			continue
		}
		style := e.Stroke()
		pen := raster.Pen(clip, style.Width)

		switch e := e.(type) {
		case *Line:
			raster.PlotLine(pen, pixel(last.Start), pixel(last.End), style.Color)

		case *Ellipse:
			raster.PlotEllipse(pen, pixel(last.End), e.RA, e.RB, e.RotationDeg, style.Color)

		case *Fill:
			if !r.fill(elements, i, last, clip, w, h, style) {
				st.Skipped++
				continue
			}

		case *Bezier, *BSpline:
			raster.PlotLine(pen, pixel(last.Start), pixel(last.End), style.Color)
			if len(buf.points) == 0 {
				buf = curveBuffer{
					kind:   e.Kind(),
					group:  groupOf(e),
					style:  style,
					points: []vec.Vec2{last.Start},
				}
			}
			buf.points = append(buf.points, last.End)

		case *Koch:
			curve.Snowflake(pen, last.Start, last.End, e.Level, style.Color)

		case *Fern:
			curve.PlotFern(pen, last.Start, r.FernScale, rng, style.Color)

		case *Sphere:
			sr := &sphere.Renderer{
				Width:             w,
				Height:            h,
				Lighting:          r.Lighting,
				Phong:             r.Phong,
				MaxRadiusFraction: r.MaxRadiusFraction,
				Workers:           r.Workers,
			}
			sr.Render(clip, last.Start, sphere.RadiusFromTrace(last.Start, last.End), style.Color, e.Textured)

		default:
			logging.Logger().Warn("replay: skipping element of unknown kind",
				"index", i,
				"kind", e.Kind(),
			)
			st.Skipped++
			continue
		}
		st.Drawn++
	}
	flush()

	logging.Logger().Debug("replay: done",
		"elements", len(elements),
		"drawn", st.Drawn,
		"skipped", st.Skipped,
		"curves", st.Flushed,
	)
	return st
}

// fill handles the Fill element at index i. It reports whether anything
// was filled.
func (r *Replayer) fill(elements []Element, i int, last Segment, dst raster.Sink, w, h int, style Style) bool {
	if i == 0 {
		logging.Logger().Debug("replay: fill without a preceding element", "index", i)
		return false
	}
	mask := raster.NewMask(w, h)

	switch prev := elements[i-1].(type) {
	case *Ellipse:
		pl, ok := prev.Segments().Last()
		if !ok {
			return false
		}
		region := fill.Ellipse{
			Center:      pixel(pl.End),
			RA:          float64(prev.RA),
			RB:          float64(prev.RB),
			RotationDeg: prev.RotationDeg,
		}
		fill.FloodEllipse(dst, mask, pixel(last.Start), region, style.Color)
		return true

	case *Line:
		if i < 2 {
			break
		}
		before, ok := elements[i-2].(*Line)
		if !ok {
			break
		}
		pl, ok1 := prev.Segments().Last()
		bl, ok2 := before.Segments().Last()
		if !ok1 || !ok2 {
			break
		}
		fill.Triangle(dst, mask, pixel(bl.Start), pixel(pl.Start), pixel(pl.End), style.Color)
		return true
	}

	logging.Logger().Debug("replay: nothing to fill",
		"index", i,
		"previous", elements[i-1].Kind(),
	)
	return false
}

func pixel(p vec.Vec2) image.Point {
	return curve.Pixel(p)
}
