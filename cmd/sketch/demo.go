package main

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"github.com/zyfsa/graphic"
	"github.com/zyfsa/graphic/recording"
)

// layout maps positions on an 800x600 reference sheet onto the canvas.
type layout struct {
	sx, sy float64
}

func (l layout) at(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x * l.sx, Y: y * l.sy}
}

// drawDemo records one element of every kind through the canvas session,
// the same way pointer input would.
func drawDemo(cv *graphic.Canvas) {
	l := layout{sx: float64(cv.Width()) / 800, sy: float64(cv.Height()) / 600}
	s := cv.Session()
	pen := s.Style

	drawLinesDemo(s, l)
	drawEllipseDemo(s, l)
	drawCurvesDemo(s, l)
	drawKochDemo(s, l)
	drawFernDemo(s, l)
	drawSphereDemo(s, l)

	s.Style = pen
	s.SetTool(recording.KindLine)
}

func drag(s *recording.Session, from, to vec.Vec2) {
	s.Press(from)
	s.Move(from.Add(to).Mul(0.5))
	s.Release(to)
}

func click(s *recording.Session, at vec.Vec2) {
	s.Press(at)
	s.Release(at)
}

func drawLinesDemo(s *recording.Session, l layout) {
	s.SetTool(recording.KindLine)
	s.Style.Width = 3
	drag(s, l.at(40, 40), l.at(220, 90))
	s.Style.Width = 1

	// Two lines followed by a fill close a triangle.
	drag(s, l.at(40, 300), l.at(180, 300))
	drag(s, l.at(180, 300), l.at(110, 190))
	s.SetTool(recording.KindFill)
	s.Style.Color = color.RGBA{R: 0x3a, G: 0x7b, B: 0xd5, A: 0xff}
	click(s, l.at(110, 260))
	s.Style.Color = graphic.Black
}

func drawEllipseDemo(s *recording.Session, l layout) {
	s.SetTool(recording.KindEllipse)
	click(s, l.at(320, 110))

	// A fill right after an ellipse floods it from the press point.
	s.SetTool(recording.KindFill)
	s.Style.Color = graphic.Hex("#f5b700")
	click(s, l.at(320, 110))
	s.Style.Color = graphic.Black

	s.SetTool(recording.KindEllipse)
	s.EllipseRotationDeg = 30
	click(s, l.at(320, 220))
	s.EllipseRotationDeg = 0
}

func drawCurvesDemo(s *recording.Session, l layout) {
	s.SetTool(recording.KindBezier)
	s.Style.Color = graphic.Hex("#c0392b")
	drag(s, l.at(430, 80), l.at(480, 20))
	drag(s, l.at(480, 20), l.at(540, 140))
	drag(s, l.at(540, 140), l.at(600, 60))
	s.EndCurve()

	s.SetTool(recording.KindBSpline)
	s.Style.Color = graphic.Hex("#27ae60")
	drag(s, l.at(430, 230), l.at(480, 170))
	drag(s, l.at(480, 170), l.at(540, 280))
	drag(s, l.at(540, 280), l.at(600, 190))
	drag(s, l.at(600, 190), l.at(650, 250))
	s.EndCurve()
	s.Style.Color = graphic.Black
}

func drawKochDemo(s *recording.Session, l layout) {
	s.SetTool(recording.KindKoch)
	s.Style.Color = graphic.Hex("#8e44ad")
	drag(s, l.at(60, 430), l.at(200, 430))
	// Each further press refines the same snowflake.
	for range 3 {
		click(s, l.at(60, 430))
	}
	s.Style.Color = graphic.Black
}

func drawFernDemo(s *recording.Session, l layout) {
	s.SetTool(recording.KindFern)
	s.Style.Color = graphic.Hex("#1e8449")
	click(s, l.at(700, 290))
	s.Style.Color = graphic.Black
}

func drawSphereDemo(s *recording.Session, l layout) {
	s.SetTool(recording.KindSphere)
	s.Style.Color = graphic.Hex("#d35400")
	drag(s, l.at(330, 470), l.at(400, 470))

	s.SetTool(recording.KindSphereTextured)
	s.Style.Color = graphic.Hex("#2980b9")
	drag(s, l.at(520, 470), l.at(590, 470))
	s.Style.Color = graphic.Black
}
