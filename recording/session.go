package recording

import "seehuhn.de/go/geom/vec"

// Session turns pointer events into log elements.
//
// A press starts a new element for the current tool, and every move or
// release while the pointer is down appends a segment from the press point
// to the pointer position. Two tools behave differently:
//
//   - Bezier and B-spline presses share one curve group until the tool
//     changes or EndCurve is called.
//   - The first Koch press after selecting the tool logs a level-0
//     snowflake; each further press raises the level of the most recent
//     Koch element instead of logging a new one.
type Session struct {
	log *Log

	Tool  Kind
	Style Style

	// Ellipse parameters for new Ellipse elements.
	EllipseRA, EllipseRB int
	EllipseRotationDeg   float64

	current   Element
	press     vec.Vec2
	group     GroupID
	kochArmed bool
}

// NewSession creates a session that appends to log. The initial tool is
// KindLine with a one pixel black stroke.
func NewSession(log *Log) *Session {
	s := &Session{log: log}
	s.Style.Color.A = 0xff
	s.Style.Width = 1
	return s
}

// SetTool selects the tool for subsequent presses and ends any open curve
// group or Koch sequence.
func (s *Session) SetTool(k Kind) {
	s.Tool = k
	s.EndCurve()
	s.kochArmed = false
}

// EndCurve closes the current Bezier or B-spline group; the next press
// starts a new curve.
func (s *Session) EndCurve() {
	s.group = 0
}

// Press starts a new element at p.
func (s *Session) Press(p vec.Vec2) {
	s.press = p
	s.current = nil

	if s.Tool == KindKoch && s.kochArmed {
		if e, ok := s.log.Last(); ok {
			if k, ok := e.(*Koch); ok {
				k.Level++
				return
			}
		}
	}

	common := Common{Style: s.Style}
	var e Element
	switch s.Tool {
	case KindLine:
		e = &Line{Common: common}
	case KindEllipse:
		e = &Ellipse{
			Common:      common,
			RA:          s.EllipseRA,
			RB:          s.EllipseRB,
			RotationDeg: s.EllipseRotationDeg,
		}
	case KindFill:
		e = &Fill{Common: common}
	case KindBezier:
		e = &Bezier{Common: common, Group: s.curveGroup()}
	case KindBSpline:
		e = &BSpline{Common: common, Group: s.curveGroup()}
	case KindKoch:
		e = &Koch{Common: common}
		s.kochArmed = true
	case KindFern:
		e = &Fern{Common: common}
	case KindSphere, KindSphereTextured:
		e = &Sphere{Common: common, Textured: s.Tool == KindSphereTextured}
	default:
		return
	}
	s.log.Append(e)
	s.current = e
}

// Move records a segment from the press point to p while the pointer is
// down.
func (s *Session) Move(p vec.Vec2) {
	if s.current == nil {
		return
	}
	s.current.Extend(Segment{Start: s.press, End: p})
}

// Release records the final segment and ends the drag.
func (s *Session) Release(p vec.Vec2) {
	s.Move(p)
	s.current = nil
}

func (s *Session) curveGroup() GroupID {
	if s.group == 0 {
		s.group = s.log.NewGroup()
	}
	return s.group
}
