// Package recording stores a sketch as an ordered log of tagged elements
// and replays it onto a pixel surface.
//
// Every user action becomes one Element: the drawing tool (its Kind), the
// stroke Style in effect, and the drag Trace captured while the pointer was
// down. The Log is the single source of truth for a drawing; redraws always
// replay the whole log from the start.
//
// # Example
//
//	log := recording.NewLog()
//	s := recording.NewSession(log)
//	s.SetTool(recording.KindEllipse)
//	s.Press(vec.Vec2{X: 100, Y: 100})
//	s.Release(vec.Vec2{X: 160, Y: 120})
//
//	var r recording.Replayer
//	r.Replay(log.Elements(), pixmap)
package recording

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Kind identifies the drawing tool that produced an element.
type Kind uint8

const (
	KindLine           Kind = iota // straight line
	KindEllipse                    // rotated ellipse outline
	KindFill                       // fill of the preceding ellipse or triangle
	KindBezier                     // one control point of a Bezier curve
	KindBSpline                    // one control point of a B-spline
	KindKoch                       // Koch snowflake
	KindFern                       // Barnsley fern
	KindSphere                     // Phong-shaded sphere
	KindSphereTextured             // checkerboard-textured sphere
)

var kindNames = [...]string{
	KindLine:           "Line",
	KindEllipse:        "Ellipse",
	KindFill:           "Fill",
	KindBezier:         "Bezier",
	KindBSpline:        "BSpline",
	KindKoch:           "Koch",
	KindFern:           "Fern",
	KindSphere:         "Sphere",
	KindSphereTextured: "SphereTextured",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Segment is one sample of a drag: from the press point to the pointer
// position at the time of the sample.
type Segment struct {
	Start, End vec.Vec2
}

// Trace is the chronological list of segments captured during one drag.
type Trace []Segment

// First returns the earliest segment.
func (t Trace) First() (Segment, bool) {
	if len(t) == 0 {
		return Segment{}, false
	}
	return t[0], true
}

// Last returns the most recent segment.
func (t Trace) Last() (Segment, bool) {
	if len(t) == 0 {
		return Segment{}, false
	}
	return t[len(t)-1], true
}

// Style is the stroke an element is drawn with.
type Style struct {
	Color color.RGBA
	Width int
}

// GroupID ties consecutive Bezier or B-spline elements into one curve.
// The zero value means "not grouped".
type GroupID uint64

// Element is the interface implemented by all element types.
type Element interface {
	// Kind returns the tool that produced the element.
	Kind() Kind
	// Stroke returns the element's style.
	Stroke() Style
	// Segments returns the captured trace.
	Segments() Trace
	// Extend appends a segment to the trace.
	Extend(Segment)
}

// Common carries the style and trace shared by every element.
type Common struct {
	Style Style
	Trace Trace
}

// Stroke implements Element.
func (c *Common) Stroke() Style { return c.Style }

// Segments implements Element.
func (c *Common) Segments() Trace { return c.Trace }

// Extend implements Element.
func (c *Common) Extend(s Segment) { c.Trace = append(c.Trace, s) }

// Line is a straight line from the press point to the release point.
type Line struct {
	Common
}

// Kind implements Element.
func (*Line) Kind() Kind { return KindLine }

// Ellipse is an ellipse outline centred at the end of the last segment.
type Ellipse struct {
	Common
	// RA and RB are the semi-axes along the local x and y axes.
	RA, RB int
	// RotationDeg rotates the ellipse about its centre.
	RotationDeg float64
}

// Kind implements Element.
func (*Ellipse) Kind() Kind { return KindEllipse }

// Fill fills the region outlined by the element logged just before it.
type Fill struct {
	Common
}

// Kind implements Element.
func (*Fill) Kind() Kind { return KindFill }

// Bezier contributes control points to the Bezier curve of its group.
type Bezier struct {
	Common
	Group GroupID
}

// Kind implements Element.
func (*Bezier) Kind() Kind { return KindBezier }

// BSpline contributes control points to the B-spline of its group.
type BSpline struct {
	Common
	Group GroupID
}

// Kind implements Element.
func (*BSpline) Kind() Kind { return KindBSpline }

// Koch is a Koch snowflake built on the last segment.
type Koch struct {
	Common
	Level int
}

// Kind implements Element.
func (*Koch) Kind() Kind { return KindKoch }

// Fern is a Barnsley fern anchored at the press point.
type Fern struct {
	Common
}

// Kind implements Element.
func (*Fern) Kind() Kind { return KindFern }

// Sphere is a shaded sphere centred at the press point whose radius is the
// drag length.
type Sphere struct {
	Common
	Textured bool
}

// Kind implements Element.
func (s *Sphere) Kind() Kind {
	if s.Textured {
		return KindSphereTextured
	}
	return KindSphere
}

// groupOf returns the curve group of Bezier and B-spline elements.
func groupOf(e Element) GroupID {
	switch e := e.(type) {
	case *Bezier:
		return e.Group
	case *BSpline:
		return e.Group
	}
	return 0
}
