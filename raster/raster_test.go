package raster

import (
	"image"
	"image/color"
	"slices"
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

// recorder collects plotted pixels in order.
type recorder struct {
	pts []image.Point
}

func (r *recorder) Plot(x, y int, _ color.RGBA) {
	r.pts = append(r.pts, image.Pt(x, y))
}

func TestPlotLineHorizontal(t *testing.T) {
	var rec recorder
	PlotLine(&rec, image.Pt(0, 0), image.Pt(5, 0), red)

	if len(rec.pts) != 6 {
		t.Fatalf("len = %d, want 6", len(rec.pts))
	}
	for i, p := range rec.pts {
		if p != image.Pt(i, 0) {
			t.Errorf("pts[%d] = %v, want %v", i, p, image.Pt(i, 0))
		}
	}
}

func TestPlotLineEndpointsAndCount(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
	}{
		{"point", image.Pt(3, 3), image.Pt(3, 3)},
		{"vertical down", image.Pt(2, 0), image.Pt(2, 7)},
		{"vertical up", image.Pt(2, 7), image.Pt(2, 0)},
		{"horizontal left", image.Pt(9, 1), image.Pt(-3, 1)},
		{"diagonal", image.Pt(0, 0), image.Pt(6, 6)},
		{"anti-diagonal", image.Pt(6, 0), image.Pt(0, 6)},
		{"shallow", image.Pt(0, 0), image.Pt(10, 3)},
		{"shallow reversed", image.Pt(10, 3), image.Pt(0, 0)},
		{"steep", image.Pt(1, 1), image.Pt(4, 12)},
		{"steep negative", image.Pt(4, 12), image.Pt(1, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := LinePixels(tt.p0, tt.p1)
			want := max(abs(tt.p1.X-tt.p0.X), abs(tt.p1.Y-tt.p0.Y)) + 1
			if len(pts) != want {
				t.Fatalf("len = %d, want %d", len(pts), want)
			}
			if pts[0] != tt.p0 {
				t.Errorf("first = %v, want %v", pts[0], tt.p0)
			}
			if pts[len(pts)-1] != tt.p1 {
				t.Errorf("last = %v, want %v", pts[len(pts)-1], tt.p1)
			}
			seen := make(map[image.Point]bool)
			for i, p := range pts {
				if seen[p] {
					t.Errorf("pixel %v emitted twice", p)
				}
				seen[p] = true
				if i == 0 {
					continue
				}
				d := p.Sub(pts[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 {
					t.Errorf("gap between %v and %v", pts[i-1], p)
				}
			}
		})
	}
}

func TestPlotLineTies(t *testing.T) {
	// A decision value of exactly zero steps the minor axis.
	tests := []struct {
		p0, p1 image.Point
		want   []image.Point
	}{
		{image.Pt(0, 0), image.Pt(2, 1), []image.Point{{0, 0}, {1, 1}, {2, 1}}},
		{image.Pt(0, 0), image.Pt(1, 2), []image.Point{{0, 0}, {1, 1}, {1, 2}}},
		{image.Pt(0, 0), image.Pt(4, 1), []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 1}}},
		{image.Pt(0, 0), image.Pt(-2, -1), []image.Point{{0, 0}, {-1, -1}, {-2, -1}}},
	}
	for _, tt := range tests {
		got := LinePixels(tt.p0, tt.p1)
		if !slices.Equal(got, tt.want) {
			t.Errorf("LinePixels(%v, %v) = %v, want %v", tt.p0, tt.p1, got, tt.want)
		}
	}
}

func TestMarkLineMatchesPlotLine(t *testing.T) {
	ends := []image.Point{
		image.Pt(0, 0), image.Pt(19, 3), image.Pt(4, 17), image.Pt(12, 12),
		image.Pt(19, 19), image.Pt(0, 19), image.Pt(7, 0),
	}
	for _, a := range ends {
		for _, b := range ends {
			m := NewMask(20, 20)
			MarkLine(m, a, b)

			plotted := NewMask(20, 20)
			PlotLine(SinkFunc(func(x, y int, _ color.RGBA) { plotted.Set(x, y) }), a, b, red)

			for y := 0; y < 20; y++ {
				for x := 0; x < 20; x++ {
					if m.At(x, y) != plotted.At(x, y) {
						t.Fatalf("%v→%v: pixel (%d,%d) mark=%v plot=%v", a, b, x, y, m.At(x, y), plotted.At(x, y))
					}
				}
			}
		}
	}
}

func TestEllipseSymmetry(t *testing.T) {
	center := image.Pt(50, 40)
	tests := []struct {
		rx, ry int
	}{
		{10, 10}, {20, 7}, {3, 15}, {1, 1}, {0, 6}, {9, 0},
	}

	for _, tt := range tests {
		pts := EllipsePixels(center, tt.rx, tt.ry, 0)
		set := make(map[image.Point]bool, len(pts))
		for _, p := range pts {
			set[p] = true
		}
		for p := range set {
			dx, dy := p.X-center.X, p.Y-center.Y
			for _, q := range []image.Point{
				image.Pt(center.X-dx, center.Y+dy),
				image.Pt(center.X+dx, center.Y-dy),
				image.Pt(center.X-dx, center.Y-dy),
			} {
				if !set[q] {
					t.Errorf("rx=%d ry=%d: %v plotted but mirror %v missing", tt.rx, tt.ry, p, q)
				}
			}
			if abs(dx) > tt.rx || abs(dy) > tt.ry {
				t.Errorf("rx=%d ry=%d: %v outside bounding box", tt.rx, tt.ry, p)
			}
		}
	}
}

func TestEllipseExtremes(t *testing.T) {
	center := image.Pt(0, 0)
	pts := EllipsePixels(center, 12, 5, 0)
	set := make(map[image.Point]bool)
	for _, p := range pts {
		set[p] = true
	}
	for _, want := range []image.Point{{12, 0}, {-12, 0}, {0, 5}, {0, -5}} {
		if !set[want] {
			t.Errorf("axis extreme %v not plotted", want)
		}
	}
}

func TestEllipseRotation90(t *testing.T) {
	center := image.Pt(30, 30)
	flat := EllipsePixels(center, 10, 4, 0)
	turned := EllipsePixels(center, 10, 4, 90)

	if len(flat) != len(turned) {
		t.Fatalf("len = %d, want %d", len(turned), len(flat))
	}
	set := make(map[image.Point]bool)
	for _, p := range turned {
		set[p] = true
	}
	// A quarter turn maps local (x, y) to (y, -x).
	for _, p := range flat {
		dx, dy := p.X-center.X, p.Y-center.Y
		q := image.Pt(center.X+dy, center.Y-dx)
		if !set[q] {
			t.Errorf("rotated image of %v (%v) missing", p, q)
		}
	}
}

func TestNewRotationSnaps(t *testing.T) {
	tests := []struct {
		deg      float64
		cos, sin float64
	}{
		{0, 1, 0},
		{90, 0, 1},
		{180, -1, 0},
		{270, 0, -1},
	}
	for _, tt := range tests {
		r := NewRotation(tt.deg)
		if r.Cos != tt.cos || r.Sin != tt.sin {
			t.Errorf("NewRotation(%v) = %+v, want {%v %v}", tt.deg, r, tt.cos, tt.sin)
		}
	}
}

func TestMask(t *testing.T) {
	m := NewMask(8, 4)
	m.Set(-1, 0)
	m.Set(8, 0)
	m.Set(0, 4)
	if m.Count() != 0 {
		t.Fatalf("out-of-range Set marked %d cells", m.Count())
	}

	m.Set(2, 1)
	m.Set(5, 1)
	m.Set(6, 1)
	if !m.At(5, 1) || m.At(4, 1) || m.At(100, 100) {
		t.Error("At returned wrong state")
	}

	left, right, hits := m.Span(1, -10, 10)
	if left != 2 || right != 6 || hits != 3 {
		t.Errorf("Span = (%d, %d, %d), want (2, 6, 3)", left, right, hits)
	}
	_, _, hits = m.Span(1, 3, 4)
	if hits != 0 {
		t.Errorf("Span over empty range hits = %d, want 0", hits)
	}
	_, _, hits = m.Span(9, 0, 7)
	if hits != 0 {
		t.Errorf("Span outside rows hits = %d, want 0", hits)
	}

	m.Reset()
	if m.Count() != 0 {
		t.Errorf("Count after Reset = %d, want 0", m.Count())
	}
}

func TestMaskResetRect(t *testing.T) {
	m := NewMask(6, 5)
	for y := range 5 {
		for x := range 6 {
			m.Set(x, y)
		}
	}

	m.ResetRect(image.Rect(-3, 1, 2, 3))
	if got := m.Count(); got != 30-4 {
		t.Errorf("Count after ResetRect = %d, want 26", got)
	}
	for _, p := range []image.Point{{0, 1}, {1, 1}, {0, 2}, {1, 2}} {
		if m.At(p.X, p.Y) {
			t.Errorf("cell %v still marked", p)
		}
	}
	if !m.At(2, 1) || !m.At(0, 3) || !m.At(0, 0) {
		t.Error("ResetRect cleared cells outside the rectangle")
	}

	m.ResetRect(image.Rect(10, 10, 20, 20))
	m.ResetRect(image.Rectangle{Min: image.Pt(4, 4), Max: image.Pt(2, 2)})
	if got := m.Count(); got != 26 {
		t.Errorf("Count after empty ResetRect = %d, want 26", got)
	}
}

func TestPen(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1}, {1, 1}, {2, 4}, {3, 9},
	}
	for _, tt := range tests {
		var rec recorder
		Pen(&rec, tt.width).Plot(10, 10, red)
		if len(rec.pts) != tt.want {
			t.Errorf("Pen(%d) plotted %d pixels, want %d", tt.width, len(rec.pts), tt.want)
		}
	}

	var rec recorder
	Pen(&rec, 3).Plot(10, 10, red)
	if rec.pts[0] != image.Pt(9, 9) || rec.pts[8] != image.Pt(11, 11) {
		t.Errorf("Pen(3) square = %v, want centred on (10,10)", rec.pts)
	}
}

func TestClip(t *testing.T) {
	var rec recorder
	s := Clip(&rec, 4, 4)
	PlotLine(s, image.Pt(-3, 1), image.Pt(6, 1), red)
	if len(rec.pts) != 4 {
		t.Errorf("clipped line plotted %d pixels, want 4", len(rec.pts))
	}
}
