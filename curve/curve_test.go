package curve

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"

	"github.com/zyfsa/graphic/raster"
)

const epsilon = 1e-9

var black = color.RGBA{A: 255}

type pointList []image.Point

func (l *pointList) Plot(x, y int, _ color.RGBA) { *l = append(*l, image.Pt(x, y)) }

func (l pointList) set() map[image.Point]bool {
	s := make(map[image.Point]bool, len(l))
	for _, p := range l {
		s[p] = true
	}
	return s
}

func TestSubdivideAdjacentPolygon(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}}

	var got []vec.Vec2
	calls := Subdivide(pts, BezierOptions{}, func(p vec.Vec2) { got = append(got, p) })

	if calls != 0 {
		t.Errorf("recursive calls = %d, want 0", calls)
	}
	if len(got) != len(pts) {
		t.Fatalf("emitted %d points, want %d", len(got), len(pts))
	}
	for i := range pts {
		if got[i] != pts[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], pts[i])
		}
	}
}

func TestSubdivideCubic(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 30, Y: 80}, {X: 70, Y: -40}, {X: 100, Y: 0}}

	var got pointList
	calls := PlotBezier(&got, pts, BezierOptions{}, black)
	if calls == 0 {
		t.Fatal("expected recursive calls for a long curve")
	}
	if calls%2 != 0 {
		t.Errorf("recursive calls = %d, want an even number", calls)
	}

	s := got.set()
	if !s[image.Pt(0, 0)] || !s[image.Pt(100, 0)] {
		t.Error("curve endpoints not plotted")
	}
	hull := Bounds(pts)
	for _, p := range got {
		if float64(p.X) < hull.LLx || float64(p.X) > hull.URx || float64(p.Y) < hull.LLy-1 || float64(p.Y) > hull.URy {
			t.Errorf("point %v outside control polygon bounds", p)
		}
	}
}

func TestSubdivideDepthLimit(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 50, Y: 200}, {X: 400, Y: 0}}

	n := 0
	calls := Subdivide(pts, BezierOptions{MaxDepth: 1}, func(vec.Vec2) { n++ })
	if calls != 2 {
		t.Errorf("recursive calls = %d, want 2", calls)
	}
	if n == 0 {
		t.Error("nothing emitted at the depth limit")
	}
}

func TestSubdivideEmpty(t *testing.T) {
	if calls := Subdivide(nil, BezierOptions{}, func(vec.Vec2) { t.Error("unexpected emit") }); calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestBSplineTooFewPoints(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}
	if n := BSpline(pts, func(vec.Vec2) {}); n != 0 {
		t.Errorf("samples = %d, want 0", n)
	}
}

func TestBSplineSampleCountHalvesWithChord(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 300, Y: 400}, {X: 700, Y: -200}, {X: 1000, Y: 0}, {X: 1200, Y: 100}}
	half := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		half[i] = p.Mul(0.5)
	}

	full := BSpline(pts, func(vec.Vec2) {})
	halved := BSpline(half, func(vec.Vec2) {})
	if halved == 0 {
		t.Fatal("no samples for the halved curve")
	}
	// The step is 0.1 / chord, so halving the chord halves the samples.
	ratio := float64(full) / float64(halved)
	if math.Abs(ratio-2) > 0.01 {
		t.Errorf("sample ratio = %v (%d/%d), want about 2", ratio, full, halved)
	}
}

func TestBSplineWindowStart(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 60, Y: 30}, {X: 120, Y: 0}, {X: 180, Y: 30}}

	var got []vec.Vec2
	BSpline(pts, func(p vec.Vec2) { got = append(got, p) })

	want := pts[0].Add(pts[1].Mul(4)).Add(pts[2]).Mul(1.0 / 6)
	if got[0].Sub(want).Length() > epsilon {
		t.Errorf("first sample = %v, want %v", got[0], want)
	}
	end := pts[1].Add(pts[2].Mul(4)).Add(pts[3]).Mul(1.0 / 6)
	if got[len(got)-1].Sub(end).Length() > 0.1 {
		t.Errorf("last sample = %v, want %v", got[len(got)-1], end)
	}
}

func TestBSplineZeroChord(t *testing.T) {
	closed := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}
	if math.IsInf(Step(closed), 1) {
		t.Error("closed polygon should fall back to its length")
	}
	if n := BSpline(closed, func(vec.Vec2) {}); n < 2 {
		t.Errorf("closed polygon samples = %d, want several", n)
	}

	same := []vec.Vec2{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}
	if n := BSpline(same, func(vec.Vec2) {}); n != 2 {
		t.Errorf("coincident points samples = %d, want one per window (2)", n)
	}
}

func TestKochLevelZeroIsLine(t *testing.T) {
	tests := []struct {
		a, b vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 40, Y: 13}},
		{vec.Vec2{X: 5, Y: 30}, vec.Vec2{X: 5, Y: 2}},
		{vec.Vec2{X: 17.8, Y: 3.2}, vec.Vec2{X: 2.1, Y: 9.9}},
	}
	for _, tt := range tests {
		for _, n := range []int{0, -4} {
			var got pointList
			Koch(&got, tt.a, tt.b, n, black)
			want := raster.LinePixels(Pixel(tt.a), Pixel(tt.b))
			if len(got) != len(want) {
				t.Fatalf("Koch(%v, %v, %d) plotted %d pixels, want %d", tt.a, tt.b, n, len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("pixel %d = %v, want %v", i, got[i], want[i])
				}
			}
		}
	}
}

func TestKochBump(t *testing.T) {
	var got pointList
	Koch(&got, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 90, Y: 0}, 1, black)

	s := got.set()
	for _, p := range []image.Point{{0, 0}, {30, 0}, {45, 25}, {60, 0}, {90, 0}} {
		if !s[p] {
			t.Errorf("expected pixel %v on level-1 curve", p)
		}
	}
	if s[image.Pt(45, 0)] {
		t.Error("middle third should be replaced by the bump")
	}
}

func TestClampKochLevel(t *testing.T) {
	tests := []struct{ in, want int }{
		{-1, 0}, {0, 0}, {3, 3}, {10, 10}, {11, 10}, {99, 10},
	}
	for _, tt := range tests {
		if got := ClampKochLevel(tt.in); got != tt.want {
			t.Errorf("ClampKochLevel(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSnowflakeVertex(t *testing.T) {
	got := SnowflakeVertex(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 2, Y: 0})
	want := vec.Vec2{X: 1, Y: -math.Sqrt(3)}
	if got.Sub(want).Length() > epsilon {
		t.Errorf("SnowflakeVertex = %v, want %v", got, want)
	}
}

func TestSnowflakeClosed(t *testing.T) {
	a, b := vec.Vec2{X: 100, Y: 200}, vec.Vec2{X: 300, Y: 200}
	var got pointList
	Snowflake(&got, a, b, 2, black)
	s := got.set()
	for _, p := range []vec.Vec2{a, b, SnowflakeVertex(a, b)} {
		if !s[Pixel(p)] {
			t.Errorf("corner %v not plotted", Pixel(p))
		}
	}
}

func TestFernBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pts := FernPoints(rng, FernIterations)
	if len(pts) != FernIterations {
		t.Fatalf("len = %d, want %d", len(pts), FernIterations)
	}

	b := Bounds(pts)
	const tol = 0.01
	if b.LLx < -2.182-tol || b.URx > 2.6558+tol {
		t.Errorf("x range [%v, %v] outside attractor", b.LLx, b.URx)
	}
	if b.LLy < -tol || b.URy > 9.9983+tol {
		t.Errorf("y range [%v, %v] outside attractor", b.LLy, b.URy)
	}
	if b.LLx > -2 || b.URx < 2.5 {
		t.Errorf("x range [%v, %v] does not span the leaflets", b.LLx, b.URx)
	}
	if b.LLy > 0.5 || b.URy < 9.5 {
		t.Errorf("y range [%v, %v] does not reach stem and tip", b.LLy, b.URy)
	}
}

func TestFernDeterministic(t *testing.T) {
	a := FernPoints(rand.New(rand.NewPCG(7, 7)), 500)
	b := FernPoints(rand.New(rand.NewPCG(7, 7)), 500)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPlotFern(t *testing.T) {
	var got pointList
	anchor := vec.Vec2{X: 200, Y: 50}
	PlotFern(&got, anchor, 0, rand.New(rand.NewPCG(3, 4)), black)
	if len(got) != FernIterations {
		t.Fatalf("plotted %d points, want %d", len(got), FernIterations)
	}
	for _, p := range got {
		if p.X < 200-66 || p.X > 200+80 || p.Y < 50 || p.Y > 50+300 {
			t.Errorf("point %v outside scaled fern bounds", p)
			break
		}
	}
}

func TestBounds(t *testing.T) {
	b := Bounds([]vec.Vec2{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 1, Y: 1}})
	if b.LLx != -2 || b.LLy != -1 || b.URx != 3 || b.URy != 4 {
		t.Errorf("Bounds = %+v", b)
	}
	if got := Bounds(nil); got.LLx != 0 || got.URx != 0 {
		t.Errorf("Bounds(nil) = %+v, want zero", got)
	}
}
