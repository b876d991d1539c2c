package sphere

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/zyfsa/graphic/internal/logging"
	"github.com/zyfsa/graphic/internal/parallel"
	"github.com/zyfsa/graphic/raster"
)

// DefaultMaxRadiusFraction caps the sphere radius at a quarter of the
// viewport height.
const DefaultMaxRadiusFraction = 0.25

// Fragment is one shaded pixel of a sphere.
type Fragment struct {
	X, Y   int
	Normal Vec3 // interpolated, not necessarily unit length
	Color  color.RGBA
}

// Renderer shades spheres into a Width×Height viewport.
//
// The zero values of Phong, Step and MaxRadiusFraction select
// DefaultPhong, DefaultStep and DefaultMaxRadiusFraction. Lighting has no
// default: both vectors must be non-zero.
type Renderer struct {
	Width, Height int

	Lighting          Lighting
	Phong             Phong
	Step              float64
	MaxRadiusFraction float64

	// Workers > 1 shades triangle chunks concurrently. The fragments
	// delivered to the caller are identical to a sequential render.
	Workers int
}

// RadiusFromTrace returns the sphere radius implied by a drag from a to b.
func RadiusFromTrace(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// ClampRadius limits radius to the renderer's share of the viewport height.
func (r *Renderer) ClampRadius(radius float64) float64 {
	frac := r.MaxRadiusFraction
	if frac <= 0 {
		frac = DefaultMaxRadiusFraction
	}
	return min(radius, frac*float64(r.Height))
}

// Render shades a sphere of the given radius centred on anchor and plots
// every visible fragment. It returns the number of fragments plotted.
func (r *Renderer) Render(dst raster.Sink, anchor vec.Vec2, radius float64, base color.RGBA, textured bool) int {
	return r.Fragments(anchor, radius, base, textured, func(f Fragment) {
		dst.Plot(f.X, f.Y, f.Color)
	})
}

// Fragments shades a sphere and passes each visible fragment to emit, in
// triangle order. It returns the number of fragments emitted.
//
// The mesh intensity range is computed over every vertex before any
// triangle is shaded. Each triangle is then rasterised on its own mask:
// its three projected edges are marked, every row between the outermost
// marked pixels is filled, and normals are blended from the bounding
// edges by inverse distance and stepped linearly across the span. Pixels
// whose normal faces away from the viewer are discarded.
func (r *Renderer) Fragments(anchor vec.Vec2, radius float64, base color.RGBA, textured bool, emit func(Fragment)) int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	radius = r.ClampRadius(radius)

	phong := r.Phong
	if phong == (Phong{}) {
		phong = DefaultPhong()
	}
	light := r.Lighting.Normalized()
	mesh := BuildMesh(radius, r.Step)
	sh := &shader{
		phong:    phong,
		light:    light,
		rng:      IntensityRange(mesh, phong, light),
		basis:    NewBasis(light.View),
		anchor:   anchor,
		base:     base,
		textured: textured,
	}
	tris := mesh.Triangles()

	logging.Logger().Debug("sphere: shading",
		"radius", radius,
		"triangles", len(tris),
		"imin", sh.rng.Min,
		"imax", sh.rng.Max,
		"workers", r.Workers,
	)

	if r.Workers <= 1 {
		m := raster.NewMask(r.Width, r.Height)
		n := 0
		for _, t := range tris {
			n += sh.triangle(m, t, emit)
		}
		return n
	}
	return r.fragmentsParallel(sh, tris, emit)
}

func (r *Renderer) fragmentsParallel(sh *shader, tris []Triangle, emit func(Fragment)) int {
	pool := parallel.NewPool(r.Workers)
	defer pool.Close()

	chunks := parallel.Chunks(len(tris), r.Workers*4)
	results := make([][]Fragment, len(chunks))
	tasks := make([]func(), len(chunks))
	for i, c := range chunks {
		tasks[i] = func() {
			m := raster.NewMask(r.Width, r.Height)
			var out []Fragment
			for _, t := range tris[c.Start:c.End] {
				sh.triangle(m, t, func(f Fragment) {
					out = append(out, f)
				})
			}
			results[i] = out
		}
	}
	pool.Run(tasks)

	n := 0
	for _, frags := range results {
		for _, f := range frags {
			emit(f)
		}
		n += len(frags)
	}
	return n
}

// shader holds everything needed to shade triangles of one sphere. It is
// read-only after construction and shared between workers.
type shader struct {
	phong    Phong
	light    Lighting
	rng      Range
	basis    Basis
	anchor   vec.Vec2
	base     color.RGBA
	textured bool
}

// projected is a vertex after projection onto the screen.
type projected struct {
	P vec.Vec2
	N Vec3
}

func pixel(p vec.Vec2) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// triangle shades one face into emit and returns the number of fragments.
func (s *shader) triangle(m *raster.Mask, t Triangle, emit func(Fragment)) int {
	var pv [3]projected
	for i, v := range t {
		pv[i] = projected{P: s.basis.Project(v.Position, s.anchor), N: v.Normal}
	}
	top, mid, bottom := sortByY(pv)

	p0, p1, p2 := pixel(pv[0].P), pixel(pv[1].P), pixel(pv[2].P)
	xmin, xmax := min(p0.X, p1.X, p2.X), max(p0.X, p1.X, p2.X)
	ymin, ymax := min(p0.Y, p1.Y, p2.Y), max(p0.Y, p1.Y, p2.Y)

	// Edges and spans stay inside the bounding box, so only it is cleared.
	m.ResetRect(image.Rect(xmin, ymin, xmax+1, ymax+1))
	raster.MarkLine(m, p0, p1)
	raster.MarkLine(m, p1, p2)
	raster.MarkLine(m, p2, p0)

	// The short edges lie on the left when the middle vertex is left of
	// the long edge top→bottom.
	shortLeft := mid.P.X < edgeX(top.P, bottom.P, mid.P.Y)

	n := 0
	for y := ymin; y <= ymax; y++ {
		xa, xb, hits := m.Span(y, xmin, xmax)
		if hits < 2 {
			continue
		}

		var na, dn Vec3
		if xa == xb {
			na = top.N
		} else {
			short := [2]projected{top, mid}
			if float64(y) >= mid.P.Y {
				short = [2]projected{mid, bottom}
			}
			long := [2]projected{top, bottom}
			left, right := long, short
			if shortLeft {
				left, right = short, long
			}
			na = blend(left, vec.Vec2{X: float64(xa), Y: float64(y)}).Normalize()
			nb := blend(right, vec.Vec2{X: float64(xb), Y: float64(y)}).Normalize()
			dn = nb.Sub(na).Mul(1 / float64(xb-xa))
		}

		for x := xa; x <= xb; x++ {
			normal := na.Add(dn.Mul(float64(x - xa)))
			c, ok := s.shade(normal)
			if !ok {
				continue
			}
			emit(Fragment{X: x, Y: y, Normal: normal, Color: c})
			n++
		}
	}
	return n
}

// shade returns the colour for a pixel with the given normal, or false if
// the normal faces away from the viewer.
func (s *shader) shade(n Vec3) (color.RGBA, bool) {
	if n.Dot(s.light.View) < 0 {
		return color.RGBA{}, false
	}
	k := s.rng.Normalize(s.phong.Intensity(n, s.light))
	base := s.base
	if s.textured && checker(n) {
		base = color.RGBA{A: base.A}
	}
	return color.RGBA{
		R: scale(base.R, k),
		G: scale(base.G, k),
		B: scale(base.B, k),
		A: base.A,
	}, true
}

// checker reports whether n falls on a dark square of the sphere texture.
// The square index is 8·atan(x/y) + 8·atan(√(x²+y²)/z) truncated toward
// zero; odd squares are dark.
func checker(n Vec3) bool {
	u := atanRatio(n.X, n.Y)
	v := atanRatio(math.Hypot(n.X, n.Y), n.Z)
	t := int(8*u + 8*v)
	return t&1 == 1
}

// atanRatio returns atan(a/b), with 0/0 treated as 0.
func atanRatio(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return math.Atan(a / b)
}

func scale(c uint8, k float64) uint8 {
	v := float64(c) * k
	switch {
	case v > 255:
		return 255
	case v < 0 || math.IsNaN(v):
		return 0
	}
	return uint8(v)
}

// blend interpolates the normal at q on edge e by inverse distance: each
// endpoint's normal is weighted by the distance from q to the other
// endpoint. A zero-length edge yields its first endpoint's normal.
func blend(e [2]projected, q vec.Vec2) Vec3 {
	l := e[1].P.Sub(e[0].P).Length()
	if l == 0 {
		return e[0].N
	}
	d0 := q.Sub(e[0].P).Length()
	d1 := q.Sub(e[1].P).Length()
	return e[1].N.Mul(d0).Add(e[0].N.Mul(d1)).Mul(1 / l)
}

// edgeX returns the x coordinate of segment a→b at height y.
func edgeX(a, b vec.Vec2, y float64) float64 {
	if a.Y == b.Y {
		return a.X
	}
	return a.X + (y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
}

// sortByY orders the vertices by ascending screen y. Ties keep input order.
func sortByY(pv [3]projected) (top, mid, bottom projected) {
	if pv[1].P.Y < pv[0].P.Y {
		pv[0], pv[1] = pv[1], pv[0]
	}
	if pv[2].P.Y < pv[1].P.Y {
		pv[1], pv[2] = pv[2], pv[1]
	}
	if pv[1].P.Y < pv[0].P.Y {
		pv[0], pv[1] = pv[1], pv[0]
	}
	return pv[0], pv[1], pv[2]
}
