package curve

import (
	"image/color"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"

	"github.com/zyfsa/graphic/raster"
)

const (
	// FernIterations is the number of points PlotFern draws.
	FernIterations = 15550

	// DefaultFernScale maps one attractor unit to this many pixels.
	DefaultFernScale = 30
)

// fernMap is one affine map of the Barnsley fern together with the
// cumulative probability up to which it is chosen.
type fernMap struct {
	upTo       float64
	a, b, c, d float64
	e, f       float64
}

var fernMaps = [...]fernMap{
	{upTo: 0.01, a: 0, b: 0, c: 0, d: 0.16},                    // stem
	{upTo: 0.08, a: -0.15, b: 0.28, c: 0.26, d: 0.24, f: 0.44}, // left leaflet
	{upTo: 0.15, a: 0.2, b: -0.26, c: 0.23, d: 0.22, f: 1.6},   // right leaflet
	{upTo: 1.0, a: 0.85, b: 0.04, c: -0.04, d: 0.85, f: 1.6},   // successive leaflets
}

func (m fernMap) apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.a*p.X + m.b*p.Y + m.e,
		Y: m.c*p.X + m.d*p.Y + m.f,
	}
}

// FernPoints runs n iterations of the Barnsley fern starting at the origin
// and returns the state after every iteration. Maps are selected with rng,
// so a fixed seed reproduces the same points.
func FernPoints(rng *rand.Rand, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, max(n, 0))
	var p vec.Vec2
	for range n {
		r := rng.Float64()
		for _, m := range fernMaps {
			if r <= m.upTo {
				p = m.apply(p)
				break
			}
		}
		pts = append(pts, p)
	}
	return pts
}

// PlotFern plots FernIterations points of the fern at anchor + state·scale.
// A scale of zero or less uses DefaultFernScale.
func PlotFern(dst raster.Sink, anchor vec.Vec2, scale float64, rng *rand.Rand, c color.RGBA) {
	if scale <= 0 {
		scale = DefaultFernScale
	}
	for _, p := range FernPoints(rng, FernIterations) {
		q := Pixel(anchor.Add(p.Mul(scale)))
		dst.Plot(q.X, q.Y, c)
	}
}
