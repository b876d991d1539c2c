package sphere

import "math"

// intensityFloor snaps a near-zero minimum intensity to exactly zero.
const intensityFloor = 1e-3

// Lighting holds the light and view directions of one render. The light
// vector points from the light toward the scene; the view vector points
// from the scene toward the viewer.
type Lighting struct {
	Light Vec3
	View  Vec3
}

// Normalized returns l with both directions scaled to unit length.
func (l Lighting) Normalized() Lighting {
	return Lighting{Light: l.Light.Normalize(), View: l.View.Normalize()}
}

// halfway returns (-L + V) / 2.
func (l Lighting) halfway() Vec3 {
	return l.Light.Mul(-1).Add(l.View).Mul(0.5)
}

// Phong holds the coefficients of the Phong illumination model.
type Phong struct {
	Ambient   float64 `toml:"ambient" yaml:"ambient"`     // Ia
	Source    float64 `toml:"source" yaml:"source"`       // I0
	Ka        float64 `toml:"ka" yaml:"ka"`               // ambient reflectance
	Kd        float64 `toml:"kd" yaml:"kd"`               // diffuse reflectance
	Ks        float64 `toml:"ks" yaml:"ks"`               // specular reflectance
	Shininess float64 `toml:"shininess" yaml:"shininess"` // specular exponent
}

// DefaultPhong returns Ia = I0 = 228, ka = 0.5, kd = 0.8, ks = 0.3, n = 2.
func DefaultPhong() Phong {
	return Phong{Ambient: 228, Source: 228, Ka: 0.5, Kd: 0.8, Ks: 0.3, Shininess: 2}
}

// Intensity evaluates Ia·ka + kd·I0·cos(n, -L) + ks·I0·cos(n, H)^s for the
// normal n, where H is the halfway vector (-L + V) / 2. The normal need not
// be unit length.
func (p Phong) Intensity(n Vec3, l Lighting) float64 {
	cosDiffuse := n.Cos(l.Light.Mul(-1))
	cosSpecular := l.halfway().Cos(n)
	return p.Ambient*p.Ka + p.Kd*p.Source*cosDiffuse + p.Ks*p.Source*p.specular(cosSpecular)
}

func (p Phong) specular(c float64) float64 {
	if c < 0 && p.Shininess != math.Trunc(p.Shininess) {
		return 0
	}
	return math.Pow(c, p.Shininess)
}

// Range is the span of vertex intensities over a whole mesh.
type Range struct {
	Min, Max float64
}

// IntensityRange evaluates the Phong intensity at every vertex of m and
// returns the extremes. A minimum below 1e-3 is reported as zero.
func IntensityRange(m *Mesh, p Phong, l Lighting) Range {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range m.Vertices {
		i := p.Intensity(v.Normal, l)
		r.Min = min(r.Min, i)
		r.Max = max(r.Max, i)
	}
	if len(m.Vertices) == 0 {
		return Range{}
	}
	if r.Min < intensityFloor {
		r.Min = 0
	}
	return r
}

// Normalize maps i into the range so that Min becomes 0 and Max becomes 1.
// A degenerate range maps everything to 1.
func (r Range) Normalize(i float64) float64 {
	if r.Max == r.Min {
		return 1
	}
	return (i - r.Min) / (r.Max - r.Min)
}
