package sphere

import "seehuhn.de/go/geom/vec"

// parallelEpsilon is the length below which the orthogonalized up vector
// is treated as degenerate.
const parallelEpsilon = 1e-9

// Basis is an orthonormal screen basis perpendicular to a view direction.
type Basis struct {
	U Vec3 // screen x axis
	V Vec3 // screen y axis
}

// NewBasis builds the screen basis for view. The world up vector (0, 1, 0)
// is Gram-Schmidt orthogonalized against view to give U; when up is
// parallel to view, (1, 0, 0) is used instead. V is U × view.
//
// For the default view (0, 0, 1), U is (0, 1, 0) and V is (1, 0, 0).
func NewBasis(view Vec3) Basis {
	n := view.Normalize()
	u := orthogonalize(Vec3{0, 1, 0}, n)
	if u.Length() < parallelEpsilon {
		u = orthogonalize(Vec3{1, 0, 0}, n)
	}
	u = u.Normalize()
	return Basis{U: u, V: u.Cross(n).Normalize()}
}

// orthogonalize removes the component of v along the unit vector n.
func orthogonalize(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// Project maps p onto the screen plane and offsets it by anchor.
func (b Basis) Project(p Vec3, anchor vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: b.U.Dot(p) + anchor.X, Y: b.V.Dot(p) + anchor.Y}
}
