package sphere

import "math"

// DefaultStep is the angular spacing of the latitude/longitude grid.
const DefaultStep = math.Pi / 32

// Vertex is a mesh vertex with its outward unit normal.
type Vertex struct {
	Position Vec3
	Normal   Vec3
}

// Triangle is one face of the tessellated sphere.
type Triangle [3]Vertex

// Mesh is a latitude/longitude tessellation of a sphere centred at the
// origin. Vertices are stored row-major, Rows latitude rows of Cols
// longitude columns.
type Mesh struct {
	Radius   float64
	Rows     int
	Cols     int
	Vertices []Vertex
}

// BuildMesh tessellates a sphere of the given radius. Latitude runs over
// u = -π/2 + i·step and longitude over v = j·step, with round(2π/step)
// values each; the default step of π/32 gives a 64×64 grid. A step of zero
// or less uses DefaultStep.
func BuildMesh(radius, step float64) *Mesh {
	if step <= 0 {
		step = DefaultStep
	}
	n := max(int(math.Round(2*math.Pi/step)), 1)
	m := &Mesh{
		Radius:   radius,
		Rows:     n,
		Cols:     n,
		Vertices: make([]Vertex, 0, n*n),
	}
	for i := range n {
		u := -math.Pi/2 + float64(i)*step
		sinU, cosU := math.Sincos(u)
		for j := range n {
			sinV, cosV := math.Sincos(float64(j) * step)
			p := Vec3{radius * cosU * cosV, radius * cosU * sinV, radius * sinU}
			var normal Vec3
			if radius != 0 {
				normal = p.Mul(1 / radius)
			}
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: normal})
		}
	}
	return m
}

// At returns the vertex at latitude row i and longitude column j, both
// taken modulo the grid size.
func (m *Mesh) At(i, j int) Vertex {
	i = ((i % m.Rows) + m.Rows) % m.Rows
	j = ((j % m.Cols) + m.Cols) % m.Cols
	return m.Vertices[i*m.Cols+j]
}

// Triangles splits every grid cell into two triangles. Indices wrap around
// in both directions, so the result has 2·Rows·Cols faces.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, 2*m.Rows*m.Cols)
	for i := range m.Rows {
		for j := range m.Cols {
			a := m.At(i, j)
			b := m.At(i+1, j+1)
			tris = append(tris,
				Triangle{a, b, m.At(i+1, j)},
				Triangle{a, m.At(i, j+1), b},
			)
		}
	}
	return tris
}
