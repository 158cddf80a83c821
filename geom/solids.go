package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SolidKind identifies one of the five convex regular polyhedra.
type SolidKind uint8

const (
	KindTetrahedron SolidKind = iota
	KindCube
	KindOctahedron
	KindDodecahedron
	KindIcosahedron
)

// String returns the solid name.
func (k SolidKind) String() string {
	switch k {
	case KindTetrahedron:
		return "tetrahedron"
	case KindCube:
		return "cube"
	case KindOctahedron:
		return "octahedron"
	case KindDodecahedron:
		return "dodecahedron"
	case KindIcosahedron:
		return "icosahedron"
	}
	return "unknown"
}

// Build constructs the solid of the given kind. The awareness level in
// [0,1] scales all vertex coordinates by 1 + awareness*0.1.
func Build(kind SolidKind, radius, awareness float64) *Geometry {
	switch kind {
	case KindTetrahedron:
		return Tetrahedron(radius, awareness)
	case KindCube:
		return Cube(radius, awareness)
	case KindOctahedron:
		return Octahedron(radius, awareness)
	case KindDodecahedron:
		return Dodecahedron(radius, awareness)
	case KindIcosahedron:
		return Icosahedron(radius, awareness)
	}
	return Tetrahedron(radius, awareness)
}

// awarenessScale is the vertex coordinate multiplier for an awareness level.
func awarenessScale(awareness float64) float64 {
	return 1 + awareness*0.1
}

func assemble(verts []r3.Vec, faces [][]int, radius float64) *Geometry {
	return &Geometry{
		Vertices: verts,
		Faces:    faces,
		Edges:    EdgesFromFaces(faces),
		Radius:   radius,
	}
}

// Tetrahedron builds a regular tetrahedron with circumradius radius.
// Vertices sit at alternating corners of a cube: (±1,±1,±1) with an even
// number of minus signs, scaled by radius/√3.
func Tetrahedron(radius, awareness float64) *Geometry {
	s := radius / math.Sqrt(3) * awarenessScale(awareness)
	verts := []r3.Vec{
		{X: s, Y: s, Z: s},
		{X: s, Y: -s, Z: -s},
		{X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s},
	}
	faces := [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	return assemble(verts, faces, radius)
}

// Cube builds a cube with circumradius radius: corners at ±radius/√3 on
// each axis.
func Cube(radius, awareness float64) *Geometry {
	s := radius / math.Sqrt(3) * awarenessScale(awareness)
	verts := []r3.Vec{
		{X: -s, Y: -s, Z: -s},
		{X: s, Y: -s, Z: -s},
		{X: s, Y: s, Z: -s},
		{X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s},
		{X: s, Y: -s, Z: s},
		{X: s, Y: s, Z: s},
		{X: -s, Y: s, Z: s},
	}
	faces := [][]int{
		{0, 1, 2, 3},
		{4, 7, 6, 5},
		{0, 4, 5, 1},
		{2, 6, 7, 3},
		{0, 3, 7, 4},
		{1, 5, 6, 2},
	}
	return assemble(verts, faces, radius)
}

// Octahedron builds a regular octahedron with vertices on the axes at
// ±radius. Its dual cube is attached for display only; the cube itself
// carries no dual, keeping the reference one-way.
func Octahedron(radius, awareness float64) *Geometry {
	s := radius * awarenessScale(awareness)
	verts := []r3.Vec{
		{X: s}, {X: -s},
		{Y: s}, {Y: -s},
		{Z: s}, {Z: -s},
	}
	faces := [][]int{
		{0, 2, 4},
		{2, 1, 4},
		{1, 3, 4},
		{3, 0, 4},
		{2, 0, 5},
		{1, 2, 5},
		{3, 1, 5},
		{0, 3, 5},
	}
	g := assemble(verts, faces, radius)
	g.Dual = Cube(radius, awareness)
	return g
}

// Dodecahedron builds a regular dodecahedron with circumradius radius.
// Vertices combine the cube corners (±1,±1,±1) with golden-ratio
// rectangles (0,±1/φ,±φ), (±1/φ,±φ,0), (±φ,0,±1/φ), scaled by radius/√3.
// No dual is attached: populating it would recurse through the
// icosahedron's own dual.
func Dodecahedron(radius, awareness float64) *Geometry {
	s := radius / math.Sqrt(3) * awarenessScale(awareness)
	a := s
	b := s * InvPhi
	c := s * Phi
	verts := []r3.Vec{
		{X: a, Y: a, Z: a},    // 0
		{X: a, Y: a, Z: -a},   // 1
		{X: a, Y: -a, Z: a},   // 2
		{X: a, Y: -a, Z: -a},  // 3
		{X: -a, Y: a, Z: a},   // 4
		{X: -a, Y: a, Z: -a},  // 5
		{X: -a, Y: -a, Z: a},  // 6
		{X: -a, Y: -a, Z: -a}, // 7
		{Y: b, Z: c},          // 8
		{Y: b, Z: -c},         // 9
		{Y: -b, Z: c},         // 10
		{Y: -b, Z: -c},        // 11
		{X: b, Y: c},          // 12
		{X: b, Y: -c},         // 13
		{X: -b, Y: c},         // 14
		{X: -b, Y: -c},        // 15
		{X: c, Z: b},          // 16
		{X: c, Z: -b},         // 17
		{X: -c, Z: b},         // 18
		{X: -c, Z: -b},        // 19
	}
	faces := [][]int{
		{0, 8, 10, 2, 16},
		{0, 16, 17, 1, 12},
		{0, 12, 14, 4, 8},
		{2, 10, 6, 15, 13},
		{2, 13, 3, 17, 16},
		{1, 17, 3, 11, 9},
		{1, 9, 5, 14, 12},
		{4, 14, 5, 19, 18},
		{4, 18, 6, 10, 8},
		{6, 18, 19, 7, 15},
		{3, 13, 15, 7, 11},
		{5, 9, 11, 7, 19},
	}
	return assemble(verts, faces, radius)
}

// Icosahedron builds a regular icosahedron with circumradius radius.
// Vertices are the corners of three orthogonal golden rectangles
// (0,±1,±φ) cyclic, scaled by radius/√(1+φ²). Like the dodecahedron it
// carries no dual.
func Icosahedron(radius, awareness float64) *Geometry {
	t := Phi
	s := radius / math.Sqrt(1+t*t) * awarenessScale(awareness)
	verts := []r3.Vec{
		{X: -s, Y: t * s}, {X: s, Y: t * s}, {X: -s, Y: -t * s}, {X: s, Y: -t * s},
		{Y: -s, Z: t * s}, {Y: s, Z: t * s}, {Y: -s, Z: -t * s}, {Y: s, Z: -t * s},
		{X: t * s, Y: 0, Z: -s}, {X: t * s, Y: 0, Z: s}, {X: -t * s, Y: 0, Z: -s}, {X: -t * s, Y: 0, Z: s},
	}
	faces := [][]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return assemble(verts, faces, radius)
}
