// Package geom provides the polyhedral geometry value type and the
// closed-form platonic solid constructors that every generation pass
// starts from.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Phi is the golden ratio, used for solid construction, phase offsets,
// and harmonic spacing throughout the engine.
var Phi = (1 + math.Sqrt(5)) / 2

// InvPhi is 1/Phi.
var InvPhi = 1 / Phi

// Geometry is a polyhedral mesh: an ordered vertex list, faces as closed
// index polygons, and edges as index pairs. Insertion order is the index
// space; operations append vertices but never remove or reorder them.
type Geometry struct {
	Vertices []r3.Vec
	Faces    [][]int
	Edges    [][2]int

	// Center is conventionally the origin.
	Center r3.Vec

	// Radius is the nominal circumscribing radius after modulation.
	// Descriptive only; never re-derived from vertices.
	Radius float64

	// Dual is an optional display-only companion solid. One-way reference,
	// never populated recursively through its own dual.
	Dual *Geometry
}

// Validate checks structural invariants: every face and edge index is in
// range and the radius is positive. Malformed geometry is a programmer
// error; callers should treat a non-nil return as fatal.
func (g *Geometry) Validate() error {
	n := len(g.Vertices)
	if g.Radius <= 0 {
		return fmt.Errorf("geometry: radius %v is not positive", g.Radius)
	}
	for fi, face := range g.Faces {
		if len(face) < 3 {
			return fmt.Errorf("geometry: face %d has %d indices, need at least 3", fi, len(face))
		}
		for _, idx := range face {
			if idx < 0 || idx >= n {
				return fmt.Errorf("geometry: face %d references vertex %d, have %d vertices", fi, idx, n)
			}
		}
	}
	for ei, edge := range g.Edges {
		for _, idx := range edge {
			if idx < 0 || idx >= n {
				return fmt.Errorf("geometry: edge %d references vertex %d, have %d vertices", ei, idx, n)
			}
		}
	}
	return nil
}

// MustValidate panics on invariant violation. Used at operation boundaries
// where malformed input indicates a bug in the caller.
func (g *Geometry) MustValidate() {
	if err := g.Validate(); err != nil {
		panic(err)
	}
}

// Clone returns a deep copy. The dual, if present, is cloned one level
// (duals never nest).
func (g *Geometry) Clone() *Geometry {
	out := &Geometry{
		Vertices: make([]r3.Vec, len(g.Vertices)),
		Faces:    make([][]int, len(g.Faces)),
		Edges:    make([][2]int, len(g.Edges)),
		Center:   g.Center,
		Radius:   g.Radius,
	}
	copy(out.Vertices, g.Vertices)
	for i, face := range g.Faces {
		out.Faces[i] = make([]int, len(face))
		copy(out.Faces[i], face)
	}
	copy(out.Edges, g.Edges)
	if g.Dual != nil {
		dual := *g.Dual
		dual.Dual = nil
		out.Dual = dual.Clone()
	}
	return out
}

// EdgesFromFaces derives the edge list by walking each face's consecutive
// index pairs, closing the polygon. Duplicate edges between adjacent faces
// are collapsed via a canonical (min,max) key.
func EdgesFromFaces(faces [][]int) [][2]int {
	seen := make(map[[2]int]bool)
	edges := make([][2]int, 0, len(faces)*3)
	for _, face := range faces {
		for i := range face {
			a := face[i]
			b := face[(i+1)%len(face)]
			key := [2]int{a, b}
			if a > b {
				key = [2]int{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, key)
		}
	}
	return edges
}

// Direction returns the unit vector from the geometry center to v, or the
// zero vector when v coincides with the center. Guards every normalize so
// displacement of a degenerate vertex is zero rather than NaN.
func Direction(center, v r3.Vec) r3.Vec {
	d := r3.Sub(v, center)
	n := r3.Norm(d)
	if n < 1e-12 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, d)
}
