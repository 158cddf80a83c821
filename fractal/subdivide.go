// Package fractal refines polyhedral geometry: uniform midpoint
// subdivision and per-vertex fractal displacement. All operations return
// new geometry and never reorder existing vertex indices.
package fractal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/noetic-labs/resonant/geom"
)

// Subdivide splits every face edge at its midpoint, level times. The
// effective pass count scales with awareness:
//
//	passes = floor(levels * (0.5 + awareness*0.5))
//
// so low awareness runs fewer passes than requested. With awareness > 0
// each new midpoint is pushed along its own direction by
// awareness·0.1·sin(pass·φ). levels ≤ 0 returns a deep copy unchanged.
func Subdivide(g *geom.Geometry, levels int, awareness float64) *geom.Geometry {
	g.MustValidate()
	out := g.Clone()
	if levels <= 0 {
		return out
	}
	passes := int(math.Floor(float64(levels) * (0.5 + awareness*0.5)))
	for pass := 1; pass <= passes; pass++ {
		out = subdividePass(out, pass, awareness)
	}
	return out
}

// subdividePass performs one midpoint subdivision over all faces.
// Midpoints shared between adjacent faces are reused through a
// canonical (min,max) edge key, so each edge contributes exactly one
// new vertex.
func subdividePass(g *geom.Geometry, pass int, awareness float64) *geom.Geometry {
	verts := make([]r3.Vec, len(g.Vertices), len(g.Vertices)+len(g.Edges))
	copy(verts, g.Vertices)

	midpoints := make(map[[2]int]int, len(g.Edges))
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		m := r3.Scale(0.5, r3.Add(verts[a], verts[b]))
		if awareness > 0 {
			dir := geom.Direction(g.Center, m)
			m = r3.Add(m, r3.Scale(awareness*0.1*math.Sin(float64(pass)*geom.Phi), dir))
		}
		verts = append(verts, m)
		idx := len(verts) - 1
		midpoints[key] = idx
		return idx
	}

	var faces [][]int
	for _, face := range g.Faces {
		n := len(face)
		mids := make([]int, n)
		for i := 0; i < n; i++ {
			mids[i] = midpoint(face[i], face[(i+1)%n])
		}
		// Corner triangle per original vertex, plus the central polygon
		// of midpoints.
		for i := 0; i < n; i++ {
			prev := mids[(i+n-1)%n]
			faces = append(faces, []int{face[i], mids[i], prev})
		}
		center := make([]int, n)
		copy(center, mids)
		faces = append(faces, center)
	}

	return &geom.Geometry{
		Vertices: verts,
		Faces:    faces,
		Edges:    geom.EdgesFromFaces(faces),
		Center:   g.Center,
		Radius:   g.Radius,
		Dual:     g.Dual,
	}
}
