package fractal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/noetic-labs/resonant/geom"
)

// Pattern selects the displacement function applied to every vertex.
type Pattern uint8

const (
	PatternMandelbrot Pattern = iota
	PatternJulia
	PatternDragon
	PatternSierpinski
)

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternMandelbrot:
		return "mandelbrot"
	case PatternJulia:
		return "julia"
	case PatternDragon:
		return "dragon"
	case PatternSierpinski:
		return "sierpinski"
	}
	return "unknown"
}

// Julia iteration constant.
const (
	juliaRe = -0.7269
	juliaIm = 0.1889
)

// escapeIterations returns the iteration cap for a refinement level.
func escapeIterations(level int) int {
	return 8 + 2*level
}

// escapeRatio runs the z ← z² + c iteration from z0 and returns the
// iteration count over the cap. The loop exits as soon as |z|² reaches 4,
// so the ratio is quantized; that banding is part of the visual contract.
func escapeRatio(zx, zy, cx, cy float64, maxIter int) float64 {
	for i := 0; i < maxIter; i++ {
		if zx*zx+zy*zy >= 4 {
			return float64(i) / float64(maxIter)
		}
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
	}
	return 1
}

// mandelbrotRatio iterates with c set to the vertex's own (x,y).
func mandelbrotRatio(x, y float64, maxIter int) float64 {
	return escapeRatio(0, 0, x, y, maxIter)
}

// juliaRatio iterates from the vertex's (x,y) with a fixed constant.
func juliaRatio(x, y float64, maxIter int) float64 {
	return escapeRatio(x, y, juliaRe, juliaIm, maxIter)
}

// SierpinskiScalar is the scalar form of the Sierpinski pattern used on
// the per-vertex displacement path: a 3-level parity check on
// floor(coord·2^i) mod 2 summed across the axes, accumulated with a
// halving factor per level.
func SierpinskiScalar(v r3.Vec) float64 {
	var sum float64
	factor := 1.0
	for i := 0; i < 3; i++ {
		p := math.Pow(2, float64(i))
		bits := int(math.Floor(math.Abs(v.X)*p)) +
			int(math.Floor(math.Abs(v.Y)*p)) +
			int(math.Floor(math.Abs(v.Z)*p))
		if bits%2 == 1 {
			sum += factor
		}
		factor *= 0.5
	}
	return sum
}

// DisplaceVertex relocates a single vertex by the pattern's displacement
// rule and returns its new position. Escape-time and Sierpinski patterns
// push along the vertex's outward direction from center; Dragon builds
// its own offset from the vertex angle, with a φ-scaled component on the
// z axis. The phase argument feeds the Dragon angular function directly
// and attenuates the other patterns trigonometrically; phase 0 leaves
// them at full strength. A vertex at the center is returned unchanged.
func DisplaceVertex(center, v r3.Vec, pattern Pattern, level int, scale, phase float64) r3.Vec {
	dir := geom.Direction(center, v)
	if dir == (r3.Vec{}) {
		return v
	}
	breathe := 0.8 + 0.2*math.Cos(phase)

	switch pattern {
	case PatternMandelbrot:
		mag := mandelbrotRatio(v.X, v.Y, escapeIterations(level)) * scale * breathe
		return r3.Add(v, r3.Scale(mag, dir))
	case PatternJulia:
		mag := juliaRatio(v.X, v.Y, escapeIterations(level)) * scale * breathe
		return r3.Add(v, r3.Scale(mag, dir))
	case PatternDragon:
		angle := math.Atan2(v.Y, v.X) + phase
		mag := scale * math.Sin(4*angle)
		offset := r3.Vec{
			X: math.Cos(angle) * mag,
			Y: math.Sin(angle) * mag,
			Z: math.Sin(angle*geom.Phi) * mag * 0.5,
		}
		return r3.Add(v, offset)
	case PatternSierpinski:
		mag := SierpinskiScalar(v) * scale * breathe
		return r3.Add(v, r3.Scale(mag, dir))
	}
	return v
}

// Displace relocates every vertex by the pattern's displacement rule.
// Topology is unchanged: vertices are moved in place and never reordered.
func Displace(g *geom.Geometry, pattern Pattern, level int, scale, phase float64) *geom.Geometry {
	g.MustValidate()
	out := g.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = DisplaceVertex(out.Center, v, pattern, level, scale, phase)
	}
	return out
}

// SierpinskiFaces replaces every triangular face with the three corner
// triangles formed by its edge midpoints, omitting the central triangle.
// The omission is what produces the gap pattern. Non-triangular faces
// pass through unchanged.
func SierpinskiFaces(g *geom.Geometry) *geom.Geometry {
	g.MustValidate()
	out := g.Clone()

	verts := out.Vertices
	midpoints := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		verts = append(verts, r3.Scale(0.5, r3.Add(verts[a], verts[b])))
		idx := len(verts) - 1
		midpoints[key] = idx
		return idx
	}

	var faces [][]int
	for _, face := range out.Faces {
		if len(face) != 3 {
			faces = append(faces, face)
			continue
		}
		a, b, c := face[0], face[1], face[2]
		mab := midpoint(a, b)
		mbc := midpoint(b, c)
		mca := midpoint(c, a)
		faces = append(faces,
			[]int{a, mab, mca},
			[]int{b, mbc, mab},
			[]int{c, mca, mbc},
		)
	}

	out.Vertices = verts
	out.Faces = faces
	out.Edges = geom.EdgesFromFaces(faces)
	return out
}
