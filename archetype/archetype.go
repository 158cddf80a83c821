// Package archetype maps discrete symbolic categories to generator
// parameters and composes the final displaced geometry for a given
// archetype and state. Ids come from two fixed taxonomies: five
// elemental keys and nine numeric keys. Unknown ids resolve to the
// default row rather than failing.
package archetype

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/noetic-labs/resonant/fractal"
	"github.com/noetic-labs/resonant/geom"
	"github.com/noetic-labs/resonant/wave"
)

// Signature bundles the generator parameters for one archetype. Rows are
// immutable: they are looked up from the constant table, never built
// per frame.
type Signature struct {
	ID        string
	Solid     geom.SolidKind
	Pattern   fractal.Pattern
	Frequency float64
	Color     [3]float32

	// Modulation coefficients: [positional phase spread,
	// displacement scale, oscillation weight].
	Modulation [3]float64
}

// DefaultID is the row returned for unknown archetype ids.
const DefaultID = "void"

// signatures is the constant archetype table. Keys join two independent
// taxonomies: elemental names and enneagram-style numbers.
var signatures = map[string]Signature{
	// Elemental taxonomy
	"ember": {ID: "ember", Solid: geom.KindTetrahedron, Pattern: fractal.PatternDragon,
		Frequency: 528, Color: [3]float32{0.92, 0.35, 0.12}, Modulation: [3]float64{0.6, 0.12, 1.0}},
	"tide": {ID: "tide", Solid: geom.KindIcosahedron, Pattern: fractal.PatternJulia,
		Frequency: 417, Color: [3]float32{0.15, 0.45, 0.85}, Modulation: [3]float64{0.3, 0.08, 0.7}},
	"gale": {ID: "gale", Solid: geom.KindOctahedron, Pattern: fractal.PatternMandelbrot,
		Frequency: 741, Color: [3]float32{0.75, 0.85, 0.95}, Modulation: [3]float64{0.8, 0.1, 1.2}},
	"stone": {ID: "stone", Solid: geom.KindCube, Pattern: fractal.PatternSierpinski,
		Frequency: 396, Color: [3]float32{0.45, 0.36, 0.25}, Modulation: [3]float64{0.2, 0.06, 0.4}},
	"void": {ID: "void", Solid: geom.KindDodecahedron, Pattern: fractal.PatternJulia,
		Frequency: 852, Color: [3]float32{0.35, 0.2, 0.55}, Modulation: [3]float64{0.5, 0.1, 0.8}},

	// Numeric taxonomy
	"1": {ID: "1", Solid: geom.KindCube, Pattern: fractal.PatternSierpinski,
		Frequency: 396, Color: [3]float32{0.85, 0.1, 0.1}, Modulation: [3]float64{0.25, 0.07, 0.5}},
	"2": {ID: "2", Solid: geom.KindIcosahedron, Pattern: fractal.PatternJulia,
		Frequency: 417, Color: [3]float32{0.95, 0.55, 0.65}, Modulation: [3]float64{0.4, 0.09, 0.8}},
	"3": {ID: "3", Solid: geom.KindTetrahedron, Pattern: fractal.PatternDragon,
		Frequency: 528, Color: [3]float32{0.95, 0.8, 0.2}, Modulation: [3]float64{0.7, 0.11, 1.1}},
	"4": {ID: "4", Solid: geom.KindDodecahedron, Pattern: fractal.PatternJulia,
		Frequency: 639, Color: [3]float32{0.55, 0.25, 0.5}, Modulation: [3]float64{0.45, 0.1, 0.9}},
	"5": {ID: "5", Solid: geom.KindOctahedron, Pattern: fractal.PatternMandelbrot,
		Frequency: 741, Color: [3]float32{0.2, 0.6, 0.5}, Modulation: [3]float64{0.55, 0.09, 0.9}},
	"6": {ID: "6", Solid: geom.KindCube, Pattern: fractal.PatternSierpinski,
		Frequency: 396, Color: [3]float32{0.3, 0.4, 0.7}, Modulation: [3]float64{0.3, 0.07, 0.6}},
	"7": {ID: "7", Solid: geom.KindIcosahedron, Pattern: fractal.PatternDragon,
		Frequency: 852, Color: [3]float32{0.4, 0.8, 0.9}, Modulation: [3]float64{0.85, 0.12, 1.3}},
	"8": {ID: "8", Solid: geom.KindTetrahedron, Pattern: fractal.PatternMandelbrot,
		Frequency: 528, Color: [3]float32{0.6, 0.1, 0.15}, Modulation: [3]float64{0.65, 0.13, 1.0}},
	"9": {ID: "9", Solid: geom.KindDodecahedron, Pattern: fractal.PatternJulia,
		Frequency: 639, Color: [3]float32{0.7, 0.75, 0.6}, Modulation: [3]float64{0.35, 0.08, 0.7}},
}

// Lookup resolves an archetype id to its signature. Unknown ids return
// the DefaultID row; this is defined fallback behavior, not an error.
func Lookup(id string) Signature {
	if sig, ok := signatures[id]; ok {
		return sig
	}
	return signatures[DefaultID]
}

// IDs returns every archetype id in the table, elemental keys first.
func IDs() []string {
	ids := []string{"ember", "tide", "gale", "stone", "void",
		"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	return ids
}

// Displace applies the signature's pattern to every vertex of an
// existing geometry. The phase for each vertex is the shared
// breath-phase scalar plus a positional offset spread by the first
// modulation coefficient; a time oscillation sin(t·frequency·0.001)·0.1
// weighted by the third coefficient is blended in along the vertex
// direction. scale multiplies the signature's own displacement scale;
// 1 leaves it unchanged. It is the configured global strength knob.
func Displace(sig Signature, g *geom.Geometry, awareness, scale float64, breath wave.BreathState, t float64) *geom.Geometry {
	level := 1 + int(math.Floor(awareness*3))
	scale = scale * sig.Modulation[1] * g.Radius
	breathPhase := wave.PhaseScalar(breath.Phase, breath.Intensity)
	osc := math.Sin(t*sig.Frequency*0.001) * 0.1 * sig.Modulation[2]

	out := g.Clone()
	for i, v := range out.Vertices {
		phase := breathPhase + (v.X+v.Y+v.Z)*sig.Modulation[0]
		moved := fractal.DisplaceVertex(out.Center, v, sig.Pattern, level, scale, phase)
		dir := geom.Direction(out.Center, moved)
		out.Vertices[i] = r3.Add(moved, r3.Scale(osc, dir))
	}
	return out
}

// Generate composes the final displaced geometry for a signature and
// state: the base solid at the given radius and awareness, displaced by
// the signature's pattern at the given scale multiplier.
func Generate(sig Signature, radius, awareness, scale float64, breath wave.BreathState, t float64) *geom.Geometry {
	return Displace(sig, geom.Build(sig.Solid, radius, awareness), awareness, scale, breath, t)
}
