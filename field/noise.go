// Package field provides stateless scalar noise primitives and the 2D
// sample grids built from them. Grids are row-major float32, the same
// shape the renderer uploads as textures.
package field

import "math"

var (
	phi    = (1 + math.Sqrt(5)) / 2
	invPhi = 2 / (1 + math.Sqrt(5))
)

// MinimalNoise is a cheap bounded deterministic pseudo-noise value:
//
//	|dot(sin([y,z,x]·s), cos([x,z,z]·s)) / s · 0.6|
//
// Non-negative, roughly bounded by 0.6/scale. No state, no failure modes.
func MinimalNoise(x, y, z, scale float64) float64 {
	s := scale
	dot := math.Sin(y*s)*math.Cos(x*s) +
		math.Sin(z*s)*math.Cos(z*s) +
		math.Sin(x*s)*math.Cos(z*s)
	return math.Abs(dot / s * 0.6)
}

// ConsciousnessNoise layers 3 + ⌊awareness·5⌋ octaves of MinimalNoise at
// doubling scales. Each octave's coordinates drift with elapsed time,
// scaled by the golden ratio and its reciprocal on different axes, and
// the accumulated sum is multiplied by awareness. The octave count is
// recomputed every call since awareness varies between calls.
func ConsciousnessNoise(x, y, z, awareness, t float64) float64 {
	octaves := 3 + int(math.Floor(awareness*5))
	scale := 1.0
	var sum float64
	for i := 0; i < octaves; i++ {
		drift := t * 0.1
		sum += MinimalNoise(
			x+drift*phi,
			y+drift*invPhi,
			z+drift,
			scale,
		)
		scale *= 2
	}
	return sum * awareness
}
