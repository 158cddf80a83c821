package wave

import "math"

// FractalWave accumulates octaves of a base wave with standard
// fractal-noise amplitude decay and frequency growth.
type FractalWave struct {
	Wave        Wave
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// NewFractalWave builds a fractal wave with conventional persistence 0.5
// and lacunarity 2.
func NewFractalWave(base Wave, octaves int) *FractalWave {
	if octaves < 1 {
		octaves = 1
	}
	return &FractalWave{
		Wave:        base,
		Octaves:     octaves,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// FractalNoise sums Octaves terms of the base wave evaluated at a
// spatial-plus-time input. Each octave multiplies amplitude by
// Persistence and frequency by Lacunarity; the spatial input is
// (x·freq + y·freq·φ) · 0.01.
func (f *FractalWave) FractalNoise(x, y, t float64) float64 {
	return f.accumulate(x, y, t, f.Octaves)
}

// ConsciousnessFractal is FractalNoise over an awareness-scaled subset of
// the octaves: a low awareness level contributes fewer terms. Octave
// count is recomputed per call since awareness varies between calls.
func (f *FractalWave) ConsciousnessFractal(x, y, t, awareness float64) float64 {
	octs := int(math.Ceil(float64(f.Octaves) * awareness))
	if octs < 1 {
		octs = 1
	}
	if octs > f.Octaves {
		octs = f.Octaves
	}
	return f.accumulate(x, y, t, octs)
}

func (f *FractalWave) accumulate(x, y, t float64, octaves int) float64 {
	amp := 1.0
	freq := f.Wave.Frequency
	var sum float64
	for i := 0; i < octaves; i++ {
		spatial := (x*freq + y*freq*phi) * 0.01
		sum += f.Wave.Value(spatial+t) * amp
		amp *= f.Persistence
		freq *= f.Lacunarity
	}
	return sum
}
