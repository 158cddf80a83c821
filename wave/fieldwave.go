package wave

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// fibHarmonics are the Fibonacci multiples of the base frequency used by
// the field wave stack.
var fibHarmonics = []float64{1, 2, 3, 5, 8}

// FieldWave aggregates five harmonic waves at Fibonacci multiples of a
// base frequency. Harmonic i has amplitude 1/harmonic and phase (i·φ)
// mod 2π.
type FieldWave struct {
	Base  float64
	waves []Wave
}

// NewFieldWave builds the harmonic stack for a base frequency.
func NewFieldWave(base float64) *FieldWave {
	f := &FieldWave{Base: base, waves: make([]Wave, len(fibHarmonics))}
	for i, h := range fibHarmonics {
		f.waves[i] = Wave{
			Amplitude: 1 / h,
			Frequency: base * h,
			Phase:     math.Mod(float64(i)*phi, 2*math.Pi),
			Decay:     0.05,
		}
	}
	return f
}

// Harmonics returns the harmonic waves. The returned slice is the
// internal one; callers must not mutate it.
func (f *FieldWave) Harmonics() []Wave {
	return f.waves
}

// ValueAt evaluates the field at a spatial point and time. Each
// harmonic's phase is offset by 0.1·‖(x,y,z)‖ so the field propagates
// radially; the harmonic values are averaged.
func (f *FieldWave) ValueAt(x, y, z, t float64) float64 {
	r := math.Sqrt(x*x + y*y + z*z)
	var sum float64
	for _, w := range f.waves {
		w.Phase += 0.1 * r
		sum += w.Value(t)
	}
	return sum / float64(len(f.waves))
}

// ConsciousnessState is a descriptor derived from sampled field values
// and a breath coherence scalar. It is never mutated after construction.
type ConsciousnessState struct {
	AwarenessLevel    float64
	IntegrationPoints []string
	ExpansionVectors  []string
	ShadowTerritories []string
	LightFrequencies  []string
}

// lightFrequency is a named frequency constant matched against field
// samples.
type lightFrequency struct {
	hz   float64
	name string
}

// Solfeggio scale frequencies.
var lightFrequencies = []lightFrequency{
	{396, "liberation"},
	{417, "change"},
	{528, "transformation"},
	{639, "connection"},
	{741, "expression"},
	{852, "intuition"},
}

// GenerateConsciousnessState classifies sampled field values into a
// descriptor. Awareness is the mean absolute field value scaled by breath
// coherence, clamped to 1. Each value lands in descriptive buckets: the
// top three magnitudes become integration points, values above 0.5
// expansion vectors, values below -0.3 shadow territories, and values
// whose 1kHz-scaled magnitude falls within a coherence-scaled tolerance
// of a named frequency become light frequencies.
func GenerateConsciousnessState(fieldValues []float64, breathCoherence float64) ConsciousnessState {
	state := ConsciousnessState{}
	if len(fieldValues) == 0 {
		return state
	}

	abs := make([]float64, len(fieldValues))
	for i, v := range fieldValues {
		abs[i] = math.Abs(v)
	}
	awareness := stat.Mean(abs, nil) * breathCoherence
	if awareness > 1 {
		awareness = 1
	}
	state.AwarenessLevel = awareness

	// Top 3 by magnitude
	order := make([]int, len(fieldValues))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return abs[order[a]] > abs[order[b]]
	})
	top := 3
	if top > len(order) {
		top = len(order)
	}
	for _, idx := range order[:top] {
		state.IntegrationPoints = append(state.IntegrationPoints,
			fmt.Sprintf("integration:%d", idx))
	}

	tolerance := 25 + 25*breathCoherence
	for i, v := range fieldValues {
		if v > 0.5 {
			state.ExpansionVectors = append(state.ExpansionVectors,
				fmt.Sprintf("expansion:%d", i))
		}
		if v < -0.3 {
			state.ShadowTerritories = append(state.ShadowTerritories,
				fmt.Sprintf("shadow:%d", i))
		}
		scaled := math.Abs(v) * 1000
		for _, lf := range lightFrequencies {
			if math.Abs(scaled-lf.hz) <= tolerance {
				state.LightFrequencies = append(state.LightFrequencies,
					fmt.Sprintf("%.0fHz %s", lf.hz, lf.name))
				break
			}
		}
	}
	return state
}
