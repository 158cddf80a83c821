// Package wave provides closed-form damped sinusoid synthesis: single
// waves, breath-cycle tracking, multi-harmonic field waves, and fractal
// noise accumulation. All evaluation is pure; the only mutable state in
// the package is the BreathWave start timestamp.
package wave

import "math"

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// Wave is a damped sinusoid described by four scalars. Evaluation never
// mutates the wave.
type Wave struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	Decay     float64
}

// Value evaluates the wave at time t:
//
//	amplitude * sin(2π·frequency·t + phase) * exp(-decay·t)
func (w Wave) Value(t float64) float64 {
	return w.Amplitude * math.Sin(2*math.Pi*w.Frequency*t+w.Phase) * math.Exp(-w.Decay*t)
}

// Derivative evaluates the analytic time derivative of Value at t.
// Product rule across the sinusoid and the decay envelope:
//
//	A·e^(-d·t) · (ω·cos(ω·t+p) - d·sin(ω·t+p)),  ω = 2π·frequency
func (w Wave) Derivative(t float64) float64 {
	omega := 2 * math.Pi * w.Frequency
	arg := omega*t + w.Phase
	return w.Amplitude * math.Exp(-w.Decay*t) * (omega*math.Cos(arg) - w.Decay*math.Sin(arg))
}

// ModulateWith returns the pointwise product of two waves at t. This is
// interference, not averaging.
func (w Wave) ModulateWith(other Wave, t float64) float64 {
	return w.Value(t) * other.Value(t)
}
