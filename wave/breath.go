package wave

import (
	"math"
	"time"
)

// BreathPhase is one of the four mutually exclusive segments of a breath
// cycle.
type BreathPhase uint8

const (
	PhaseInhale BreathPhase = iota
	PhaseHold
	PhaseExhale
	PhasePause
)

// String returns the phase name.
func (p BreathPhase) String() string {
	switch p {
	case PhaseInhale:
		return "inhale"
	case PhaseHold:
		return "hold"
	case PhaseExhale:
		return "exhale"
	case PhasePause:
		return "pause"
	}
	return "unknown"
}

// BreathPattern describes one breath cycle. Counts are in seconds; any
// remainder of TotalCycle beyond inhale+hold+exhale is the pause segment.
type BreathPattern struct {
	InhaleCount float64
	HoldCount   float64
	ExhaleCount float64
	TotalCycle  float64
}

// DefaultPattern is 4-2-4 box-style breathing over a 10 second cycle.
var DefaultPattern = BreathPattern{
	InhaleCount: 4,
	HoldCount:   2,
	ExhaleCount: 4,
	TotalCycle:  10,
}

// BreathState is a derived view of the breath cycle at one instant. It is
// recomputed on every query, never stored as truth.
type BreathState struct {
	Pattern   BreathPattern
	Phase     BreathPhase
	Intensity float64 // 0..1 ramp within the current phase
	Coherence float64 // |wave value| at elapsed time
	Rhythm    float64 // breaths per minute
	Timestamp time.Time
}

// BreathWave tracks a breath cycle against elapsed wall time. The start
// timestamp is the only persistent state: it is set at construction and
// reset on every pattern change. Each call site should hold its own
// instance; there is no other shared state.
type BreathWave struct {
	wave    Wave
	pattern BreathPattern
	start   time.Time
}

// NewBreathWave creates a breath wave for the given pattern, started at
// the given instant.
func NewBreathWave(pattern BreathPattern, start time.Time) *BreathWave {
	b := &BreathWave{}
	b.setPattern(pattern, start)
	return b
}

// SetPattern replaces the breathing pattern and restarts the cycle at now.
func (b *BreathWave) SetPattern(pattern BreathPattern, now time.Time) {
	b.setPattern(pattern, now)
}

func (b *BreathWave) setPattern(pattern BreathPattern, start time.Time) {
	if pattern.TotalCycle <= 0 {
		pattern = DefaultPattern
	}
	b.pattern = pattern
	b.start = start
	b.wave = Wave{
		Amplitude: 1,
		Frequency: 1 / pattern.TotalCycle,
		Phase:     0,
		Decay:     0.001,
	}
}

// Pattern returns the current breathing pattern.
func (b *BreathWave) Pattern() BreathPattern {
	return b.pattern
}

// CurrentState derives the breath state at the given instant. Pure in
// (receiver state, now): repeated calls with the same now return the same
// state.
func (b *BreathWave) CurrentState(now time.Time) BreathState {
	elapsed := now.Sub(b.start).Seconds()
	total := b.pattern.TotalCycle
	pos := math.Mod(elapsed, total)
	if pos < 0 {
		pos += total
	}

	// Boundaries stay in seconds. Dividing the counts by the cycle
	// first accumulates rounding error and can misplace a query landing
	// exactly on a phase boundary.
	inhaleEnd := b.pattern.InhaleCount
	holdEnd := inhaleEnd + b.pattern.HoldCount
	exhaleEnd := holdEnd + b.pattern.ExhaleCount

	var phase BreathPhase
	var intensity float64
	switch {
	case pos < inhaleEnd:
		phase = PhaseInhale
		intensity = pos / b.pattern.InhaleCount
	case pos < holdEnd:
		phase = PhaseHold
		intensity = 1
	case pos < exhaleEnd:
		phase = PhaseExhale
		intensity = 1 - (pos-holdEnd)/b.pattern.ExhaleCount
	default:
		phase = PhasePause
		intensity = 0
	}

	return BreathState{
		Pattern:   b.pattern,
		Phase:     phase,
		Intensity: intensity,
		Coherence: math.Abs(b.wave.Value(elapsed)),
		Rhythm:    60 / total,
		Timestamp: now,
	}
}

// PhaseScalar maps a breath phase and intensity to the phase angle used by
// every displacement path in the engine. The mapping is shared: inhale
// sweeps 0..π with intensity, hold sits at π, exhale sweeps π..2π as
// intensity falls, pause is 0.
func PhaseScalar(phase BreathPhase, intensity float64) float64 {
	switch phase {
	case PhaseInhale:
		return intensity * math.Pi
	case PhaseHold:
		return math.Pi
	case PhaseExhale:
		return math.Pi + (1-intensity)*math.Pi
	case PhasePause:
		return 0
	}
	return 0
}
