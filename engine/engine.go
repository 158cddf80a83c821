// Package engine composes the generation pipeline: archetype signature
// lookup, base solid construction, subdivision, breath-driven fractal
// displacement, and scalar field synthesis. One Generate call produces
// everything a renderer needs for a frame.
package engine

import (
	"time"

	"github.com/noetic-labs/resonant/archetype"
	"github.com/noetic-labs/resonant/config"
	"github.com/noetic-labs/resonant/field"
	"github.com/noetic-labs/resonant/fractal"
	"github.com/noetic-labs/resonant/geom"
	"github.com/noetic-labs/resonant/telemetry"
	"github.com/noetic-labs/resonant/wave"
)

// Options configures engine construction.
type Options struct {
	ArchetypeID string
	Radius      float64
	Awareness   float64
	Start       time.Time
}

// Frame is the output of one generation pass: a finished geometry, the
// scalar field grid, and the derived state descriptors.
type Frame struct {
	Geometry  *geom.Geometry
	Grid      *field.Grid
	Breath    wave.BreathState
	State     wave.ConsciousnessState
	Signature archetype.Signature
}

// Engine drives per-frame generation. The only mutable state it holds is
// the breath wave's start timestamp and the frame counter; every
// Generate call is otherwise a pure function of (options, now).
type Engine struct {
	cfg       *config.Config
	sig       archetype.Signature
	awareness float64
	radius    float64

	breath    *wave.BreathWave
	fieldWave *wave.FieldWave
	grid      *field.Grid
	perf      *telemetry.PerfCollector

	start time.Time
	frame int32

	// Last generated frame, kept for stats assembly.
	last *Frame
}

// New creates an engine from the loaded configuration and options.
func New(cfg *config.Config, opts Options) *Engine {
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	pattern := wave.BreathPattern{
		InhaleCount: cfg.Breath.Inhale,
		HoldCount:   cfg.Breath.Hold,
		ExhaleCount: cfg.Breath.Exhale,
		TotalCycle:  cfg.Breath.TotalCycle,
	}
	return &Engine{
		cfg:       cfg,
		sig:       archetype.Lookup(opts.ArchetypeID),
		awareness: opts.Awareness,
		radius:    opts.Radius,
		breath:    wave.NewBreathWave(pattern, opts.Start),
		fieldWave: wave.NewFieldWave(cfg.Wave.BaseFrequency),
		grid:      field.NewGrid(cfg.Field.GridSize, cfg.Field.GridSize),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		start:     opts.Start,
	}
}

// SetArchetype switches the active archetype. Unknown ids resolve to the
// default row.
func (e *Engine) SetArchetype(id string) {
	e.sig = archetype.Lookup(id)
}

// SetAwareness updates the awareness level, clamped to [0,1].
func (e *Engine) SetAwareness(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	e.awareness = a
}

// Awareness returns the current awareness level.
func (e *Engine) Awareness() float64 {
	return e.awareness
}

// Signature returns the active archetype signature.
func (e *Engine) Signature() archetype.Signature {
	return e.sig
}

// Breath returns the breath wave for pattern updates.
func (e *Engine) Breath() *wave.BreathWave {
	return e.breath
}

// Frame returns the number of frames generated so far.
func (e *Engine) Frame() int32 {
	return e.frame
}

// Generate runs one full generation pass at the given instant.
func (e *Engine) Generate(now time.Time) *Frame {
	e.perf.StartFrame()
	t := now.Sub(e.start).Seconds()

	e.perf.StartPhase(telemetry.PhaseWave)
	breath := e.breath.CurrentState(now)

	e.perf.StartPhase(telemetry.PhaseSolid)
	base := geom.Build(e.sig.Solid, e.radius, e.awareness)

	e.perf.StartPhase(telemetry.PhaseSubdivide)
	refined := fractal.Subdivide(base, e.cfg.Fractal.SubdivisionLevels, e.awareness)

	e.perf.StartPhase(telemetry.PhaseDisplace)
	displaced := archetype.Displace(e.sig, refined, e.awareness, e.cfg.Fractal.DisplacementScale, breath, t)

	e.perf.StartPhase(telemetry.PhaseField)
	e.grid.FillFieldWave(e.fieldWave, t, e.cfg.Field.Extent)
	state := wave.GenerateConsciousnessState(e.grid.Values(), breath.Coherence)

	e.perf.EndFrame()
	e.frame++

	// The frame gets its own grid snapshot; the engine's working grid is
	// refilled on the next call.
	frame := &Frame{
		Geometry:  displaced,
		Grid:      e.grid.Clone(),
		Breath:    breath,
		State:     state,
		Signature: e.sig,
	}
	e.last = frame
	return frame
}

// Perf returns the performance collector.
func (e *Engine) Perf() *telemetry.PerfCollector {
	return e.perf
}

// WindowStats assembles a telemetry record from the last generated
// frame.
func (e *Engine) WindowStats(now time.Time) telemetry.WindowStats {
	stats := telemetry.WindowStats{
		WindowEndFrame: e.frame,
		SimTimeSec:     now.Sub(e.start).Seconds(),
		Archetype:      e.sig.ID,
		Awareness:      e.awareness,
	}
	if e.last == nil {
		return stats
	}
	stats.VertexCount = len(e.last.Geometry.Vertices)
	stats.FaceCount = len(e.last.Geometry.Faces)
	stats.EdgeCount = len(e.last.Geometry.Edges)
	stats.BreathPhase = e.last.Breath.Phase.String()
	stats.Intensity = e.last.Breath.Intensity
	stats.Coherence = e.last.Breath.Coherence

	min, max, mean, p50, p90 := telemetry.ComputeFieldStats(e.last.Grid.Values())
	stats.FieldMin = min
	stats.FieldMax = max
	stats.FieldMean = mean
	stats.FieldP50 = p50
	stats.FieldP90 = p90
	return stats
}
