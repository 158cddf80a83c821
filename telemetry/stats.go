package telemetry

import (
	"log/slog"
	"sort"
)

// WindowStats holds aggregated generation statistics for a time window.
type WindowStats struct {
	WindowEndFrame int32   `csv:"window_end"`
	SimTimeSec     float64 `csv:"sim_time"`

	// Geometry at window end
	Archetype   string `csv:"archetype"`
	VertexCount int    `csv:"vertices"`
	FaceCount   int    `csv:"faces"`
	EdgeCount   int    `csv:"edges"`

	// State at window end
	Awareness   float64 `csv:"awareness"`
	BreathPhase string  `csv:"breath_phase"`
	Intensity   float64 `csv:"intensity"`
	Coherence   float64 `csv:"coherence"`

	// Field grid distribution
	FieldMin  float64 `csv:"field_min"`
	FieldMax  float64 `csv:"field_max"`
	FieldMean float64 `csv:"field_mean"`
	FieldP50  float64 `csv:"field_p50"`
	FieldP90  float64 `csv:"field_p90"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeFieldStats calculates min, max, mean, and percentiles from field
// samples.
func ComputeFieldStats(values []float64) (min, max, mean, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	min, max = values[0], values[0]
	var sum float64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean = sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	return min, max, mean, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("archetype", s.Archetype),
		slog.Int("vertices", s.VertexCount),
		slog.Int("faces", s.FaceCount),
		slog.Int("edges", s.EdgeCount),
		slog.Float64("awareness", s.Awareness),
		slog.String("breath_phase", s.BreathPhase),
		slog.Float64("intensity", s.Intensity),
		slog.Float64("coherence", s.Coherence),
		slog.Float64("field_min", s.FieldMin),
		slog.Float64("field_max", s.FieldMax),
		slog.Float64("field_mean", s.FieldMean),
		slog.Float64("field_p50", s.FieldP50),
		slog.Float64("field_p90", s.FieldP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"sim_time", s.SimTimeSec,
		"archetype", s.Archetype,
		"vertices", s.VertexCount,
		"faces", s.FaceCount,
		"edges", s.EdgeCount,
		"awareness", s.Awareness,
		"breath_phase", s.BreathPhase,
		"intensity", s.Intensity,
		"coherence", s.Coherence,
		"field_min", s.FieldMin,
		"field_max", s.FieldMax,
		"field_mean", s.FieldMean,
		"field_p50", s.FieldP50,
		"field_p90", s.FieldP90,
	)
}
