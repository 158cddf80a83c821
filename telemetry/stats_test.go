package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		p    float64
		want float64
	}{
		{"p0", 0, 1},
		{"p50", 0.5, 3},
		{"p100", 1, 5},
		{"p25", 0.25, 2},
		{"p90", 0.9, 4.6},
		{"below range", -0.1, 1},
		{"above range", 1.5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(sorted, tt.p)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Percentile(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentileEmpty(t *testing.T) {
	if got := Percentile(nil, 0.5); got != 0 {
		t.Errorf("Percentile(nil) = %v, want 0", got)
	}
}

func TestPercentileSingle(t *testing.T) {
	sorted := []float64{7}
	for _, p := range []float64{0, 0.5, 1} {
		if got := Percentile(sorted, p); got != 7 {
			t.Errorf("Percentile(%v) = %v, want 7", p, got)
		}
	}
}

func TestComputeFieldStats(t *testing.T) {
	values := []float64{3, -1, 2, 0, 1}
	min, max, mean, p50, p90 := ComputeFieldStats(values)

	if min != -1 || max != 3 {
		t.Errorf("min/max = %v/%v, want -1/3", min, max)
	}
	if math.Abs(mean-1) > 1e-9 {
		t.Errorf("mean = %v, want 1", mean)
	}
	if math.Abs(p50-1) > 1e-9 {
		t.Errorf("p50 = %v, want 1", p50)
	}
	if math.Abs(p90-2.6) > 1e-9 {
		t.Errorf("p90 = %v, want 2.6", p90)
	}
}

func TestComputeFieldStatsEmpty(t *testing.T) {
	min, max, mean, p50, p90 := ComputeFieldStats(nil)
	if min != 0 || max != 0 || mean != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty input should produce zeroed stats")
	}
}

func TestComputeFieldStatsLeavesInputUnsorted(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeFieldStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}
