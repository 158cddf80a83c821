package engine

import (
	"testing"
	"time"

	"github.com/noetic-labs/resonant/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load() error: %v", err)
	}
	// A small grid keeps generation cheap in tests.
	cfg.Field.GridSize = 16
	return cfg
}

func TestEngineGenerate(t *testing.T) {
	start := time.Unix(1000, 0)
	e := New(testConfig(t), Options{
		ArchetypeID: "ember",
		Radius:      1.0,
		Awareness:   0.5,
		Start:       start,
	})

	frame := e.Generate(start.Add(3 * time.Second))
	if frame.Geometry == nil || frame.Grid == nil {
		t.Fatal("frame missing geometry or grid")
	}
	if err := frame.Geometry.Validate(); err != nil {
		t.Errorf("geometry Validate() = %v", err)
	}
	if frame.Signature.ID != "ember" {
		t.Errorf("signature = %q, want ember", frame.Signature.ID)
	}
	if e.Frame() != 1 {
		t.Errorf("frame counter = %d, want 1", e.Frame())
	}
}

func TestEngineDeterministicForFixedClock(t *testing.T) {
	start := time.Unix(2000, 0)
	now := start.Add(4700 * time.Millisecond)
	opts := Options{ArchetypeID: "tide", Radius: 1.2, Awareness: 0.7, Start: start}

	a := New(testConfig(t), opts).Generate(now)
	b := New(testConfig(t), opts).Generate(now)

	if len(a.Geometry.Vertices) != len(b.Geometry.Vertices) {
		t.Fatal("vertex counts differ between identical engines")
	}
	for i := range a.Geometry.Vertices {
		if a.Geometry.Vertices[i] != b.Geometry.Vertices[i] {
			t.Fatalf("vertex %d differs", i)
		}
	}
	for i := range a.Grid.Data {
		if a.Grid.Data[i] != b.Grid.Data[i] {
			t.Fatalf("grid cell %d differs", i)
		}
	}
	if a.Breath != b.Breath {
		t.Error("breath states differ")
	}
}

func TestEngineHonorsDisplacementScale(t *testing.T) {
	start := time.Unix(0, 0)
	now := start.Add(time.Second)
	opts := Options{ArchetypeID: "gale", Radius: 1, Awareness: 0.5, Start: start}

	strong := testConfig(t)
	strong.Fractal.DisplacementScale = 2.0
	weak := testConfig(t)
	weak.Fractal.DisplacementScale = 0.1

	a := New(strong, opts).Generate(now)
	b := New(weak, opts).Generate(now)

	differ := false
	for i := range a.Geometry.Vertices {
		if a.Geometry.Vertices[i] != b.Geometry.Vertices[i] {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("displacement scale setting had no effect on the geometry")
	}
}

func TestEngineUnknownArchetypeFallsBack(t *testing.T) {
	e := New(testConfig(t), Options{ArchetypeID: "bogus", Radius: 1, Start: time.Unix(0, 0)})
	if e.Signature().ID != "void" {
		t.Errorf("signature = %q, want the default row", e.Signature().ID)
	}
}

func TestEngineSetAwarenessClamps(t *testing.T) {
	e := New(testConfig(t), Options{ArchetypeID: "void", Radius: 1, Start: time.Unix(0, 0)})
	e.SetAwareness(1.7)
	if e.Awareness() != 1 {
		t.Errorf("awareness = %v, want 1", e.Awareness())
	}
	e.SetAwareness(-0.5)
	if e.Awareness() != 0 {
		t.Errorf("awareness = %v, want 0", e.Awareness())
	}
}

func TestEngineWindowStats(t *testing.T) {
	start := time.Unix(3000, 0)
	e := New(testConfig(t), Options{ArchetypeID: "stone", Radius: 1, Awareness: 0.4, Start: start})

	// Before any frame the stats carry identity only.
	empty := e.WindowStats(start)
	if empty.VertexCount != 0 || empty.Archetype != "stone" {
		t.Errorf("pre-frame stats = %+v", empty)
	}

	now := start.Add(2 * time.Second)
	frame := e.Generate(now)
	stats := e.WindowStats(now)

	if stats.WindowEndFrame != 1 {
		t.Errorf("window end frame = %d, want 1", stats.WindowEndFrame)
	}
	if stats.SimTimeSec != 2 {
		t.Errorf("sim time = %v, want 2", stats.SimTimeSec)
	}
	if stats.VertexCount != len(frame.Geometry.Vertices) {
		t.Errorf("vertex count = %d, want %d", stats.VertexCount, len(frame.Geometry.Vertices))
	}
	if stats.BreathPhase != frame.Breath.Phase.String() {
		t.Errorf("breath phase = %q", stats.BreathPhase)
	}
	if stats.FieldMin > stats.FieldP50 || stats.FieldP50 > stats.FieldMax {
		t.Errorf("field percentiles out of order: %+v", stats)
	}
}

func TestEngineFrameGridIsSnapshot(t *testing.T) {
	start := time.Unix(0, 0)
	e := New(testConfig(t), Options{ArchetypeID: "tide", Radius: 1, Awareness: 0.5, Start: start})

	first := e.Generate(start.Add(time.Second))
	held := make([]float32, len(first.Grid.Data))
	copy(held, first.Grid.Data)

	// A later generation must not overwrite an earlier frame's grid.
	e.Generate(start.Add(9 * time.Second))
	for i := range held {
		if first.Grid.Data[i] != held[i] {
			t.Fatalf("grid cell %d changed after a later Generate call", i)
		}
	}
}

func TestEngineSetArchetypeChangesGeometry(t *testing.T) {
	start := time.Unix(0, 0)
	now := start.Add(time.Second)
	e := New(testConfig(t), Options{ArchetypeID: "ember", Radius: 1, Awareness: 0.5, Start: start})

	tetra := e.Generate(now)
	e.SetArchetype("stone")
	cube := e.Generate(now)

	if len(tetra.Geometry.Vertices) == len(cube.Geometry.Vertices) {
		t.Error("switching from a tetrahedral to a cubic archetype should change the vertex count")
	}
}
