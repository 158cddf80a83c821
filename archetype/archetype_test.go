package archetype

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/noetic-labs/resonant/fractal"
	"github.com/noetic-labs/resonant/geom"
	"github.com/noetic-labs/resonant/wave"
)

func TestLookupKnown(t *testing.T) {
	sig := Lookup("ember")
	if sig.ID != "ember" || sig.Solid != geom.KindTetrahedron || sig.Pattern != fractal.PatternDragon {
		t.Errorf("ember signature = %+v", sig)
	}
	if sig.Frequency != 528 {
		t.Errorf("ember frequency = %v, want 528", sig.Frequency)
	}
}

func TestLookupFallback(t *testing.T) {
	def := Lookup(DefaultID)
	for _, id := range []string{"", "nonsense", "10", "EMBER"} {
		if got := Lookup(id); got != def {
			t.Errorf("Lookup(%q) = %+v, want the %q row", id, got, DefaultID)
		}
	}
}

func TestIDsComplete(t *testing.T) {
	ids := IDs()
	if len(ids) != 14 {
		t.Fatalf("IDs() has %d entries, want 14", len(ids))
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %q", id)
		}
		seen[id] = true
		if sig := Lookup(id); sig.ID != id {
			t.Errorf("Lookup(%q).ID = %q", id, sig.ID)
		}
	}
}

func testBreath(t *testing.T, sec float64) wave.BreathState {
	t.Helper()
	start := time.Unix(0, 0)
	b := wave.NewBreathWave(wave.DefaultPattern, start)
	return b.CurrentState(start.Add(time.Duration(sec * float64(time.Second))))
}

func TestGenerateAllArchetypes(t *testing.T) {
	breath := testBreath(t, 3)
	for _, id := range IDs() {
		t.Run(id, func(t *testing.T) {
			g := Generate(Lookup(id), 1.0, 0.5, 1.0, breath, 2.5)
			if err := g.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if len(g.Vertices) == 0 || len(g.Faces) == 0 {
				t.Error("empty geometry")
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	breath := testBreath(t, 7.2)
	sig := Lookup("tide")

	a := Generate(sig, 1.5, 0.8, 1.0, breath, 4.0)
	b := Generate(sig, 1.5, 0.8, 1.0, breath, 4.0)
	if len(a.Vertices) != len(b.Vertices) {
		t.Fatal("vertex counts differ")
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs: %v vs %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestDisplaceScaleMultiplier(t *testing.T) {
	// At t=0 the time oscillation vanishes, so the vertex offsets are
	// linear in the scale multiplier.
	base := geom.Octahedron(1, 0)
	breath := testBreath(t, 1)
	sig := Lookup("gale")

	one := Displace(sig, base, 0.5, 1.0, breath, 0)
	two := Displace(sig, base, 0.5, 2.0, breath, 0)

	moved := false
	for i := range base.Vertices {
		a := r3.Sub(one.Vertices[i], base.Vertices[i])
		b := r3.Sub(two.Vertices[i], base.Vertices[i])
		if r3.Norm(a) > 1e-12 {
			moved = true
		}
		if math.Abs(r3.Norm(b)-2*r3.Norm(a)) > 1e-9 {
			t.Errorf("vertex %d offset %v at scale 2, want double of %v", i, r3.Norm(b), r3.Norm(a))
		}
	}
	if !moved {
		t.Fatal("no vertex moved at scale 1")
	}
}

func TestDisplaceKeepsTopology(t *testing.T) {
	base := geom.Icosahedron(1, 0.5)
	breath := testBreath(t, 1)
	out := Displace(Lookup("gale"), base, 0.5, 1.0, breath, 1.0)

	if len(out.Vertices) != len(base.Vertices) ||
		len(out.Faces) != len(base.Faces) ||
		len(out.Edges) != len(base.Edges) {
		t.Error("Displace changed topology")
	}
	if err := out.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	// Input untouched.
	fresh := geom.Icosahedron(1, 0.5)
	for i := range base.Vertices {
		if base.Vertices[i] != fresh.Vertices[i] {
			t.Fatal("Displace mutated its input")
		}
	}
}
