package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSolidCounts(t *testing.T) {
	tests := []struct {
		name   string
		kind   SolidKind
		verts  int
		faces  int
		edges  int
	}{
		{"tetrahedron", KindTetrahedron, 4, 4, 6},
		{"cube", KindCube, 8, 6, 12},
		{"octahedron", KindOctahedron, 6, 8, 12},
		{"dodecahedron", KindDodecahedron, 20, 12, 30},
		{"icosahedron", KindIcosahedron, 12, 20, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.kind, 1.0, 0.0)
			if len(g.Vertices) != tt.verts {
				t.Errorf("vertices = %d, want %d", len(g.Vertices), tt.verts)
			}
			if len(g.Faces) != tt.faces {
				t.Errorf("faces = %d, want %d", len(g.Faces), tt.faces)
			}
			if len(g.Edges) != tt.edges {
				t.Errorf("edges = %d, want %d", len(g.Edges), tt.edges)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestTetrahedronScenario(t *testing.T) {
	g := Tetrahedron(1.0, 0.0)
	if len(g.Vertices) != 4 || len(g.Faces) != 4 || len(g.Edges) != 6 {
		t.Fatalf("got %d vertices, %d faces, %d edges", len(g.Vertices), len(g.Faces), len(g.Edges))
	}
	for _, face := range g.Faces {
		if len(face) != 3 {
			t.Errorf("face has %d indices, want 3", len(face))
		}
	}
	if g.Radius != 1.0 {
		t.Errorf("radius = %v, want exactly 1.0", g.Radius)
	}
}

func TestSolidCircumradius(t *testing.T) {
	kinds := []SolidKind{KindTetrahedron, KindCube, KindOctahedron, KindDodecahedron, KindIcosahedron}
	const radius = 2.5

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			g := Build(kind, radius, 0.0)
			for i, v := range g.Vertices {
				if n := r3.Norm(v); math.Abs(n-radius) > 1e-9 {
					t.Errorf("vertex %d norm = %v, want %v", i, n, radius)
				}
			}
		})
	}
}

func TestAwarenessScalesVertices(t *testing.T) {
	base := Cube(1.0, 0.0)
	scaled := Cube(1.0, 1.0)

	for i := range base.Vertices {
		want := r3.Scale(1.1, base.Vertices[i])
		got := scaled.Vertices[i]
		if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
			t.Errorf("vertex %d = %v, want %v", i, got, want)
		}
	}
}

func TestOctahedronDual(t *testing.T) {
	g := Octahedron(1.0, 0.0)
	if g.Dual == nil {
		t.Fatal("octahedron should carry a cube dual")
	}
	if len(g.Dual.Vertices) != 8 {
		t.Errorf("dual vertices = %d, want 8", len(g.Dual.Vertices))
	}
	// The reference is one-way: the dual must not chain further.
	if g.Dual.Dual != nil {
		t.Error("dual carries its own dual; reference must be one-way")
	}
}

func TestNoDualForGoldenSolids(t *testing.T) {
	if g := Dodecahedron(1.0, 0.0); g.Dual != nil {
		t.Error("dodecahedron must not auto-populate a dual")
	}
	if g := Icosahedron(1.0, 0.0); g.Dual != nil {
		t.Error("icosahedron must not auto-populate a dual")
	}
}

func TestSolidKindString(t *testing.T) {
	if got := KindDodecahedron.String(); got != "dodecahedron" {
		t.Errorf("String() = %q", got)
	}
	if got := SolidKind(99).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}
