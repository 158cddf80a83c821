package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Geometry
		wantErr bool
	}{
		{
			"valid triangle",
			Geometry{
				Vertices: []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}},
				Faces:    [][]int{{0, 1, 2}},
				Edges:    [][2]int{{0, 1}, {1, 2}, {0, 2}},
				Radius:   1,
			},
			false,
		},
		{
			"zero radius",
			Geometry{Vertices: []r3.Vec{{X: 1}}, Radius: 0},
			true,
		},
		{
			"negative radius",
			Geometry{Vertices: []r3.Vec{{X: 1}}, Radius: -1},
			true,
		},
		{
			"face index out of range",
			Geometry{
				Vertices: []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}},
				Faces:    [][]int{{0, 1, 3}},
				Radius:   1,
			},
			true,
		},
		{
			"degenerate face",
			Geometry{
				Vertices: []r3.Vec{{X: 1}, {Y: 1}},
				Faces:    [][]int{{0, 1}},
				Radius:   1,
			},
			true,
		},
		{
			"edge index out of range",
			Geometry{
				Vertices: []r3.Vec{{X: 1}, {Y: 1}},
				Edges:    [][2]int{{0, 5}},
				Radius:   1,
			},
			true,
		},
		{
			"negative index",
			Geometry{
				Vertices: []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}},
				Faces:    [][]int{{0, -1, 2}},
				Radius:   1,
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMustValidatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustValidate did not panic on malformed geometry")
		}
	}()
	g := Geometry{Radius: -1}
	g.MustValidate()
}

func TestCloneIndependence(t *testing.T) {
	g := Octahedron(1, 0)
	c := g.Clone()

	c.Vertices[0] = r3.Vec{X: 99}
	c.Faces[0][0] = 5
	c.Edges[0] = [2]int{5, 5}

	if g.Vertices[0] == (r3.Vec{X: 99}) {
		t.Error("clone shares vertex storage")
	}
	if g.Faces[0][0] == 5 {
		t.Error("clone shares face storage")
	}
	if g.Edges[0] == [2]int{5, 5} {
		t.Error("clone shares edge storage")
	}

	if c.Dual == nil {
		t.Fatal("clone dropped the dual")
	}
	if c.Dual == g.Dual {
		t.Error("clone shares the dual pointer")
	}
	if c.Dual.Dual != nil {
		t.Error("cloned dual nests another dual")
	}
}

func TestEdgesFromFaces(t *testing.T) {
	// Two triangles sharing edge (1,2): five unique edges, each stored
	// canonically as (min,max).
	faces := [][]int{{0, 1, 2}, {2, 1, 3}}
	edges := EdgesFromFaces(faces)
	if len(edges) != 5 {
		t.Fatalf("edges = %d, want 5", len(edges))
	}
	for _, e := range edges {
		if e[0] >= e[1] {
			t.Errorf("edge %v not in canonical (min,max) order", e)
		}
	}
}

func TestDirection(t *testing.T) {
	d := Direction(r3.Vec{}, r3.Vec{X: 3, Y: 0, Z: 4})
	if math.Abs(r3.Norm(d)-1) > 1e-12 {
		t.Errorf("direction norm = %v, want 1", r3.Norm(d))
	}
	if math.Abs(d.X-0.6) > 1e-12 || math.Abs(d.Z-0.8) > 1e-12 {
		t.Errorf("direction = %v, want (0.6, 0, 0.8)", d)
	}

	// Degenerate input returns the zero vector, never NaN.
	if z := Direction(r3.Vec{X: 1}, r3.Vec{X: 1}); z != (r3.Vec{}) {
		t.Errorf("degenerate direction = %v, want zero", z)
	}
}

func TestGoldenRatioConstants(t *testing.T) {
	if math.Abs(Phi-1.618033988749895) > 1e-12 {
		t.Errorf("Phi = %v", Phi)
	}
	if math.Abs(Phi*InvPhi-1) > 1e-12 {
		t.Errorf("Phi*InvPhi = %v, want 1", Phi*InvPhi)
	}
	// φ² = φ + 1.
	if math.Abs(Phi*Phi-(Phi+1)) > 1e-12 {
		t.Errorf("Phi² = %v, want Phi+1 = %v", Phi*Phi, Phi+1)
	}
}
