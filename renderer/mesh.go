// Package renderer draws generated geometry and field grids with raylib.
// It owns no geometry state; everything is drawn from the records the
// engine returns.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/noetic-labs/resonant/archetype"
	"github.com/noetic-labs/resonant/geom"
)

// vec3 converts an r3 vector to a raylib vector.
func vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// SignatureColor converts an archetype color triple to a raylib color.
func SignatureColor(sig archetype.Signature) rl.Color {
	return rl.NewColor(
		uint8(sig.Color[0]*255),
		uint8(sig.Color[1]*255),
		uint8(sig.Color[2]*255),
		255,
	)
}

// fade returns the color at reduced alpha for dual solids.
func fade(c rl.Color, alpha uint8) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, alpha)
}

// DrawGeometry draws a geometry as a wireframe: one line per edge and a
// small sphere per vertex. Must be called inside BeginMode3D.
func DrawGeometry(g *geom.Geometry, col rl.Color) {
	for _, edge := range g.Edges {
		rl.DrawLine3D(vec3(g.Vertices[edge[0]]), vec3(g.Vertices[edge[1]]), col)
	}
	markerRadius := float32(g.Radius) * 0.015
	for _, v := range g.Vertices {
		rl.DrawSphere(vec3(v), markerRadius, col)
	}
	if g.Dual != nil {
		dualCol := fade(col, 70)
		for _, edge := range g.Dual.Edges {
			rl.DrawLine3D(vec3(g.Dual.Vertices[edge[0]]), vec3(g.Dual.Vertices[edge[1]]), dualCol)
		}
	}
}
