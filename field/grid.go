package field

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/noetic-labs/resonant/wave"
)

// Grid is a W×H row-major scalar sample grid. Values are whatever the
// fill source produced; the renderer normalizes for display.
type Grid struct {
	W, H int
	Data []float32
}

// NewGrid allocates a zeroed grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Data: make([]float32, w*h)}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, Data: make([]float32, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// Fill evaluates fn at every cell center. u and v are normalized to
// [0,1) across the grid.
func (g *Grid) Fill(fn func(u, v float64) float64) {
	for y := 0; y < g.H; y++ {
		v := (float64(y) + 0.5) / float64(g.H)
		for x := 0; x < g.W; x++ {
			u := (float64(x) + 0.5) / float64(g.W)
			g.Data[y*g.W+x] = float32(fn(u, v))
		}
	}
}

// FillNoise fills the grid from ConsciousnessNoise sampled on the z=0
// plane, with extent world units across each axis.
func (g *Grid) FillNoise(awareness, t, extent float64) {
	g.Fill(func(u, v float64) float64 {
		return ConsciousnessNoise(u*extent, v*extent, 0, awareness, t)
	})
}

// FillFieldWave fills the grid from a harmonic field wave sampled on the
// z=0 plane.
func (g *Grid) FillFieldWave(fw *wave.FieldWave, t, extent float64) {
	g.Fill(func(u, v float64) float64 {
		return fw.ValueAt(u*extent, v*extent, 0, t)
	})
}

// FillSimplex fills the grid from normalized opensimplex noise. Used for
// smooth texture-style backgrounds where the analytic noise is too harsh.
func (g *Grid) FillSimplex(seed int64, scale float64) {
	noise := opensimplex.NewNormalized(seed)
	g.Fill(func(u, v float64) float64 {
		return noise.Eval2(u*scale, v*scale)
	})
}

// Sample returns the bilinearly interpolated value at normalized (u,v),
// wrapping toroidally.
func (g *Grid) Sample(u, v float64) float32 {
	fx := u * float64(g.W)
	fy := v * float64(g.H)

	x0 := modInt(int(math.Floor(fx)), g.W)
	y0 := modInt(int(math.Floor(fy)), g.H)
	x1 := modInt(x0+1, g.W)
	y1 := modInt(y0+1, g.H)

	tx := float32(fx - math.Floor(fx))
	ty := float32(fy - math.Floor(fy))

	a := g.Data[y0*g.W+x0] + (g.Data[y0*g.W+x1]-g.Data[y0*g.W+x0])*tx
	b := g.Data[y1*g.W+x0] + (g.Data[y1*g.W+x1]-g.Data[y1*g.W+x0])*tx
	return a + (b-a)*ty
}

// Stats returns the min, max, and mean of the grid values.
func (g *Grid) Stats() (min, max, mean float32) {
	if len(g.Data) == 0 {
		return 0, 0, 0
	}
	min, max = g.Data[0], g.Data[0]
	var sum float64
	for _, v := range g.Data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += float64(v)
	}
	mean = float32(sum / float64(len(g.Data)))
	return min, max, mean
}

// Values returns the grid samples as float64 for classification.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.Data))
	for i, v := range g.Data {
		out[i] = float64(v)
	}
	return out
}

func modInt(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
