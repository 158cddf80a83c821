package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/noetic-labs/resonant/field"
)

// FieldTexture uploads a scalar grid as a GPU texture with a fixed color
// gradient.
type FieldTexture struct {
	texture rl.Texture2D
	pixels  []color.RGBA
	size    int
}

// NewFieldTexture allocates a size x size texture.
func NewFieldTexture(size int) *FieldTexture {
	img := rl.GenImageColor(size, size, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return &FieldTexture{
		texture: tex,
		pixels:  make([]color.RGBA, size*size),
		size:    size,
	}
}

// Update re-uploads the texture from the grid, normalizing samples to
// [0,1] using the grid's own min/max.
func (ft *FieldTexture) Update(g *field.Grid) {
	min, max, _ := g.Stats()
	span := max - min
	if span <= 0 {
		span = 1
	}
	for i, raw := range g.Data {
		v := (raw - min) / span
		ft.pixels[i] = gradient(v)
	}
	rl.UpdateTexture(ft.texture, ft.pixels)
}

// Texture returns the underlying raylib texture.
func (ft *FieldTexture) Texture() rl.Texture2D {
	return ft.texture
}

// Size returns the texture edge length in pixels.
func (ft *FieldTexture) Size() int {
	return ft.size
}

// Unload releases the GPU texture.
func (ft *FieldTexture) Unload() {
	rl.UnloadTexture(ft.texture)
}

// gradient maps a normalized value through a four-stop color ramp:
// dark blue -> cyan -> yellow-green -> white.
func gradient(v float32) color.RGBA {
	var r, g, b uint8
	switch {
	case v < 0.25:
		t := v / 0.25
		r = uint8(10 + t*30)
		g = uint8(20 + t*60)
		b = uint8(60 + t*100)
	case v < 0.5:
		t := (v - 0.25) / 0.25
		r = uint8(40 + t*20)
		g = uint8(80 + t*120)
		b = uint8(160 + t*40)
	case v < 0.75:
		t := (v - 0.5) / 0.25
		r = uint8(60 + t*140)
		g = uint8(200 - t*40)
		b = uint8(200 - t*150)
	default:
		t := (v - 0.75) / 0.25
		r = uint8(200 + t*55)
		g = uint8(160 + t*95)
		b = uint8(50 + t*205)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
