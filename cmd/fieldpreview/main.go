// Field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/noetic-labs/resonant/config"
	"github.com/noetic-labs/resonant/field"
	"github.com/noetic-labs/resonant/renderer"
	"github.com/noetic-labs/resonant/wave"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// Source selects which fill drives the preview grid.
type Source int

const (
	SourceNoise Source = iota
	SourceFieldWave
	SourceSimplex
)

func (s Source) String() string {
	switch s {
	case SourceNoise:
		return "consciousness noise"
	case SourceFieldWave:
		return "field wave"
	case SourceSimplex:
		return "simplex"
	}
	return "unknown"
}

// PreviewParams holds the field generation parameters.
type PreviewParams struct {
	Awareness    float32
	BaseFreq     float32
	Extent       float32
	SimplexScale float32
	Seed         int64
}

// defaultParams seeds the sliders from the embedded configuration
// defaults, so the preview starts from what the engine would run with.
func defaultParams() PreviewParams {
	cfg, err := config.Load("")
	if err != nil {
		panic(fmt.Sprintf("fieldpreview: loading defaults: %v", err))
	}
	return PreviewParams{
		Awareness:    float32(cfg.Engine.Awareness),
		BaseFreq:     float32(cfg.Wave.BaseFrequency),
		Extent:       float32(cfg.Field.Extent),
		SimplexScale: float32(cfg.Field.SimplexScale),
		Seed:         cfg.Field.SimplexSeed,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	source := SourceNoise

	gridSize := 256
	grid := field.NewGrid(gridSize, gridSize)
	tex := renderer.NewFieldTexture(gridSize)
	defer tex.Unload()

	var t float32 = 0
	animating := false
	needsRegen := true

	for !rl.WindowShouldClose() {
		if animating {
			t += rl.GetFrameTime()
			needsRegen = true
		}

		if needsRegen {
			regenerate(grid, source, params, t)
			tex.Update(grid)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			tex.Texture(),
			rl.Rectangle{Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Draw stats
		min, max, mean := grid.Stats()
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f  Avg: %.3f", min, max, mean), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.1f  Source: %s", t, source), 15, statsY+20, 16, rl.DarkGray)

		// Golden spiral overlay on the preview
		spiral := field.GoldenSpiral(64, float64(previewSize)/18, float64(params.Awareness))
		for _, p := range spiral {
			rl.DrawCircle(int32(10+previewSize/2+int(p[0])), int32(10+previewSize/2+int(p[1])), 2, rl.NewColor(255, 255, 255, 160))
		}

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Source button
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 250, Height: 30}, fmt.Sprintf("Source: %s", source)) {
			source = (source + 1) % 3
			needsRegen = true
		}
		panelY += 45

		// Awareness slider
		rl.DrawText("Awareness (octave count, amplitude)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newAwareness := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.0", "1.0",
			params.Awareness, 0.0, 1.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Awareness), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newAwareness != params.Awareness {
			params.Awareness = newAwareness
			needsRegen = true
		}
		panelY += 35

		// Base frequency slider
		rl.DrawText("Base frequency (harmonic stack)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFreq := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.01", "1.0",
			params.BaseFreq, 0.01, 1.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.BaseFreq), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newFreq != params.BaseFreq {
			params.BaseFreq = newFreq
			needsRegen = true
		}
		panelY += 35

		// Extent slider
		rl.DrawText("Extent (world units across the grid)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newExtent := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1.0", "32.0",
			params.Extent, 1.0, 32.0,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Extent), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newExtent != params.Extent {
			params.Extent = newExtent
			needsRegen = true
		}
		panelY += 35

		// Simplex scale slider
		rl.DrawText("Simplex scale", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1.0", "20.0",
			params.SimplexScale, 1.0, 20.0,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.SimplexScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newScale != params.SimplexScale {
			params.SimplexScale = newScale
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			t = 0
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			t = 0
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlLines := []string{
			"field:",
			fmt.Sprintf("  extent: %.1f", params.Extent),
			fmt.Sprintf("  simplex_scale: %.1f", params.SimplexScale),
			fmt.Sprintf("  simplex_seed: %d", params.Seed),
			"wave:",
			fmt.Sprintf("  base_frequency: %.2f", params.BaseFreq),
			"engine:",
			fmt.Sprintf("  awareness: %.2f", params.Awareness),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// regenerate fills the grid from the selected source - same fills the
// engine uses per frame.
func regenerate(grid *field.Grid, source Source, params PreviewParams, t float32) {
	switch source {
	case SourceNoise:
		grid.FillNoise(float64(params.Awareness), float64(t), float64(params.Extent))
	case SourceFieldWave:
		fw := wave.NewFieldWave(float64(params.BaseFreq))
		grid.FillFieldWave(fw, float64(t), float64(params.Extent))
	case SourceSimplex:
		grid.FillSimplex(params.Seed, float64(params.SimplexScale)+float64(math.Floor(float64(t))))
	}
}
