package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/noetic-labs/resonant/archetype"
	"github.com/noetic-labs/resonant/camera"
	"github.com/noetic-labs/resonant/config"
	"github.com/noetic-labs/resonant/engine"
	"github.com/noetic-labs/resonant/renderer"
	"github.com/noetic-labs/resonant/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	archetypeID := flag.String("archetype", "", "Archetype id (empty = use config)")
	awareness := flag.Float64("awareness", -1, "Awareness level 0..1 (negative = use config)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N generated frames (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	id := cfg.Engine.Archetype
	if *archetypeID != "" {
		id = *archetypeID
	}
	aw := cfg.Engine.Awareness
	if *awareness >= 0 {
		aw = *awareness
	}
	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	eng := engine.New(cfg, engine.Options{
		ArchetypeID: id,
		Radius:      cfg.Engine.Radius,
		Awareness:   aw,
	})

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if *headless {
		runHeadless(eng, output, *logStats, statsWindowSec, *maxFrames)
		return
	}
	runViewer(cfg, eng, output, *logStats, statsWindowSec, *maxFrames)
}

// runHeadless generates frames at a fixed cadence without graphics.
func runHeadless(eng *engine.Engine, output *telemetry.OutputManager, logStats bool, statsWindowSec float64, maxFrames int) {
	slog.Info("starting headless generation",
		"archetype", eng.Signature().ID,
		"awareness", eng.Awareness(),
		"max_frames", maxFrames,
	)

	const dt = time.Second / 60
	now := time.Now()
	lastStats := now
	for {
		eng.Generate(now)

		if now.Sub(lastStats).Seconds() >= statsWindowSec {
			flushStats(eng, output, logStats, now)
			lastStats = now
		}

		if maxFrames > 0 && int(eng.Frame()) >= maxFrames {
			flushStats(eng, output, logStats, now)
			slog.Info("max frames reached", "frame", eng.Frame())
			return
		}
		now = now.Add(dt)
	}
}

// runViewer opens a raylib window with the 3D geometry view and the
// field texture panel.
func runViewer(cfg *config.Config, eng *engine.Engine, output *telemetry.OutputManager, logStats bool, statsWindowSec float64, maxFrames int) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Resonant")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	orbit := camera.New(cfg.Engine.Radius * 3)
	fieldTex := renderer.NewFieldTexture(cfg.Field.GridSize)
	defer fieldTex.Unload()

	ids := archetype.IDs()
	idIndex := 0
	for i, candidate := range ids {
		if candidate == eng.Signature().ID {
			idIndex = i
			break
		}
	}

	lastStats := time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		handleInput(eng, orbit, ids, &idIndex)

		frame := eng.Generate(now)
		fieldTex.Update(frame.Grid)

		drawFrame(cfg, frame, orbit, fieldTex)

		if now.Sub(lastStats).Seconds() >= statsWindowSec {
			flushStats(eng, output, logStats, now)
			lastStats = now
		}
		if maxFrames > 0 && int(eng.Frame()) >= maxFrames {
			break
		}
	}
}

// handleInput processes orbit, zoom, archetype cycling, and awareness
// adjustment.
func handleInput(eng *engine.Engine, orbit *camera.Camera, ids []string, idIndex *int) {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		orbit.Orbit(float64(delta.X)*0.01, float64(delta.Y)*0.01)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		orbit.Dolly(1 - float64(wheel)*0.1)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		*idIndex = (*idIndex + 1) % len(ids)
		eng.SetArchetype(ids[*idIndex])
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		*idIndex = (*idIndex + len(ids) - 1) % len(ids)
		eng.SetArchetype(ids[*idIndex])
	}
	if rl.IsKeyDown(rl.KeyUp) {
		eng.SetAwareness(eng.Awareness() + 0.01)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		eng.SetAwareness(eng.Awareness() - 0.01)
	}
}

// drawFrame renders the 3D geometry view, the field texture panel, and
// the state readout.
func drawFrame(cfg *config.Config, frame *engine.Frame, orbit *camera.Camera, fieldTex *renderer.FieldTexture) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(12, 12, 20, 255))

	cx, cy, cz := orbit.Position()
	cam := rl.Camera3D{
		Position:   rl.Vector3{X: float32(cx), Y: float32(cy), Z: float32(cz)},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(cam)
	renderer.DrawGeometry(frame.Geometry, renderer.SignatureColor(frame.Signature))
	rl.EndMode3D()

	// Field texture panel in the lower-left corner
	panel := float32(160)
	rl.DrawTexturePro(
		fieldTex.Texture(),
		rl.Rectangle{Width: float32(fieldTex.Size()), Height: float32(fieldTex.Size())},
		rl.Rectangle{X: 10, Y: cfg.Derived.ScreenH32 - panel - 10, Width: panel, Height: panel},
		rl.Vector2{},
		0,
		rl.White,
	)
	rl.DrawRectangleLines(10, int32(cfg.Derived.ScreenH32-panel-10), int32(panel), int32(panel), rl.DarkGray)

	// State readout
	rl.DrawText(fmt.Sprintf("archetype: %s (%s, %s)",
		frame.Signature.ID, frame.Signature.Solid, frame.Signature.Pattern), 10, 10, 18, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("breath: %s  intensity %.2f  coherence %.2f",
		frame.Breath.Phase, frame.Breath.Intensity, frame.Breath.Coherence), 10, 32, 18, rl.LightGray)
	rl.DrawText(fmt.Sprintf("awareness: %.2f  vertices: %d",
		frame.State.AwarenessLevel, len(frame.Geometry.Vertices)), 10, 54, 18, rl.LightGray)
	rl.DrawText("arrows: archetype/awareness  drag: orbit  wheel: zoom",
		10, int32(cfg.Derived.ScreenH32)-24, 14, rl.Gray)

	// Breath pattern readout, right-anchored
	pattern := fmt.Sprintf("breath %g-%g-%g / %gs (pause %gs)",
		cfg.Breath.Inhale, cfg.Breath.Hold, cfg.Breath.Exhale,
		cfg.Breath.TotalCycle, cfg.Derived.PauseSec)
	rl.DrawText(pattern, int32(cfg.Derived.ScreenW32)-rl.MeasureText(pattern, 14)-10, 10, 14, rl.Gray)

	rl.EndDrawing()
}

// flushStats logs and writes the current telemetry window.
func flushStats(eng *engine.Engine, output *telemetry.OutputManager, logStats bool, now time.Time) {
	stats := eng.WindowStats(now)
	perf := eng.Perf().Stats()
	if logStats {
		stats.LogStats()
		perf.LogStats()
	}
	if err := output.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
	if err := output.WritePerf(perf, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
