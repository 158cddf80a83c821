// Package config provides configuration loading and access for the
// engine and its viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Engine    EngineConfig    `yaml:"engine"`
	Breath    BreathConfig    `yaml:"breath"`
	Field     FieldConfig     `yaml:"field"`
	Wave      WaveConfig      `yaml:"wave"`
	Fractal   FractalConfig   `yaml:"fractal"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the viewer.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// EngineConfig holds top-level generation parameters.
type EngineConfig struct {
	Archetype string  `yaml:"archetype"` // archetype id; unknown ids fall back to the default row
	Radius    float64 `yaml:"radius"`    // base solid circumradius
	Awareness float64 `yaml:"awareness"` // awareness level in [0,1]
}

// BreathConfig holds the default breathing pattern in seconds.
type BreathConfig struct {
	Inhale     float64 `yaml:"inhale"`
	Hold       float64 `yaml:"hold"`
	Exhale     float64 `yaml:"exhale"`
	TotalCycle float64 `yaml:"total_cycle"` // remainder beyond inhale+hold+exhale is the pause
}

// FieldConfig holds scalar field grid parameters.
type FieldConfig struct {
	GridSize     int     `yaml:"grid_size"`     // grid is GridSize x GridSize
	Extent       float64 `yaml:"extent"`        // world units spanned by the grid
	SimplexScale float64 `yaml:"simplex_scale"` // frequency of the smooth background fill
	SimplexSeed  int64   `yaml:"simplex_seed"`
}

// WaveConfig holds wave synthesis parameters.
type WaveConfig struct {
	BaseFrequency float64 `yaml:"base_frequency"` // base of the Fibonacci harmonic stack
}

// FractalConfig holds mesh refinement parameters.
type FractalConfig struct {
	SubdivisionLevels int     `yaml:"subdivision_levels"` // requested passes before awareness scaling
	DisplacementScale float64 `yaml:"displacement_scale"` // multiplier on each archetype's own displacement scale
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // frames in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	PauseSec  float64 // pause segment of the breath cycle
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	pause := c.Breath.TotalCycle - c.Breath.Inhale - c.Breath.Hold - c.Breath.Exhale
	if pause < 0 {
		// Keep the cycle consistent when segments overrun it.
		c.Breath.TotalCycle = c.Breath.Inhale + c.Breath.Hold + c.Breath.Exhale
		pause = 0
	}
	c.Derived.PauseSec = pause

	if c.Engine.Awareness < 0 {
		c.Engine.Awareness = 0
	}
	if c.Engine.Awareness > 1 {
		c.Engine.Awareness = 1
	}
	if c.Engine.Radius <= 0 {
		c.Engine.Radius = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
