// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/liftoff/input"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned (wrapped) when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Colors    ColorsConfig    `yaml:"colors"`
	Ground    GroundConfig    `yaml:"ground"`
	Body      BodyConfig      `yaml:"body"`
	Propulsor PropulsorConfig `yaml:"propulsor"`
	Input     InputConfig     `yaml:"input"`
	Exhaust   ExhaustConfig   `yaml:"exhaust"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// RGBA is an 8-bit color as [r, g, b, a].
type RGBA [4]uint8

// ColorsConfig holds the fill colors of the scene.
type ColorsConfig struct {
	Air     RGBA `yaml:"air"`
	Ground  RGBA `yaml:"ground"`
	Body    RGBA `yaml:"body"`
	Exhaust RGBA `yaml:"exhaust"`
}

// GroundConfig holds the ground strip at the bottom of the screen.
type GroundConfig struct {
	Height float64 `yaml:"height"` // Pixels
}

// BodyConfig holds the launched body parameters.
type BodyConfig struct {
	Width           float64 `yaml:"width"`  // Pixels
	Height          float64 `yaml:"height"` // Pixels
	Mass            float64 `yaml:"mass"`   // Kilograms
	DragCoefficient float64 `yaml:"drag_coefficient"`
}

// PropulsorConfig holds the static propulsor parameters.
type PropulsorConfig struct {
	TotalImpulse  float64 `yaml:"total_impulse"`  // N·s
	AverageThrust float64 `yaml:"average_thrust"` // N
	MaxThrust     float64 `yaml:"max_thrust"`     // N
	BurnDuration  float64 `yaml:"burn_duration"`  // Seconds
}

// InputConfig holds key bindings.
type InputConfig struct {
	LaunchKey string `yaml:"launch_key"`
}

// ExhaustConfig holds the cosmetic exhaust particle parameters.
type ExhaustConfig struct {
	SpawnPerFrame int     `yaml:"spawn_per_frame"`
	Lifetime      float64 `yaml:"lifetime"` // Seconds
	Speed         float64 `yaml:"speed"`    // Pixels per second
	Size          float64 `yaml:"size"`     // Pixels
}

// CameraConfig holds vertical follow camera parameters.
type CameraConfig struct {
	TopMargin float64 `yaml:"top_margin"` // Pixels kept between body and top edge
	Smoothing float64 `yaml:"smoothing"`  // Follow rate per second (0 = snap)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GroundY   float64 // Top of the ground strip
	RestY     float64 // Resting Y of the body (ground reference)
	BodyX     float64 // Horizontal position of the body, centered
	ScreenW32 float32
	ScreenH32 float32
	FrameDT   float64 // 1 / TargetFPS, also the fixed dt of headless runs
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ComputeDerived()

	return cfg, nil
}

// Validate reports the first configuration error, wrapped around ErrInvalid.
func (c *Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Screen.Width > 0 && c.Screen.Height > 0, "screen dimensions must be positive"},
		{c.Screen.TargetFPS > 0, "screen.target_fps must be positive"},
		{c.Ground.Height >= 0 && c.Ground.Height < float64(c.Screen.Height), "ground.height must be within the screen"},
		{c.Body.Width > 0 && c.Body.Height > 0, "body dimensions must be positive"},
		{c.Body.Height+c.Ground.Height <= float64(c.Screen.Height), "body does not fit above the ground"},
		{c.Body.Mass > 0, "body.mass must be positive"},
		{c.Body.DragCoefficient >= 0, "body.drag_coefficient must not be negative"},
		{c.Propulsor.TotalImpulse > 0, "propulsor.total_impulse must be positive"},
		{c.Propulsor.AverageThrust > 0, "propulsor.average_thrust must be positive"},
		{c.Propulsor.MaxThrust >= c.Propulsor.AverageThrust, "propulsor.max_thrust must be at least average_thrust"},
		{c.Propulsor.BurnDuration > 0, "propulsor.burn_duration must be positive"},
		{c.Exhaust.SpawnPerFrame >= 0 && c.Exhaust.Lifetime >= 0, "exhaust parameters must not be negative"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.msg)
		}
	}
	if _, err := input.ParseKey(c.Input.LaunchKey); err != nil {
		return fmt.Errorf("%w: input.launch_key: %w", ErrInvalid, err)
	}
	return nil
}

// ComputeDerived calculates values derived from loaded config.
// Call again after mutating fields programmatically.
func (c *Config) ComputeDerived() {
	c.Derived.GroundY = float64(c.Screen.Height) - c.Ground.Height
	c.Derived.RestY = c.Derived.GroundY - c.Body.Height
	c.Derived.BodyX = float64(c.Screen.Width/2) - c.Body.Width/2
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.FrameDT = 1.0 / float64(c.Screen.TargetFPS)
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
