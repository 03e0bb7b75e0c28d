package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/liftoff/input"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 || cfg.Screen.TargetFPS != 60 {
		t.Errorf("unexpected screen config: %+v", cfg.Screen)
	}
	if cfg.Propulsor.AverageThrust != 144 || cfg.Propulsor.MaxThrust != 186 || cfg.Propulsor.BurnDuration != 1.5 {
		t.Errorf("unexpected propulsor config: %+v", cfg.Propulsor)
	}
	if cfg.Body.Mass != 0.1 || cfg.Body.DragCoefficient != 0.5 {
		t.Errorf("unexpected body config: %+v", cfg.Body)
	}
	if cfg.Colors.Ground != (RGBA{152, 251, 152, 255}) {
		t.Errorf("unexpected ground color: %v", cfg.Colors.Ground)
	}
}

func TestDerivedGeometry(t *testing.T) {
	cfg := Defaults()

	if cfg.Derived.GroundY != 500 {
		t.Errorf("expected ground at 500, got %v", cfg.Derived.GroundY)
	}
	if cfg.Derived.RestY != 400 {
		t.Errorf("expected rest Y 400, got %v", cfg.Derived.RestY)
	}
	if cfg.Derived.BodyX != 375 {
		t.Errorf("expected body X 375, got %v", cfg.Derived.BodyX)
	}
	if cfg.Derived.FrameDT != 1.0/60 {
		t.Errorf("expected frame dt 1/60, got %v", cfg.Derived.FrameDT)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("body:\n  mass: 0.25\npropulsor:\n  burn_duration: 2\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}
	if cfg.Body.Mass != 0.25 {
		t.Errorf("expected overlaid mass 0.25, got %v", cfg.Body.Mass)
	}
	if cfg.Propulsor.BurnDuration != 2 {
		t.Errorf("expected overlaid burn duration 2, got %v", cfg.Propulsor.BurnDuration)
	}
	// Fields absent from the overlay keep their defaults
	if cfg.Body.DragCoefficient != 0.5 {
		t.Errorf("expected default drag coefficient, got %v", cfg.Body.DragCoefficient)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero mass", func(c *Config) { c.Body.Mass = 0 }},
		{"negative mass", func(c *Config) { c.Body.Mass = -1 }},
		{"negative drag", func(c *Config) { c.Body.DragCoefficient = -0.1 }},
		{"zero impulse", func(c *Config) { c.Propulsor.TotalImpulse = 0 }},
		{"zero average thrust", func(c *Config) { c.Propulsor.AverageThrust = 0 }},
		{"max below average", func(c *Config) { c.Propulsor.MaxThrust = 100 }},
		{"zero burn", func(c *Config) { c.Propulsor.BurnDuration = 0 }},
		{"empty launch key", func(c *Config) { c.Input.LaunchKey = " " }},
		{"unbindable launch key", func(c *Config) { c.Input.LaunchKey = "f1" }},
		{"zero fps", func(c *Config) { c.Screen.TargetFPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateLaunchKey(t *testing.T) {
	cfg := Defaults()
	cfg.Input.LaunchKey = "f1"
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) || !errors.Is(err, input.ErrUnknownKey) {
		t.Errorf("expected ErrInvalid wrapping ErrUnknownKey, got %v", err)
	}

	cfg.Input.LaunchKey = " Enter "
	if err := cfg.Validate(); err != nil {
		t.Errorf("named key rejected: %v", err)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("body:\n  mass: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for zero mass, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Body.Mass = 0.3
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading yaml: %v", err)
	}
	if loaded.Body.Mass != 0.3 {
		t.Errorf("expected mass 0.3 after reload, got %v", loaded.Body.Mass)
	}
}
