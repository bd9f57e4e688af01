package viewer

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, "viewer.yaml", `
window:
  width: 1280
controls:
  spin_rate: 25
model:
  start: [10, -200]
clear: [0.1, 0.2, 0.3, 1]
telemetry:
  interval: 500ms
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 600 {
		t.Fatalf("window: %+v", cfg.Window)
	}
	if cfg.Controls.SpinRate != 25 || cfg.Controls.Speed != 50 || cfg.Controls.Sensitivity != 0.1 {
		t.Fatalf("controls: %+v", cfg.Controls)
	}
	if cfg.Model.Start != [2]float32{10, -200} || cfg.Model.Scale != 0.5 {
		t.Fatalf("model: %+v", cfg.Model)
	}
	if cfg.Clear != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Fatalf("clear: %v", cfg.Clear)
	}
	if cfg.Telemetry.Interval != 500*time.Millisecond {
		t.Fatalf("telemetry interval: %v", cfg.Telemetry.Interval)
	}
	if cfg.Assets.Model != Default().Assets.Model {
		t.Fatalf("assets.model lost its default: %q", cfg.Assets.Model)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "window: [not, a, map\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestSampleConfigIsValid(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", ConfigPath))
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, false},
		{"no model", func(c *Config) { c.Assets.Model = "" }, false},
		{"no texture is fine", func(c *Config) { c.Assets.Texture = "" }, true},
		{"fov zero", func(c *Config) { c.Projection.FOV = 0 }, false},
		{"fov 180", func(c *Config) { c.Projection.FOV = 180 }, false},
		{"near zero", func(c *Config) { c.Projection.Near = 0 }, false},
		{"far before near", func(c *Config) { c.Projection.Far = 0.05 }, false},
		{"zero scale", func(c *Config) { c.Model.Scale = 0 }, false},
		{"negative speed", func(c *Config) { c.Controls.Speed = -1 }, false},
		{"negative spin", func(c *Config) { c.Controls.SpinRate = -10 }, false},
		{"zero spin", func(c *Config) { c.Controls.SpinRate = 0 }, false},
		{"frozen movement", func(c *Config) { c.Controls.Speed, c.Controls.Sensitivity = 0, 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestConfigCamera(t *testing.T) {
	cfg := Default()
	cfg.Model.Start = [2]float32{3, -42}
	cfg.Controls = ControlConfig{Speed: 7, Sensitivity: 0.5, SpinRate: 2}
	cfg.Projection = ProjectionConfig{FOV: 60, Near: 1, Far: 50}
	cfg.Model.Scale = 2

	c := cfg.Camera()
	if c.X != 3 || c.Y != 0 || c.Z != -42 {
		t.Fatalf("position: (%v, %v, %v)", c.X, c.Y, c.Z)
	}
	if c.Speed != 7 || c.Sensitivity != 0.5 || c.SpinRate != 2 || c.Scale != 2 {
		t.Fatalf("controls: %+v", c)
	}
	if c.FOV != 60 || c.Near != 1 || c.Far != 50 {
		t.Fatalf("projection: fov=%v near=%v far=%v", c.FOV, c.Near, c.Far)
	}

	// A config-built camera still treats its first mouse move as a baseline.
	c.OnMouseMove(100, 100)
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Fatalf("first move rotated: yaw=%v pitch=%v", c.Yaw, c.Pitch)
	}
}

func TestDefaultCameraMatchesNewCamera(t *testing.T) {
	if got, want := Default().Camera(), NewCamera(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Default().Camera() = %+v, want %+v", got, want)
	}
}
