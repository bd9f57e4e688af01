package viewer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default configuration file, relative to the working directory.
const ConfigPath = "config/viewer.yaml"

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// AssetConfig points at the files loaded on startup. Empty shader paths
// select the built-in shader pair.
type AssetConfig struct {
	Model          string `yaml:"model"`
	Texture        string `yaml:"texture"`
	VertexShader   string `yaml:"vertex_shader,omitempty"`
	FragmentShader string `yaml:"fragment_shader,omitempty"`
	FlipUVs        bool   `yaml:"flip_uvs"`
}

type ControlConfig struct {
	Speed       float64 `yaml:"speed"`
	Sensitivity float64 `yaml:"sensitivity"`
	SpinRate    float64 `yaml:"spin_rate"`
}

type ModelConfig struct {
	Scale float32    `yaml:"scale"`
	Start [2]float32 `yaml:"start"` // x, z; the model never leaves y = 0
}

type ProjectionConfig struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type TelemetryConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Config holds everything the viewer reads at startup.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Assets     AssetConfig      `yaml:"assets"`
	Controls   ControlConfig    `yaml:"controls"`
	Model      ModelConfig      `yaml:"model"`
	Projection ProjectionConfig `yaml:"projection"`
	Clear      [4]float32       `yaml:"clear"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// Default returns the stock viewer settings.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Earth Viewer",
			VSync:  true,
		},
		Assets: AssetConfig{
			Model:   "assets/earth/13902_Earth_v1_l3.obj",
			Texture: "assets/earth/Earth_diff.jpg",
			FlipUVs: true,
		},
		Controls: ControlConfig{
			Speed:       50,
			Sensitivity: 0.1,
			SpinRate:    10,
		},
		Model: ModelConfig{
			Scale: 0.5,
			Start: [2]float32{0, -500},
		},
		Projection: ProjectionConfig{
			FOV:  45,
			Near: 0.1,
			Far:  1000,
		},
		Clear: [4]float32{0, 0, 0, 1},
		Telemetry: TelemetryConfig{
			Interval: 2 * time.Second,
		},
	}
}

// Load reads a YAML config over Default(). A missing file is not an error;
// keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the viewer cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Assets.Model == "":
		return errors.New("assets.model is required")
	case c.Projection.FOV <= 0 || c.Projection.FOV >= 180:
		return fmt.Errorf("projection.fov %v must be in (0, 180)", c.Projection.FOV)
	case c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near:
		return fmt.Errorf("projection planes near=%v far=%v must satisfy 0 < near < far", c.Projection.Near, c.Projection.Far)
	case c.Model.Scale <= 0:
		return fmt.Errorf("model.scale %v must be positive", c.Model.Scale)
	case c.Controls.Speed < 0 || c.Controls.Sensitivity < 0:
		return errors.New("controls.speed and controls.sensitivity must not be negative")
	case c.Controls.SpinRate <= 0:
		return fmt.Errorf("controls.spin_rate %v must be positive", c.Controls.SpinRate)
	}
	return nil
}

// Camera builds the transform state described by the config.
func (c Config) Camera() *Camera {
	cam := NewCamera()
	cam.X = float64(c.Model.Start[0])
	cam.Z = float64(c.Model.Start[1])
	cam.Speed = c.Controls.Speed
	cam.Sensitivity = c.Controls.Sensitivity
	cam.SpinRate = c.Controls.SpinRate
	cam.Scale = c.Model.Scale
	cam.FOV = c.Projection.FOV
	cam.Near = c.Projection.Near
	cam.Far = c.Projection.Far
	return cam
}
