package config

import (
	"errors"
	"fmt"
	"os"

	"drone-viewer/internal/view"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration. Every field has a default matching the stock demo.
type Config struct {
	Window WindowConfig `yaml:"window"`
	View   ViewConfig   `yaml:"view"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`

	// Keys rebinds keys by name, e.g. {"x": "quit", "up": "tilt_up"}.
	// An empty action name unbinds the key.
	Keys map[string]string `yaml:"keys"`
}

// WindowConfig positions and sizes the main window
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// ViewConfig holds initial view values and limits, in degrees
type ViewConfig struct {
	Rotation     float32 `yaml:"rotation"`
	Azimuth      float32 `yaml:"azimuth"`
	StepSize     float32 `yaml:"step_size"`
	StepMin      float32 `yaml:"step_min"`
	StepMax      float32 `yaml:"step_max"`
	StepScale    float32 `yaml:"step_scale"`
	AzimuthLimit float32 `yaml:"azimuth_limit"`
}

// RenderConfig holds initial values for the runtime render toggles
type RenderConfig struct {
	Wireframe bool `yaml:"wireframe"`
	ShowHUD   bool `yaml:"show_hud"`
	HUDFontPx int  `yaml:"hud_font_px"`
}

// LogConfig selects the logrus level
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "DRONE SIMULATOR",
			Width:  360,
			Height: 360,
			X:      10,
			Y:      60,
		},
		View: ViewConfig{
			Rotation:     view.DefaultRotation,
			Azimuth:      view.DefaultAzimuth,
			StepSize:     view.DefaultStepSize,
			StepMin:      view.DefaultStepMin,
			StepMax:      view.DefaultStepMax,
			StepScale:    view.DefaultStepScale,
			AzimuthLimit: view.DefaultAzimuthLimit,
		},
		Render: RenderConfig{
			HUDFontPx: 14,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot run with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	v := c.View
	if v.StepMin <= 0 || v.StepMin > v.StepMax {
		return fmt.Errorf("step range [%g, %g] is empty", v.StepMin, v.StepMax)
	}
	if v.StepMax > view.MaxStep {
		return fmt.Errorf("step_max must be at most %g, got %g", view.MaxStep, v.StepMax)
	}
	if v.StepScale <= 1 {
		return fmt.Errorf("step_scale must be greater than 1, got %g", v.StepScale)
	}
	if v.AzimuthLimit <= 0 || v.AzimuthLimit >= 90 {
		return fmt.Errorf("azimuth_limit must be in (0, 90), got %g", v.AzimuthLimit)
	}
	if c.Render.HUDFontPx <= 0 {
		return fmt.Errorf("hud_font_px must be positive, got %d", c.Render.HUDFontPx)
	}
	return nil
}

// NewViewState builds the view state described by the config, clamping initial values into range
func (c *Config) NewViewState() *view.State {
	s := view.New()
	s.Limits = view.Limits{
		AzimuthLimit: c.View.AzimuthLimit,
		StepMin:      c.View.StepMin,
		StepMax:      c.View.StepMax,
		StepScale:    c.View.StepScale,
	}
	s.StepSize = clamp(c.View.StepSize, s.Limits.StepMin, s.Limits.StepMax)
	s.Azimuth = clamp(c.View.Azimuth, -s.Limits.AzimuthLimit, s.Limits.AzimuthLimit)
	s.Rotation = view.WrapDegrees(c.View.Rotation)
	return s
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
