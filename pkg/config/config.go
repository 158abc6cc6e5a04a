// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/user/tagshot/pkg/capture"
	"github.com/user/tagshot/pkg/orchestrator"
	"github.com/user/tagshot/pkg/ports"
	"github.com/user/tagshot/pkg/state"
	"gopkg.in/yaml.v3"
)

// Rasterizer engines.
const (
	EngineChromedp   = "chromedp"
	EngineRod        = "rod"
	EnginePlaywright = "playwright"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Engines lists the supported rasterizer engines, default first.
func Engines() []string {
	return []string{EngineChromedp, EngineRod, EnginePlaywright}
}

// Config represents the full configuration for tagshot.
type Config struct {
	// Export
	Mode        string `yaml:"mode"`
	Transparent bool   `yaml:"transparent"`
	OutputDir   string `yaml:"output_dir"`
	Product     string `yaml:"product"`

	// Capture
	Engine           string  `yaml:"engine"`
	DirectScale      float64 `yaml:"direct_scale"`
	HighQualityScale float64 `yaml:"high_quality_scale"`
	ImageTimeoutMs   int     `yaml:"image_timeout_ms"`

	// Browser
	Headless   bool   `yaml:"headless"`
	ChromePath string `yaml:"chrome_path"`
	NoSandbox  bool   `yaml:"no_sandbox"`

	// State persistence
	StateFile string `yaml:"state_file"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	opts := capture.DefaultOptions()
	return Config{
		Mode:      string(capture.ModeHighQuality),
		OutputDir: ".",
		Product:   opts.Product,

		Engine:           EngineChromedp,
		DirectScale:      opts.DirectScale,
		HighQualityScale: opts.HighQualityScale,
		ImageTimeoutMs:   int(opts.ImageTimeout / time.Millisecond),

		Headless: true,

		LogLevel: "info",

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks values that cannot be corrected silently.
func (c Config) Validate() error {
	if _, err := capture.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !validEngine(c.Engine) {
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidConfig, c.Engine)
	}
	if c.DirectScale <= 0 || c.HighQualityScale <= 0 {
		return fmt.Errorf("%w: scales must be positive", ErrInvalidConfig)
	}
	if c.ImageTimeoutMs < 0 {
		return fmt.Errorf("%w: negative image timeout", ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	return nil
}

func validEngine(name string) bool {
	for _, e := range Engines() {
		if e == name {
			return true
		}
	}
	return false
}

// ImageTimeout returns the image wait bound as a duration.
func (c Config) ImageTimeout() time.Duration {
	return time.Duration(c.ImageTimeoutMs) * time.Millisecond
}

// CaptureMode returns the parsed mode, falling back to high quality.
func (c Config) CaptureMode() capture.Mode {
	mode, err := capture.ParseMode(c.Mode)
	if err != nil {
		return capture.ModeHighQuality
	}
	return mode
}

// ToCaptureOptions converts Config to capture.Options.
func (c Config) ToCaptureOptions() capture.Options {
	opts := capture.DefaultOptions()
	if c.Product != "" {
		opts.Product = c.Product
	}
	opts.DirectScale = c.DirectScale
	opts.HighQualityScale = c.HighQualityScale
	opts.ImageTimeout = c.ImageTimeout()
	return opts
}

// ToBrowserOptions converts Config to the options every engine takes.
func (c Config) ToBrowserOptions() ports.BrowserOptions {
	return ports.BrowserOptions{
		Headless:     c.Headless,
		ChromePath:   c.ChromePath,
		NoSandbox:    c.NoSandbox,
		ImageTimeout: c.ImageTimeout(),
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config for st.
func (c Config) ToOrchestratorConfig(st state.AppState) orchestrator.Config {
	return orchestrator.Config{
		State:       st,
		Mode:        c.CaptureMode(),
		Transparent: c.Transparent,
	}
}
