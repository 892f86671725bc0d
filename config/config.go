package config

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sim2d/core"
	"github.com/lixenwraith/sim2d/parameter"
)

// Config is the host-side runtime configuration, separate from the spec
// document: the spec describes the game, this describes the machine it
// runs on
type Config struct {
	StepHz          int    `yaml:"stepHz"`
	MaxCatchUpSteps int    `yaml:"maxCatchUpSteps"`
	Background      Color  `yaml:"background"`
	LogLevel        string `yaml:"logLevel"`
	AudioEnabled    bool   `yaml:"audioEnabled"`
	DebugOverlay    bool   `yaml:"debugOverlay"`
}

type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		StepHz:          60,
		MaxCatchUpSteps: parameter.MaxCatchUpSteps,
		Background:      Color{R: 16, G: 16, B: 24},
		LogLevel:        "info",
		AudioEnabled:    true,
	}
}

// Load reads a YAML config, layering the file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, eris.Wrapf(err, "config: parse %s", path)
	}
	if cfg.StepHz <= 0 {
		cfg.StepHz = 60
	}
	if cfg.MaxCatchUpSteps <= 0 {
		cfg.MaxCatchUpSteps = parameter.MaxCatchUpSteps
	}
	return cfg, nil
}

// FixedStep returns the simulation step in seconds
func (c *Config) FixedStep() float64 {
	return 1.0 / float64(c.StepHz)
}

// BackgroundRGB returns the clear color as a core color
func (c *Config) BackgroundRGB() core.RGB {
	return core.RGB{R: c.Background.R, G: c.Background.G, B: c.Background.B}
}

// ZapLevel maps the configured level string, defaulting to info
func (c *Config) ZapLevel() zapcore.Level {
	if lvl, err := zapcore.ParseLevel(c.LogLevel); err == nil {
		return lvl
	}
	return zapcore.InfoLevel
}
