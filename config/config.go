// Package config loads runtime settings from CHIPFIELD_* environment
// variables; CLI flags override the parsed values.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/chipfield/constants"
)

// Config is the full runtime configuration.
type Config struct {
	// FPS is the render frame rate
	FPS int `env:"CHIPFIELD_FPS" envDefault:"60"`

	// LogPath is the diagnostics log file; empty disables logging unless
	// Debug picks a temp-dir default
	LogPath string `env:"CHIPFIELD_LOG"`

	// Debug raises the log level and forces a log file
	Debug bool `env:"CHIPFIELD_DEBUG"`

	// Audio enables sound cues
	Audio bool `env:"CHIPFIELD_AUDIO" envDefault:"true"`

	// Seed drives the session shuffle and the shuffle-jump RNG; 0 means
	// derive from the clock
	Seed int64 `env:"CHIPFIELD_SEED"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges. Called again after flag overrides.
func (c *Config) Validate() error {
	if c.FPS < constants.MinFPS || c.FPS > constants.MaxFPS {
		return fmt.Errorf("fps %d out of range [%d, %d]", c.FPS, constants.MinFPS, constants.MaxFPS)
	}
	return nil
}

// FrameInterval returns the render tick duration for the configured FPS.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}
