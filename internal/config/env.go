package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from TENPIN_* environment variables. Command-line
// flags take precedence over these.
type Env struct {
	ConfigPath string  `env:"TENPIN_CONFIG"`
	Seed       *int64  `env:"TENPIN_SEED"`
	LogLevel   string  `env:"TENPIN_LOG_LEVEL" envDefault:"info"`
	Frames     int     `env:"TENPIN_FRAMES"`
	Profile    Profile `env:"TENPIN_PROFILE"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply overrides the generator section with any values set in the
// environment.
func (e Env) Apply(cfg *Config) error {
	if err := ApplyProfile(cfg, e.Profile); err != nil {
		return err
	}
	if e.Frames != 0 {
		if e.Frames < 0 {
			return fmt.Errorf("%w: TENPIN_FRAMES must be positive, got %d", ErrInvalidConfig, e.Frames)
		}
		cfg.Generator.FramesPerSeries = e.Frames
	}
	return nil
}
