// Package config provides YAML-based configuration for the frame generator
// and match scoring, with environment overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tenpin/internal/generator"
	"github.com/vovakirdan/tenpin/internal/match"
	"github.com/vovakirdan/tenpin/internal/rng"
)

// ErrInvalidWeights is returned when the configured weight table cannot be
// sampled.
var ErrInvalidWeights = generator.ErrInvalidWeights

// ErrInvalidConfig is returned for any other out-of-range setting.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full tenpin configuration.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Match     MatchConfig     `yaml:"match"`
}

// GeneratorConfig controls random frame generation.
type GeneratorConfig struct {
	// Profile names a preset weight table. When set it replaces Weights.
	Profile         Profile `yaml:"profile"`
	Weights         []int   `yaml:"weights"` // 0..10 then foul
	FramesPerSeries int     `yaml:"frames_per_series"`
}

// MatchConfig sets the points awarded in a match.
type MatchConfig struct {
	FrameWinPoints  int `yaml:"frame_win_points"`
	FrameDrawPoints int `yaml:"frame_draw_points"`
	PinsBonusPoints int `yaml:"pins_bonus_points"`
}

// Rules converts the match section for the match package.
func (c Config) Rules() match.Rules {
	return match.Rules{
		FrameWin:  c.Match.FrameWinPoints,
		FrameDraw: c.Match.FrameDrawPoints,
		PinsBonus: c.Match.PinsBonusPoints,
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := generator.NewTable(c.Generator.Weights); err != nil {
		return err
	}
	if c.Generator.FramesPerSeries < 1 {
		return fmt.Errorf("%w: frames_per_series must be at least 1, got %d", ErrInvalidConfig, c.Generator.FramesPerSeries)
	}
	if c.Match.FrameWinPoints < 0 || c.Match.FrameDrawPoints < 0 || c.Match.PinsBonusPoints < 0 {
		return fmt.Errorf("%w: match points must not be negative", ErrInvalidConfig)
	}
	return nil
}

// NewGenerator builds a generator over src using the configured weights.
func (c Config) NewGenerator(src rng.Source) (*generator.Generator, error) {
	return generator.NewWithWeights(src, c.Generator.Weights)
}
