package config

import (
	_ "embed"

	"github.com/vovakirdan/tenpin/internal/generator"
	"github.com/vovakirdan/tenpin/internal/match"
)

//go:embed defaults/tenpin.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration.
func DefaultConfig() Config {
	rules := match.DefaultRules()
	return Config{
		Generator: GeneratorConfig{
			Weights:         append([]int(nil), generator.DefaultWeights[:]...),
			FramesPerSeries: generator.DefaultFramesPerSeries,
		},
		Match: MatchConfig{
			FrameWinPoints:  rules.FrameWin,
			FrameDrawPoints: rules.FrameDraw,
			PinsBonusPoints: rules.PinsBonus,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
