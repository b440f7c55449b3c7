package config

import (
	"fmt"

	"github.com/vovakirdan/tenpin/internal/generator"
)

// Profile names a preset first-ball weight table.
type Profile string

const (
	ProfileNone    Profile = ""
	ProfileDefault Profile = "default"
	ProfileNovice  Profile = "novice"
	ProfilePro     Profile = "pro"
	ProfileUniform Profile = "uniform"
)

// Profiles lists the known presets in display order.
func Profiles() []Profile {
	return []Profile{ProfileDefault, ProfileNovice, ProfilePro, ProfileUniform}
}

// WeightsForProfile returns the weight table for a preset, indexed like
// generator.Domain (0..10, then foul).
func WeightsForProfile(p Profile) ([]int, error) {
	var w [generator.DomainSize]int
	switch p {
	case ProfileDefault:
		w = generator.DefaultWeights
	case ProfileNovice:
		w = [generator.DomainSize]int{3, 3, 3, 3, 3, 3, 3, 2, 2, 2, 1, 4}
	case ProfilePro:
		w = [generator.DomainSize]int{0, 0, 0, 0, 0, 1, 1, 2, 3, 4, 12, 1}
	case ProfileUniform:
		for i := range w {
			w[i] = 1
		}
	default:
		return nil, fmt.Errorf("%w: unknown profile %q", ErrInvalidConfig, p)
	}
	return w[:], nil
}

// ApplyProfile replaces the generator weights with a preset. ProfileNone
// leaves the config unchanged.
func ApplyProfile(cfg *Config, p Profile) error {
	if p == ProfileNone {
		return nil
	}
	w, err := WeightsForProfile(p)
	if err != nil {
		return err
	}
	cfg.Generator.Profile = p
	cfg.Generator.Weights = w
	return nil
}
