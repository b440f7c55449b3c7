package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "tenpin.yaml"

// SourceEmbedded and SourceBuiltin are reported by Load when no config file
// was found on disk.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.tenpin/config.yaml -> ./configs/tenpin.yaml -> embedded default.
//
// Files are decoded over DefaultConfig, so keys they omit keep their default
// value. A named profile replaces the weights. The result is validated.
func Load(customPath string) (Config, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := ApplyProfile(&cfg, cfg.Generator.Profile); err != nil {
		return cfg, source, fmt.Errorf("validate %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("validate %s: %w", source, err)
	}
	return cfg, source, nil
}

func load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return Config{}, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	if cfg, err := decode(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultConfig(), SourceBuiltin, nil
}

func decode(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tenpin", "config.yaml")
}
