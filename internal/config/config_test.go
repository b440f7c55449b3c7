package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tenpin/internal/generator"
	"github.com/vovakirdan/tenpin/internal/match"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolate points HOME and the working directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("decode(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded = %+v, want %+v", cfg, DefaultConfig())
	}
	if got := DefaultConfig().Rules(); got != match.DefaultRules() {
		t.Errorf("Rules() = %+v, want %+v", got, match.DefaultRules())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, want %q", source, SourceEmbedded)
	}
	if cfg.Generator.FramesPerSeries != generator.DefaultFramesPerSeries {
		t.Errorf("FramesPerSeries = %d", cfg.Generator.FramesPerSeries)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	local := writeFile(t, dir, filepath.Join("configs", "tenpin.yaml"), "generator:\n  frames_per_series: 4\n")
	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != filepath.Join("configs", "tenpin.yaml") || cfg.Generator.FramesPerSeries != 4 {
		t.Errorf("Load() = %d from %q, want 4 from %q", cfg.Generator.FramesPerSeries, source, local)
	}

	user := writeFile(t, dir, filepath.Join(".tenpin", "config.yaml"), "generator:\n  frames_per_series: 5\n")
	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != user || cfg.Generator.FramesPerSeries != 5 {
		t.Errorf("Load() = %d from %q, want 5 from %q", cfg.Generator.FramesPerSeries, source, user)
	}

	custom := writeFile(t, dir, "custom.yaml", "generator:\n  frames_per_series: 6\n")
	cfg, source, err = Load(custom)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != custom || cfg.Generator.FramesPerSeries != 6 {
		t.Errorf("Load() = %d from %q, want 6 from %q", cfg.Generator.FramesPerSeries, source, custom)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "c.yaml", "match:\n  pins_bonus_points: 3\n")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := match.Rules{FrameWin: 2, FrameDraw: 1, PinsBonus: 3}
	if got := cfg.Rules(); got != want {
		t.Errorf("Rules() = %+v, want %+v", got, want)
	}
	if !reflect.DeepEqual(cfg.Generator.Weights, generator.DefaultWeights[:]) {
		t.Errorf("Weights = %v, want defaults", cfg.Generator.Weights)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "short weights", content: "generator:\n  weights: [1, 2, 3]\n", wantErr: ErrInvalidWeights},
		{name: "negative weight", content: "generator:\n  weights: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, 1]\n", wantErr: ErrInvalidWeights},
		{name: "zero weights", content: "generator:\n  weights: [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]\n", wantErr: ErrInvalidWeights},
		{name: "no frames", content: "generator:\n  frames_per_series: 0\n", wantErr: ErrInvalidConfig},
		{name: "negative points", content: "match:\n  frame_win_points: -2\n", wantErr: ErrInvalidConfig},
		{name: "unknown profile", content: "generator:\n  profile: champion\n", wantErr: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.yaml", tt.content)
			if _, _, err := Load(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail on a missing custom path")
	}
	path := writeFile(t, dir, "broken.yaml", "generator: [\n")
	if _, _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestProfileReplacesWeights(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "c.yaml", "generator:\n  profile: uniform\n  weights: [9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9]\n")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	for i, w := range cfg.Generator.Weights {
		if w != 1 {
			t.Errorf("Weights[%d] = %d, want 1", i, w)
		}
	}
}

func TestProfilesAreValidTables(t *testing.T) {
	for _, p := range Profiles() {
		t.Run(string(p), func(t *testing.T) {
			w, err := WeightsForProfile(p)
			if err != nil {
				t.Fatalf("WeightsForProfile() failed: %v", err)
			}
			if _, err := generator.NewTable(w); err != nil {
				t.Errorf("NewTable() = %v", err)
			}
		})
	}

	pro, _ := WeightsForProfile(ProfilePro)
	novice, _ := WeightsForProfile(ProfileNovice)
	strike := generator.DomainSize - 2
	if pro[strike] <= novice[strike] {
		t.Errorf("pro strike weight %d should exceed novice %d", pro[strike], novice[strike])
	}
}

func TestApplyProfileNoneIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.Weights = []int{1, 2, 3}
	if err := ApplyProfile(&cfg, ProfileNone); err != nil {
		t.Fatalf("ApplyProfile() failed: %v", err)
	}
	if len(cfg.Generator.Weights) != 3 {
		t.Errorf("Weights = %v, want unchanged", cfg.Generator.Weights)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("TENPIN_CONFIG", "/tmp/tenpin.yaml")
	t.Setenv("TENPIN_SEED", "0")
	t.Setenv("TENPIN_FRAMES", "5")
	t.Setenv("TENPIN_PROFILE", "pro")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if e.ConfigPath != "/tmp/tenpin.yaml" {
		t.Errorf("ConfigPath = %q", e.ConfigPath)
	}
	if e.Seed == nil || *e.Seed != 0 {
		t.Errorf("Seed = %v, want 0", e.Seed)
	}
	if e.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", e.LogLevel)
	}

	cfg := DefaultConfig()
	if err := e.Apply(&cfg); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if cfg.Generator.FramesPerSeries != 5 {
		t.Errorf("FramesPerSeries = %d, want 5", cfg.Generator.FramesPerSeries)
	}
	if cfg.Generator.Profile != ProfilePro {
		t.Errorf("Profile = %q, want pro", cfg.Generator.Profile)
	}
}

func TestParseEnvUnsetSeed(t *testing.T) {
	t.Setenv("TENPIN_SEED", "")
	os.Unsetenv("TENPIN_SEED")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if e.Seed != nil {
		t.Errorf("Seed = %d, want nil", *e.Seed)
	}
}

func TestParseEnvRejectsBadSeed(t *testing.T) {
	t.Setenv("TENPIN_SEED", "lucky")
	if _, err := ParseEnv(); err == nil {
		t.Error("ParseEnv() should reject a non-numeric seed")
	}
}

func TestEnvApplyRejectsNegativeFrames(t *testing.T) {
	cfg := DefaultConfig()
	if err := (Env{Frames: -1}).Apply(&cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Apply() error = %v, want ErrInvalidConfig", err)
	}
}
