package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults: %v", err)
	}
	if cfg != DefaultRaidersConfig() {
		t.Errorf("embedded = %+v\nhardcoded = %+v", cfg, DefaultRaidersConfig())
	}
}

func TestLoadRaidersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "rules:\n  turn_frequency: 7\n")

	cfg, err := LoadRaiders(path)
	if err != nil {
		t.Fatalf("LoadRaiders: %v", err)
	}
	if cfg.Rules.TurnFrequency != 7 {
		t.Errorf("turn_frequency = %d, want 7", cfg.Rules.TurnFrequency)
	}
	if cfg.Rules.TrapPoints != 10 {
		t.Errorf("unset keys should keep defaults, trap_points = %d", cfg.Rules.TrapPoints)
	}
}

func TestLoadRaidersCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRaiders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeConfig(t, bad, "rules: [\n")
	if _, err := LoadRaiders(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeConfig(t, invalid, "timing:\n  frames_per_tick: 0\n")
	_, err := LoadRaiders(invalid)
	if err == nil || !strings.Contains(err.Error(), "frames_per_tick") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoadRaidersSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadRaiders("")
	if err != nil {
		t.Fatalf("LoadRaiders: %v", err)
	}
	if cfg != DefaultRaidersConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}

	writeConfig(t, filepath.Join(work, "configs", ConfigFile), "rules:\n  turn_frequency: 12\n")
	cfg, _ = LoadRaiders("")
	if cfg.Rules.TurnFrequency != 12 {
		t.Errorf("local config: turn_frequency = %d, want 12", cfg.Rules.TurnFrequency)
	}

	writeConfig(t, filepath.Join(home, ".raiders", "configs", ConfigFile), "rules:\n  turn_frequency: 3\n")
	cfg, _ = LoadRaiders("")
	if cfg.Rules.TurnFrequency != 3 {
		t.Errorf("user config should win: turn_frequency = %d, want 3", cfg.Rules.TurnFrequency)
	}

	// A broken user file falls through to the next location.
	writeConfig(t, filepath.Join(home, ".raiders", "configs", ConfigFile), "rules: [\n")
	cfg, _ = LoadRaiders("")
	if cfg.Rules.TurnFrequency != 12 {
		t.Errorf("broken user config: turn_frequency = %d, want 12", cfg.Rules.TurnFrequency)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyRaidersPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		wantFreq int
	}{
		{DifficultyEasy, 30},
		{DifficultyNormal, 20},
		{DifficultyHard, 10},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRaidersConfig()
			ApplyRaidersPreset(&cfg, tc.preset)
			if cfg.Rules.TurnFrequency != tc.wantFreq {
				t.Errorf("turn_frequency = %d, want %d", cfg.Rules.TurnFrequency, tc.wantFreq)
			}
			if cfg.Difficulty.Preset != tc.preset {
				t.Errorf("preset = %q", cfg.Difficulty.Preset)
			}
		})
	}

	cfg := DefaultRaidersConfig()
	cfg.Rules.TurnFrequency = 13
	ApplyRaidersPreset(&cfg, DifficultyFixed)
	if cfg.Rules.TurnFrequency != 13 {
		t.Errorf("fixed preset changed frequency to %d", cfg.Rules.TurnFrequency)
	}
	if cfg.Difficulty.Progression.Enabled {
		t.Error("fixed preset should disable progression")
	}

	hard := DefaultRaidersConfig()
	ApplyRaidersPreset(&hard, DifficultyHard)
	if hard.Random.Seekers != 2 || hard.Random.Wanderers != 4 {
		t.Errorf("hard random board = %+v", hard.Random)
	}
}

func TestFrequencyForRound(t *testing.T) {
	cfg := DefaultRaidersConfig() // 20, step 2, floor 6

	tests := []struct {
		round int
		want  int
	}{
		{0, 20},
		{1, 18},
		{3, 14},
		{7, 6},
		{100, 6},
	}
	for _, tc := range tests {
		if got := cfg.FrequencyForRound(tc.round); got != tc.want {
			t.Errorf("FrequencyForRound(%d) = %d, want %d", tc.round, got, tc.want)
		}
	}

	cfg.Difficulty.Progression.Enabled = false
	if got := cfg.FrequencyForRound(5); got != 20 {
		t.Errorf("disabled progression: got %d, want 20", got)
	}

	cfg.Difficulty.Progression.Enabled = true
	cfg.Rules.TurnFrequency = 4
	if got := cfg.FrequencyForRound(5); got != 4 {
		t.Errorf("base below floor should stay: got %d, want 4", got)
	}
}
