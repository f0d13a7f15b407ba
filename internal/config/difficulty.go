package config

import (
	"fmt"
	"strings"
)

// ParsePreset converts a command-line or YAML value into a preset.
// An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// FrequencyForPreset returns the wanderer turn frequency of a preset.
// The fixed preset keeps whatever the config file says and reports 0.
func FrequencyForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 30
	case DifficultyNormal:
		return 20
	case DifficultyHard:
		return 10
	default:
		return 0
	}
}

// ApplyRaidersPreset modifies the config based on a difficulty preset.
func ApplyRaidersPreset(cfg *RaidersConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if preset == DifficultyFixed {
		cfg.Difficulty.Progression.Enabled = false
		return
	}
	cfg.Rules.TurnFrequency = FrequencyForPreset(preset)

	// Harder presets also crowd the random boards
	switch preset {
	case DifficultyEasy:
		cfg.Random.Seekers = 0
		cfg.Random.Obstacles += 4
	case DifficultyHard:
		cfg.Random.Seekers++
		cfg.Random.Wanderers++
	}
}

// FrequencyForRound returns the wanderer frequency for a random-mode round
// (0-based), tightened by the progression settings.
func (c RaidersConfig) FrequencyForRound(round int) int {
	base := c.Rules.TurnFrequency
	p := c.Difficulty.Progression
	if !p.Enabled || round <= 0 {
		return base
	}
	floor := max(p.MinFrequency, 1)
	if base <= floor {
		return base
	}
	return max(base-p.Step*round, floor)
}
