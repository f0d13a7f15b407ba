package config

import (
	_ "embed"
)

//go:embed defaults/raiders.yaml
var defaultRaidersYAML []byte

// DefaultRaidersConfig returns the default raiders configuration.
func DefaultRaidersConfig() RaidersConfig {
	return RaidersConfig{
		Rules: RulesConfig{
			TurnFrequency: 20,
			TrapPoints:    10,
		},
		Timing: TimingConfig{
			FramesPerTick: 6,
		},
		Random: RandomConfig{
			Width:     12,
			Height:    8,
			Wanderers: 3,
			Seekers:   1,
			Open:      2,
			Locked:    1,
			Obstacles: 20,
			Rounds:    5,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
			Progression: ProgressionConfig{
				Enabled:      true,
				Step:         2,
				MinFrequency: 6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRaidersYAML
}
