// Package config provides YAML-based configuration loading, difficulty
// presets and environment overrides for the raiders game.
package config

// RaidersConfig contains all configuration for the raiders game.
type RaidersConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Random     RandomConfig     `yaml:"random"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RulesConfig holds the board rules shared by every level.
type RulesConfig struct {
	TurnFrequency int `yaml:"turn_frequency"` // wanderers act every N board ticks
	TrapPoints    int `yaml:"trap_points"`
}

// TimingConfig maps platform frames to board ticks.
type TimingConfig struct {
	FramesPerTick int `yaml:"frames_per_tick"`
}

// RandomConfig controls the generated boards of random mode.
type RandomConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Wanderers int `yaml:"wanderers"`
	Seekers   int `yaml:"seekers"`
	Open      int `yaml:"open_containers"`
	Locked    int `yaml:"locked_containers"`
	Obstacles int `yaml:"obstacles"`
	Rounds    int `yaml:"rounds"`
}

// DifficultyConfig selects a preset and how random mode ramps up.
type DifficultyConfig struct {
	Preset      DifficultyPreset  `yaml:"preset"`
	Progression ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig tightens the wanderer frequency as random rounds go by.
type ProgressionConfig struct {
	Enabled      bool `yaml:"enabled"`
	Step         int  `yaml:"step"`          // frequency reduction per cleared round
	MinFrequency int  `yaml:"min_frequency"` // never faster than this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
