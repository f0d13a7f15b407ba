package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "raiders.yaml"

// LoadRaiders loads the raiders configuration.
// Search order: customPath -> ~/.raiders/configs/raiders.yaml -> ./configs/raiders.yaml -> embedded default
//
// Files are decoded on top of the hardcoded defaults, so a partial file only
// overrides the keys it names.
func LoadRaiders(customPath string) (RaidersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRaidersConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultRaidersConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultRaidersYAML)
	if err != nil {
		return DefaultRaidersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (RaidersConfig, error) {
	cfg := DefaultRaidersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports settings the game cannot run with.
func (c RaidersConfig) Validate() error {
	switch {
	case c.Rules.TurnFrequency < 1:
		return fmt.Errorf("rules.turn_frequency must be >= 1, got %d", c.Rules.TurnFrequency)
	case c.Rules.TrapPoints < 0:
		return fmt.Errorf("rules.trap_points must be >= 0, got %d", c.Rules.TrapPoints)
	case c.Timing.FramesPerTick < 1:
		return fmt.Errorf("timing.frames_per_tick must be >= 1, got %d", c.Timing.FramesPerTick)
	case c.Random.Width < 1 || c.Random.Height < 1:
		return fmt.Errorf("random board must be at least 1x1, got %dx%d", c.Random.Width, c.Random.Height)
	case c.Random.Rounds < 1:
		return fmt.Errorf("random.rounds must be >= 1, got %d", c.Random.Rounds)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".raiders", "configs", filename)
}
