package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the RAIDERS_* environment overrides. Command-line flags win over
// these values; these win over the built-in defaults.
type Env struct {
	DBPath    string `env:"RAIDERS_DB"`
	FPS       int    `env:"RAIDERS_FPS" envDefault:"30"`
	LevelsDir string `env:"RAIDERS_LEVELS_DIR"`
	Config    string `env:"RAIDERS_CONFIG"`
	SSHAddr   string `env:"RAIDERS_SSH_ADDR" envDefault:":23234"`
}

// ParseEnv parses environment variables into target using env tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the RAIDERS_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
