// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingLayout is returned when a level file has no layout.
var ErrMissingLayout = errors.New("missing layout")

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Frequency int               `yaml:"frequency,omitempty"`
	Layout    string            `yaml:"layout"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID        string
	Name      string
	Frequency int // 0 means use the configured frequency
	Layout    string
	Metadata  map[string]string
}

// ParseYAML parses a YAML level file.
// fallbackID is used when the file does not set an id.
func ParseYAML(data []byte, fallbackID string) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	layout := strings.TrimSpace(yl.Layout)
	if layout == "" {
		return Level{}, ErrMissingLayout
	}
	if yl.Frequency < 0 {
		return Level{}, fmt.Errorf("negative frequency %d", yl.Frequency)
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Frequency: yl.Frequency,
		Layout:    layout,
		Metadata:  yl.Metadata,
	}
	if level.ID == "" {
		level.ID = fallbackID
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
