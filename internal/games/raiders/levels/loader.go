// Package levels provides level loading functionality for Raiders.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-raiders/internal/games/raiders/core"
	"github.com/vovakirdan/tui-raiders/internal/games/raiders/levels/formats"
)

//go:embed data/*.yaml
var builtin embed.FS

// ErrNotFound is returned when no level matches a lookup.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	Frequency int // 0 means use the configured frequency
	Layout    string
	Metadata  map[string]string
	FilePath  string
}

// Board builds a fresh board for the level. A level frequency overrides
// the one in rules.
func (l *Level) Board(rules core.Rules) (*core.Board, error) {
	if l.Frequency > 0 {
		rules.Frequency = l.Frequency
	}
	b, err := core.ParseLayout(l.Layout, rules)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return b, nil
}

// Validate checks that the level builds a playable board.
func (l *Level) Validate() error {
	b, err := l.Board(core.DefaultRules())
	if err != nil {
		return err
	}
	if _, ok := b.Agent(); !ok {
		return fmt.Errorf("level %s: no agent", l.ID)
	}
	if b.Count(core.KindWanderer)+b.Count(core.KindSeeker) == 0 {
		return fmt.Errorf("level %s: no wanderers", l.ID)
	}
	return nil
}

// FileError records a level file that could not be loaded.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

// Builtin returns a loader for the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded data: %v", err))
	}
	return &Loader{fsys: sub, Root: "builtin"}
}

// ForDir returns a directory loader, or the builtin one when dir is empty.
func ForDir(dir string) *Loader {
	if dir == "" {
		return Builtin()
	}
	return NewLoader(dir)
}

// Scan recursively loads every supported file under the root.
// Files that fail to parse or validate are reported in problems and skipped.
// Levels are sorted by ID for deterministic ordering.
func (l *Loader) Scan() (levels []Level, problems []FileError, err error) {
	err = fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err == nil {
			err = level.Validate()
		}
		if err != nil {
			problems = append(problems, FileError{Path: l.display(p), Err: err})
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, problems, nil
}

// LoadAll loads every valid level, skipping broken files.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.Scan()
	return levels, err
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
	parsed, err := parseByExtension(data, ext, stem)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{
		ID:        parsed.ID,
		Name:      parsed.Name,
		Frequency: parsed.Frequency,
		Layout:    parsed.Layout,
		Metadata:  parsed.Metadata,
		FilePath:  l.display(p),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadPath loads a level from an arbitrary file on disk.
func LoadPath(file string) (Level, error) {
	dir, name := splitPath(file)
	level, err := NewLoader(dir).LoadFile(name)
	if err != nil {
		return Level{}, err
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func (l *Loader) display(p string) string {
	if l.Root == "builtin" {
		return "builtin:" + p
	}
	return path.Join(l.Root, p)
}

func splitPath(file string) (dir, name string) {
	file = strings.ReplaceAll(file, "\\", "/")
	dir, name = path.Split(file)
	if dir == "" {
		dir = "."
	}
	return dir, name
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, stem string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data, stem)
	case ".txt":
		return formats.ParseText(data, stem)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
