package core

import (
	"errors"
	"fmt"
	"strings"
)

// Layout errors.
var (
	ErrEmptyLayout  = errors.New("core: empty layout")
	ErrRaggedLayout = errors.New("core: rows have different lengths")
	ErrUnknownGlyph = errors.New("core: unknown glyph")
)

// ParseLayout builds a new board from a text layout.
func ParseLayout(layout string, rules Rules) (*Board, error) {
	rows, err := splitLayout(layout)
	if err != nil {
		return nil, err
	}
	b := NewBoard(len(rows[0]), len(rows), rules)
	b.fill(rows)
	return b, nil
}

// Load resets the board to the given text layout.
// Rules and shuffler are kept. On error the board is left untouched.
func (b *Board) Load(layout string) error {
	rows, err := splitLayout(layout)
	if err != nil {
		return err
	}
	b.reset(len(rows[0]), len(rows))
	b.fill(rows)
	return nil
}

// splitLayout validates a layout and returns its rows.
func splitLayout(layout string) ([]string, error) {
	layout = strings.ReplaceAll(layout, "\r\n", "\n")
	layout = strings.Trim(layout, "\n")
	if strings.TrimSpace(layout) == "" {
		return nil, ErrEmptyLayout
	}

	rows := strings.Split(layout, "\n")
	for y, row := range rows {
		rows[y] = strings.TrimRight(row, " \t")
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedLayout, y, len(row), width)
		}
		for x, ch := range row {
			if !strings.ContainsRune("-PRSCOB@", ch) {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownGlyph, ch, x, y)
			}
		}
	}
	if width == 0 {
		return nil, ErrEmptyLayout
	}
	if strings.Count(layout, string(GlyphAgent)) > 1 {
		return nil, fmt.Errorf("core: layout has more than one %c", GlyphAgent)
	}
	return rows, nil
}

// fill places entities for validated rows, scanning row-major.
func (b *Board) fill(rows []string) {
	for y, row := range rows {
		for x, ch := range row {
			c := C(x, y)
			switch ch {
			case GlyphAgent:
				b.AddAgent(c)
			case GlyphWanderer:
				b.AddWanderer(c)
			case GlyphSeeker:
				b.AddSeeker(c)
			case GlyphLocked:
				b.AddContainer(c, true)
			case GlyphOpen:
				b.AddContainer(c, false)
			case GlyphObstacle:
				b.AddObstacle(c)
			case GlyphCaptured:
				// The container must exist before the wanderer can enter it.
				b.AddContainer(c, false)
				b.AddWanderer(c)
			}
		}
	}
}
