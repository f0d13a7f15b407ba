package formats

import "strings"

// ParseText parses a plain layout file. The whole file is the layout and
// the level takes its id and name from the file stem.
func ParseText(data []byte, id string) (Level, error) {
	layout := strings.TrimSpace(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if layout == "" {
		return Level{}, ErrMissingLayout
	}
	return Level{
		ID:     id,
		Name:   id,
		Layout: layout,
	}, nil
}
