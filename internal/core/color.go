package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the presentation layer.
type Color uint8

// Palette used by game renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// String returns the palette name of the color.
func (c Color) String() string {
	names := [...]string{
		"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
		"bright-red", "bright-green", "bright-yellow", "bright-blue",
		"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}
