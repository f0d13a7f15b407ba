package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raiders/internal/core"
)

// Theme contains the visual styles of the screen renderer and the menus.
type Theme struct {
	// Palette maps core.Color to lipgloss styles for RenderScreen.
	Palette map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the default ANSI color theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11").Bold(true),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorGray:          fg("245"),
		},

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
		MenuControls:    fg("241"),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor color support.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	gray := map[core.Color]string{
		core.ColorRed:           "250",
		core.ColorGreen:         "252",
		core.ColorYellow:        "254",
		core.ColorBlue:          "244",
		core.ColorMagenta:       "248",
		core.ColorCyan:          "250",
		core.ColorBrightYellow:  "255",
		core.ColorBrightCyan:    "253",
		core.ColorBrightMagenta: "251",
	}
	for c, code := range gray {
		theme.Palette[c] = fg(code)
	}
	theme.Palette[core.ColorBrightYellow] = theme.Palette[core.ColorBrightYellow].Bold(true)
	theme.MenuTitle = fg("255").Bold(true)
	theme.MenuItemActive = fg("255").Bold(true).Underline(true)
	return theme
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
