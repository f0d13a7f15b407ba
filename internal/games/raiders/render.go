package raiders

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-raiders/internal/core"
	"github.com/vovakirdan/tui-raiders/internal/games/raiders/core"
)

// cellWidth is how many terminal columns one board tile takes.
const cellWidth = 2

const controlsHint = " ←↑→↓/WASD/HJKL: Move | R: Restart level | P: Pause | Q: Quit"

// glyphColors maps board glyphs to screen colors.
var glyphColors = map[rune]platformcore.Color{
	core.GlyphAgent:    platformcore.ColorBrightYellow,
	core.GlyphWanderer: platformcore.ColorWhite,
	core.GlyphSeeker:   platformcore.ColorMagenta,
	core.GlyphLocked:   platformcore.ColorRed,
	core.GlyphOpen:     platformcore.ColorGreen,
	core.GlyphObstacle: platformcore.ColorBlue,
	core.GlyphCaptured: platformcore.ColorBrightCyan,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "No level to play", truncate(g.loadErr.Error(), dst.Width()-6))
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	case g.board == nil:
		return
	}

	g.renderBoard(dst)
	dst.DrawTextColor(0, dst.Height()-1, controlsHint, platformcore.ColorGray)

	// Draw overlays
	switch {
	case g.won:
		g.renderOverlay(dst, "All levels cleared!", fmt.Sprintf("Final score: %d | R: Play again", g.score))
	case g.levelCleared:
		next := "N: Next level | R: Replay"
		if g.levelIndex == g.levelCount()-1 {
			next = "N: Finish | R: Replay"
		}
		g.renderOverlay(dst, fmt.Sprintf("Level cleared! +%d", g.levelScore), next)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status lines above the board.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if n := g.levelCount(); n > 0 && g.board != nil {
		hud += fmt.Sprintf(" | Level %d/%d: %s | Score: %d | Turn: %d",
			g.levelIndex+1, n, g.levelName(), g.score, g.board.Turns)
	}
	dst.DrawTextColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLineColor(0, 1, dst.Width(), '─', platformcore.ColorGray)

	if g.board != nil {
		free, trapped, captured := g.board.Progress()
		counts := fmt.Sprintf("Raccoons free: %d trapped: %d canned: %d | Next raccoon move: %d ",
			free, trapped, captured, g.board.TicksUntilWanderers())
		x := dst.Width() - utf8.RuneCountInString(counts)
		status := truncate(" "+g.status, x-1)
		dst.DrawTextColor(0, 2, status, platformcore.ColorWhite)
		dst.DrawTextColor(x, 2, counts, platformcore.ColorGray)
	}
	dst.DrawHLineColor(0, 3, dst.Width(), '─', platformcore.ColorGray)
}

// boardRect returns the framed board area centered below the HUD.
func (g *Game) boardRect(dst *platformcore.Screen) platformcore.Rect {
	w := g.board.W*cellWidth + 3
	h := g.board.H + 2
	availH := dst.Height() - g.hudHeight - 1
	r := platformcore.CenteredRect(dst.Width(), availH, w, h)
	r.Y += g.hudHeight
	return r
}

// renderBoard draws the framed board with one colored glyph per tile.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	frame := g.boardRect(dst)
	dst.DrawBox(frame, platformcore.ColorGray)

	for y, row := range g.board.Render() {
		for x, glyph := range row {
			sx := frame.X + 2 + x*cellWidth
			sy := frame.Y + 1 + y
			if glyph == core.GlyphEmpty {
				dst.SetColor(sx, sy, '·', platformcore.ColorGray)
				continue
			}
			dst.SetColor(sx, sy, glyph, glyphColors[glyph])
		}
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	width := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCenteredColor(box.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
