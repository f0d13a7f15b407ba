package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raiders/internal/core"
	"github.com/vovakirdan/tui-raiders/internal/games/raiders"
	"github.com/vovakirdan/tui-raiders/internal/storage"
)

// LevelSelection holds the user's choice from the level menu.
type LevelSelection struct {
	Level int // 0 = start from beginning, 1-N = specific level
}

// levelItem is one campaign level with its best recorded result.
type levelItem struct {
	id     string
	name   string
	best   int
	turns  int
	played bool
}

// LevelMenuModel is the level picker for the raiders campaign.
type LevelMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	items        []levelItem
	loadErr      error
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
}

// NewLevelMenuModel creates a level picker listing the campaign levels with
// the best score recorded for each.
func NewLevelMenuModel(store *storage.Store, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}

	lvls, err := raiders.Levels()
	if err != nil {
		m.loadErr = err
		return m
	}

	best := map[string]storage.LevelBest{}
	if store != nil {
		if rows, err := store.BestLevels(raiders.IDCampaign); err == nil {
			for _, r := range rows {
				best[r.LevelID] = r
			}
		}
	}

	m.items = make([]levelItem, len(lvls))
	for i, l := range lvls {
		item := levelItem{id: l.ID, name: l.Name}
		if b, ok := best[l.ID]; ok {
			item.best = b.BestScore
			item.turns = b.BestTurns
			item.played = true
		}
		m.items[i] = item
	}
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.items) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if m.loadErr != nil {
			return m, nil
		}
		m.choosing = false
		m.selection = LevelSelection{Level: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems returns how many levels fit between header and footer.
func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible. The cursor
// counts "Start from Beginning" as row 0.
func (m *LevelMenuModel) updateScroll() {
	idx := max(m.cursor-1, 0)
	visible := m.visibleItems()
	if idx < m.scrollOffset {
		m.scrollOffset = idx
	} else if idx >= m.scrollOffset+visible {
		m.scrollOffset = idx - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("C A M P A I G N"), m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(theme.Palette[core.ColorRed].Render("Could not load levels: "+m.loadErr.Error()), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(theme.MenuControls.Render("Esc: Back  |  Q: Quit"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText(theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if m.scrollOffset == 0 {
		b.WriteString(centerText(m.renderRow(0, "Start from Beginning"), m.width))
		b.WriteString("\n")
	}

	endIdx := min(m.scrollOffset+m.visibleItems(), len(m.items))
	for i := m.scrollOffset; i < endIdx; i++ {
		item := m.items[i]
		line := fmt.Sprintf("%2d. %s", i+1, item.name)
		if item.played {
			line += fmt.Sprintf("  best %d in %d turns", item.best, item.turns)
		}
		b.WriteString(centerText(m.renderRow(i+1, line), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.items) {
		b.WriteString(centerText(theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(theme.MenuControls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m LevelMenuModel) renderRow(row int, text string) string {
	if row == m.cursor {
		return theme.MenuItemActive.Render("> " + text)
	}
	return theme.MenuItemNormal.Render("  " + text)
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker on its own. It returns nil when the
// user backs out or quits.
func RunLevelSelector(store *storage.Store, cfg core.RuntimeConfig) (*LevelSelection, error) {
	model := NewLevelMenuModel(store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
