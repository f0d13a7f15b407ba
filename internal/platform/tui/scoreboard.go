package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raiders/internal/registry"
	"github.com/vovakirdan/tui-raiders/internal/storage"
)

const (
	maxScores   = 100 // run scores loaded per mode
	tableChrome = 10  // rows taken by title, tabs, borders, stats and help
)

// scoreView selects what the scoreboard table lists.
type scoreView int

const (
	viewRuns   scoreView = iota // best runs of a mode
	viewLevels                  // best clear per level
)

func (v scoreView) title() string {
	if v == viewLevels {
		return "LEVEL BESTS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	View     key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.View, k.Help, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.View},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		View:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "runs/levels")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	sbTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	sbFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbEmptyStyle = sbMutedStyle.Italic(true).Padding(2, 4)
)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen. It shows
// either the best runs of a mode or its best clear per level.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	view      scoreView
	store     *storage.Store
	runs      []storage.ScoreEntry
	bests     []storage.LevelBest
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard listing run scores of every mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.refresh()
	return m
}

// modeID returns the ID of the selected mode, or "" when none is registered.
func (m ScoreboardModel) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// refresh reloads the data of the selected mode and rebuilds the table.
func (m *ScoreboardModel) refresh() {
	m.runs, m.bests, m.stats = nil, nil, nil
	if id := m.modeID(); id != "" && m.store != nil {
		if m.view == viewLevels {
			m.bests, _ = m.store.BestLevels(id)
		} else {
			m.runs, _ = m.store.TopScores(id, maxScores)
		}
		m.stats, _ = m.store.GetGameStats(id)
	}
	m.table = m.buildTable()
}

// buildTable lays out columns for the current view and width.
func (m ScoreboardModel) buildTable() table.Model {
	inner := max(m.width-6, 30) // frame border and padding

	var (
		columns []table.Column
		rows    []table.Row
	)
	if m.view == viewLevels {
		fixed := 6 + 6 + 7 + 13
		columns = []table.Column{
			{Title: "Level", Width: min(max(inner-fixed-5, 12), 28)},
			{Title: "Best", Width: 6},
			{Title: "Turns", Width: 6},
			{Title: "Clears", Width: 7},
			{Title: "Last clear", Width: 13},
		}
		for _, b := range m.bests {
			rows = append(rows, table.Row{
				b.LevelID,
				strconv.Itoa(b.BestScore),
				strconv.Itoa(b.BestTurns),
				strconv.Itoa(b.Clears),
				b.LastClear.Format("Jan 02 15:04"),
			})
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: min(max(inner-19, 12), 20)},
		}
		for i, s := range m.runs {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				strconv.Itoa(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycleMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycleMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.refresh()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render(m.view.title()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.runs) == 0 && len(m.bests) == 0 {
		hint := "No scores recorded yet.\nFinish a run to set a high score!"
		if m.view == viewLevels {
			hint = "No scores recorded yet.\nClear a level to set a best!"
		}
		body = sbEmptyStyle.Render(hint)
	}
	for _, line := range strings.Split(sbFrameStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.stats != nil && m.stats.GamesCount+m.stats.LevelClears > 0 {
		line := fmt.Sprintf("Runs: %d  Best: %d  Average: %.0f  Levels cleared: %d",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LevelClears)
		b.WriteString(centerText(sbMutedStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sbMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders the mode tabs, or "< mode >" when they do not fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.modes) == 0 {
		return sbMutedStyle.Render("no game modes")
	}

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = sbActiveTab.Render(g.Title)
		} else {
			tabs[i] = sbTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		line = sbActiveTab.Render("< " + m.modes[m.mode].Title + " >")
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on the run scores view.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	return runScoreboard(NewScoreboardModel(store, width, height))
}

// RunLevelScoreboard runs the scoreboard on the per-level view.
func RunLevelScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	m := NewScoreboardModel(store, width, height)
	m.view = viewLevels
	m.refresh()
	return runScoreboard(m)
}

func runScoreboard(model ScoreboardModel) (bool, error) {
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
