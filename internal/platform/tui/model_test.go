package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raiders/internal/core"
	"github.com/vovakirdan/tui-raiders/internal/storage"
)

// stubGame records what the model asks of it.
type stubGame struct {
	resets   int
	resizedW int
	steps    int
	lastIn   core.InputFrame
	state    core.GameState
	results  []core.LevelResult
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Resize(w, _ int)          { g.resizedW = w }
func (g *stubGame) TakeLevelResults() []core.LevelResult {
	out := g.results
	g.results = nil
	return out
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in.Clone()
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func newTestModel(g *stubGame, store *storage.Store) GameModel {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(g, store, cfg)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGameModelBackPausesThenLeaves(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back while playing should pause, not leave")
	}
	m, _ = update(t, m, TickMsg{})
	if !g.lastIn.Has(core.ActionPause) || !m.State().Paused {
		t.Fatal("back while playing should pause the game")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should return to the menu")
	}
	if cmd != nil {
		t.Error("inside a session back must not quit the program")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelMovesReachGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	_, _ = update(t, m, TickMsg{})

	if g.lastIn.Last != core.ActionUp {
		t.Errorf("last move = %s, want Up", g.lastIn.Last)
	}
	if !g.lastIn.Has(core.ActionLeft) {
		t.Error("earlier move should still be recorded in the frame")
	}
}

func TestGameModelResizeKeepsResizableGames(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	resets := g.resets

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resizedW != 100 {
		t.Errorf("resized width = %d, want 100", g.resizedW)
	}
	if g.resets != resets {
		t.Error("resizable game should not be reset")
	}
}

func TestGameModelSavesResults(t *testing.T) {
	store := openStore(t)
	g := &stubGame{
		results: []core.LevelResult{{GameID: "stub", LevelID: "l1", Score: 9, Turns: 4}},
	}
	m := newTestModel(g, store)

	m, _ = update(t, m, TickMsg{})
	rows, err := store.LevelResults("stub", "l1", 10)
	if err != nil {
		t.Fatalf("LevelResults: %v", err)
	}
	if len(rows) != 1 || rows[0].Score != 9 || rows[0].Turns != 4 {
		t.Errorf("level results = %+v", rows)
	}

	g.state = core.GameState{Score: 9, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 9 {
		t.Errorf("scores = %+v, want a single 9", scores)
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	g := &stubGame{state: core.GameState{GameOver: true}}
	m := newTestModel(g, nil)
	m, _ = update(t, m, TickMsg{})
	resets := g.resets

	m, _ = update(t, m, runeKey('r'))
	_, _ = update(t, m, TickMsg{})
	if g.resets != resets+1 {
		t.Errorf("resets = %d, want %d", g.resets, resets+1)
	}
}
