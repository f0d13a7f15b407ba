package raiders

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StatePaused       GameStateType = "paused"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "campaign" or "random"
	Level      int    // 1-indexed for display
	LevelID    string
	Score      int
	LevelScore int
	Turns      int
	Board      string // text layout of the board in play
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Level:      g.levelIndex + 1,
		LevelID:    g.levelID(),
		Score:      g.score,
		LevelScore: g.levelScore,
		State:      state,
	}
	if g.board != nil {
		snap.Turns = g.board.Turns
		snap.Board = g.board.String()
	}
	return snap
}
