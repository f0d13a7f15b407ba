// Package raiders provides the Raiders grid game for the terminal: the player
// herds raccoons into corners with recycling bins before they reach the
// garbage cans.
package raiders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-raiders/internal/config"
	platformcore "github.com/vovakirdan/tui-raiders/internal/core"
	"github.com/vovakirdan/tui-raiders/internal/games/raiders/core"
	"github.com/vovakirdan/tui-raiders/internal/games/raiders/levels"
	"github.com/vovakirdan/tui-raiders/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeRandom   Mode = "random"
)

// Game IDs as registered with the platform.
const (
	IDCampaign = "raiders"
	IDRandom   = "raiders_random"
)

// maxRegenerate bounds how often a random round is rerolled when the
// generated board is already finished.
const maxRegenerate = 16

// Game implements the Raiders game.
type Game struct {
	mode Mode
	cfg  config.RaidersConfig
	rng  *rand.Rand
	tick uint64

	// Level sequence
	levels     []levels.Level
	roundSeeds []int64
	levelIndex int
	startLevel int // 1-indexed, consumed by the next Reset
	loadErr    error

	// Current board
	board      *core.Board
	frame      int // frames since the last board tick
	lastReport core.TurnReport
	status     string

	// Scoring
	score      int // sum of cleared levels
	levelScore int
	results    []platformcore.LevelResult

	// Screen dimensions
	screenW   int
	screenH   int
	hudHeight int

	// Game state flags
	levelCleared bool
	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool
}

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored
// and the preset from the config file is used instead.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// StartAt makes the next Reset of this game start at the given campaign
// level (1-indexed). 0 means start from the beginning.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// SetLevelsDir sets the directory campaign levels are read from.
// An empty path selects the built-in levels.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// Levels returns the campaign levels the next game will play.
func Levels() ([]levels.Level, error) {
	return levels.ForDir(levelsDir).LoadAll()
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign, hudHeight: 4}
}

// NewRandom creates a new random mode game.
func NewRandom() *Game {
	return &Game{mode: ModeRandom, hudHeight: 4}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDRandom, func() registry.Game {
		return NewRandom()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRandom {
		return IDRandom
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "Raiders (Random)"
	}
	return "Raiders"
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() config.RaidersConfig {
	cfg, err := config.LoadRaiders(configPath)
	if err != nil {
		cfg = config.DefaultRaidersConfig()
	}
	preset := difficultyPreset
	if preset == "" {
		preset = cfg.Difficulty.Preset
	}
	if preset != "" {
		config.ApplyRaidersPreset(&cfg, preset)
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.results = nil
	g.levelIndex = 0
	g.loadErr = nil
	g.board = nil
	g.gameOver = false
	g.won = false
	g.paused = false

	switch g.mode {
	case ModeRandom:
		g.levels = nil
		g.roundSeeds = make([]int64, g.cfg.Random.Rounds)
		for i := range g.roundSeeds {
			g.roundSeeds[i] = g.rng.Int63()
		}
	default:
		lvls, err := levels.ForDir(levelsDir).LoadAll()
		if err == nil && len(lvls) == 0 {
			err = levels.ErrNotFound
		}
		if err != nil {
			g.loadErr = err
			g.gameOver = true
			return
		}
		g.levels = lvls

		// The chosen start level only applies to the first Reset
		if start := g.startLevel; start > 0 && start <= len(lvls) {
			g.levelIndex = start - 1
		}
		g.startLevel = 0
	}

	g.loadCurrentLevel()
}

// levelCount returns the number of levels in this run.
func (g *Game) levelCount() int {
	if g.mode == ModeRandom {
		return len(g.roundSeeds)
	}
	return len(g.levels)
}

// levelID returns the ID recorded for the current level.
func (g *Game) levelID() string {
	if g.mode == ModeRandom {
		return fmt.Sprintf("random-%02d", g.levelIndex+1)
	}
	if g.levelIndex < len(g.levels) {
		return g.levels[g.levelIndex].ID
	}
	return ""
}

// levelName returns the display name of the current level.
func (g *Game) levelName() string {
	if g.mode == ModeRandom {
		return fmt.Sprintf("Round %d", g.levelIndex+1)
	}
	if g.levelIndex < len(g.levels) {
		return g.levels[g.levelIndex].Name
	}
	return ""
}

// loadCurrentLevel builds a fresh board for the level at levelIndex.
func (g *Game) loadCurrentLevel() {
	g.levelCleared = false
	g.levelScore = 0
	g.frame = 0
	g.lastReport = core.TurnReport{}
	g.status = ""

	var (
		b   *core.Board
		err error
	)
	if g.mode == ModeRandom {
		b, err = g.generateRound()
	} else {
		b, err = g.levels[g.levelIndex].Board(g.rules())
		if err == nil {
			b.SetShuffler(core.NewRandShuffler(g.rng))
		}
	}
	if err != nil {
		g.loadErr = err
		g.board = nil
		g.gameOver = true
		return
	}
	g.board = b

	if g.mode == ModeCampaign {
		g.status = g.levels[g.levelIndex].Metadata["hint"]
	}
	g.checkSize()
}

// rules returns the board rules for the current level.
func (g *Game) rules() core.Rules {
	r := core.Rules{
		Frequency:  g.cfg.Rules.TurnFrequency,
		TrapPoints: g.cfg.Rules.TrapPoints,
	}
	if g.mode == ModeRandom {
		r.Frequency = g.cfg.FrequencyForRound(g.levelIndex)
	}
	return r
}

// generateRound builds the board of the current random round. Boards that
// are already finished are rerolled with the following seed.
func (g *Game) generateRound() (*core.Board, error) {
	rc := g.cfg.Random
	params := core.GenParams{
		Width:     rc.Width,
		Height:    rc.Height,
		Seed:      g.roundSeeds[g.levelIndex],
		Rules:     g.rules(),
		Wanderers: rc.Wanderers,
		Seekers:   rc.Seekers,
		Open:      rc.Open,
		Locked:    rc.Locked,
		Obstacles: rc.Obstacles,
	}

	var (
		b   *core.Board
		err error
	)
	for i := 0; i < maxRegenerate; i++ {
		b, err = core.Generate(params)
		if err != nil {
			return nil, err
		}
		if _, ended := b.CheckEnd(); !ended {
			return b, nil
		}
		params.Seed++
	}
	return b, nil
}

// checkSize updates tooSmall for the current board and screen.
func (g *Game) checkSize() {
	if g.board == nil {
		g.tooSmall = false
		return
	}
	needW := g.board.W*cellWidth + 3
	needH := g.board.H + g.hudHeight + 3
	g.tooSmall = g.screenW < needW || g.screenH < needH
}

// Resize adapts the game to new screen dimensions without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkSize()
}

// Step advances the game by one platform frame.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionRestart) {
		if g.gameOver {
			g.Reset(platformcore.RuntimeConfig{
				Seed:    g.rng.Int63(),
				ScreenW: g.screenW,
				ScreenH: g.screenH,
			})
		} else {
			g.loadCurrentLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.board == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if g.levelCleared {
		if input.Has(platformcore.ActionNext) || input.Has(platformcore.ActionConfirm) {
			g.nextLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if d, ok := dirForAction(input.Last); ok {
		g.board.QueueCommand(d)
	}

	g.frame++
	if g.frame < g.cfg.Timing.FramesPerTick {
		return platformcore.StepResult{State: g.State()}
	}
	g.frame = 0

	report := g.board.GiveTurns()
	g.lastReport = report
	if s := describe(report); s != "" {
		g.status = s
	}
	if report.Ended {
		g.clearLevel(report)
	}

	return platformcore.StepResult{State: g.State()}
}

// clearLevel records a finished level.
func (g *Game) clearLevel(report core.TurnReport) {
	g.levelCleared = true
	g.levelScore = report.Score
	g.score += report.Score
	g.results = append(g.results, platformcore.LevelResult{
		GameID:  g.ID(),
		LevelID: g.levelID(),
		Score:   report.Score,
		Turns:   report.Turn,
	})
}

// nextLevel advances past a cleared level, or wins after the last one.
func (g *Game) nextLevel() {
	g.levelIndex++
	if g.levelIndex >= g.levelCount() {
		g.levelIndex = g.levelCount() - 1
		g.won = true
		g.gameOver = true
		return
	}
	g.loadCurrentLevel()
}

// dirForAction maps movement actions to board directions.
func dirForAction(a platformcore.Action) (core.Dir, bool) {
	switch a {
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionRight:
		return core.DirRight, true
	case platformcore.ActionDown:
		return core.DirDown, true
	default:
		return 0, false
	}
}

// describe turns the events of a tick into a status line.
func describe(r core.TurnReport) string {
	var msg string
	for _, e := range r.Events {
		switch e.Kind {
		case core.EventCaptured:
			return "A raccoon climbed into a can at " + e.To.String()
		case core.EventUnlocked:
			msg = "A raccoon pried open the can at " + e.To.String()
		case core.EventLocked:
			if msg == "" {
				msg = "Can locked at " + e.To.String()
			}
		case core.EventBlocked:
			if msg == "" {
				msg = "Can't move " + e.Dir.String()
			}
		}
	}
	return msg
}

// TakeLevelResults returns levels cleared since the last call and forgets them.
func (g *Game) TakeLevelResults() []platformcore.LevelResult {
	out := g.results
	g.results = nil
	return out
}

// Board returns the board in play, or nil if none is loaded.
func (g *Game) Board() *core.Board {
	return g.board
}

// Err returns the error that stopped the game from loading a level.
func (g *Game) Err() error {
	return g.loadErr
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
		Level:    g.levelID(),
	}
}
