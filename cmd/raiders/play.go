package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raiders/internal/core"
	"github.com/vovakirdan/tui-raiders/internal/games/raiders"
	"github.com/vovakirdan/tui-raiders/internal/platform/tui"
	"github.com/vovakirdan/tui-raiders/internal/registry"
	"github.com/vovakirdan/tui-raiders/internal/storage"
)

var (
	flagLevel      int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the campaign or a random run",
	Long: `Start playing. The default mode is the campaign (raiders); use
raiders_random for generated boards.

Controls:
  Arrows/WASD/hjkl - Move
  N/Enter          - Next level after a clear
  P                - Pause
  R                - Restart level (new run after game over)
  B/Esc            - Pause, or leave when paused
  Ctrl+S           - Screenshot to ~/.raiders/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Raccoons move every 30 ticks, no seekers in random boards
  normal - Raccoons move every 20 ticks
  hard   - Raccoons move every 10 ticks, more raccoons in random boards
  fixed  - Keep the config's frequency, no progression

Examples:
  raiders play
  raiders play --level 3
  raiders play raiders_random --difficulty hard --seed 42
  raiders play --config ./my-raiders.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-indexed, 0 = pick from a menu)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runtimeConfig builds the platform config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := raiders.IDCampaign
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'raiders list' to see available modes.")
		os.Exit(1)
	}

	raiders.SetDifficultyPreset(flagDifficulty)
	cfg := runtimeConfig()

	// Open score storage. The game still works without it.
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	level := 0
	if gameID == raiders.IDCampaign {
		level = flagLevel
		if level == 0 {
			selection, err := tui.RunLevelSelector(store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			// User pressed back or quit
			if selection == nil {
				return
			}
			level = selection.Level
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if starter, ok := game.(registry.LevelStarter); ok && level > 0 {
		starter.StartAt(level)
	}

	if err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
