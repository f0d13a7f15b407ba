package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raiders/internal/games/raiders"
	"github.com/vovakirdan/tui-raiders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and level picker menu",
	Long: `Start in interactive menu mode.

Pick a mode with the arrow keys or j/k and Enter. The campaign opens a
level picker showing your best result per level. Tab opens the scoreboard.
Leaving a game (Esc while paused or after the run) returns to the menu.

Examples:
  raiders menu
  raiders menu --fps 60
  raiders menu --levels ./my-levels`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	raiders.SetDifficultyPreset(flagDifficulty)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
