package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raiders/internal/games/raiders"
	"github.com/vovakirdan/tui-raiders/internal/platform/tui"
	"github.com/vovakirdan/tui-raiders/internal/registry"
	"github.com/vovakirdan/tui-raiders/internal/storage"
)

var (
	flagLevelsOnly bool
	flagScoresTUI  bool
	flagAllScores  bool
	flagLevelID    string
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 run scores and the best result per level for a
game mode (default: raiders).

Examples:
  raiders scores
  raiders scores raiders_random
  raiders scores --levels-only
  raiders scores --level 03-alley
  raiders scores --all
  raiders scores --tui
  raiders scores raiders_random --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagLevelsOnly, "levels-only", false, "Only show the best result per level")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().StringVar(&flagLevelID, "level", "", "Show the recorded clears of one level")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and level results of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := raiders.IDCampaign
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'raiders list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores of %s.\n", title)
		return
	case flagLevelID != "":
		if err := printLevelHistory(store, gameID, flagLevelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving level results: %v\n", err)
		}
		return
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		run := tui.RunScoreboard
		if flagLevelsOnly {
			run = tui.RunLevelScoreboard
		}
		if _, err := run(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if !flagLevelsOnly {
		if err := printRunScores(store, gameID, title); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			return
		}
		fmt.Println()
	}

	if err := printLevelBests(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level results: %v\n", err)
	}
}

func printRunScores(store *storage.Store, gameID, title string) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'raiders play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Levels cleared: %d\n", stats.HighScore, stats.GamesCount, stats.LevelClears)
	}
	return nil
}

func printLevelBests(store *storage.Store, gameID string) error {
	bests, err := store.BestLevels(gameID)
	if err != nil {
		return err
	}

	fmt.Println("Level Bests")
	fmt.Println()
	if len(bests) == 0 {
		fmt.Println("No levels cleared yet.")
		return nil
	}

	maxIDLen := 5 // "Level" header
	for _, b := range bests {
		maxIDLen = max(maxIDLen, len(b.LevelID))
	}
	fmt.Printf("  %-*s  %-5s  %-5s  %-6s  %s\n", maxIDLen, "Level", "Best", "Turns", "Clears", "Last")
	for _, b := range bests {
		fmt.Printf("  %-*s  %-5d  %-5d  %-6d  %s\n", maxIDLen, b.LevelID, b.BestScore, b.BestTurns, b.Clears,
			b.LastClear.Format("2006-01-02 15:04"))
	}
	return nil
}

func printLevelHistory(store *storage.Store, gameID, levelID string) error {
	entries, err := store.LevelResults(gameID, levelID, 20)
	if err != nil {
		return err
	}

	fmt.Printf("Clears of %s\n", levelID)
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("Not cleared yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-5s  %s\n", "Rank", "Score", "Turns", "Date")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-5d  %-5d  %s\n", i+1, e.Score, e.Turns, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
