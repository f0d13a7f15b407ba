package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raiders/internal/games/raiders/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate campaign levels",
	Long: `List the campaign levels in play order and check every level file.
Files that fail to load are reported and make the command exit with 1.

Examples:
  raiders levels
  raiders levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	logger := newLogger("levels")

	loader := levels.ForDir(flagLevelsDir)
	lvls, problems, err := loader.Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Levels in %s:\n\n", loader.Root)

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}
	fmt.Printf("  %-3s  %-*s  %-5s  %s\n", "#", maxIDLen, "ID", "Freq", "Name")
	for i, l := range lvls {
		freq := "-"
		if l.Frequency > 0 {
			freq = fmt.Sprint(l.Frequency)
		}
		fmt.Printf("  %-3d  %-*s  %-5s  %s\n", i+1, maxIDLen, l.ID, freq, l.Name)
	}

	for _, p := range problems {
		logger.Error("invalid level", "file", p.Path, "error", p.Err)
	}
	if len(problems) > 0 {
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("%d levels OK\n", len(lvls))
}
