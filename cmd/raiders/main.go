// raiders is a terminal puzzle game: keep the raccoons out of the garbage
// cans by pushing recycling bins around them.
//
// Usage:
//
//	raiders list             - List game modes
//	raiders play [mode]      - Play the campaign or the random mode
//	raiders menu             - Start menu to pick modes and levels interactively
//	raiders levels           - List and validate campaign levels
//	raiders sim              - Replay a level headless
//	raiders scores [mode]    - Show high scores
//	raiders serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.raiders/scores.db)
//	--config <path>   - Custom raiders.yaml
//	--levels <dir>    - Read campaign levels from a directory
//	--mono            - Grayscale colors
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raiders/internal/config"
	"github.com/vovakirdan/tui-raiders/internal/games/raiders"
	"github.com/vovakirdan/tui-raiders/internal/platform/tui"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagMono      bool
)

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnv reads RAIDERS_* variables into the flag variables. Flags given
// on the command line still win.
func loadEnv() error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flagFPS = e.FPS
	if e.DBPath != "" {
		flagDBPath = e.DBPath
	}
	if e.Config != "" {
		flagConfig = e.Config
	}
	if e.LevelsDir != "" {
		flagLevelsDir = e.LevelsDir
	}
	if e.SSHAddr != "" {
		flagSSHAddr = e.SSHAddr
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "raiders",
	Short: "Raccoon Raiders - herd raccoons away from the garbage cans",
	Long: `Raccoon Raiders is a turn-based puzzle game for the terminal.

Push recycling bins to trap raccoons in corners before they climb into the
garbage cans. Every trapped raccoon scores points when the level ends.

Available commands:
  list     - Show game modes
  play     - Play the campaign or a random run
  menu     - Interactive menu with level picker and scoreboard
  levels   - List and validate level files
  sim      - Replay a level headless with scripted moves
  scores   - View high scores and level bests
  serve    - Start SSH server for remote play

Environment:
  RAIDERS_DB, RAIDERS_FPS, RAIDERS_CONFIG, RAIDERS_LEVELS_DIR, RAIDERS_SSH_ADDR

Examples:
  raiders play
  raiders play raiders_random --difficulty hard
  raiders menu
  raiders sim --level 01-first-steps --moves RRRRRRDDLL
  raiders serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		raiders.SetConfigPath(flagConfig)
		raiders.SetLevelsDir(flagLevelsDir)
		if flagMono {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, except for sim)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raiders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom raiders.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use grayscale colors")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns a stderr logger in the style used across the CLI.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
