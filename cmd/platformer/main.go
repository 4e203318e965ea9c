// platformer is a lava platformer that runs in the terminal.
//
// Usage:
//
//	platformer play            - Play the campaign
//	platformer menu            - Pick a level interactively
//	platformer levels          - List campaign levels
//	platformer check <path>    - Validate level files
//	platformer scores          - Show high scores and best times
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.platformer/scores.db)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

const gameID = "platformer"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logFile io.Closer
	logger  = log.New(io.Discard)
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Lava Platformer - jump over lava in your terminal",
	Long: `Lava Platformer is a tile-based platformer for the terminal.
Collect every coin on a level to clear it; lava and fireballs cost a life.

Available commands:
  play     - Play the campaign
  menu     - Pick a level interactively
  levels   - List campaign levels
  check    - Validate level files
  scores   - View high scores and best times

Examples:
  platformer play
  platformer play --start 3 --difficulty hard
  platformer play --levels ./my-levels --watch
  platformer check ./my-levels`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging sends game and UI logs to --log-file. The terminal belongs to
// the game while it runs, so nothing is logged without a file.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
	platformer.SetLogger(logger)
	tui.SetLogger(logger)
	return nil
}
