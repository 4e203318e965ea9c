package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagWatch      bool
	flagStart      int
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start playing the level campaign.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower start
  normal - Default
  hard   - Fewer lives, faster start
  fixed  - No speed-up between levels

Examples:
  platformer play
  platformer play --start 2
  platformer play --level ember-hall
  platformer play --difficulty hard
  platformer play --config ./my-platformer.yaml
  platformer play --levels ./my-levels --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagStart, "start", 0, "Start at this level (1-indexed)")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start at the level with this ID")
	playCmd.MarkFlagsMutuallyExclusive("start", "level")
}

// addGameFlags registers the flags shared by commands that start the game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in campaign)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files in --levels change")
}

// configureGame applies the shared game flags. The returned function stops
// the level watcher, if one was started.
func configureGame() (stop func(), err error) {
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelsDir(flagLevelsDir)

	stop = func() {}
	if !flagWatch {
		return stop, nil
	}
	if flagLevelsDir == "" {
		return stop, fmt.Errorf("--watch requires --levels")
	}

	w, err := levels.NewWatcher(flagLevelsDir)
	if err != nil {
		return stop, fmt.Errorf("watching %s: %w", flagLevelsDir, err)
	}
	platformer.SetLevelUpdates(w.Events)
	go func() {
		for err := range w.Errors {
			logger.Warn("level watcher", "dir", flagLevelsDir, "err", err)
		}
	}()
	return func() {
		platformer.SetLevelUpdates(nil)
		w.Close()
	}, nil
}

// selectStart applies --level or --start. It must run after configureGame so
// level IDs resolve against the chosen campaign.
func selectStart() error {
	if flagLevel != "" {
		return platformer.SetStartLevelID(flagLevel)
	}
	platformer.SetStartLevel(flagStart)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. The game runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	stop, err := configureGame()
	if err != nil {
		return err
	}
	defer stop()

	if err := selectStart(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
