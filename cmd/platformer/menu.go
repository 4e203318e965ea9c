package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Esc during a game returns to the menu.

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels ./my-levels --watch`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	stop, err := configureGame()
	if err != nil {
		return err
	}
	defer stop()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		campaign := platformer.Campaign()
		infos := make([]tui.LevelInfo, len(campaign))
		for i, lvl := range campaign {
			infos[i] = tui.LevelInfo{ID: lvl.ID, Name: lvl.Name}
		}

		result, err := tui.RunMenu(infos, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		platformer.SetStartLevel(result.StartLevel)
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
