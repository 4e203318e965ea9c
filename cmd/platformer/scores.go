package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and best level times",
	Long: `Display the top 10 scores and the fastest clear of every level.

Examples:
  platformer scores
  platformer scores --db ./scores.db
  platformer scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all saved scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out, "Play 'platformer play' to set the first high score!")
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
		}
	}

	best, err := store.BestLevelResults()
	if err != nil {
		return fmt.Errorf("retrieving level results: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Best Times")
	fmt.Fprintln(out)
	if len(best) == 0 {
		fmt.Fprintln(out, "No levels cleared yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-22s  %-9s  %-5s  %s\n", "Level", "Time", "Coins", "Attempts")
	fmt.Fprintf(out, "  %-22s  %-9s  %-5s  %s\n", "-----", "----", "-----", "--------")
	for _, r := range best {
		attempts := "-"
		if stats, err := store.GetLevelStats(r.LevelID); err == nil {
			attempts = fmt.Sprintf("%d/%d", stats.Wins, stats.Attempts)
		}
		fmt.Fprintf(out, "  %-22s  %-9s  %-5d  %s\n", r.LevelID, fmt.Sprintf("%.2fs", r.Seconds), r.Coins, attempts)
	}
	return nil
}
