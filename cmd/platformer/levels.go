package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the levels of the built-in campaign, or of --levels, in play order.

Examples:
  platformer levels
  platformer levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var checkCmd = &cobra.Command{
	Use:   "check <file|dir>...",
	Short: "Validate level files",
	Long: `Parses and validates level YAML files. Directories are searched
recursively. Exits non-zero when any level is invalid.

Examples:
  platformer check ./my-levels
  platformer check ./my-levels/01-intro.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in campaign)")
}

func runLevels(cmd *cobra.Command, _ []string) error {
	loader := levels.NewCampaignLoader()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}

	all, skipped, err := loader.LoadAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 && len(skipped) == 0 {
		fmt.Fprintln(out, "No levels found.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, lvl := range all {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %-7s  %s\n", "#", maxIDLen, "ID", "Size", "Name")
	fmt.Fprintf(out, "  %-3s  %-*s  %-7s  %s\n", "-", maxIDLen, "--", "----", "----")
	for i, lvl := range all {
		name := lvl.Name
		if err := lvl.Validate(); err != nil {
			name += " (invalid)"
		}
		fmt.Fprintf(out, "  %-3d  %-*s  %-7s  %s\n", i+1, maxIDLen, lvl.ID, planSize(lvl.Plan), name)
	}

	if len(skipped) > 0 {
		fmt.Fprintf(out, "\nSkipped %d unreadable file(s):\n", len(skipped))
		for _, err := range skipped {
			fmt.Fprintf(out, "  %v\n", err)
		}
	}
	return nil
}

func planSize(plan []string) string {
	width := 0
	for _, row := range plan {
		width = max(width, len([]rune(row)))
	}
	return fmt.Sprintf("%dx%d", width, len(plan))
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var files []string
	for _, arg := range args {
		found, err := levelFiles(arg)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return errors.New("no level files found")
	}

	failed := 0
	for _, path := range files {
		lvl, err := levels.LoadFile(path)
		if err == nil {
			err = lvl.Validate()
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n", path)
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(out, "     %s\n", line)
			}
			continue
		}
		fmt.Fprintf(out, "ok   %s (%s)\n", path, lvl.ID)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels invalid", failed, len(files))
	}
	return nil
}

// levelFiles returns path itself, or the level files below it when it is a
// directory.
func levelFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && levels.IsLevelFile(p) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
