package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// ValidationError contains details about a plan problem.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a plan can be played through:
//   - the plan has at least one non-empty row
//   - there is exactly one player
//   - there is at least one coin
//
// All problems are reported, joined into one error.
func Validate(plan []string) error {
	var errs []error

	width := 0
	players, coins := 0, 0
	for _, row := range plan {
		runes := []rune(row)
		if len(runes) > width {
			width = len(runes)
		}
		for _, sym := range runes {
			switch sym {
			case core.SymbolPlayer:
				players++
			case core.SymbolCoin:
				coins++
			}
		}
	}

	if width == 0 {
		errs = append(errs, ValidationError{Code: "EMPTY_PLAN", Message: "plan has no cells"})
	}
	switch {
	case players == 0:
		errs = append(errs, ValidationError{Code: "NO_PLAYER", Message: "plan has no player"})
	case players > 1:
		errs = append(errs, ValidationError{
			Code:    "MULTIPLE_PLAYERS",
			Message: fmt.Sprintf("plan has %d players, expected 1", players),
		})
	}
	if coins == 0 {
		errs = append(errs, ValidationError{Code: "NO_COINS", Message: "plan has no coins to collect"})
	}

	return errors.Join(errs...)
}

// Validate checks the level's plan.
func (l *Level) Validate() error {
	if err := Validate(l.Plan); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	return nil
}
