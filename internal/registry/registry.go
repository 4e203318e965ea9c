// Package registry keeps the set of playable games. Games register a factory
// from init(), so the terminal front end and the CLI can look them up by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is driven by the platform at a fixed tick rate. Implementations hold
// simulation state only; input mapping, timing and drawing to the terminal
// belong to the platform.
type Game interface {
	// ID is the stable key used by the CLI and the score store.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a fresh run with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting the run.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
