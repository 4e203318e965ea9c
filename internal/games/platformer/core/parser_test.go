package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

func TestObstacleFromSymbol(t *testing.T) {
	p, err := core.NewLevelParser(nil)
	if err != nil {
		t.Fatalf("NewLevelParser() failed: %v", err)
	}

	tests := []struct {
		sym      rune
		expected core.ObstacleTag
	}{
		{'x', core.ObstacleWall},
		{'!', core.ObstacleLava},
		{' ', core.ObstacleNone},
		{'@', core.ObstacleNone},
		{'X', core.ObstacleNone},
		{'?', core.ObstacleNone},
	}

	for _, tc := range tests {
		if got := p.ObstacleFromSymbol(tc.sym); got != tc.expected {
			t.Errorf("ObstacleFromSymbol(%q) = %v, expected %v", tc.sym, got, tc.expected)
		}
	}
}

func TestParseExamplePlan(t *testing.T) {
	p, err := core.NewLevelParser(core.Dictionary{'@': core.ActorFactory})
	if err != nil {
		t.Fatalf("NewLevelParser() failed: %v", err)
	}

	plan := []string{
		" @ ",
		"x!x",
	}

	grid := p.CreateGrid(plan)
	expectedGrid := [][]core.ObstacleTag{
		{core.ObstacleNone, core.ObstacleNone, core.ObstacleNone},
		{core.ObstacleWall, core.ObstacleLava, core.ObstacleWall},
	}
	for y := range expectedGrid {
		for x := range expectedGrid[y] {
			if grid[y][x] != expectedGrid[y][x] {
				t.Errorf("grid[%d][%d] = %v, expected %v", y, x, grid[y][x], expectedGrid[y][x])
			}
		}
	}

	actors := p.CreateActors(plan)
	if len(actors) != 1 {
		t.Fatalf("CreateActors() returned %d actors, expected 1", len(actors))
	}
	if actors[0].Pos() != core.V(1, 0) {
		t.Errorf("actor at %v, expected (1:0)", actors[0].Pos())
	}

	level := p.Parse(plan)
	if level.Width() != 3 || level.Height() != 2 {
		t.Errorf("level is %dx%d, expected 3x2", level.Width(), level.Height())
	}
	if level.Cell(1, 1) != core.ObstacleLava {
		t.Errorf("Cell(1, 1) = %v, expected lava", level.Cell(1, 1))
	}
}

func TestParsePlayerOffset(t *testing.T) {
	p, err := core.NewLevelParser(core.Dictionary{'@': core.NewPlayer})
	if err != nil {
		t.Fatalf("NewLevelParser() failed: %v", err)
	}

	level := p.Parse([]string{" @ ", "x!x"})

	player := level.Player()
	if player == nil {
		t.Fatal("Player() = nil, expected the parsed player")
	}
	if player.Pos() != core.V(1, -0.5) {
		t.Errorf("player at %v, expected (1:-0.5)", player.Pos())
	}
	// Feet on the tile floor
	if player.Bottom() != 1 {
		t.Errorf("player Bottom() = %v, expected 1", player.Bottom())
	}
}

func TestCreateActorsSkips(t *testing.T) {
	invalid := func(pos core.Vector) *core.Entity {
		e, _ := core.NewActor(pos, core.V(0, 0), core.V(0, 0))
		return e
	}
	nothing := func(core.Vector) *core.Entity { return nil }

	p, err := core.NewLevelParser(core.Dictionary{
		'a': core.ActorFactory,
		'n': nothing,
		'i': invalid,
	})
	if err != nil {
		t.Fatalf("NewLevelParser() failed: %v", err)
	}

	actors := p.CreateActors([]string{
		"a?n",
		"ia#",
	})

	if len(actors) != 2 {
		t.Fatalf("CreateActors() returned %d actors, expected 2", len(actors))
	}
	if actors[0].Pos() != core.V(0, 0) || actors[1].Pos() != core.V(1, 1) {
		t.Errorf("actors at %v and %v, expected (0:0) and (1:1)", actors[0].Pos(), actors[1].Pos())
	}
}

func TestCreateActorsNilDictionary(t *testing.T) {
	p, err := core.NewLevelParser(nil)
	if err != nil {
		t.Fatalf("NewLevelParser() failed: %v", err)
	}
	if actors := p.CreateActors([]string{"@o=|v"}); len(actors) != 0 {
		t.Errorf("CreateActors() returned %d actors, expected 0", len(actors))
	}
}

func TestNewLevelParserReservedSymbols(t *testing.T) {
	for _, sym := range []rune{core.SymbolWall, core.SymbolLava} {
		_, err := core.NewLevelParser(core.Dictionary{sym: core.ActorFactory})
		if err == nil {
			t.Errorf("NewLevelParser() accepted reserved symbol %q", sym)
			continue
		}
		if !errors.Is(err, core.ErrContract) {
			t.Errorf("error %v does not match ErrContract", err)
		}
	}
}

func TestParserCopiesDictionary(t *testing.T) {
	dict := core.Dictionary{'a': core.ActorFactory}
	p, err := core.NewLevelParser(dict)
	if err != nil {
		t.Fatalf("NewLevelParser() failed: %v", err)
	}

	delete(dict, 'a')

	if p.ActorFromSymbol('a') == nil {
		t.Error("parser dictionary changed through the caller's map")
	}
}

func TestDefaultDictionary(t *testing.T) {
	level := parse(t,
		"@o=|v",
		"     ",
		"xxxxx",
	)

	expected := []core.Variant{
		core.VariantPlayer,
		core.VariantCoin,
		core.VariantHorizontalFireball,
		core.VariantVerticalFireball,
		core.VariantFireRain,
	}

	actors := level.Actors()
	if len(actors) != len(expected) {
		t.Fatalf("got %d actors, expected %d", len(actors), len(expected))
	}
	for i, a := range actors {
		if a.Variant() != expected[i] {
			t.Errorf("actor %d is %v, expected %v", i, a.Variant(), expected[i])
		}
	}
}

func TestParseMultibyteRows(t *testing.T) {
	level := parse(t, "é@", "xx")

	if level.Width() != 2 {
		t.Errorf("Width() = %d, expected 2 (runes, not bytes)", level.Width())
	}
	if got := level.Player().Pos(); got != core.V(1, -0.5) {
		t.Errorf("player at %v, expected (1:-0.5)", got)
	}
}
