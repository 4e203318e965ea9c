package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

const epsilon = 1e-9

func near(a, b core.Vector) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

// openField is a 5x3 level with no obstacles.
func openField(t *testing.T) *core.Level {
	t.Helper()
	return parse(t,
		"     ",
		"     ",
		"     ",
	)
}

func TestFireballSizes(t *testing.T) {
	for _, e := range []*core.Entity{
		core.NewHorizontalFireball(core.V(0, 0)),
		core.NewVerticalFireball(core.V(0, 0)),
		core.NewFireRain(core.V(0, 0)),
	} {
		if e.Size() != core.V(1, 1) {
			t.Errorf("%v size = %v, expected (1:1)", e.Variant(), e.Size())
		}
		if e.Kind() != core.KindFireball {
			t.Errorf("%v kind = %v, expected fireball", e.Variant(), e.Kind())
		}
	}
}

func TestHorizontalFireballMoves(t *testing.T) {
	l := openField(t)
	f := core.NewHorizontalFireball(core.V(0, 0))

	f.Act(1, l)

	if f.Pos() != core.V(2, 0) {
		t.Errorf("Pos() = %v, expected (2:0)", f.Pos())
	}
	if f.Speed() != core.V(2, 0) {
		t.Errorf("Speed() = %v, expected (2:0)", f.Speed())
	}
}

func TestHorizontalFireballBounces(t *testing.T) {
	l := parse(t,
		"  x  ",
		"     ",
		"     ",
	)
	f := core.NewHorizontalFireball(core.V(0, 0))

	f.Act(1, l)

	if f.Pos() != core.V(0, 0) {
		t.Errorf("Pos() = %v, expected (0:0)", f.Pos())
	}
	if f.Speed() != core.V(-2, 0) {
		t.Errorf("Speed() = %v, expected (-2:0)", f.Speed())
	}

	// Next tick heads back the other way and hits the left boundary wall
	f.Act(0.25, l)
	if f.Pos() != core.V(0, 0) || f.Speed() != core.V(2, 0) {
		t.Errorf("after second tick Pos() = %v Speed() = %v, expected (0:0) and (2:0)", f.Pos(), f.Speed())
	}
}

func TestVerticalFireballBouncesOffLava(t *testing.T) {
	l := openField(t)
	f := core.NewVerticalFireball(core.V(1, 0))

	f.Act(0.5, l)
	if f.Pos() != core.V(1, 1) {
		t.Fatalf("Pos() = %v, expected (1:1)", f.Pos())
	}

	// (1,2) would put the bottom edge on the level floor
	f.Act(0.5, l)
	if f.Pos() != core.V(1, 1) {
		t.Errorf("Pos() = %v, expected (1:1)", f.Pos())
	}
	if f.Speed() != core.V(0, -2) {
		t.Errorf("Speed() = %v, expected (0:-2)", f.Speed())
	}
}

func TestFireRainResets(t *testing.T) {
	l := openField(t)
	f := core.NewFireRain(core.V(1, 0))

	f.Act(0.5, l)
	if f.Pos() != core.V(1, 1.5) {
		t.Fatalf("Pos() = %v, expected (1:1.5)", f.Pos())
	}

	f.Act(0.5, l)
	if f.Pos() != core.V(1, 0) {
		t.Errorf("Pos() = %v, expected reset to (1:0)", f.Pos())
	}
	if f.Speed() != core.V(0, 3) {
		t.Errorf("Speed() = %v, expected unchanged (0:3)", f.Speed())
	}
}

func TestFireballTunnelsOnLargeStep(t *testing.T) {
	// A single huge step skips over the wall; only the landing cell is checked
	l := parse(t,
		"  x      ",
		"         ",
	)
	f := core.NewHorizontalFireball(core.V(0, 0))

	f.Act(2, l)

	if f.Pos() != core.V(4, 0) {
		t.Errorf("Pos() = %v, expected (4:0)", f.Pos())
	}
}

func TestFireballNeedsLevel(t *testing.T) {
	f := core.NewHorizontalFireball(core.V(0, 0))
	expectContractPanic(t, "Act(nil level)", func() {
		f.Act(1, nil)
	})
}

func TestCoinPlacement(t *testing.T) {
	c := core.NewCoin(core.V(3, 4), nil)

	if !near(c.Pos(), core.V(3.2, 4.1)) {
		t.Errorf("Pos() = %v, expected (3.2:4.1)", c.Pos())
	}
	if c.Size() != core.V(0.6, 0.6) {
		t.Errorf("Size() = %v, expected (0.6:0.6)", c.Size())
	}
	if c.Speed() != core.V(0, 0) {
		t.Errorf("Speed() = %v, expected (0:0)", c.Speed())
	}
	if c.SpringPhase() != 0 {
		t.Errorf("SpringPhase() = %v, expected 0 with nil rng", c.SpringPhase())
	}
}

func TestCoinSpringTrajectory(t *testing.T) {
	const seed = 42
	phase := rand.New(rand.NewSource(seed)).Float64() * 2 * math.Pi

	c := core.NewCoin(core.V(3, 4), rand.New(rand.NewSource(seed)))
	start := c.Pos()

	if c.SpringPhase() != phase {
		t.Fatalf("SpringPhase() = %v, expected %v", c.SpringPhase(), phase)
	}
	if phase < 0 || phase >= 2*math.Pi {
		t.Fatalf("initial phase %v outside [0, 2π)", phase)
	}

	l := openField(t)
	for i := 0; i < 10; i++ {
		dt := 0.05 * float64(i+1)
		c.Act(dt, l)
		phase += core.CoinSpringSpeed * dt

		expected := start.Plus(core.V(0, math.Sin(phase)*core.CoinSpringDist))
		if !near(c.Pos(), expected) {
			t.Fatalf("tick %d: Pos() = %v, expected %v", i, c.Pos(), expected)
		}
		if c.Pos().X != start.X {
			t.Fatalf("tick %d: coin drifted horizontally to %v", i, c.Pos())
		}
		if math.Abs(c.Pos().Y-start.Y) > core.CoinSpringDist+epsilon {
			t.Fatalf("tick %d: coin left its spring range: %v", i, c.Pos())
		}
	}
}

func TestCoinIgnoresObstacles(t *testing.T) {
	c := core.NewCoin(core.V(0, 0), nil)
	// Coins never query the level
	c.Act(0.1, nil)

	expected := core.V(0.2, 0.1+math.Sin(0.8)*core.CoinSpringDist)
	if !near(c.Pos(), expected) {
		t.Errorf("Pos() = %v, expected %v", c.Pos(), expected)
	}
}

func TestPlayerIsInert(t *testing.T) {
	l := openField(t)
	p := core.NewPlayer(core.V(2, 1))
	p.SetSpeed(core.V(7, -17))

	p.Act(1, l)

	if p.Pos() != core.V(2, 0.5) {
		t.Errorf("Pos() = %v, expected player to stay at (2:0.5)", p.Pos())
	}
	if p.Kind() != core.KindPlayer {
		t.Errorf("Kind() = %v, expected player", p.Kind())
	}
}
