package core

import (
	"math"
	"math/rand"
)

// Coin oscillation constants.
const (
	CoinSpringSpeed = 8.0
	CoinSpringDist  = 0.07
)

var coinOffset = V(0.2, 0.1)

// spring bobs a coin vertically around its start position.
type spring struct {
	start Vector
	phase float64
}

func (s *spring) act(e *Entity, dt float64, _ *Level) {
	s.phase += CoinSpringSpeed * dt
	e.pos = s.start.Plus(V(0, math.Sin(s.phase)*CoinSpringDist))
}

// NewCoin creates a coin in the grid cell at pos.
// The initial spring phase is drawn from rng in [0, 2π); a nil rng gives
// phase 0.
func NewCoin(pos Vector, rng *rand.Rand) *Entity {
	start := pos.Plus(coinOffset)
	phase := 0.0
	if rng != nil {
		phase = rng.Float64() * 2 * math.Pi
	}
	return &Entity{
		pos:     start,
		size:    V(0.6, 0.6),
		speed:   V(0, 0),
		variant: VariantCoin,
		motion:  &spring{start: start, phase: phase},
	}
}

// SpringPhase returns the current oscillation phase of a coin, or 0 for any
// other variant.
func (e *Entity) SpringPhase() float64 {
	if s, ok := e.motion.(*spring); ok {
		return s.phase
	}
	return 0
}
