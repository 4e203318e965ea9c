package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable comparison; floats are stored as
// their IEEE-754 bits.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	LevelIndex  int
	Status      int
	GameOver    bool
	Won         bool
	FinishDelay uint64

	// Actor state, 5 values per actor: Variant, X, Y, VX, VY
	ActorCount int
	ActorData  []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		GameOver:   g.gameOver,
		Won:        g.won,
	}
	if g.level == nil {
		return snap
	}

	snap.Status = int(g.level.Status())
	snap.FinishDelay = math.Float64bits(g.level.FinishDelay())

	actors := g.level.Actors()
	snap.ActorCount = len(actors)
	snap.ActorData = make([]uint64, 0, len(actors)*5)
	for _, a := range actors {
		snap.ActorData = append(snap.ActorData,
			uint64(a.Variant()),
			math.Float64bits(a.Pos().X),
			math.Float64bits(a.Pos().Y),
			math.Float64bits(a.Speed().X),
			math.Float64bits(a.Speed().Y),
		)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)     //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Won)
	h = h*31 + snap.FinishDelay
	h = h*31 + uint64(snap.ActorCount) //#nosec G115 -- hash computation

	for _, v := range snap.ActorData {
		h = h*31 + v
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// PlayerPos returns the player's position, or false if the level has none.
func (g *Game) PlayerPos() (core.Vector, bool) {
	if g.level == nil || g.level.Player() == nil {
		return core.Vector{}, false
	}
	return g.level.Player().Pos(), true
}
