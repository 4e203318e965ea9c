package core

import "math"

// Level owns the static obstacle grid and the live entity list.
// The grid and list are only changed through Level methods.
type Level struct {
	grid        [][]ObstacleTag // [row][col]; rows may be ragged
	actors      []*Entity       // parse order, significant for ActorAt
	width       int
	height      int
	player      *Entity
	status      Status
	finishDelay float64
}

// DefaultFinishDelay is the post-game countdown a level starts with.
const DefaultFinishDelay = 1.0

// NewLevel creates a level from a grid and an initial entity list.
// Both are copied; nil entities are dropped. The first player-kind entity
// becomes the level's player.
func NewLevel(grid [][]ObstacleTag, actors []*Entity) *Level {
	l := &Level{
		grid:        make([][]ObstacleTag, len(grid)),
		actors:      make([]*Entity, 0, len(actors)),
		height:      len(grid),
		finishDelay: DefaultFinishDelay,
	}

	for y, row := range grid {
		l.grid[y] = make([]ObstacleTag, len(row))
		copy(l.grid[y], row)
		if len(row) > l.width {
			l.width = len(row)
		}
	}

	for _, a := range actors {
		if a == nil {
			continue
		}
		l.actors = append(l.actors, a)
		if l.player == nil && a.Kind() == KindPlayer {
			l.player = a
		}
	}

	return l
}

// Width returns the length of the longest grid row.
func (l *Level) Width() int { return l.width }

// Height returns the number of grid rows.
func (l *Level) Height() int { return l.height }

// Player returns the level's player, or nil if the plan had none.
func (l *Level) Player() *Entity { return l.player }

// Status returns the current outcome state.
func (l *Level) Status() Status { return l.status }

// FinishDelay returns the post-game countdown.
func (l *Level) FinishDelay() float64 { return l.finishDelay }

// DecreaseFinishDelay lowers the post-game countdown. The level has no clock
// of its own; the driver calls this once per tick after the status is set.
func (l *Level) DecreaseFinishDelay(amount float64) {
	l.finishDelay -= amount
}

// IsFinished reports whether the level has an outcome and its post-game
// countdown has run out.
func (l *Level) IsFinished() bool {
	return l.status != StatusPlaying && l.finishDelay < 0
}

// Cell returns the obstacle tag at (x, y). Cells outside the grid, including
// the missing tail of a short row, are empty.
func (l *Level) Cell(x, y int) ObstacleTag {
	if y < 0 || y >= len(l.grid) {
		return ObstacleNone
	}
	row := l.grid[y]
	if x < 0 || x >= len(row) {
		return ObstacleNone
	}
	return row[x]
}

// Actors returns a copy of the live entity list in list order.
func (l *Level) Actors() []*Entity {
	out := make([]*Entity, len(l.actors))
	copy(out, l.actors)
	return out
}

// ObstacleAt returns the obstacle blocking a box at pos with the given size.
// Leaving the level through the left, top or right edge hits a wall; through
// the bottom, lava. Otherwise the covered cells are scanned row by row and the
// first non-empty one wins.
// Panics with a ContractError if pos or size is not a finite vector.
func (l *Level) ObstacleAt(pos, size Vector) ObstacleTag {
	if !pos.Finite() {
		panic(contractError("ObstacleAt", "pos", "not a finite vector"))
	}
	if !size.Finite() {
		panic(contractError("ObstacleAt", "size", "not a finite vector"))
	}

	left, top := pos.X, pos.Y
	right, bottom := pos.X+size.X, pos.Y+size.Y

	if left < 0 || top < 0 || right >= float64(l.width) {
		return ObstacleWall
	}
	if bottom >= float64(l.height) {
		return ObstacleLava
	}

	xStart, xEnd := int(math.Floor(left)), int(math.Ceil(right))
	yStart, yEnd := int(math.Floor(top)), int(math.Ceil(bottom))
	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if tag := l.Cell(x, y); tag != ObstacleNone {
				return tag
			}
		}
	}
	return ObstacleNone
}

// ActorAt returns the first live entity, in list order, that intersects e.
// Returns nil if none does.
// Panics with a ContractError if e is nil.
func (l *Level) ActorAt(e *Entity) *Entity {
	if e == nil {
		panic(contractError("ActorAt", "entity", "nil entity"))
	}
	for _, a := range l.actors {
		if e.IsIntersect(a) {
			return a
		}
	}
	return nil
}

// RemoveActor removes e from the live list. No-op if e is not present.
// The list is rebuilt rather than edited in place, so copies handed out by
// Actors stay valid.
func (l *Level) RemoveActor(e *Entity) {
	kept := make([]*Entity, 0, len(l.actors))
	for _, a := range l.actors {
		if a != e {
			kept = append(kept, a)
		}
	}
	l.actors = kept
}

// NoMoreActors reports whether no live entity has the given kind.
func (l *Level) NoMoreActors(kind Kind) bool {
	return l.CountActors(kind) == 0
}

// CountActors returns the number of live entities of the given kind.
func (l *Level) CountActors(kind Kind) int {
	n := 0
	for _, a := range l.actors {
		if a.Kind() == kind {
			n++
		}
	}
	return n
}

// PlayerTouched applies the win/loss rules for the player touching something.
// Lava or a fireball loses the level. A coin is collected; collecting the last
// one wins. Other touches are ignored, and so is everything once the level
// has an outcome.
func (l *Level) PlayerTouched(touch Touch, e *Entity) {
	if l.status != StatusPlaying {
		return
	}

	switch touch {
	case TouchLava, TouchFireball:
		l.status = StatusLost
	case TouchCoin:
		l.RemoveActor(e)
		if l.NoMoreActors(KindCoin) {
			l.status = StatusWon
		}
	case TouchNothing, TouchWall, TouchActor, TouchPlayer:
	}
}

// Step calls Act on every live entity in list order.
// It iterates over a snapshot, so entities removed during the tick still
// finish it and the list is never mutated under the loop.
func (l *Level) Step(dt float64) {
	for _, a := range l.Actors() {
		a.Act(dt, l)
	}
}
