package core

import (
	"fmt"
	"math/rand"
)

// Plan symbols.
const (
	SymbolWall               = 'x'
	SymbolLava               = '!'
	SymbolEmpty              = ' '
	SymbolPlayer             = '@'
	SymbolCoin               = 'o'
	SymbolHorizontalFireball = '='
	SymbolVerticalFireball   = '|'
	SymbolFireRain           = 'v'
)

// Factory creates an entity for the grid cell at pos. Returning nil skips the
// cell.
type Factory func(pos Vector) *Entity

// Dictionary maps plan symbols to entity factories.
type Dictionary map[rune]Factory

// DefaultDictionary returns the standard symbol set. Coins draw their spring
// phase from rng.
func DefaultDictionary(rng *rand.Rand) Dictionary {
	return Dictionary{
		SymbolPlayer:             NewPlayer,
		SymbolCoin:               func(pos Vector) *Entity { return NewCoin(pos, rng) },
		SymbolHorizontalFireball: NewHorizontalFireball,
		SymbolVerticalFireball:   NewVerticalFireball,
		SymbolFireRain:           NewFireRain,
	}
}

// LevelParser turns text plans into levels.
type LevelParser struct {
	dict Dictionary
}

// NewLevelParser creates a parser for the given dictionary. The dictionary is
// copied. Obstacle symbols are reserved and cannot be registered.
func NewLevelParser(dict Dictionary) (*LevelParser, error) {
	p := &LevelParser{dict: make(Dictionary, len(dict))}
	for sym, f := range dict {
		if sym == SymbolWall || sym == SymbolLava {
			return nil, contractError("NewLevelParser", "dictionary",
				fmt.Sprintf("symbol %q is reserved for obstacles", sym))
		}
		p.dict[sym] = f
	}
	return p, nil
}

// ActorFromSymbol returns the factory registered for sym, or nil.
func (p *LevelParser) ActorFromSymbol(sym rune) Factory {
	return p.dict[sym]
}

// ObstacleFromSymbol maps 'x' to wall, '!' to lava and everything else to
// none.
func (p *LevelParser) ObstacleFromSymbol(sym rune) ObstacleTag {
	switch sym {
	case SymbolWall:
		return ObstacleWall
	case SymbolLava:
		return ObstacleLava
	default:
		return ObstacleNone
	}
}

// CreateGrid maps every symbol of the plan to an obstacle tag, keeping row
// lengths as given.
func (p *LevelParser) CreateGrid(plan []string) [][]ObstacleTag {
	grid := make([][]ObstacleTag, len(plan))
	for y, line := range plan {
		runes := []rune(line)
		grid[y] = make([]ObstacleTag, len(runes))
		for x, sym := range runes {
			grid[y][x] = p.ObstacleFromSymbol(sym)
		}
	}
	return grid
}

// CreateActors builds an entity for every plan symbol with a registered
// factory, at its cell position, in row-major order. Unknown symbols, nil
// results and entities that break the entity contract are skipped.
func (p *LevelParser) CreateActors(plan []string) []*Entity {
	var actors []*Entity
	for y, line := range plan {
		for x, sym := range []rune(line) {
			factory := p.ActorFromSymbol(sym)
			if factory == nil {
				continue
			}
			e := factory(V(float64(x), float64(y)))
			if e == nil || e.validate("CreateActors") != nil {
				continue
			}
			actors = append(actors, e)
		}
	}
	return actors
}

// Parse builds a new level from the plan.
func (p *LevelParser) Parse(plan []string) *Level {
	return NewLevel(p.CreateGrid(plan), p.CreateActors(plan))
}
