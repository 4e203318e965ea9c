// Package core provides the simulation core of the platformer: entities,
// the level grid, the plan parser and the win/loss rules.
// This package is UI-agnostic and deterministic; it never logs or sleeps.
package core

// Kind is the discriminator used by obstacle and win/loss rules.
type Kind uint8

const (
	KindActor Kind = iota
	KindPlayer
	KindCoin
	KindFireball
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// Variant identifies the concrete entity type. The set is closed; every
// variant maps onto exactly one Kind.
type Variant uint8

const (
	VariantActor Variant = iota
	VariantPlayer
	VariantCoin
	VariantHorizontalFireball
	VariantVerticalFireball
	VariantFireRain
)

// Kind returns the kind tag for the variant.
func (v Variant) Kind() Kind {
	switch v {
	case VariantPlayer:
		return KindPlayer
	case VariantCoin:
		return KindCoin
	case VariantHorizontalFireball, VariantVerticalFireball, VariantFireRain:
		return KindFireball
	default:
		return KindActor
	}
}

// String returns the string representation of a variant.
func (v Variant) String() string {
	switch v {
	case VariantActor:
		return "actor"
	case VariantPlayer:
		return "player"
	case VariantCoin:
		return "coin"
	case VariantHorizontalFireball:
		return "horizontal-fireball"
	case VariantVerticalFireball:
		return "vertical-fireball"
	case VariantFireRain:
		return "fire-rain"
	default:
		return "unknown"
	}
}

// ObstacleTag is the static marker of a grid cell.
type ObstacleTag uint8

const (
	ObstacleNone ObstacleTag = iota
	ObstacleWall
	ObstacleLava
)

// String returns the string representation of an obstacle tag.
func (o ObstacleTag) String() string {
	switch o {
	case ObstacleNone:
		return "none"
	case ObstacleWall:
		return "wall"
	case ObstacleLava:
		return "lava"
	default:
		return "unknown"
	}
}

// Status is the outcome state of a level. Once it leaves StatusPlaying it
// never changes again.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Touch describes what the player ran into. The driver converts obstacle tags
// and entity kinds into a Touch before calling Level.PlayerTouched.
type Touch uint8

const (
	TouchNothing Touch = iota
	TouchWall
	TouchLava
	TouchActor
	TouchPlayer
	TouchCoin
	TouchFireball
)

// String returns the string representation of a touch.
func (t Touch) String() string {
	switch t {
	case TouchNothing:
		return "nothing"
	case TouchWall:
		return "wall"
	case TouchLava:
		return "lava"
	case TouchActor:
		return "actor"
	case TouchPlayer:
		return "player"
	case TouchCoin:
		return "coin"
	case TouchFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// TouchFor converts an obstacle tag into a touch.
func TouchFor(o ObstacleTag) Touch {
	switch o {
	case ObstacleWall:
		return TouchWall
	case ObstacleLava:
		return TouchLava
	default:
		return TouchNothing
	}
}

// TouchForKind converts an entity kind into a touch.
func TouchForKind(k Kind) Touch {
	switch k {
	case KindPlayer:
		return TouchPlayer
	case KindCoin:
		return TouchCoin
	case KindFireball:
		return TouchFireball
	default:
		return TouchActor
	}
}
