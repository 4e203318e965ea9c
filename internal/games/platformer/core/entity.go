package core

import (
	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
)

// Vector is the platform vector type, re-exported for callers of this package.
type Vector = platformcore.Vector

// V creates a new vector.
func V(x, y float64) Vector {
	return platformcore.Vec(x, y)
}

// behavior is the per-tick update strategy of a variant.
type behavior interface {
	act(e *Entity, dt float64, lvl *Level)
}

// Entity is a positioned, sized, moving object in a level.
// Bounds are derived from pos and size on every call and never cached.
type Entity struct {
	pos     Vector
	size    Vector
	speed   Vector
	variant Variant
	motion  behavior // nil for inert variants
}

// NewActor creates a plain actor with no behavior of its own.
func NewActor(pos, size, speed Vector) (*Entity, error) {
	e := &Entity{pos: pos, size: size, speed: speed, variant: VariantActor}
	if err := e.validate("NewActor"); err != nil {
		return nil, err
	}
	return e, nil
}

// ActorFactory creates a 1×1 motionless actor at pos.
// It satisfies Factory and is handy for plans that only need markers.
func ActorFactory(pos Vector) *Entity {
	e, err := NewActor(pos, V(1, 1), V(0, 0))
	if err != nil {
		return nil
	}
	return e
}

// validate checks the entity contract: finite vectors and a positive size.
func (e *Entity) validate(op string) error {
	switch {
	case !e.pos.Finite():
		return contractError(op, "pos", "not a finite vector")
	case !e.size.Finite():
		return contractError(op, "size", "not a finite vector")
	case !e.speed.Finite():
		return contractError(op, "speed", "not a finite vector")
	case e.size.X <= 0 || e.size.Y <= 0:
		return contractError(op, "size", "must be positive")
	}
	return nil
}

// Pos returns the top-left corner.
func (e *Entity) Pos() Vector { return e.pos }

// Size returns the width and height.
func (e *Entity) Size() Vector { return e.size }

// Speed returns the velocity in units per second.
func (e *Entity) Speed() Vector { return e.speed }

// Variant returns the concrete entity type.
func (e *Entity) Variant() Variant { return e.variant }

// Kind returns the kind tag used by level rules.
func (e *Entity) Kind() Kind { return e.variant.Kind() }

// Left returns the x-coordinate of the left edge.
func (e *Entity) Left() float64 { return e.pos.X }

// Top returns the y-coordinate of the top edge.
func (e *Entity) Top() float64 { return e.pos.Y }

// Right returns the x-coordinate of the right edge.
func (e *Entity) Right() float64 { return e.pos.X + e.size.X }

// Bottom returns the y-coordinate of the bottom edge.
func (e *Entity) Bottom() float64 { return e.pos.Y + e.size.Y }

// SetPos moves the entity. The driver uses it to move the player; other
// variants move themselves in Act.
func (e *Entity) SetPos(pos Vector) { e.pos = pos }

// SetSpeed changes the velocity.
func (e *Entity) SetSpeed(speed Vector) { e.speed = speed }

// IsIntersect reports whether e and other overlap.
// An entity never intersects itself, and touching edges do not count.
// Panics with a ContractError if other is nil.
func (e *Entity) IsIntersect(other *Entity) bool {
	if other == nil {
		panic(contractError("IsIntersect", "other", "nil entity"))
	}
	if other == e {
		return false
	}
	return e.Top() < other.Bottom() &&
		e.Bottom() > other.Top() &&
		e.Left() < other.Right() &&
		e.Right() > other.Left()
}

// Act advances the entity by dt seconds. Plain actors and the player are
// inert; the player is moved only by the driver.
func (e *Entity) Act(dt float64, lvl *Level) {
	if e.motion == nil {
		return
	}
	e.motion.act(e, dt, lvl)
}
