package core

// fireball speeds in units per second.
var (
	horizontalFireballSpeed = V(2, 0)
	verticalFireballSpeed   = V(0, 2)
	fireRainSpeed           = V(0, 3)
)

// obstacleResponse decides what a projectile does when its next position is
// blocked.
type obstacleResponse uint8

const (
	responseBounce    obstacleResponse = iota // reverse velocity
	responseResetHome                         // jump back to the start position
)

// projectile is the straight-line motion shared by all fireball variants.
// The step is discrete: a blocked move is dropped, not shortened to the
// contact point.
type projectile struct {
	start    Vector
	response obstacleResponse
}

func (p *projectile) act(e *Entity, dt float64, lvl *Level) {
	if lvl == nil {
		panic(contractError("Act", "level", "nil level"))
	}
	next := e.pos.Plus(e.speed.Times(dt))
	if lvl.ObstacleAt(next, e.size) != ObstacleNone {
		p.handleObstacle(e)
		return
	}
	e.pos = next
}

func (p *projectile) handleObstacle(e *Entity) {
	switch p.response {
	case responseResetHome:
		e.pos = p.start
	default:
		e.speed = e.speed.Times(-1)
	}
}

func newFireball(pos, speed Vector, variant Variant, response obstacleResponse) *Entity {
	return &Entity{
		pos:     pos,
		size:    V(1, 1),
		speed:   speed,
		variant: variant,
		motion:  &projectile{start: pos, response: response},
	}
}

// NewHorizontalFireball creates a fireball bouncing left and right.
func NewHorizontalFireball(pos Vector) *Entity {
	return newFireball(pos, horizontalFireballSpeed, VariantHorizontalFireball, responseBounce)
}

// NewVerticalFireball creates a fireball bouncing up and down.
func NewVerticalFireball(pos Vector) *Entity {
	return newFireball(pos, verticalFireballSpeed, VariantVerticalFireball, responseBounce)
}

// NewFireRain creates a falling fireball that returns to its start position
// whenever it hits something.
func NewFireRain(pos Vector) *Entity {
	return newFireball(pos, fireRainSpeed, VariantFireRain, responseResetHome)
}
