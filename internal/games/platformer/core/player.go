package core

// playerSize is the player's hitbox. It is taller than a tile, so the start
// position is shifted up by half a unit to put the feet on the tile floor.
var playerSize = V(0.8, 1.5)

var playerOffset = V(0, -0.5)

// NewPlayer creates the player in the grid cell at pos.
// The player has no behavior: its Act is a no-op and all movement comes from
// the driver through SetPos and SetSpeed.
func NewPlayer(pos Vector) *Entity {
	return &Entity{
		pos:     pos.Plus(playerOffset),
		size:    playerSize,
		speed:   V(0, 0),
		variant: VariantPlayer,
	}
}
