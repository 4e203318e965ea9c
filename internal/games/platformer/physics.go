package platformer

import (
	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// holdInput latches the actions pressed this tick. Terminals report key
// presses but not releases, so a press keeps its action held for HoldTicks
// ticks. Opposite directions cancel each other.
func (g *Game) holdInput(in platformcore.InputFrame) {
	hold := g.cfg.Physics.HoldTicks
	if in.Has(platformcore.ActionLeft) {
		g.runLeft = hold
		g.runRight = 0
	}
	if in.Has(platformcore.ActionRight) {
		g.runRight = hold
		g.runLeft = 0
	}
	if in.Has(platformcore.ActionJump) {
		g.jumpHeld = hold
	}
}

// releaseInput counts held actions down by one tick.
func (g *Game) releaseInput() {
	g.runLeft = max(g.runLeft-1, 0)
	g.runRight = max(g.runRight-1, 0)
	g.jumpHeld = max(g.jumpHeld-1, 0)
}

// movePlayer moves the player on each axis separately. A blocked move is
// dropped and the obstacle is reported to the level.
func (g *Game) movePlayer(lvl *core.Level, p *core.Entity, dt float64) {
	g.movePlayerX(lvl, p, dt)
	g.movePlayerY(lvl, p, dt)
}

func (g *Game) movePlayerX(lvl *core.Level, p *core.Entity, dt float64) {
	vx := 0.0
	if g.runLeft > 0 {
		vx -= g.cfg.Physics.XSpeed
	}
	if g.runRight > 0 {
		vx += g.cfg.Physics.XSpeed
	}
	p.SetSpeed(core.V(vx, p.Speed().Y))

	next := p.Pos().Plus(core.V(vx*dt, 0))
	if obstacle := lvl.ObstacleAt(next, p.Size()); obstacle != core.ObstacleNone {
		lvl.PlayerTouched(core.TouchFor(obstacle), nil)
		return
	}
	p.SetPos(next)
}

func (g *Game) movePlayerY(lvl *core.Level, p *core.Entity, dt float64) {
	vy := p.Speed().Y + dt*g.cfg.Physics.Gravity
	next := p.Pos().Plus(core.V(0, vy*dt))

	if obstacle := lvl.ObstacleAt(next, p.Size()); obstacle != core.ObstacleNone {
		lvl.PlayerTouched(core.TouchFor(obstacle), nil)
		// Landing with jump held starts a jump; any other contact stops
		if g.jumpHeld > 0 && vy > 0 {
			vy = -g.cfg.Physics.JumpSpeed
			g.jumpHeld = 0
		} else {
			vy = 0
		}
	} else {
		p.SetPos(next)
	}
	p.SetSpeed(core.V(p.Speed().X, vy))
}
