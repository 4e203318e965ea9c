package platformer

import (
	"fmt"
	"math"
	"strings"

	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// Layout constants
const (
	cellW      = 2 // Terminal columns per level unit
	hudHeight  = 2
	minScreenW = 24
	minScreenH = 10
)

// Glyphs
const (
	WallGlyph     = '█'
	LavaGlyph     = '▒'
	CoinGlyph     = 'o'
	FireballGlyph = '*'
	FireRainGlyph = '▼'
	PlayerGlyph   = '█'
	DeadGlyph     = '×'
	HeartGlyph    = '♥'
	SepGlyph      = '─'
)

// viewport returns the visible area in level units.
func (g *Game) viewport() (w, h float64) {
	return float64(g.runtime.ScreenW) / cellW, float64(g.runtime.ScreenH - hudHeight)
}

// updateCamera scrolls the view to keep the player inside the middle third.
// With snap set the player is centered.
func (g *Game) updateCamera(snap bool) {
	viewW, viewH := g.viewport()

	if p := g.level.Player(); p != nil {
		cx := p.Left() + p.Size().X/2
		cy := p.Top() + p.Size().Y/2

		if snap {
			g.camX = cx - viewW/2
			g.camY = cy - viewH/2
		} else {
			g.camX = follow(g.camX, cx, viewW)
			g.camY = follow(g.camY, cy, viewH)
		}
	}

	g.camX = clampCamera(g.camX, float64(g.level.Width()), viewW)
	g.camY = clampCamera(g.camY, float64(g.level.Height()), viewH)
}

// follow moves a camera edge so center stays within the middle third of view.
func follow(cam, center, view float64) float64 {
	margin := view / 3
	switch {
	case center < cam+margin:
		return center - margin
	case center > cam+view-margin:
		return center + margin - view
	}
	return cam
}

// clampCamera keeps the view inside the level, centering levels smaller than
// the view.
func clampCamera(cam, size, view float64) float64 {
	if size <= view {
		return -(view - size) / 2
	}
	return platformcore.ClampF(cam, 0, size-view)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	if g.level == nil {
		dst.DrawTextCentered(dst.Height()/2, "No playable levels")
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderActors(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	lives := strings.Repeat(string(HeartGlyph), max(g.lives, 0))
	x := (dst.Width() - len([]rune(lives))) / 2
	dst.DrawTextColor(x, 0, lives, platformcore.ColorRed)

	def := g.campaign[g.levelIndex]
	levelText := fmt.Sprintf("%d/%d %s", g.levelIndex+1, len(g.campaign), def.Name)
	dst.DrawText(dst.Width()-len([]rune(levelText))-1, 0, levelText)

	for x := range dst.Width() {
		dst.SetColor(x, 1, SepGlyph, platformcore.ColorGray)
	}
	coins := fmt.Sprintf(" coins left: %d ", g.level.CountActors(core.KindCoin))
	dst.DrawTextColor(2, 1, coins, platformcore.ColorYellow)
}

// toScreen converts a level position to screen coordinates.
func (g *Game) toScreen(x, y float64) (sx, sy float64) {
	return (x - g.camX) * cellW, (y - g.camY) + hudHeight
}

func (g *Game) renderGrid(dst *platformcore.Screen) {
	for sy := hudHeight; sy < dst.Height(); sy++ {
		wy := int(math.Floor(g.camY + float64(sy-hudHeight)))
		for sx := range dst.Width() {
			wx := int(math.Floor(g.camX + float64(sx)/cellW))
			switch g.level.Cell(wx, wy) {
			case core.ObstacleWall:
				dst.SetColor(sx, sy, WallGlyph, platformcore.ColorGray)
			case core.ObstacleLava:
				dst.SetColor(sx, sy, LavaGlyph, platformcore.ColorRed)
			}
		}
	}
}

func (g *Game) renderActors(dst *platformcore.Screen) {
	for _, a := range g.level.Actors() {
		glyph, color := g.actorLook(a)
		g.drawEntity(dst, a, glyph, color)
	}
}

func (g *Game) actorLook(a *core.Entity) (rune, platformcore.Color) {
	switch a.Variant() {
	case core.VariantPlayer:
		switch g.level.Status() {
		case core.StatusLost:
			return DeadGlyph, platformcore.ColorBrightRed
		case core.StatusWon:
			return PlayerGlyph, platformcore.ColorGreen
		}
		return PlayerGlyph, platformcore.ColorBlue
	case core.VariantCoin:
		return CoinGlyph, platformcore.ColorBrightYellow
	case core.VariantFireRain:
		return FireRainGlyph, platformcore.ColorOrange
	case core.VariantHorizontalFireball, core.VariantVerticalFireball:
		return FireballGlyph, platformcore.ColorOrange
	default:
		return '?', platformcore.ColorWhite
	}
}

// drawEntity fills every screen cell the entity's box overlaps, keeping the
// HUD rows clear.
func (g *Game) drawEntity(dst *platformcore.Screen, e *core.Entity, glyph rune, color platformcore.Color) {
	x0, y0 := g.toScreen(e.Left(), e.Top())
	x1, y1 := g.toScreen(e.Right(), e.Bottom())

	left := int(math.Floor(x0))
	top := max(int(math.Floor(y0)), hudHeight)
	right := int(math.Ceil(x1))
	bottom := int(math.Ceil(y1))
	if right <= left || bottom <= top {
		return
	}

	dst.DrawRect(platformcore.NewRect(left, top, right-left, bottom-top), glyph, color)
}

func (g *Game) renderOverlay(dst *platformcore.Screen) {
	midY := hudHeight + (dst.Height()-hudHeight)/2

	switch {
	case g.won:
		dst.DrawTextCentered(midY-1, " YOU WIN! ")
		dst.DrawTextCentered(midY, fmt.Sprintf(" Final score: %d ", g.score))
		dst.DrawTextCentered(midY+1, " R: restart  Q: quit ")
	case g.gameOver:
		dst.DrawTextCentered(midY-1, " GAME OVER ")
		dst.DrawTextCentered(midY, fmt.Sprintf(" Score: %d ", g.score))
		dst.DrawTextCentered(midY+1, " R: restart  Q: quit ")
	case g.paused:
		dst.DrawTextCentered(midY, " PAUSED ")
	case g.level.Status() == core.StatusWon:
		dst.DrawTextCentered(midY, " Level cleared! ")
	case g.level.Status() == core.StatusLost:
		dst.DrawTextCentered(midY, " Ouch! ")
	}
}
