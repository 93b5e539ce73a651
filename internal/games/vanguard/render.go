package vanguard

import (
	"fmt"

	"github.com/vovakirdan/vanguard/internal/core"
)

// The playfield is a square world rendered into terminal cells roughly twice
// as tall as they are wide, so world rows are squashed 2:1 vertically. A
// 64x64 world becomes a 64x32 character view plus HUD rows.
const (
	viewSquashY = 2

	hudTopRows    = 2 // Title line + separator
	hudBottomRows = 2 // Powerup timer row + resource bar row
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	EnemyChar       = '▓'
	BulletChar      = '│'
	EnemyBulletChar = '•'
	PickupChar      = '●'
	StarChar        = '·'
	ParticleChar    = '*'
	ParticleDimChar = '·'
	BarFillChar     = '█'
	BarEmptyChar    = '░'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	viewW := int(g.cfg.Playfield.Width)
	viewH := int(g.cfg.Playfield.Height) / viewSquashY
	minW := viewW
	minH := hudTopRows + viewH + hudBottomRows

	if dst.Width() < minW || dst.Height() < minH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	offX := (dst.Width() - viewW) / 2
	offY := hudTopRows

	g.renderHUD(dst)
	g.renderStars(dst, offX, offY, viewW, viewH)
	g.renderEntities(dst, offX, offY, viewH)
	g.renderBars(dst, offX, offY+viewH, viewW)

	if g.gameOver {
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.score))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	level := difficultyAt(g.timeS, g.cfg.Enemies.BaseSpeed, g.cfg.Leveling).Level
	hud := fmt.Sprintf(" %s — Score: %d  Lives: %d  Lv: %d", g.title, g.score, g.player.Lives, level)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)
}

// renderStars draws the deterministic scrolling star background. The pattern
// depends only on the frame counter, so replays show the same sky.
func (g *Game) renderStars(dst *core.Screen, offX, offY, viewW, viewH int) {
	worldH := int(g.cfg.Playfield.Height)
	for i := 0; i < 18; i++ {
		sx := (i*13 + 7) % viewW
		sy := (i*19 + g.frame) % worldH / viewSquashY
		if sy < viewH {
			dst.SetCell(offX+sx, offY+sy, StarChar, core.ColorDarkGray)
		}
	}
}

// renderEntities draws bullets, enemies, pickups, the player, and particles
// into the squashed view, in back-to-front order.
func (g *Game) renderEntities(dst *core.Screen, offX, offY, viewH int) {
	snap := g.Snapshot()

	for _, b := range snap.Bullets {
		g.drawRect(dst, offX, offY, viewH, b.X, b.Y, b.W, b.H, BulletChar, core.ColorWhite)
	}
	for _, e := range snap.Enemies {
		g.drawRect(dst, offX, offY, viewH, e.X, e.Y, e.W, e.H, EnemyChar, core.ColorBrightRed)
	}
	for _, b := range snap.EnemyBullets {
		g.drawRect(dst, offX, offY, viewH, b.X, b.Y, b.W, b.H, EnemyBulletChar, core.ColorOrange)
	}
	for _, p := range snap.Pickups {
		g.drawRect(dst, offX, offY, viewH, p.X, p.Y, p.W, p.H, PickupChar, p.Color)
	}

	if snap.Player.Visible {
		p := snap.Player
		g.drawRect(dst, offX, offY, viewH, p.X, p.Y, p.W, p.H, PlayerChar, core.ColorBrightCyan)
	}

	for _, part := range snap.Particles {
		ch := ParticleChar
		if part.Fade < 0.5 {
			ch = ParticleDimChar
		}
		g.drawRect(dst, offX, offY, viewH, part.X, part.Y, 1, 1, ch, part.Color)
	}
}

// drawRect fills a world-space rectangle into the squashed view, clipping to
// the playfield area.
func (g *Game) drawRect(dst *core.Screen, offX, offY, viewH int, x, y, w, h float64, ch rune, c core.Color) {
	viewW := int(g.cfg.Playfield.Width)
	x0, y0 := int(x), int(y)
	for wy := y0; wy < y0+int(h); wy++ {
		sy := wy / viewSquashY
		if wy < 0 || sy >= viewH {
			continue
		}
		for wx := x0; wx < x0+int(w); wx++ {
			if wx < 0 || wx >= viewW {
				continue
			}
			dst.SetCell(offX+wx, offY+sy, ch, c)
		}
	}
}

// renderBars draws the bottom HUD: three resource bars (ammo, fuel, health)
// with the matching powerup timers on the row above (rapid fire over ammo,
// speed boost over fuel, spread over health). Bar colors match the pickup
// colors so refills read at a glance.
func (g *Game) renderBars(dst *core.Screen, offX, barY, viewW int) {
	const pad = 2
	const gap = 1
	thirdW := (viewW - pad*2 - gap*2) / 3
	b0x := offX + pad
	b1x := b0x + thirdW + gap
	b2x := b1x + thirdW + gap
	timerY := barY

	g.drawBar(dst, b0x, timerY+1, thirdW, float64(g.player.Ammo)/float64(g.cfg.Player.MaxAmmo), core.ColorBrightGreen)
	g.drawBar(dst, b1x, timerY+1, thirdW, g.player.Fuel/g.cfg.Player.MaxFuel, core.ColorOrange)
	g.drawBar(dst, b2x, timerY+1, thirdW, float64(g.player.HP)/float64(g.cfg.Player.MaxHP), core.ColorBrightRed)

	if g.player.RapidFireTime > 0 {
		g.drawBar(dst, b0x, timerY, thirdW, g.player.RapidFireTime/g.cfg.Powerups.RapidFireDuration, core.ColorBrightGreen)
	}
	if g.player.SpeedBoostTime > 0 {
		g.drawBar(dst, b1x, timerY, thirdW, g.player.SpeedBoostTime/g.cfg.Powerups.SpeedBoostDuration, core.ColorOrange)
	}
	if g.player.SpreadTime > 0 {
		g.drawBar(dst, b2x, timerY, thirdW, g.player.SpreadTime/g.cfg.Powerups.SpreadDuration, core.ColorBrightYellow)
	}
}

// drawBar draws a single horizontal meter filled to the given ratio.
func (g *Game) drawBar(dst *core.Screen, x, y, width int, ratio float64, c core.Color) {
	filled := int(float64(width) * core.ClampF(ratio, 0, 1))
	for i := 0; i < width; i++ {
		if i < filled {
			dst.SetCell(x+i, y, BarFillChar, c)
		} else {
			dst.SetCell(x+i, y, BarEmptyChar, core.ColorGray)
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
