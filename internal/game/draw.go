package game

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/vector-risk/internal/core"
)

// Outline widths in playfield units.
const (
	outlineWidth = 2.0
	gaugeWidth   = 4.0
	gaugeOffset  = 30.0 // Gauge sits this far below the player's center line
	sparkSize    = 5.0  // Spark radius at full life
	blinkPeriod  = 1.0  // Title blink period in seconds
)

// Draw issues the frame's draw commands in playfield units.
// It only reads game state.
func (g *Game) Draw(c core.Canvas) {
	c.SetBlend(core.BlendAlpha)
	c.Clear(core.ColorBlack)

	switch g.screen {
	case ScreenTitle:
		g.drawTitle(c)
	case ScreenPlaying:
		g.drawEffects(c)
		g.drawPlayer(c)
		g.drawObstacles(c)
		g.drawLabels(c)
		c.Text(core.V(10, 10), core.TextMedium, fmt.Sprintf("SCORE: %d", g.score), core.ColorWhite, false)
	case ScreenGameOver:
		g.drawEffects(c)
		g.drawLabels(c)
		g.drawGameOver(c)
	}
}

func (g *Game) drawTitle(c core.Canvas) {
	w := g.cfg.Window.Width
	phase := 0.5 + 0.5*math.Sin(2*math.Pi*g.clock/blinkPeriod)
	titleColor := core.ColorGreen.Lerp(core.ColorBlack, phase)

	c.Text(core.V(w/2, 200), core.TextLarge, "VECTOR RISK", titleColor, true)
	c.Text(core.V(w/2, 400), core.TextMedium, "Click to Start", core.ColorWhite, true)
}

func (g *Game) drawGameOver(c core.Canvas) {
	w := g.cfg.Window.Width

	c.Text(core.V(w/2, 200), core.TextLarge, "GAME OVER", core.ColorRed, true)
	c.Text(core.V(w/2, 300), core.TextMedium, fmt.Sprintf("Score: %d", g.score), core.ColorWhite, true)
	c.Text(core.V(w/2, 350), core.TextMedium, fmt.Sprintf("High Score: %d", g.highScore), core.ColorYellow, true)
	c.Text(core.V(w/2, 500), core.TextMedium, "Click to Title", core.ColorLightGray, true)
}

// drawEffects draws sparks with additive blending.
func (g *Game) drawEffects(c core.Canvas) {
	if len(g.particles) == 0 {
		return
	}
	c.SetBlend(core.BlendAdditive)
	for _, p := range g.particles {
		c.FillCircle(p.Pos, p.Life*sparkSize, core.ColorMagenta.WithAlpha(p.Life))
	}
	c.SetBlend(core.BlendAlpha)
}

func (g *Game) drawPlayer(c core.Canvas) {
	pc := g.cfg.Player
	flash := g.cfg.Effects.BeamFlash

	if flash > 0 && g.player.FireTimer < flash {
		alpha := 1 - g.player.FireTimer/flash
		c.FillRect(g.player.Beam(pc), core.ColorCyan.WithAlpha(alpha))
	}

	outline := core.ColorDarkGray
	if g.player.Charged(pc.Cooldown) {
		outline = core.ColorCyan
	}
	c.StrokePolygon(g.player.Hitbox(pc).Points(), outlineWidth, outline)

	ratio := g.player.ChargeRatio(pc.Cooldown)
	if ratio > 0 {
		y := pc.Y + gaugeOffset
		left := g.player.X - pc.HalfWidth
		right := left + 2*pc.HalfWidth*ratio
		c.Line(core.V(left, y), core.V(right, y), gaugeWidth, gaugeColor(ratio))
	}
}

// gaugeColor fades red to yellow over the first half of the charge, then yellow to lime.
func gaugeColor(ratio float64) core.RGBA {
	if ratio < 0.5 {
		return core.ColorRed.Lerp(core.ColorYellow, ratio*2)
	}
	return core.ColorYellow.Lerp(core.ColorLime, (ratio-0.5)*2)
}

func (g *Game) drawObstacles(c core.Canvas) {
	for _, o := range g.obstacles {
		c.StrokePolygon(core.RegularPolygon(o.Pos, o.Radius, o.Sides), outlineWidth, core.ColorMagenta)
	}
}

func (g *Game) drawLabels(c core.Canvas) {
	for _, l := range g.labels {
		c.Text(l.Pos, core.TextSmall, strconv.Itoa(l.Value), core.ColorGold.WithAlpha(l.Life), true)
	}
}
