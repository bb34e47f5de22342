// Package game implements the Vector Risk simulation.
// The player slides an emitter along the bottom of the playfield and fires a
// vertical beam at falling polygons. Kills are worth the obstacle's height, so
// letting enemies fall closer pays more.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/vector-risk/internal/config"
	"github.com/vovakirdan/vector-risk/internal/core"
)

// Game holds one local session. Step is its only writer.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	screen     Screen
	score      int
	highScore  int
	kills      int
	playTime   float64
	spawnTimer float64
	clock      float64 // Presentation time, advances on every screen

	player    Player
	obstacles []Obstacle
	particles []Particle
	labels    []FloatingLabel

	events []Event
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset puts the game on the title screen with a fresh random source.
// A zero seed picks one from the current time.
func (g *Game) Reset(rt core.RuntimeConfig) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.screen = ScreenTitle
	g.score = 0
	g.highScore = 0
	g.kills = 0
	g.playTime = 0
	g.spawnTimer = 0
	g.clock = 0
	g.player = Player{X: g.cfg.Window.Width / 2, FireTimer: g.cfg.Player.Cooldown}
	g.obstacles = g.obstacles[:0]
	g.particles = g.particles[:0]
	g.labels = g.labels[:0]
	g.events = nil
}

// Step advances the session by dt seconds with the input sampled this frame.
// A negative or NaN dt counts as 0.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	g.events = nil
	dt = clampDelta(dt)
	g.clock += dt

	// Effects first so anything spawned below is reported with full life.
	fx := g.cfg.Effects
	g.particles = advanceParticles(g.particles, dt, fx.ParticleDecay)
	g.labels = advanceLabels(g.labels, dt, fx.LabelRise, fx.LabelDecay)

	switch g.screen {
	case ScreenTitle:
		if in.Pressed {
			g.startSession()
		}
	case ScreenPlaying:
		g.stepPlaying(dt, in)
	case ScreenGameOver:
		if in.Pressed {
			g.returnToTitle()
		}
	}

	return StepResult{State: g.State(), Events: g.events}
}

// stepPlaying runs one frame of play.
func (g *Game) stepPlaying(dt float64, in core.InputFrame) {
	pc := g.cfg.Player

	g.playTime += dt

	if x, ok := in.TargetX(); ok {
		g.player.X = Advance(g.player.X, x, pc.MaxSpeed, dt)
	}

	var fired bool
	g.player.FireTimer, fired = UpdateCooldown(g.player.FireTimer, dt, in.Pressed, pc.Cooldown)
	if fired {
		g.emit(Event{Kind: EventFire, Pos: core.V(g.player.X, pc.Y)})
	}

	interval, fallSpeed := g.cfg.Difficulty.At(g.playTime)

	g.spawnTimer += dt
	if g.spawnTimer > interval {
		g.obstacles = append(g.obstacles, newObstacle(g.rng, g.cfg.Spawn))
		g.spawnTimer = 0
	}

	hitbox := g.player.Hitbox(pc)
	beam := g.player.Beam(pc)
	g.updateObstacles(dt, fallSpeed, fired, hitbox, beam)
}

// updateObstacles makes the single ordered pass over the obstacle pool.
// The pass stops at the first obstacle touching the player; that obstacle
// and every one after it stay in the pool untouched by scoring.
func (g *Game) updateObstacles(dt, fallSpeed float64, fired bool, hitbox core.Triangle, beam core.RectF) {
	fx := g.cfg.Effects
	bottom := g.cfg.Window.Height

	kept := g.obstacles[:0]
	for i := 0; i < len(g.obstacles); i++ {
		o := g.obstacles[i]
		o.Pos.Y += fallSpeed * dt
		c := o.Circle()

		if c.IntersectsTriangle(hitbox) {
			kept = append(kept, o)
			kept = append(kept, g.obstacles[i+1:]...)
			clear(g.obstacles[len(kept):])
			g.obstacles = kept
			g.endSession(o)
			return
		}

		if o.Pos.Y > bottom+o.Radius {
			continue
		}

		if fired && c.IntersectsRect(beam) {
			// Obstacles still above the field pay nothing
			points := max(0, int(o.Pos.Y))
			g.score += points
			g.kills++
			g.particles = appendBurst(g.particles, g.rng, o.Pos, fx.KillBurst, fx.KillSpeedMin, fx.KillSpeedMax)
			g.labels = append(g.labels, FloatingLabel{Pos: o.Pos, Value: points, Life: 1.0})
			g.emit(Event{Kind: EventHit, Pos: o.Pos, Points: points})
			continue
		}

		kept = append(kept, o)
	}

	clear(g.obstacles[len(kept):])
	g.obstacles = kept
}

// State returns the session summary.
func (g *Game) State() State {
	return State{
		Screen:    g.screen,
		Score:     g.score,
		HighScore: g.highScore,
		Kills:     g.kills,
		PlayTime:  g.playTime,
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// clampDelta floors a frame delta at 0. NaN becomes 0.
func clampDelta(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return dt
}
