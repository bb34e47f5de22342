package game

// Screen is the session's current screen.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// startSession moves Title -> Playing and resets everything a new run needs.
// The high score survives.
func (g *Game) startSession() {
	g.screen = ScreenPlaying
	g.score = 0
	g.kills = 0
	g.playTime = 0
	g.spawnTimer = 0
	g.obstacles = g.obstacles[:0]
	g.particles = g.particles[:0]
	g.labels = g.labels[:0]
	g.player = Player{
		X:         g.cfg.Window.Width / 2,
		FireTimer: g.cfg.Player.Cooldown,
	}
	g.emit(Event{Kind: EventStart})
}

// endSession moves Playing -> GameOver. The high score is updated here and only here.
func (g *Game) endSession(at Obstacle) {
	g.screen = ScreenGameOver
	if g.score > g.highScore {
		g.highScore = g.score
	}

	fx := g.cfg.Effects
	center := g.player.Hitbox(g.cfg.Player).Centroid()
	g.particles = appendBurst(g.particles, g.rng, center, fx.DeathBurst, fx.DeathSpeedMin, fx.DeathSpeedMax)

	g.emit(Event{
		Kind:      EventLoss,
		Pos:       at.Pos,
		Score:     g.score,
		HighScore: g.highScore,
		PlayTime:  g.playTime,
		Kills:     g.kills,
	})
}

// returnToTitle moves GameOver -> Title. Nothing is cleared.
func (g *Game) returnToTitle() {
	g.screen = ScreenTitle
	g.emit(Event{Kind: EventTitle})
}
