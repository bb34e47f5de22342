package game

// Snapshot contains the observable game state for determinism checks and HUDs.
// Uses primitive types only.
type Snapshot struct {
	Screen     string
	Score      int
	HighScore  int
	Kills      int
	PlayTime   float64
	SpawnTimer float64
	PlayerX    float64
	FireTimer  float64
	Obstacles  int
	Particles  int
	Labels     int

	// Obstacle state flattened as X, Y, Radius, Sides per obstacle.
	ObstacleData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]float64, 0, len(g.obstacles)*4)
	for _, o := range g.obstacles {
		data = append(data, o.Pos.X, o.Pos.Y, o.Radius, float64(o.Sides))
	}

	return Snapshot{
		Screen:       g.screen.String(),
		Score:        g.score,
		HighScore:    g.highScore,
		Kills:        g.kills,
		PlayTime:     g.playTime,
		SpawnTimer:   g.spawnTimer,
		PlayerX:      g.player.X,
		FireTimer:    g.player.FireTimer,
		Obstacles:    len(g.obstacles),
		Particles:    len(g.particles),
		Labels:       len(g.labels),
		ObstacleData: data,
	}
}
