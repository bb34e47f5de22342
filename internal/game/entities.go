package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/vector-risk/internal/config"
	"github.com/vovakirdan/vector-risk/internal/core"
)

// Obstacle is a falling polygonal enemy. Only Pos.Y changes after creation.
type Obstacle struct {
	Pos    core.Vec2
	Radius float64
	Sides  int
}

// Circle returns the obstacle's collision circle.
func (o Obstacle) Circle() core.Circle {
	return core.Circle{Center: o.Pos, R: o.Radius}
}

// Particle is a short-lived spark with normalized life.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life float64
}

// FloatingLabel shows the points awarded for a kill and drifts upward.
type FloatingLabel struct {
	Pos   core.Vec2
	Value int
	Life  float64
}

// newObstacle creates an obstacle above the playfield.
func newObstacle(rng *rand.Rand, sc config.SpawnConfig) Obstacle {
	return Obstacle{
		Pos:    core.V(spawnX(rng, sc.MinX, sc.MaxX), sc.Y),
		Radius: uniform(rng, sc.MinRadius, sc.MaxRadius),
		Sides:  sc.MinSides + rng.Intn(sc.MaxSides-sc.MinSides+1),
	}
}

// appendBurst appends count particles at pos flying in random directions
// with speeds in [minSpeed, maxSpeed].
func appendBurst(ps []Particle, rng *rand.Rand, pos core.Vec2, count int, minSpeed, maxSpeed float64) []Particle {
	for range count {
		angle := rng.Float64() * 2 * math.Pi
		speed := uniform(rng, minSpeed, maxSpeed)
		ps = append(ps, Particle{
			Pos:  pos,
			Vel:  core.FromAngle(angle, speed),
			Life: 1.0,
		})
	}
	return ps
}

// advanceParticles moves particles and drops expired ones in place.
// Order of the survivors is preserved.
func advanceParticles(ps []Particle, dt, decay float64) []Particle {
	if dt <= 0 {
		return ps
	}
	kept := ps[:0]
	for _, p := range ps {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= dt * decay
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	clear(ps[len(kept):])
	return kept
}

// advanceLabels lifts labels and drops expired ones in place.
func advanceLabels(ls []FloatingLabel, dt, rise, decay float64) []FloatingLabel {
	if dt <= 0 {
		return ls
	}
	kept := ls[:0]
	for _, l := range ls {
		l.Pos.Y -= rise * dt
		l.Life -= dt * decay
		if l.Life <= 0 {
			continue
		}
		kept = append(kept, l)
	}
	clear(ls[len(kept):])
	return kept
}

// spawnX picks a whole-unit column in [lo, hi], both ends included.
func spawnX(rng *rand.Rand, lo, hi float64) float64 {
	return lo + float64(rng.Intn(int(hi-lo)+1))
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
