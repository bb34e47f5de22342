package game

import (
	"math"

	"github.com/vovakirdan/vector-risk/internal/config"
	"github.com/vovakirdan/vector-risk/internal/core"
)

// Player is the emitter at the bottom of the playfield.
// Its vertical position comes from config and never changes.
type Player struct {
	X         float64
	FireTimer float64 // Seconds since the last shot, counts up without bound
}

// Advance moves currentX toward targetX by at most maxSpeed*dt.
// When the target is within one step the position snaps onto it.
// A non-finite target or a non-positive step leaves the position unchanged.
func Advance(currentX, targetX, maxSpeed, dt float64) float64 {
	if !core.IsFinite(targetX) {
		return currentX
	}
	step := maxSpeed * dt
	if !(step > 0) {
		return currentX
	}

	diff := targetX - currentX
	if math.Abs(diff) <= step {
		return targetX
	}
	if diff > 0 {
		return currentX + step
	}
	return currentX - step
}

// UpdateCooldown advances the fire timer and resolves a fire request.
// The timer always grows by dt; a shot happens only when the timer has
// reached period and a shot was requested, and it resets the timer to 0.
func UpdateCooldown(timer, dt float64, fireRequested bool, period float64) (float64, bool) {
	timer += dt
	if fireRequested && timer >= period {
		return 0, true
	}
	return timer, false
}

// Charged reports whether the next request would fire.
func (p Player) Charged(period float64) bool {
	return p.FireTimer >= period
}

// ChargeRatio returns the cooldown progress clamped to [0, 1].
func (p Player) ChargeRatio(period float64) float64 {
	if period <= 0 {
		return 1
	}
	return core.ClampF(p.FireTimer/period, 0, 1)
}

// Hitbox returns the player triangle: apex up, base below.
func (p Player) Hitbox(pc config.PlayerConfig) core.Triangle {
	return core.Triangle{
		A: core.V(p.X, pc.Y-pc.HalfHeight),
		B: core.V(p.X-pc.HalfWidth, pc.Y+pc.HalfHeight),
		C: core.V(p.X+pc.HalfWidth, pc.Y+pc.HalfHeight),
	}
}

// Beam returns the beam rectangle from the top of the playfield down to the player.
func (p Player) Beam(pc config.PlayerConfig) core.RectF {
	return core.RectF{
		X: p.X - pc.BeamWidth/2,
		Y: 0,
		W: pc.BeamWidth,
		H: pc.Y,
	}
}
