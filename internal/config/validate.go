package config

import "fmt"

// ValidationError describes a config value that cannot be simulated.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that every value is usable by the simulation.
func (c Config) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Window.Width > 0 && c.Window.Height > 0, "window", "width and height must be positive"},
		{c.Player.Y > 0 && c.Player.Y < c.Window.Height, "player.y", "must lie inside the playfield"},
		{c.Player.MaxSpeed >= 0, "player.max_speed", "must not be negative"},
		{c.Player.Cooldown >= 0, "player.cooldown", "must not be negative"},
		{c.Player.HalfWidth > 0 && c.Player.HalfHeight > 0, "player", "hitbox half sizes must be positive"},
		{c.Player.BeamWidth > 0, "player.beam_width", "must be positive"},
		{c.Spawn.MinX <= c.Spawn.MaxX, "spawn", "min_x must not exceed max_x"},
		{c.Spawn.MinRadius > 0 && c.Spawn.MinRadius <= c.Spawn.MaxRadius, "spawn", "radius range must be positive and ordered"},
		{c.Spawn.MinSides >= 3 && c.Spawn.MinSides <= c.Spawn.MaxSides, "spawn", "sides must be at least 3 and ordered"},
		{c.Difficulty.MinInterval > 0, "difficulty.min_interval", "must be positive"},
		{c.Difficulty.InitialInterval >= c.Difficulty.MinInterval, "difficulty.initial_interval", "must not be below min_interval"},
		{c.Difficulty.IntervalDecay >= 0 && c.Difficulty.FallAcceleration >= 0, "difficulty", "ramps must not be negative"},
		{c.Effects.KillBurst >= 0 && c.Effects.DeathBurst >= 0, "effects", "burst sizes must not be negative"},
		{c.Effects.KillSpeedMin <= c.Effects.KillSpeedMax, "effects", "kill speed range must be ordered"},
		{c.Effects.DeathSpeedMin <= c.Effects.DeathSpeedMax, "effects", "death speed range must be ordered"},
		{c.Effects.ParticleDecay > 0 && c.Effects.LabelDecay > 0, "effects", "decay rates must be positive"},
	}

	for _, ch := range checks {
		if !ch.ok {
			return ValidationError{Field: ch.field, Message: ch.message}
		}
	}
	return nil
}
