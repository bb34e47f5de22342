package config

import (
	_ "embed"
)

//go:embed defaults/vectorrisk.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Vector Risk",
		},
		Player: PlayerConfig{
			Y:          500,
			MaxSpeed:   350,
			Cooldown:   0.8,
			HalfWidth:  20,
			HalfHeight: 20,
			BeamWidth:  4,
		},
		Spawn: SpawnConfig{
			MinX:      50,
			MaxX:      750,
			Y:         -50,
			MinRadius: 15,
			MaxRadius: 30,
			MinSides:  3,
			MaxSides:  6,
		},
		Difficulty: DifficultyCurve{
			InitialInterval:  0.5,
			IntervalDecay:    0.005,
			MinInterval:      0.15,
			BaseFallSpeed:    150,
			FallAcceleration: 3,
		},
		Effects: EffectsConfig{
			KillBurst:     30,
			KillSpeedMin:  50,
			KillSpeedMax:  250,
			DeathBurst:    100,
			DeathSpeedMin: 50,
			DeathSpeedMax: 400,
			ParticleDecay: 1.5,
			LabelRise:     50,
			LabelDecay:    1.0,
			BeamFlash:     0.15,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
