// Package config provides YAML-based game configuration loading and
// the difficulty curve for Vector Risk.
package config

// Config contains all tuning for the game.
type Config struct {
	Window     WindowConfig    `yaml:"window"`
	Player     PlayerConfig    `yaml:"player"`
	Spawn      SpawnConfig     `yaml:"spawn"`
	Difficulty DifficultyCurve `yaml:"difficulty"`
	Effects    EffectsConfig   `yaml:"effects"`
}

// WindowConfig defines the fixed playfield.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
}

// PlayerConfig defines the emitter and its beam.
type PlayerConfig struct {
	Y          float64 `yaml:"y"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Cooldown   float64 `yaml:"cooldown"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	BeamWidth  float64 `yaml:"beam_width"`
}

// SpawnConfig defines where and how obstacles appear.
type SpawnConfig struct {
	MinX      float64 `yaml:"min_x"`
	MaxX      float64 `yaml:"max_x"`
	Y         float64 `yaml:"y"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MinSides  int     `yaml:"min_sides"`
	MaxSides  int     `yaml:"max_sides"`
}

// EffectsConfig defines particle bursts and floating labels.
type EffectsConfig struct {
	KillBurst     int     `yaml:"kill_burst"`
	KillSpeedMin  float64 `yaml:"kill_speed_min"`
	KillSpeedMax  float64 `yaml:"kill_speed_max"`
	DeathBurst    int     `yaml:"death_burst"`
	DeathSpeedMin float64 `yaml:"death_speed_min"`
	DeathSpeedMax float64 `yaml:"death_speed_max"`
	ParticleDecay float64 `yaml:"particle_decay"` // Life lost per second
	LabelRise     float64 `yaml:"label_rise"`     // Units per second upward
	LabelDecay    float64 `yaml:"label_decay"`    // Life lost per second
	BeamFlash     float64 `yaml:"beam_flash"`     // Seconds the beam stays visible
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// hardTimeOffset is how far into the ramp the hard preset starts.
const hardTimeOffset = 30.0

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyPreset modifies the difficulty curve based on a preset.
// Normal leaves the configured curve untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.IntervalDecay /= 2
		cfg.Difficulty.FallAcceleration /= 2
	case DifficultyHard:
		cfg.Difficulty.TimeOffset = hardTimeOffset
	case DifficultyFixed:
		cfg.Difficulty.IntervalDecay = 0
		cfg.Difficulty.FallAcceleration = 0
	}
}
