package config

import "math"

// DifficultyCurve maps elapsed play time to spawn cadence and fall speed.
// With the defaults:
//
//	spawnInterval = max(0.15, 0.5 - t*0.005)   floor reached at t = 70
//	fallSpeed     = 150 + t*3                  unbounded
type DifficultyCurve struct {
	InitialInterval  float64 `yaml:"initial_interval"`
	IntervalDecay    float64 `yaml:"interval_decay"`
	MinInterval      float64 `yaml:"min_interval"`
	BaseFallSpeed    float64 `yaml:"base_fall_speed"`
	FallAcceleration float64 `yaml:"fall_acceleration"`
	TimeOffset       float64 `yaml:"time_offset"` // Added to play time before evaluation
}

// At returns the spawn interval and fall speed for the given play time.
// Negative play time is treated as zero.
func (d DifficultyCurve) At(playTime float64) (spawnInterval, fallSpeed float64) {
	t := math.Max(0, playTime) + d.TimeOffset
	spawnInterval = math.Max(d.MinInterval, d.InitialInterval-t*d.IntervalDecay)
	fallSpeed = d.BaseFallSpeed + t*d.FallAcceleration
	return spawnInterval, fallSpeed
}

// FloorTime returns the play time at which the spawn interval reaches its floor,
// or +Inf when the interval never decays.
func (d DifficultyCurve) FloorTime() float64 {
	if d.IntervalDecay <= 0 {
		return math.Inf(1)
	}
	return math.Max(0, (d.InitialInterval-d.MinInterval)/d.IntervalDecay-d.TimeOffset)
}
