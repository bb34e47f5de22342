package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// DefaultSampleRate is used by both playback backends.
const DefaultSampleRate = 44100

// Effect lengths.
const (
	laserDuration    = 100 * time.Millisecond
	hitDuration      = 200 * time.Millisecond
	gameOverDuration = time.Second
)

// Bank holds the precomputed mono waveforms, one per Sound.
type Bank struct {
	rate    int
	samples [3][]float64
}

// NewBank renders every effect at the given sample rate.
// The seed drives the noise generators.
func NewBank(rate int, seed int64) *Bank {
	rng := rand.New(rand.NewSource(seed))
	b := &Bank{rate: rate}
	b.samples[SoundLaser] = LaserWave(rate)
	b.samples[SoundHit] = HitWave(rate, rng)
	b.samples[SoundGameOver] = GameOverWave(rate, rng)
	return b
}

// SampleRate returns the rate the bank was rendered at.
func (b *Bank) SampleRate() int {
	return b.rate
}

// Samples returns the waveform for s, or nil for an unknown sound.
// The slice is shared and must not be modified.
func (b *Bank) Samples(s Sound) []float64 {
	if s < 0 || int(s) >= len(b.samples) {
		return nil
	}
	return b.samples[s]
}

// LaserWave is a downward chirp: 0.1*sin(2π(1000t - 3000t²)).
func LaserWave(rate int) []float64 {
	out := make([]float64, sampleCount(rate, laserDuration))
	for i := range out {
		t := float64(i) / float64(rate)
		out[i] = 0.1 * math.Sin(2*math.Pi*(1000*t-3000*t*t))
	}
	return out
}

// HitWave is white noise fading linearly to silence over 0.2s.
func HitWave(rate int, rng *rand.Rand) []float64 {
	out := make([]float64, sampleCount(rate, hitDuration))
	d := hitDuration.Seconds()
	for i := range out {
		t := float64(i) / float64(rate)
		out[i] = 0.15 * noise(rng) * (1 - t/d)
	}
	return out
}

// GameOverWave is louder noise fading linearly over one second.
func GameOverWave(rate int, rng *rand.Rand) []float64 {
	out := make([]float64, sampleCount(rate, gameOverDuration))
	d := gameOverDuration.Seconds()
	for i := range out {
		t := float64(i) / float64(rate)
		out[i] = 0.25 * noise(rng) * (1 - t/d)
	}
	return out
}

// PCM16 encodes mono samples as 16-bit little-endian stereo frames.
func PCM16(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := uint16(int16(math.Round(clampSample(s) * math.MaxInt16)))
		binary.LittleEndian.PutUint16(out[i*4:], v)
		binary.LittleEndian.PutUint16(out[i*4+2:], v)
	}
	return out
}

func sampleCount(rate int, d time.Duration) int {
	return int(math.Round(float64(rate) * d.Seconds()))
}

func noise(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

func clampSample(s float64) float64 {
	return math.Max(-1, math.Min(1, s))
}
