package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays the bank through the system audio device using beep.
// Every method is safe to call before Initialize or after it failed.
type Speaker struct {
	mu          sync.Mutex
	bank        *Bank
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates a speaker for the bank. Volume is linear gain, 1 is unchanged.
func NewSpeaker(bank *Bank, volume float64) *Speaker {
	return &Speaker{
		bank:   bank,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the audio device.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	rate := beep.SampleRate(s.bank.SampleRate())
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues a one-shot. Unknown sounds and an uninitialized device are ignored.
func (s *Speaker) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	data := s.bank.Samples(snd)
	if len(data) == 0 {
		return
	}

	streamer := newVolume(&bufferStreamer{data: data}, s.volume)
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// bufferStreamer streams a mono buffer to both channels.
type bufferStreamer struct {
	data []float64
	pos  int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.data) {
		return 0, false
	}
	for i := range samples {
		if b.pos >= len(b.data) {
			return i, true
		}
		v := b.data[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *bufferStreamer) Err() error { return nil }

// newVolume wraps s with a linear gain. Zero or negative gain is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain == 1 {
		return s
	}
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
