package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"
)

func TestLaserWave(t *testing.T) {
	rate := 44100
	w := LaserWave(rate)

	if len(w) != 4410 {
		t.Fatalf("expected 4410 samples, got %d", len(w))
	}
	if w[0] != 0 {
		t.Errorf("chirp should start at zero phase, got %f", w[0])
	}

	peak := 0.0
	for _, s := range w {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak > 0.1+1e-12 || peak < 0.09 {
		t.Errorf("peak amplitude %f, expected about 0.1", peak)
	}
}

func TestNoiseWavesFade(t *testing.T) {
	tests := []struct {
		name    string
		wave    func(int, *rand.Rand) []float64
		samples int
		amp     float64
	}{
		{"hit", HitWave, 8820, 0.15},
		{"gameover", GameOverWave, 44100, 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := tc.wave(44100, rand.New(rand.NewSource(1)))
			if len(w) != tc.samples {
				t.Fatalf("expected %d samples, got %d", tc.samples, len(w))
			}

			// The envelope bounds every sample
			for i, s := range w {
				env := tc.amp * (1 - float64(i)/float64(len(w)))
				if math.Abs(s) > env+1e-12 {
					t.Fatalf("sample %d = %f exceeds envelope %f", i, s, env)
				}
			}

			head := rms(w[:len(w)/10])
			tail := rms(w[len(w)*9/10:])
			if tail >= head {
				t.Errorf("noise should fade: head %f, tail %f", head, tail)
			}
		})
	}
}

func TestNoiseDeterministicPerSeed(t *testing.T) {
	a := NewBank(22050, 5).Samples(SoundHit)
	b := NewBank(22050, 5).Samples(SoundHit)
	c := NewBank(22050, 6).Samples(SoundHit)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed differs at %d", i)
		}
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different noise")
	}
}

func TestBankSamples(t *testing.T) {
	b := NewBank(44100, 1)
	for _, s := range []Sound{SoundLaser, SoundHit, SoundGameOver} {
		if len(b.Samples(s)) == 0 {
			t.Errorf("%v has no samples", s)
		}
	}
	if b.Samples(Sound(9)) != nil {
		t.Error("unknown sound should have no samples")
	}
	if b.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d", b.SampleRate())
	}
}

func TestPCM16(t *testing.T) {
	data := PCM16([]float64{0, 1, -1, 2})
	if len(data) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(data))
	}

	frame := func(i int) (int16, int16) {
		l := int16(binary.LittleEndian.Uint16(data[i*4:]))
		r := int16(binary.LittleEndian.Uint16(data[i*4+2:]))
		return l, r
	}

	tests := []struct {
		idx  int
		want int16
	}{
		{0, 0},
		{1, math.MaxInt16},
		{2, -math.MaxInt16},
		{3, math.MaxInt16}, // clipped
	}
	for _, tc := range tests {
		l, r := frame(tc.idx)
		if l != tc.want || r != tc.want {
			t.Errorf("frame %d = (%d, %d), expected %d", tc.idx, l, r, tc.want)
		}
	}
}

func TestBufferStreamer(t *testing.T) {
	s := &bufferStreamer{data: []float64{0.1, 0.2, 0.3}}
	buf := make([][2]float64, 2)

	n, ok := s.Stream(buf)
	if n != 2 || !ok {
		t.Fatalf("first read = %d, %v", n, ok)
	}
	if buf[1][0] != 0.2 || buf[1][1] != 0.2 {
		t.Errorf("stereo copy failed: %v", buf[1])
	}

	n, ok = s.Stream(buf)
	if n != 1 || !ok {
		t.Errorf("second read = %d, %v, expected 1, true", n, ok)
	}

	n, ok = s.Stream(buf)
	if n != 0 || ok {
		t.Errorf("drained read = %d, %v, expected 0, false", n, ok)
	}
	if s.Err() != nil {
		t.Error("unexpected error")
	}
}

func TestVolumeSilent(t *testing.T) {
	v := newVolume(&bufferStreamer{data: []float64{0.5, 0.5}}, 0)
	buf := make([][2]float64, 2)
	v.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("zero gain should be silent, got %f", buf[0][0])
	}
}

// TestSpeakerGracefulDegradation verifies playback calls are safe without a device.
func TestSpeakerGracefulDegradation(t *testing.T) {
	s := NewSpeaker(NewBank(8000, 1), 1)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("speaker panicked without initialization: %v", r)
		}
	}()

	s.Play(SoundLaser)
	s.Play(SoundGameOver)
	s.Close()
	Nop{}.Play(SoundHit)
}

func rms(w []float64) float64 {
	sum := 0.0
	for _, s := range w {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(w)))
}
