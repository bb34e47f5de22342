package desktop

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/vovakirdan/vector-risk/internal/audio"
)

// AudioPlayer plays the bank through ebiten's audio context.
// Each cue is a fresh player over shared PCM, so cues overlap freely.
type AudioPlayer struct {
	ctx    *audio.Context
	pcm    map[sfx.Sound][]byte
	volume float64
}

// NewAudioPlayer creates the audio context and encodes every cue.
// Only one context may exist per process.
func NewAudioPlayer(bank *sfx.Bank, volume float64) *AudioPlayer {
	p := &AudioPlayer{
		ctx:    audio.NewContext(bank.SampleRate()),
		pcm:    make(map[sfx.Sound][]byte, 3),
		volume: volume,
	}
	for _, s := range []sfx.Sound{sfx.SoundLaser, sfx.SoundHit, sfx.SoundGameOver} {
		p.pcm[s] = sfx.PCM16(bank.Samples(s))
	}
	return p
}

// Play starts a one-shot. Unknown sounds are ignored.
func (p *AudioPlayer) Play(s sfx.Sound) {
	data, ok := p.pcm[s]
	if !ok || len(data) == 0 {
		return
	}
	pl := p.ctx.NewPlayerFromBytes(data)
	pl.SetVolume(p.volume)
	pl.Play()
}
