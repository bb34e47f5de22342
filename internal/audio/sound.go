// Package audio synthesizes the game's sound effects and plays them as one-shots.
package audio

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundLaser    Sound = iota // Beam fired
	SoundHit                   // Obstacle destroyed
	SoundGameOver              // Player destroyed
)

func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundHit:
		return "hit"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Player triggers one-shot sounds. Play must not block the frame loop.
type Player interface {
	Play(s Sound)
}

// Nop is a Player that discards every sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Sound) {}
