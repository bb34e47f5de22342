package game

import (
	"fmt"

	"github.com/vovakirdan/vector-risk/internal/core"
)

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventStart EventKind = iota // Title -> Playing
	EventFire                   // Beam fired
	EventHit                    // Obstacle destroyed by the beam
	EventLoss                   // Obstacle reached the player, Playing -> GameOver
	EventTitle                  // GameOver -> Title
)

var eventNames = [...]string{
	EventStart: "start",
	EventFire:  "fire",
	EventHit:   "hit",
	EventLoss:  "loss",
	EventTitle: "title",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// Event is emitted by Step for the presentation layer to drain.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind
	Pos  core.Vec2

	Points int // EventHit

	// EventLoss
	Score     int
	HighScore int
	PlayTime  float64
	Kills     int
}

// State is the session summary returned with every step.
type State struct {
	Screen    Screen
	Score     int
	HighScore int
	Kills     int
	PlayTime  float64
}

// StepResult is the outcome of one simulation step.
type StepResult struct {
	State  State
	Events []Event
}

// Has reports whether an event of the given kind was emitted.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
