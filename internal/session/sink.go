// Package session reacts to simulation events on behalf of a frontend:
// it plays sound cues, records finished runs and logs session milestones.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vector-risk/internal/audio"
	"github.com/vovakirdan/vector-risk/internal/game"
	"github.com/vovakirdan/vector-risk/internal/storage"
)

// Sink drains the events of each step. Any collaborator may be nil.
type Sink struct {
	audio  audio.Player
	ledger *storage.Ledger
	logger *log.Logger
}

// NewSink creates a sink. A nil player is replaced with audio.Nop.
func NewSink(player audio.Player, ledger *storage.Ledger, logger *log.Logger) *Sink {
	if player == nil {
		player = audio.Nop{}
	}
	return &Sink{audio: player, ledger: ledger, logger: logger}
}

// Drain handles one step's events in order.
func (s *Sink) Drain(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventStart:
			s.debug("session started")
		case game.EventFire:
			s.audio.Play(audio.SoundLaser)
		case game.EventHit:
			s.audio.Play(audio.SoundHit)
		case game.EventLoss:
			s.audio.Play(audio.SoundGameOver)
			s.recordLoss(e)
		case game.EventTitle:
			s.debug("back to title")
		}
	}
}

func (s *Sink) recordLoss(e game.Event) {
	if s.logger != nil {
		s.logger.Info("game over",
			"score", e.Score,
			"high", e.HighScore,
			"kills", e.Kills,
			"time", e.PlayTime,
		)
	}
	if s.ledger == nil {
		return
	}
	if _, err := s.ledger.RecordRun(e.Score, e.PlayTime, e.Kills); err != nil && s.logger != nil {
		s.logger.Warn("failed to record run", "error", err)
	}
}

func (s *Sink) debug(msg string) {
	if s.logger != nil {
		s.logger.Debug(msg)
	}
}
