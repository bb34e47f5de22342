package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vector-risk/internal/audio"
	"github.com/vovakirdan/vector-risk/internal/config"
	"github.com/vovakirdan/vector-risk/internal/core"
	"github.com/vovakirdan/vector-risk/internal/game"
	"github.com/vovakirdan/vector-risk/internal/storage"
)

type recordPlayer struct {
	played []audio.Sound
}

func (p *recordPlayer) Play(s audio.Sound) {
	p.played = append(p.played, s)
}

func TestDrainPlaysCues(t *testing.T) {
	p := &recordPlayer{}
	s := NewSink(p, nil, nil)

	s.Drain([]game.Event{
		{Kind: game.EventStart},
		{Kind: game.EventFire},
		{Kind: game.EventHit, Pos: core.V(1, 2), Points: 300},
		{Kind: game.EventLoss, Score: 300},
		{Kind: game.EventTitle},
	})

	want := []audio.Sound{audio.SoundLaser, audio.SoundHit, audio.SoundGameOver}
	if len(p.played) != len(want) {
		t.Fatalf("played %v, expected %v", p.played, want)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("cue %d = %v, expected %v", i, p.played[i], want[i])
		}
	}
}

func TestDrainRecordsLoss(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer ledger.Close()

	var buf bytes.Buffer
	logger := log.New(&buf)

	s := NewSink(nil, ledger, logger)
	s.Drain([]game.Event{{Kind: game.EventLoss, Score: 812, HighScore: 900, PlayTime: 41.5, Kills: 6}})

	runs, err := ledger.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Score != 812 || runs[0].Kills != 6 || runs[0].PlayTime != 41.5 {
		t.Errorf("recorded run = %+v", runs[0])
	}

	out := buf.String()
	if !strings.Contains(out, "game over") || !strings.Contains(out, "score=812") {
		t.Errorf("expected a game over log line, got %q", out)
	}
}

func TestDrainDrivenByGame(t *testing.T) {
	p := &recordPlayer{}
	s := NewSink(p, nil, nil)

	g := game.New(config.Default())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 8})

	in := core.NewInputFrame()
	in.Press()
	s.Drain(g.Step(0, in).Events)

	in = core.NewInputFrame()
	in.MoveTo(400, 300)
	in.Press()
	s.Drain(g.Step(0.01, in).Events)

	if len(p.played) != 1 || p.played[0] != audio.SoundLaser {
		t.Errorf("expected one laser cue, got %v", p.played)
	}
}
