package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/vector-risk/internal/config"
	"github.com/vovakirdan/vector-risk/internal/core"
)

func TestNewObstacleRanges(t *testing.T) {
	sc := config.Default().Spawn
	rng := rand.New(rand.NewSource(7))
	seen := map[int]bool{}

	for i := 0; i < 2000; i++ {
		o := newObstacle(rng, sc)
		if o.Pos.X < sc.MinX || o.Pos.X > sc.MaxX {
			t.Fatalf("x out of range: %v", o.Pos.X)
		}
		if o.Pos.X != math.Trunc(o.Pos.X) {
			t.Fatalf("x should be a whole unit: %v", o.Pos.X)
		}
		if o.Pos.Y != sc.Y {
			t.Fatalf("y = %v, expected %v", o.Pos.Y, sc.Y)
		}
		if o.Radius < sc.MinRadius || o.Radius > sc.MaxRadius {
			t.Fatalf("radius out of range: %v", o.Radius)
		}
		if o.Sides < sc.MinSides || o.Sides > sc.MaxSides {
			t.Fatalf("sides out of range: %d", o.Sides)
		}
		seen[o.Sides] = true
	}

	for sides := sc.MinSides; sides <= sc.MaxSides; sides++ {
		if !seen[sides] {
			t.Errorf("side count %d never produced", sides)
		}
	}
}

func TestSpawnXIncludesBothEnds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seen := map[float64]bool{}

	for range 500 {
		x := spawnX(rng, 10, 13)
		if x < 10 || x > 13 {
			t.Fatalf("x out of range: %v", x)
		}
		seen[x] = true
	}

	for _, want := range []float64{10, 11, 12, 13} {
		if !seen[want] {
			t.Errorf("column %v never produced", want)
		}
	}
}

func TestAppendBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	at := core.V(120, 340)

	ps := appendBurst(nil, rng, at, 30, 50, 250)
	if len(ps) != 30 {
		t.Fatalf("expected 30 particles, got %d", len(ps))
	}
	for i, p := range ps {
		if p.Pos != at {
			t.Errorf("particle %d at %+v, expected %+v", i, p.Pos, at)
		}
		if p.Life != 1.0 {
			t.Errorf("particle %d life = %v, expected 1", i, p.Life)
		}
		speed := p.Vel.Len()
		if speed < 50-1e-9 || speed > 250+1e-9 {
			t.Errorf("particle %d speed %v outside [50, 250]", i, speed)
		}
	}
}

func TestAdvanceParticles(t *testing.T) {
	ps := []Particle{
		{Pos: core.V(0, 0), Vel: core.V(10, -20), Life: 1.0},
		{Pos: core.V(5, 5), Vel: core.V(0, 0), Life: 0.75},
		{Pos: core.V(9, 9), Vel: core.V(1, 1), Life: 0.9},
	}

	ps = advanceParticles(ps, 0.5, 1.5)

	// Second particle reaches exactly zero and expires
	if len(ps) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(ps))
	}
	if ps[0].Pos != core.V(5, -10) {
		t.Errorf("position = %+v, expected (5, -10)", ps[0].Pos)
	}
	if math.Abs(ps[0].Life-0.25) > 1e-9 {
		t.Errorf("life = %v, expected 0.25", ps[0].Life)
	}
	if ps[1].Pos != core.V(9.5, 9.5) {
		t.Errorf("survivor order not preserved: %+v", ps[1].Pos)
	}

	ps = advanceParticles(ps, 0.2, 1.5)
	if len(ps) != 0 {
		t.Errorf("expected all expired, got %d", len(ps))
	}
}

func TestAdvanceParticlesZeroDt(t *testing.T) {
	ps := []Particle{{Life: 0.5}}
	ps = advanceParticles(ps, 0, 1.5)
	if len(ps) != 1 || ps[0].Life != 0.5 {
		t.Errorf("zero dt should not change particles: %+v", ps)
	}
}

func TestAdvanceLabels(t *testing.T) {
	ls := []FloatingLabel{
		{Pos: core.V(100, 300), Value: 300, Life: 1.0},
		{Pos: core.V(200, 200), Value: 200, Life: 0.1},
	}

	ls = advanceLabels(ls, 0.2, 50, 1.0)

	if len(ls) != 1 {
		t.Fatalf("expected 1 label, got %d", len(ls))
	}
	if math.Abs(ls[0].Pos.Y-290) > 1e-9 {
		t.Errorf("label y = %v, expected 290", ls[0].Pos.Y)
	}
	if ls[0].Pos.X != 100 {
		t.Errorf("label x should not change, got %v", ls[0].Pos.X)
	}
	if ls[0].Value != 300 {
		t.Errorf("label value = %d, expected 300", ls[0].Value)
	}
}

func TestLabelExpiresAfterOneSecond(t *testing.T) {
	ls := []FloatingLabel{{Life: 1.0}}
	frames := 0
	for len(ls) > 0 && frames < 1000 {
		ls = advanceLabels(ls, 0.01, 50, 1.0)
		frames++
	}
	if frames < 99 || frames > 101 {
		t.Errorf("label lived %d frames of 10ms, expected about 100", frames)
	}
}
