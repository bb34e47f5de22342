package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/vector-risk/internal/config"
	"github.com/vovakirdan/vector-risk/internal/core"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		target   float64
		maxSpeed float64
		dt       float64
		want     float64
	}{
		{"step right", 100, 400, 350, 0.1, 135},
		{"step left", 400, 100, 350, 0.1, 365},
		{"snap when within step", 100, 120, 350, 0.1, 120},
		{"snap exactly one step", 100, 135, 350, 0.1, 135},
		{"already there", 250, 250, 350, 0.1, 250},
		{"zero dt", 100, 400, 350, 0, 100},
		{"negative dt", 100, 400, 350, -1, 100},
		{"zero speed", 100, 400, 0, 0.1, 100},
		{"nan target", 100, math.NaN(), 350, 0.1, 100},
		{"inf target", 100, math.Inf(1), 350, 0.1, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Advance(tc.current, tc.target, tc.maxSpeed, tc.dt)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Advance(%v, %v, %v, %v) = %v, expected %v",
					tc.current, tc.target, tc.maxSpeed, tc.dt, got, tc.want)
			}
		})
	}
}

func TestAdvanceNeverOvershoots(t *testing.T) {
	x := 0.0
	target := 523.7
	for i := 0; i < 200; i++ {
		prev := x
		x = Advance(x, target, 350, 1.0/60)
		if x > target {
			t.Fatalf("overshoot at step %d: %v > %v", i, x, target)
		}
		if x-prev > 350.0/60+1e-9 {
			t.Fatalf("moved too far at step %d: %v", i, x-prev)
		}
	}
	if x != target {
		t.Errorf("expected to settle on %v, got %v", target, x)
	}
}

func TestUpdateCooldown(t *testing.T) {
	tests := []struct {
		name      string
		timer     float64
		dt        float64
		requested bool
		wantTimer float64
		wantFire  bool
	}{
		{"charging without request", 0.2, 0.1, false, 0.3, false},
		{"request before charged", 0.5, 0.1, true, 0.6, false},
		{"request reaches charge this frame", 0.7, 0.15, true, 0, true},
		{"charged without request keeps counting", 0.8, 0.1, false, 0.9, false},
		{"charged with request", 2.0, 0.016, true, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			timer, fired := UpdateCooldown(tc.timer, tc.dt, tc.requested, 0.8)
			if fired != tc.wantFire {
				t.Errorf("fired = %v, expected %v", fired, tc.wantFire)
			}
			if math.Abs(timer-tc.wantTimer) > 1e-9 {
				t.Errorf("timer = %v, expected %v", timer, tc.wantTimer)
			}
		})
	}
}

func TestPlayerHitboxes(t *testing.T) {
	pc := config.Default().Player
	p := Player{X: 300}

	tri := p.Hitbox(pc)
	want := core.Triangle{A: core.V(300, 480), B: core.V(280, 520), C: core.V(320, 520)}
	if tri != want {
		t.Errorf("Hitbox() = %+v, expected %+v", tri, want)
	}

	beam := p.Beam(pc)
	wantBeam := core.RectF{X: 298, Y: 0, W: 4, H: 500}
	if beam != wantBeam {
		t.Errorf("Beam() = %+v, expected %+v", beam, wantBeam)
	}
}

func TestPlayerCharge(t *testing.T) {
	p := Player{FireTimer: 0.4}
	if p.Charged(0.8) {
		t.Error("should not be charged at half cooldown")
	}
	if r := p.ChargeRatio(0.8); math.Abs(r-0.5) > 1e-9 {
		t.Errorf("ChargeRatio = %v, expected 0.5", r)
	}

	p.FireTimer = 3
	if !p.Charged(0.8) {
		t.Error("should be charged past cooldown")
	}
	if r := p.ChargeRatio(0.8); r != 1 {
		t.Errorf("ChargeRatio should clamp to 1, got %v", r)
	}
}
