package core

import (
	"math"
	"testing"
	"time"
)

func TestInputFrameTargetX(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.TargetX(); ok {
		t.Error("fresh frame should have no pointer")
	}

	f.MoveTo(120, 40)
	if x, ok := f.TargetX(); !ok || x != 120 {
		t.Errorf("TargetX() = %f, %v; expected 120, true", x, ok)
	}

	f.MoveTo(math.NaN(), 40)
	if _, ok := f.TargetX(); ok {
		t.Error("NaN pointer should not be usable")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.MoveTo(10, 20)
	f.Press()
	f.Clear()

	if f.Pressed {
		t.Error("Clear should reset the press edge")
	}
	if !f.HasPointer || f.Pointer != V(10, 20) {
		t.Errorf("Clear should keep the pointer, got %+v", f)
	}
}

func TestWallClock(t *testing.T) {
	base := time.Unix(1000, 0)
	calls := 0
	c := &WallClock{now: func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 250 * time.Millisecond)
	}}

	if dt := c.DeltaTime(); dt != 0 {
		t.Errorf("first DeltaTime() = %f, expected 0", dt)
	}
	if dt := c.DeltaTime(); dt != 0.25 {
		t.Errorf("second DeltaTime() = %f, expected 0.25", dt)
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock{Step: 1.0 / 60}
	if c.DeltaTime() != 1.0/60 {
		t.Error("FixedClock should return its step")
	}
}
