package core

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	c := NewClock()
	c.now = func() time.Time { return now }

	c.Update()
	if c.Elapsed() != 0 {
		t.Fatalf("unstarted clock elapsed = %v, want 0", c.Elapsed())
	}

	c.Start()
	now = base.Add(250 * time.Millisecond)
	if dt := c.Tick(); dt != 0.25 {
		t.Errorf("first Tick() = %v, want 0.25", dt)
	}
	now = now.Add(500 * time.Millisecond)
	if dt := c.Tick(); dt != 0.5 {
		t.Errorf("second Tick() = %v, want 0.5", dt)
	}
}

func TestClockStopKeepsElapsed(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewClock()
	c.now = func() time.Time { return now }

	c.Start()
	now = now.Add(time.Second)
	c.Update()
	c.Stop()
	now = now.Add(time.Second)
	c.Update()
	if c.Elapsed() != 1 {
		t.Errorf("Elapsed() after Stop = %v, want 1", c.Elapsed())
	}
}
