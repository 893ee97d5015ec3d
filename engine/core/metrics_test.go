package core

import "testing"

func TestFrameMetricsAverage(t *testing.T) {
	m := NewFrameMetrics()
	for i := 0; i < AVG_COUNT*2; i++ {
		m.Update(0.010)
	}
	if got := m.FrameTime(); got < 9.999 || got > 10.001 {
		t.Errorf("FrameTime() = %v, want 10ms", got)
	}
}

func TestFrameMetricsFPS(t *testing.T) {
	m := NewFrameMetrics()
	// 101 frames of 10ms crosses the one second boundary once.
	for i := 0; i < 101; i++ {
		m.Update(0.010)
	}
	if got := m.FPS(); got != 101 {
		t.Errorf("FPS() = %v, want 101", got)
	}
}
