package platform

import (
	"testing"

	"github.com/spaghettifunk/prism/engine/events"
	"github.com/spaghettifunk/prism/engine/input"
)

func TestHeadlessEmitDispatchesSynchronously(t *testing.T) {
	w := NewHeadlessWindow(WindowConfig{Width: 800, Height: 600})

	var got *events.WindowResizeEvent
	w.EventHandler().SetOnWindowResizeCallback(func(e *events.WindowResizeEvent) bool {
		got = e
		return true
	})

	e := events.NewWindowResizeEvent(1024, 768)
	if !w.Emit(e) {
		t.Fatal("resize callback did not run")
	}
	if got != e || !e.Handled() {
		t.Errorf("callback saw %v, handled=%t", got, e.Handled())
	}
	if width, height := w.Size(); width != 1024 || height != 768 {
		t.Errorf("size = %dx%d", width, height)
	}

	if w.Emit(events.NewWindowMovedEvent(1, 2)) {
		t.Error("moved event had no callback but reported one")
	}
}

func TestHeadlessQueueDeliversOnPoll(t *testing.T) {
	w := NewHeadlessWindow(WindowConfig{Width: 10, Height: 10})

	closes := 0
	w.EventHandler().SetOnWindowCloseCallback(func(*events.WindowCloseEvent) bool {
		closes++
		return true
	})
	w.Queue(events.NewKeyPressedEvent(int(input.KeyW), 0), events.NewWindowCloseEvent())
	if closes != 0 || w.ShouldClose() {
		t.Fatal("queued events delivered before PollEvents")
	}

	w.PollEvents()
	if closes != 1 || !w.ShouldClose() {
		t.Errorf("closes = %d, ShouldClose = %t", closes, w.ShouldClose())
	}
	if !w.Poller().IsKeyPressed(input.KeyW) {
		t.Error("poller missed the queued key press")
	}

	w.PollEvents()
	if closes != 1 {
		t.Error("queue was not drained")
	}
}

func TestHeadlessMouseTracking(t *testing.T) {
	w := NewHeadlessWindow(WindowConfig{})
	w.Emit(events.NewMouseMovedEvent(12.5, 40))
	w.Emit(events.NewMouseButtonPressedEvent(int(input.MouseButtonRight)))

	p := w.Poller()
	if x, y := p.MousePosition(); x != 12.5 || y != 40 {
		t.Errorf("mouse = (%v, %v)", x, y)
	}
	if !p.IsMouseButtonPressed(input.MouseButtonRight) || p.IsMouseButtonPressed(input.MouseButtonLeft) {
		t.Error("button state wrong")
	}

	w.SwapBuffers()
	w.SwapBuffers()
	if w.Swaps() != 2 {
		t.Errorf("swaps = %d", w.Swaps())
	}
}
