package platform

import (
	"time"

	"github.com/spaghettifunk/prism/engine/events"
	"github.com/spaghettifunk/prism/engine/input"
)

// HeadlessWindow has no native surface. Queued events are delivered on the
// next PollEvents, mirroring the way GLFW fires callbacks while polling.
type HeadlessWindow struct {
	width, height int
	handler       *events.EventHandler
	state         *input.State
	pending       []events.Event
	closed        bool
	swaps         int
	waits         int
}

func NewHeadlessWindow(cfg WindowConfig) *HeadlessWindow {
	return &HeadlessWindow{
		width:   cfg.Width,
		height:  cfg.Height,
		handler: events.NewEventHandler(),
		state:   input.NewState(),
	}
}

// Emit dispatches e right away and reports whether a callback ran.
func (w *HeadlessWindow) Emit(e events.Event) bool {
	w.observe(e)
	return Dispatch(w.handler, e)
}

func (w *HeadlessWindow) Queue(e ...events.Event) {
	w.pending = append(w.pending, e...)
}

func (w *HeadlessWindow) observe(e events.Event) {
	w.state.Observe(e)
	switch ev := e.(type) {
	case *events.WindowResizeEvent:
		w.width, w.height = ev.Width, ev.Height
	case *events.WindowCloseEvent:
		w.closed = true
	}
}

func (w *HeadlessWindow) EventHandler() *events.EventHandler {
	return w.handler
}

// Poller answers from the events seen so far.
func (w *HeadlessWindow) Poller() input.Poller {
	return w.state
}

func (w *HeadlessWindow) Size() (int, int) {
	return w.width, w.height
}

func (w *HeadlessWindow) PollEvents() {
	w.state.Update()
	pending := w.pending
	w.pending = nil
	for _, e := range pending {
		w.Emit(e)
	}
}

// WaitEvents never blocks: there is no event source to wait on besides
// Queue.
func (w *HeadlessWindow) WaitEvents(time.Duration) {
	w.waits++
	w.PollEvents()
}

// Waits counts WaitEvents calls.
func (w *HeadlessWindow) Waits() int {
	return w.waits
}

func (w *HeadlessWindow) SwapBuffers() {
	w.swaps++
}

// Swaps counts presented frames.
func (w *HeadlessWindow) Swaps() int {
	return w.swaps
}

func (w *HeadlessWindow) ShouldClose() bool {
	return w.closed
}

func (w *HeadlessWindow) Shutdown() error {
	w.pending = nil
	return nil
}

var _ Window = (*HeadlessWindow)(nil)
