package platform

import (
	"time"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/events"
	"github.com/spaghettifunk/prism/engine/input"
)

type WindowConfig struct {
	Title      string
	X, Y       int
	Width      int
	Height     int
	VSync      bool
	Fullscreen bool
}

// Window owns the native surface. Events it produces are dispatched
// synchronously through EventHandler while PollEvents or WaitEvents runs.
// Size and resize events are in framebuffer pixels.
type Window interface {
	EventHandler() *events.EventHandler
	Poller() input.Poller
	Size() (width, height int)
	PollEvents()
	// WaitEvents blocks until an event arrives or timeout elapses.
	WaitEvents(timeout time.Duration)
	SwapBuffers()
	ShouldClose() bool
	Shutdown() error
}

// Dispatch forwards e to h and logs the advisory handled flag when a
// callback ran.
func Dispatch(h *events.EventHandler, e events.Event) bool {
	ran := h.Dispatch(e)
	if ran {
		core.LogDebug("%v handled=%t", e, e.Handled())
	}
	return ran
}
