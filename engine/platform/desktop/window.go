// Package desktop provides the GLFW-backed window.
package desktop

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/events"
	"github.com/spaghettifunk/prism/engine/input"
	"github.com/spaghettifunk/prism/engine/platform"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type GLFWWindow struct {
	window  *glfw.Window
	handler *events.EventHandler
	poller  *GLFWPoller
}

// NewGLFWWindow opens a window with an OpenGL 3.3 core context made current
// on the calling thread.
func NewGLFWWindow(cfg platform.WindowConfig) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &GLFWWindow{
		window:  window,
		handler: events.NewEventHandler(),
		poller:  &GLFWPoller{window: window},
	}
	w.installCallbacks()

	if !cfg.Fullscreen {
		window.SetPos(cfg.X, cfg.Y)
	}
	window.Show()
	core.LogInfo("window %q created (%dx%d)", cfg.Title, cfg.Width, cfg.Height)
	return w, nil
}

func (w *GLFWWindow) installCallbacks() {
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		platform.Dispatch(w.handler, events.NewWindowCloseEvent())
	})
	// framebuffer size, not window size, so the viewport matches on HiDPI
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		platform.Dispatch(w.handler, events.NewWindowResizeEvent(width, height))
	})
	w.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			platform.Dispatch(w.handler, events.NewWindowFocusEvent())
		} else {
			platform.Dispatch(w.handler, events.NewWindowLostFocusEvent())
		}
	})
	w.window.SetPosCallback(func(_ *glfw.Window, x, y int) {
		platform.Dispatch(w.handler, events.NewWindowMovedEvent(x, y))
	})
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			platform.Dispatch(w.handler, events.NewKeyPressedEvent(int(key), 0))
		case glfw.Repeat:
			platform.Dispatch(w.handler, events.NewKeyPressedEvent(int(key), 1))
		case glfw.Release:
			platform.Dispatch(w.handler, events.NewKeyReleasedEvent(int(key)))
		}
	})
	w.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		platform.Dispatch(w.handler, events.NewKeyTypedEvent(int(char)))
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press {
			platform.Dispatch(w.handler, events.NewMouseButtonPressedEvent(int(button)))
		} else {
			platform.Dispatch(w.handler, events.NewMouseButtonReleasedEvent(int(button)))
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		platform.Dispatch(w.handler, events.NewMouseMovedEvent(float32(x), float32(y)))
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		platform.Dispatch(w.handler, events.NewMouseScrolledEvent(float32(xoff), float32(yoff)))
	})
}

func (w *GLFWWindow) EventHandler() *events.EventHandler {
	return w.handler
}

func (w *GLFWWindow) Poller() input.Poller {
	return w.poller
}

func (w *GLFWWindow) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *GLFWWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *GLFWWindow) WaitEvents(timeout time.Duration) {
	glfw.WaitEventsTimeout(timeout.Seconds())
}

func (w *GLFWWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *GLFWWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

// Time is the number of seconds since glfw was initialised.
func (w *GLFWWindow) Time() float64 {
	return glfw.GetTime()
}

func (w *GLFWWindow) Shutdown() error {
	w.window.Destroy()
	glfw.Terminate()
	return nil
}

// GLFWPoller reads key and button state straight from the window.
type GLFWPoller struct {
	window *glfw.Window
}

func (p *GLFWPoller) IsKeyPressed(key input.KeyCode) bool {
	state := p.window.GetKey(glfw.Key(key))
	return state == glfw.Press || state == glfw.Repeat
}

func (p *GLFWPoller) IsMouseButtonPressed(button input.MouseButton) bool {
	return p.window.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (p *GLFWPoller) MousePosition() (float32, float32) {
	x, y := p.window.GetCursorPos()
	return float32(x), float32(y)
}

var _ platform.Window = (*GLFWWindow)(nil)
