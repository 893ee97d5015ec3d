package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spaghettifunk/prism/engine/assets"
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/events"
	"github.com/spaghettifunk/prism/engine/input"
	"github.com/spaghettifunk/prism/engine/platform"
	"github.com/spaghettifunk/prism/engine/renderer"
)

// How long a paused loop sleeps in the window's event wait. It also bounds
// how late a Stop from another goroutine is noticed while paused.
const suspendedWait = 100 * time.Millisecond

type Stage uint8

const (
	// Application is constructed but not initialized
	StageUninitialized Stage = iota
	// Initialize is running
	StageInitializing
	// Initialization is complete, Run may be called
	StageInitialized
	// The frame loop is running
	StageRunning
	// Shutdown has been called
	StageShuttingDown
)

/**
 * @brief The top-level context. It owns the window, the graphics device, the
 * renderers and the asset library, and hands itself to every game callback.
 */
type Application struct {
	config Config
	game   *Game

	window  platform.Window
	device  renderer.Device
	assets  *assets.Manager
	library *assets.Library

	renderer3D *renderer.Renderer3D
	renderer2D *renderer.Renderer2D
	quadShader renderer.Shader

	clock   *core.Clock
	metrics *core.FrameMetrics

	stage         Stage
	isRunning     bool
	isSuspended   bool
	isMinimized   bool
	stopRequested atomic.Bool
	frames        int
}

func NewApplication(cfg Config, game *Game, window platform.Window, device renderer.Device) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if game == nil || game.FnUpdate == nil || game.FnRender == nil {
		return nil, errors.New("game must provide update and render callbacks")
	}
	if window == nil || device == nil {
		return nil, errors.New("application needs a window and a device")
	}
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	manager := assets.NewManager(cfg.Assets.Root)
	spans := renderer.NewSpanGuard()
	return &Application{
		config:     cfg,
		game:       game,
		window:     window,
		device:     device,
		assets:     manager,
		library:    assets.NewLibrary(manager, device),
		renderer3D: renderer.NewRenderer3D(device, spans),
		renderer2D: renderer.NewRenderer2D(device, spans),
		clock:      core.NewClock(),
		metrics:    core.NewFrameMetrics(),
		stage:      StageUninitialized,
	}, nil
}

func (a *Application) Initialize() error {
	if a.stage != StageUninitialized {
		return fmt.Errorf("application already initialized")
	}
	a.stage = StageInitializing

	if err := a.assets.Scan(); err != nil {
		return err
	}
	if err := a.renderer3D.Init(); err != nil {
		return err
	}
	shader, err := a.library.AcquireShader(a.config.Renderer.QuadShader)
	if err != nil {
		return fmt.Errorf("renderer2d shader: %w", err)
	}
	a.quadShader = shader
	if err := a.renderer2D.Init(shader); err != nil {
		return err
	}

	width, height := a.window.Size()
	a.device.SetViewport(0, 0, int32(width), int32(height))
	a.device.SetClearColor(a.config.ClearColour())
	a.installHandlers()

	if a.game.FnInitialize != nil {
		if err := a.game.FnInitialize(a); err != nil {
			return fmt.Errorf("game initialize failed: %w", err)
		}
	}
	a.stage = StageInitialized
	core.LogInfo("%s initialized on %s", a.config.Window.Title, a.device.Name())
	return nil
}

func (a *Application) installHandlers() {
	h := a.window.EventHandler()
	h.SetOnWindowCloseCallback(a.onClose)
	h.SetOnWindowResizeCallback(a.onResize)
	h.SetOnWindowFocusCallback(a.onFocus)
	h.SetOnWindowLostFocusCallback(a.onLostFocus)
	h.SetOnWindowMovedCallback(a.onMoved)
}

func (a *Application) onClose(*events.WindowCloseEvent) bool {
	core.LogInfo("window close requested, shutting down")
	a.isRunning = false
	return true
}

func (a *Application) onResize(e *events.WindowResizeEvent) bool {
	core.LogDebug("window resized to %dx%d", e.Width, e.Height)
	if e.Width == 0 || e.Height == 0 {
		a.isMinimized = true
		return true
	}
	a.isMinimized = false
	a.device.SetViewport(0, 0, int32(e.Width), int32(e.Height))
	if a.game.FnOnResize != nil {
		if err := a.game.FnOnResize(a, e.Width, e.Height); err != nil {
			core.LogError("game resize failed: %s", err)
		}
	}
	return true
}

func (a *Application) onFocus(*events.WindowFocusEvent) bool {
	core.LogInfo("GAME RESUMED!")
	a.isSuspended = false
	return true
}

func (a *Application) onLostFocus(*events.WindowLostFocusEvent) bool {
	core.LogInfo("GAME PAUSED!")
	a.isSuspended = true
	return true
}

func (a *Application) onMoved(e *events.WindowMovedEvent) bool {
	core.LogDebug("window moved to %d, %d", e.X, e.Y)
	return true
}

// Run drives the frame loop until the window closes, Stop is called, the
// frame limit is reached or a callback fails. Renderer misuse ends the loop
// with the misuse error.
func (a *Application) Run() error {
	if a.stage != StageInitialized {
		return fmt.Errorf("run: %w", core.ErrNotInitialized)
	}
	a.stage = StageRunning
	a.isRunning = true
	a.clock.Start()

	ticks := 0
	for a.isRunning {
		if a.isSuspended || a.isMinimized {
			a.window.WaitEvents(suspendedWait)
		} else {
			a.window.PollEvents()
		}
		if a.window.ShouldClose() || a.stopRequested.Load() {
			a.isRunning = false
		}
		if !a.isRunning {
			break
		}

		ticks++
		if limit := a.config.Renderer.MaxFrames; limit > 0 && ticks > limit {
			core.LogInfo("frame limit of %d reached", limit)
			break
		}

		delta := a.clock.Tick()
		if a.isSuspended || a.isMinimized {
			continue
		}
		a.metrics.Update(delta)

		if err := a.game.FnUpdate(a, delta); err != nil {
			core.LogError("Game update failed, shutting down: %s", err)
			a.isRunning = false
			return err
		}

		a.device.Clear()
		if err := a.game.FnRender(a, delta); err != nil {
			if isRendererMisuse(err) {
				core.LogError("renderer misuse, aborting frame and shutting down: %s", err)
			} else {
				core.LogError("Game render failed, shutting down: %s", err)
			}
			a.isRunning = false
			return err
		}
		a.window.SwapBuffers()
		a.frames++
	}
	return nil
}

func isRendererMisuse(err error) bool {
	return errors.Is(err, renderer.ErrNotRecording) ||
		errors.Is(err, renderer.ErrAlreadyRecording) ||
		errors.Is(err, renderer.ErrSpanOverlap) ||
		errors.Is(err, renderer.ErrNotInitialized)
}

// Stop asks a running loop to end after the current frame. It is safe to
// call from any goroutine.
func (a *Application) Stop() {
	a.stopRequested.Store(true)
}

func (a *Application) Shutdown() error {
	if a.stage == StageShuttingDown {
		return core.ErrShuttingDown
	}
	a.stage = StageShuttingDown

	var errs []error
	if a.game.FnShutdown != nil {
		if err := a.game.FnShutdown(a); err != nil {
			errs = append(errs, fmt.Errorf("game shutdown: %w", err))
		}
	}
	a.renderer2D.Shutdown()
	a.renderer3D.Shutdown()
	if a.quadShader != nil {
		if err := a.library.ReleaseShader(a.config.Renderer.QuadShader); err != nil {
			errs = append(errs, err)
		}
		a.quadShader = nil
	}
	a.library.Shutdown()
	if err := a.device.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	if err := a.window.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	core.LogInfo("shutdown complete after %d frames", a.frames)
	return errors.Join(errs...)
}

func (a *Application) Config() Config { return a.config }
func (a *Application) Window() platform.Window { return a.window }
func (a *Application) Device() renderer.Device { return a.device }
func (a *Application) Assets() *assets.Manager { return a.assets }
func (a *Application) Library() *assets.Library { return a.library }
func (a *Application) Renderer3D() *renderer.Renderer3D { return a.renderer3D }
func (a *Application) Renderer2D() *renderer.Renderer2D { return a.renderer2D }
func (a *Application) Metrics() *core.FrameMetrics { return a.metrics }
func (a *Application) EventHandler() *events.EventHandler { return a.window.EventHandler() }
func (a *Application) Poller() input.Poller { return a.window.Poller() }
func (a *Application) Stage() Stage { return a.stage }
func (a *Application) Suspended() bool { return a.isSuspended || a.isMinimized }

// Frames counts frames that were rendered and presented.
func (a *Application) Frames() int { return a.frames }
