/*
The sandbox drives the engine with a small demo scene. Pass a config path as
the first argument, otherwise config.toml is read from the working directory.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/prism/engine"
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/platform"
	"github.com/spaghettifunk/prism/engine/platform/desktop"
	"github.com/spaghettifunk/prism/engine/renderer"
	"github.com/spaghettifunk/prism/engine/renderer/headless"
	"github.com/spaghettifunk/prism/engine/renderer/opengl"
	"github.com/spaghettifunk/prism/testbed"
)

func main() {
	path := "config.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := engine.LoadConfig(path)
	if err != nil {
		core.LogFatal("failed to load %s: %s", path, err)
	}

	window, device, err := newBackend(cfg)
	if err != nil {
		core.LogFatal("failed to create the %s backend: %s", cfg.Renderer.Backend, err)
	}

	app, err := engine.NewApplication(cfg, testbed.NewSandbox(), window, device)
	if err != nil {
		core.LogFatal("%s", err)
	}
	if err := app.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		app.Stop()
	}()

	runErr := app.Run()
	if err := app.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal("%s", runErr)
	}
}

func newBackend(cfg engine.Config) (platform.Window, renderer.Device, error) {
	switch cfg.Renderer.Backend {
	case engine.BackendOpenGL:
		window, err := desktop.NewGLFWWindow(cfg.PlatformWindow())
		if err != nil {
			return nil, nil, err
		}
		device, err := opengl.NewDevice()
		if err != nil {
			_ = window.Shutdown()
			return nil, nil, err
		}
		return window, device, nil
	case engine.BackendHeadless:
		return platform.NewHeadlessWindow(cfg.PlatformWindow()), headless.NewDevice(), nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Renderer.Backend)
}
