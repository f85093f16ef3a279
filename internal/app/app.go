// Package app runs a GLFW window around a renderer: setup, input wiring,
// the event-driven draw loop and orderly teardown.
package app

import (
	"fmt"
	"time"

	"drone-viewer/internal/config"
	renderer "drone-viewer/internal/graphics/renderer"
	"drone-viewer/internal/input"
	"drone-viewer/internal/lifecycle"

	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
	"github.com/xlab/closer"
)

// How long a signal handler waits for the loop to tear down
const shutdownTimeout = 2 * time.Second

// Run opens the window described by cfg and draws the renderables returned by
// newRenderables until the window closes or the process is signalled.
// It must be called from the main goroutine.
func Run(cfg *config.Config, newRenderables func(width, height int) []renderer.Renderable) error {
	im := input.NewInputManager()
	if err := im.Apply(cfg.Keys); err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}
	config.ApplyRender(cfg)
	state := cfg.NewViewState()

	// Finish is deferred first so a signal handler waits until glfw is terminated
	shutdown := lifecycle.NewShutdown()
	defer shutdown.Finish()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	// SIGINT and SIGTERM close the window while it exists, then wait for teardown
	closer.Bind(func() {
		stopped, finished := shutdown.Request(func() {
			log.Info("signal received, closing window")
			window.SetShouldClose(true)
			glfw.PostEmptyEvent()
		}, shutdownTimeout)
		if stopped && !finished {
			log.Warn("shutdown timed out")
		}
	})
	shutdown.Start()
	defer shutdown.Stop()

	fbW, fbH := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbW, fbH, newRenderables(fbW, fbH)...)
	if err != nil {
		return fmt.Errorf("failed to set up renderer: %w", err)
	}
	defer r.Dispose()

	loop := NewLoop(window, r, state)
	setupInputHandlers(window, loop, im)

	log.WithField("bindings", im.Bindings()).Debug("input ready")
	loop.Run()
	return nil
}
