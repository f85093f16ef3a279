package app

import (
	"time"

	"drone-viewer/internal/control"
	renderer "drone-viewer/internal/graphics/renderer"
	"drone-viewer/internal/profiling"
	"drone-viewer/internal/view"

	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

// Frames slower than this are logged with their top timers
const slowFrame = 50 * time.Millisecond

// Loop redraws the scene only when something changed and otherwise sleeps in WaitEvents
type Loop struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	state    *view.State

	dirty  bool
	frames int
}

// NewLoop creates a loop that draws the first frame immediately
func NewLoop(window *glfw.Window, r *renderer.Renderer, s *view.State) *Loop {
	return &Loop{
		window:   window,
		renderer: r,
		state:    s,
		dirty:    true,
	}
}

// Run blocks until the window is asked to close
func (l *Loop) Run() {
	for !l.window.ShouldClose() {
		if l.dirty {
			l.renderFrame()
		}
		glfw.WaitEvents()
	}
	log.WithField("frames", l.frames).Debug("loop finished")
}

// HandleAction applies one input action to the view state
func (l *Loop) HandleAction(a control.Action) {
	res := control.Dispatch(a, l.state)
	if res.Quit {
		l.window.SetShouldClose(true)
		return
	}
	if res.Redraw {
		l.dirty = true
		log.WithFields(log.Fields{
			"action":      a,
			"rotation":    l.state.Rotation,
			"azimuth":     l.state.Azimuth,
			"step":        l.state.StepSize,
			"translation": l.state.Translation,
		}).Trace("view changed")
	}
}

// Resize updates the viewport for a new framebuffer size
func (l *Loop) Resize(width, height int) {
	l.renderer.UpdateViewport(width, height)
	l.dirty = true
}

// RefreshRender draws right away, used while the window is being resized
func (l *Loop) RefreshRender() {
	l.renderFrame()
}

func (l *Loop) renderFrame() {
	start := time.Now()
	l.renderer.Render(l.state)
	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()
	l.dirty = false
	l.frames++

	if d := time.Since(start); d > slowFrame {
		log.WithFields(log.Fields{
			"frame": profiling.FormatMillis(d),
			"top":   profiling.TopN(3),
		}).Warn("slow frame")
	}
	profiling.ResetFrame()
}
