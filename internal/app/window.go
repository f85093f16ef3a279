package app

import (
	"fmt"

	"drone-viewer/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

// setupWindow creates the window with a 4.1 core context and loads GL
func setupWindow(wc config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(wc.Width, wc.Height, wc.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.SetPos(wc.X, wc.Y)
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	glfw.SwapInterval(1)
	window.Show()

	fbW, fbH := window.GetFramebufferSize()
	log.WithFields(log.Fields{
		"gl":          gl.GoStr(gl.GetString(gl.VERSION)),
		"window":      fmt.Sprintf("%dx%d", wc.Width, wc.Height),
		"framebuffer": fmt.Sprintf("%dx%d", fbW, fbH),
	}).Info("window created")

	return window, nil
}
