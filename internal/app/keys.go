package app

import (
	"drone-viewer/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

var specialKeys = map[glfw.Key]input.Key{
	glfw.KeyUp:     input.KeyUp,
	glfw.KeyDown:   input.KeyDown,
	glfw.KeyLeft:   input.KeyLeft,
	glfw.KeyRight:  input.KeyRight,
	glfw.KeyEscape: input.KeyEscape,
}

func setupInputHandlers(window *glfw.Window, l *Loop, im *input.InputManager) {
	// Printable characters arrive already shifted, so 'R' and 'r' differ
	window.SetCharCallback(func(w *glfw.Window, char rune) {
		action := im.RuneAction(char)
		log.WithFields(log.Fields{
			"key":    string(char),
			"action": action,
		}).Debug("key pressed")
		l.HandleAction(action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		k, ok := specialKeys[key]
		if !ok {
			return
		}
		l.HandleAction(im.KeyAction(k))
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		l.Resize(fbWidth, fbHeight)
	})

	// Called while the window is being resized or uncovered
	window.SetRefreshCallback(func(w *glfw.Window) {
		l.RefreshRender()
	})
}
