package config

import "sync"

// RenderSettings holds runtime render toggles flipped from input callbacks
type RenderSettings struct {
	mu        sync.RWMutex
	wireframe bool
	showHUD   bool
}

var globalRenderSettings = &RenderSettings{}

// GetWireframe reports whether polygons are drawn as lines
func GetWireframe() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

// SetWireframe switches between line and fill polygon mode
func SetWireframe(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = enabled
}

// GetShowHUD reports whether the text overlay is drawn
func GetShowHUD() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showHUD
}

// SetShowHUD shows or hides the text overlay
func SetShowHUD(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showHUD = enabled
}

// ApplyRender seeds the runtime toggles from a loaded config
func ApplyRender(cfg *Config) {
	SetWireframe(cfg.Render.Wireframe)
	SetShowHUD(cfg.Render.ShowHUD)
}
