package main

import (
	"runtime"

	"drone-viewer/internal/app"
	"drone-viewer/internal/config"
	"drone-viewer/internal/graphics/renderables/hud"
	"drone-viewer/internal/graphics/renderables/showcase"
	renderer "drone-viewer/internal/graphics/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cmd := app.NewCommand(
		"quadrics",
		"Preview the plain, slant, capped and slant capped cylinders side by side",
		func(cfg *config.Config, width, height int) []renderer.Renderable {
			return []renderer.Renderable{
				showcase.NewShowcase(),
				hud.NewHUD(cfg.Render.HUDFontPx, width, height),
			}
		},
	)
	app.Main(cmd)
}
