package main

import (
	"runtime"

	"drone-viewer/internal/app"
	"drone-viewer/internal/config"
	"drone-viewer/internal/graphics/renderables/drone"
	"drone-viewer/internal/graphics/renderables/ground"
	"drone-viewer/internal/graphics/renderables/hud"
	renderer "drone-viewer/internal/graphics/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cmd := app.NewCommand(
		"drone-viewer",
		"Fly a flat-shaded quadcopter over a checkered ground",
		func(cfg *config.Config, width, height int) []renderer.Renderable {
			return []renderer.Renderable{
				drone.NewDrone(),
				ground.NewGround(),
				hud.NewHUD(cfg.Render.HUDFontPx, width, height),
			}
		},
	)
	cmd.Long = `Keys:
  w/s  move drone along z      a/d  move drone along x
  q/e  move drone along y      R/r  grow/shrink the angle step
  Up/Down     tilt the view    Left/Right  rotate the view
  f  toggle wireframe          h  toggle the HUD
  Escape  quit`
	app.Main(cmd)
}
