package hud

import (
	"drone-viewer/internal/config"
	"drone-viewer/internal/graphics"
	renderer "drone-viewer/internal/graphics/renderer"
	"drone-viewer/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var textColor = mgl32.Vec3{0.1, 0.1, 0.1}

const margin = 6

// HUD prints the view state and the slowest scene timers in the top-left corner while enabled
type HUD struct {
	fontPx int
	font   *graphics.FontRenderer
	width  int
	height int
}

// NewHUD creates a HUD with the given font pixel height
func NewHUD(fontPx, width, height int) *HUD {
	return &HUD{fontPx: fontPx, width: width, height: height}
}

// Init rasterizes the font atlas
func (h *HUD) Init() error {
	atlas, err := graphics.BuildFontAtlas(h.fontPx)
	if err != nil {
		return err
	}
	fr, err := graphics.NewFontRenderer(atlas, h.width, h.height)
	if err != nil {
		return err
	}
	h.font = fr
	return nil
}

// Render draws the overlay
func (h *HUD) Render(ctx renderer.RenderContext) {
	if !config.GetShowHUD() {
		return
	}
	// scene timers recorded so far this frame
	timings := profiling.TopN(3)
	defer profiling.Track("hud.Render")()

	lines := ctx.State.StatusLines()
	if config.GetWireframe() {
		lines = append(lines, "wireframe")
	}
	if timings != "" {
		lines = append(lines, timings)
	}

	step := h.font.LineHeight()
	h.font.RenderLines(lines, margin, margin+step, step, 1, textColor)
}

// Dispose releases the font texture and buffers
func (h *HUD) Dispose() {
	if h.font != nil {
		h.font.Dispose()
		h.font = nil
	}
}

// SetViewport keeps text in pixel space after a resize
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.font != nil {
		h.font.SetViewport(width, height)
	}
}
