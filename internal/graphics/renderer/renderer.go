package renderer

import (
	"fmt"

	"drone-viewer/internal/config"
	"drone-viewer/internal/graphics"
	"drone-viewer/internal/profiling"
	"drone-viewer/internal/view"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures global GL state and initializes the renderables in order.
// If one fails, the ones already initialized are disposed.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.ClearColor(1.0, 1.0, 1.0, 0.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ProvokingVertex(gl.LAST_VERTEX_CONVENTION)

	r := &Renderer{
		camera: graphics.NewCamera(width, height),
	}

	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		r.renderables = append(r.renderables, rb)
	}
	r.UpdateViewport(width, height)

	return r, nil
}

// Render draws one frame from the view state. The caller swaps buffers.
func (r *Renderer) Render(s *view.State) {
	defer profiling.Track("renderer.Render")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if config.GetWireframe() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	ctx := RenderContext{
		Camera: r.camera,
		State:  s,
		View:   s.ViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Flush()
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport and tells every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	gl.Viewport(0, 0, int32(r.camera.Width), int32(r.camera.Height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(r.camera.Width, r.camera.Height)
	}
}
