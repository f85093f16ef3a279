package showcase

import (
	"drone-viewer/internal/graphics"
	renderer "drone-viewer/internal/graphics/renderer"
	"drone-viewer/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Showcase draws the four cylinder variants. The geometry never changes,
// so it is built once at Init.
type Showcase struct {
	shader *graphics.Shader
	mesh   *graphics.DynamicMesh
}

// NewShowcase creates the preview renderable
func NewShowcase() *Showcase {
	return &Showcase{}
}

// Init compiles the scene shader and uploads the cylinders
func (s *Showcase) Init() error {
	shader, err := graphics.LoadShader(graphics.SceneShader)
	if err != nil {
		return err
	}
	s.shader = shader

	var c meshing.Cylinders
	b := meshing.NewBatch()
	meshing.BuildShowcase(b, &c)
	c.Release()

	s.mesh = graphics.NewDynamicMesh()
	s.mesh.Upload(b)
	return nil
}

// Render draws with back faces culled, so open ends show through and caps do not
func (s *Showcase) Render(ctx renderer.RenderContext) {
	gl.Enable(gl.CULL_FACE)
	graphics.UseSceneShader(s.shader, ctx.View, ctx.Proj)
	s.mesh.Draw()
	gl.Disable(gl.CULL_FACE)
}

// Dispose releases GL objects
func (s *Showcase) Dispose() {
	if s.mesh != nil {
		s.mesh.Dispose()
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

// SetViewport is a no-op
func (s *Showcase) SetViewport(width, height int) {}
