package ground

import (
	"drone-viewer/internal/graphics"
	renderer "drone-viewer/internal/graphics/renderer"
	"drone-viewer/internal/meshing"
	"drone-viewer/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Ground draws the checkered floor as alternating-colored triangle strips
type Ground struct {
	shader *graphics.Shader
	mesh   *graphics.DynamicMesh
	batch  *meshing.Batch
}

// NewGround creates a new ground renderable
func NewGround() *Ground {
	return &Ground{batch: meshing.NewBatch()}
}

// Init compiles the scene shader and allocates the streaming buffer
func (g *Ground) Init() error {
	shader, err := graphics.LoadShader(graphics.SceneShader)
	if err != nil {
		return err
	}
	g.shader = shader
	g.mesh = graphics.NewDynamicMesh()
	return nil
}

// Render re-emits and draws the floor
func (g *Ground) Render(ctx renderer.RenderContext) {
	func() {
		defer profiling.Track("ground.Build")()
		g.batch.Reset()
		meshing.BuildGround(g.batch)
		g.mesh.Upload(g.batch)
	}()

	defer profiling.Track("ground.Draw")()
	gl.Disable(gl.CULL_FACE)
	graphics.UseSceneShader(g.shader, ctx.View, ctx.Proj)
	g.mesh.Draw()
}

// Dispose cleans up OpenGL resources
func (g *Ground) Dispose() {
	if g.mesh != nil {
		g.mesh.Dispose()
	}
	if g.shader != nil {
		g.shader.Delete()
	}
}

// SetViewport is a no-op for the floor
func (g *Ground) SetViewport(width, height int) {}
