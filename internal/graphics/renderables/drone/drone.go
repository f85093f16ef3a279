package drone

import (
	"drone-viewer/internal/graphics"
	renderer "drone-viewer/internal/graphics/renderer"
	"drone-viewer/internal/meshing"
	"drone-viewer/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Drone re-emits the rotor shells and body every frame at the current translation
type Drone struct {
	shader    *graphics.Shader
	mesh      *graphics.DynamicMesh
	batch     *meshing.Batch
	cylinders meshing.Cylinders
}

// NewDrone creates a new drone renderable
func NewDrone() *Drone {
	return &Drone{batch: meshing.NewBatch()}
}

// Init compiles the scene shader and allocates the streaming buffer
func (d *Drone) Init() error {
	shader, err := graphics.LoadShader(graphics.SceneShader)
	if err != nil {
		return err
	}
	d.shader = shader
	d.mesh = graphics.NewDynamicMesh()
	return nil
}

// Render draws the drone with face culling off so rotor interiors show
func (d *Drone) Render(ctx renderer.RenderContext) {
	func() {
		defer profiling.Track("drone.Build")()
		d.batch.Reset()
		meshing.BuildDrone(d.batch, &d.cylinders, ctx.State.Translation)
		d.mesh.Upload(d.batch)
	}()

	defer profiling.Track("drone.Draw")()
	gl.Disable(gl.CULL_FACE)
	graphics.UseSceneShader(d.shader, ctx.View, ctx.Proj)
	d.mesh.Draw()
}

// Dispose releases GL objects and the cylinder generator
func (d *Drone) Dispose() {
	if d.mesh != nil {
		d.mesh.Dispose()
	}
	if d.shader != nil {
		d.shader.Delete()
	}
	d.cylinders.Release()
}

// SetViewport is a no-op; the drone only depends on the projection
func (d *Drone) SetViewport(width, height int) {}
