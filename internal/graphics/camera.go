package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the fixed viewing frustum and the current viewport
type Camera struct {
	Left, Right float32
	Bottom, Top float32
	NearPlane   float32
	FarPlane    float32

	Width  int
	Height int
}

// NewCamera creates the stock frustum: a 10x10 window at distance 5, far plane at 50
func NewCamera(width, height int) *Camera {
	c := &Camera{
		Left:      -5,
		Right:     5,
		Bottom:    -5,
		Top:       5,
		NearPlane: 5,
		FarPlane:  50,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport records the framebuffer size; zero sizes are bumped to one
func (c *Camera) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.Width = width
	c.Height = height
}

// GetProjectionMatrix returns the frustum projection. The frustum ignores the aspect ratio,
// so a non-square window stretches the scene.
func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Frustum(c.Left, c.Right, c.Bottom, c.Top, c.NearPlane, c.FarPlane)
}
