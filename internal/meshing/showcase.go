package meshing

import "github.com/go-gl/mathgl/mgl32"

// ShowcaseVariant names one cylinder drawing call of the preview tool
type ShowcaseVariant int

const (
	ShowPlain ShowcaseVariant = iota
	ShowSlant
	ShowCapped
	ShowSlantCapped
	ShowcaseVariantCount
)

// Preview dimensions; slant variants taper from base to top
const (
	ShowcaseHeight  = 3.0
	ShowcaseBase    = 1.5
	ShowcaseTop     = 0.5
	ShowcaseSlices  = 32
	ShowcaseStacks  = 4
	ShowcaseSpacing = 4.0
)

var showcaseColors = [ShowcaseVariantCount]mgl32.Vec3{
	{1, 0.2, 0.2},
	{0.2, 0.6, 1},
	{0.2, 0.8, 0.3},
	{0.9, 0.7, 0.1},
}

// ShowcaseOffset returns where a variant stands: a row along X centered on the origin
func ShowcaseOffset(v ShowcaseVariant) mgl32.Vec3 {
	x := (float32(v) - float32(ShowcaseVariantCount-1)/2) * ShowcaseSpacing
	return mgl32.Vec3{x, 0, 0}
}

// BuildShowcase emits the four cylinder variants side by side, upright on y=0
func BuildShowcase(b *Batch, c *Cylinders) {
	for v := ShowPlain; v < ShowcaseVariantCount; v++ {
		o := ShowcaseOffset(v)
		b.PushMatrix()
		b.Translate(o[0], o[1], o[2])
		b.Rotate(-90, mgl32.Vec3{1, 0, 0})
		b.Color3(showcaseColors[v][0], showcaseColors[v][1], showcaseColors[v][2])

		switch v {
		case ShowPlain:
			c.Cylinder(b, ShowcaseHeight, ShowcaseBase, ShowcaseSlices, ShowcaseStacks)
		case ShowSlant:
			c.SlantCylinder(b, ShowcaseHeight, ShowcaseBase, ShowcaseTop, ShowcaseSlices, ShowcaseStacks)
		case ShowCapped:
			c.CylinderWithCaps(b, ShowcaseHeight, ShowcaseBase, ShowcaseSlices, ShowcaseStacks)
		case ShowSlantCapped:
			c.SlantCylinderWithCaps(b, ShowcaseHeight, ShowcaseBase, ShowcaseTop, ShowcaseSlices, ShowcaseStacks)
		}
		b.PopMatrix()
	}
}
