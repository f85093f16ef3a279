package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quadric generates surfaces of revolution around +Z into a Batch.
// Only smooth outward normals are produced; no texture coordinates.
type Quadric struct {
	// angle tables keyed by slice count, reused across frames
	sin map[int][]float64
	cos map[int][]float64
}

// NewQuadric creates a quadric generator
func NewQuadric() *Quadric {
	return &Quadric{
		sin: make(map[int][]float64),
		cos: make(map[int][]float64),
	}
}

// angles returns slices+1 sin/cos values, the last repeating the first so rings close exactly
func (q *Quadric) angles(slices int) ([]float64, []float64) {
	if s, ok := q.sin[slices]; ok {
		return s, q.cos[slices]
	}
	s := make([]float64, slices+1)
	c := make([]float64, slices+1)
	for i := 0; i < slices; i++ {
		a := 2 * math.Pi * float64(i) / float64(slices)
		s[i] = math.Sin(a)
		c[i] = math.Cos(a)
	}
	s[slices] = s[0]
	c[slices] = c[0]
	q.sin[slices] = s
	q.cos[slices] = c
	return s, c
}

// Cylinder emits the side of a cone frustum from z=0 (baseRadius) to z=height (topRadius).
// Each of the stacks bands is a quad strip of slices quads.
func (q *Quadric) Cylinder(b *Batch, baseRadius, topRadius, height float64, slices, stacks int) {
	if slices <= 0 || stacks <= 0 {
		return
	}
	sinT, cosT := q.angles(slices)

	deltaRadius := baseRadius - topRadius
	length := math.Sqrt(deltaRadius*deltaRadius + height*height)
	zNormal, xyNormal := 0.0, 1.0
	if length != 0 {
		zNormal = deltaRadius / length
		xyNormal = height / length
	}

	for j := 0; j < stacks; j++ {
		zLow := float64(j) * height / float64(stacks)
		zHigh := float64(j+1) * height / float64(stacks)
		rLow := baseRadius - deltaRadius*float64(j)/float64(stacks)
		rHigh := baseRadius - deltaRadius*float64(j+1)/float64(stacks)

		b.Begin(QuadStrip)
		for i := 0; i <= slices; i++ {
			b.Normal3(float32(sinT[i]*xyNormal), float32(cosT[i]*xyNormal), float32(zNormal))
			b.Vertex3(float32(rLow*sinT[i]), float32(rLow*cosT[i]), float32(zLow))
			b.Vertex3(float32(rHigh*sinT[i]), float32(rHigh*cosT[i]), float32(zHigh))
		}
		b.End()
	}
}

// Disk emits a flat annulus at z=0 facing +Z, split into loops rings.
// With a zero inner radius the center ring is a triangle fan.
func (q *Quadric) Disk(b *Batch, innerRadius, outerRadius float64, slices, loops int) {
	if slices <= 0 || loops <= 0 {
		return
	}
	sinT, cosT := q.angles(slices)
	deltaRadius := outerRadius - innerRadius

	b.Normal3(0, 0, 1)
	for j := 0; j < loops; j++ {
		rOuter := outerRadius - deltaRadius*float64(j)/float64(loops)
		rInner := outerRadius - deltaRadius*float64(j+1)/float64(loops)

		if j == loops-1 && innerRadius == 0 {
			b.Begin(TriangleFan)
			b.Vertex3(0, 0, 0)
			for i := slices; i >= 0; i-- {
				b.Vertex3(float32(rOuter*sinT[i]), float32(rOuter*cosT[i]), 0)
			}
			b.End()
			continue
		}

		b.Begin(QuadStrip)
		for i := 0; i <= slices; i++ {
			b.Vertex3(float32(rOuter*sinT[i]), float32(rOuter*cosT[i]), 0)
			b.Vertex3(float32(rInner*sinT[i]), float32(rInner*cosT[i]), 0)
		}
		b.End()
	}
}

// Cylinders draws the shared quadric shapes, creating the generator on first use
type Cylinders struct {
	quadric *Quadric
}

func (c *Cylinders) ensure() *Quadric {
	if c.quadric == nil {
		c.quadric = NewQuadric()
	}
	return c.quadric
}

// Created reports whether the generator has been allocated yet
func (c *Cylinders) Created() bool {
	return c.quadric != nil
}

// Release drops the generator; the next draw recreates it
func (c *Cylinders) Release() {
	c.quadric = nil
}

// Cylinder draws an open cylinder of constant radius along +Z
func (c *Cylinders) Cylinder(b *Batch, height, radius float64, slices, stacks int) {
	c.SlantCylinder(b, height, radius, radius, slices, stacks)
}

// SlantCylinder draws an open cylinder whose radius goes linearly from radiusBase at z=0
// to radiusTop at z=height
func (c *Cylinders) SlantCylinder(b *Batch, height, radiusBase, radiusTop float64, slices, stacks int) {
	c.ensure().Cylinder(b, radiusBase, radiusTop, height, slices, stacks)
}

// CylinderWithCaps draws a constant radius cylinder closed at both ends
func (c *Cylinders) CylinderWithCaps(b *Batch, height, radius float64, slices, stacks int) {
	c.SlantCylinderWithCaps(b, height, radius, radius, slices, stacks)
}

// SlantCylinderWithCaps draws a slanted cylinder plus an outward facing disk at each end
func (c *Cylinders) SlantCylinderWithCaps(b *Batch, height, radiusBase, radiusTop float64, slices, stacks int) {
	c.SlantCylinder(b, height, radiusBase, radiusTop, slices, stacks)
	q := c.ensure()

	b.PushMatrix()
	b.Translate(0, 0, float32(height))
	q.Disk(b, 0, radiusTop, slices, stacks)
	b.PopMatrix()

	b.PushMatrix()
	b.Rotate(180, mgl32.Vec3{1, 0, 0})
	q.Disk(b, 0, radiusBase, slices, stacks)
	b.PopMatrix()
}
