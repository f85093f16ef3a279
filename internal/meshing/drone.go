package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rotor shell dimensions
const (
	RotorHeight = 0.5
	RotorRadius = 0.75
	RotorSlices = 100
	RotorStacks = 10
)

// DroneColor is the reddish tint shared by rotors and body
var DroneColor = mgl32.Vec3{1.0, 0.2, 0.2}

// RotorCenters are the rotor bases before translation: left back, right back, left front, right front
var RotorCenters = [4]mgl32.Vec3{
	{1.0, 0, 0},
	{-1.5, 0, 0},
	{1.0, 0, 2.0},
	{-1.5, 0, 2.0},
}

type quadFace struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}

// Body box spans x in [-1.5, 1], y in [0, 0.5], z in [0, 2]; arms stick out at both ends
var bodyFaces = []quadFace{
	// bottom
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{1, 0, 0}, {-1.5, 0, 0}, {-1.5, 0, 2}, {1, 0, 2}}},
	// top
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{1, 0.5, 0}, {-1.5, 0.5, 0}, {-1.5, 0.5, 2}, {1, 0.5, 2}}},
	// back
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{1, 0, 0}, {-1.5, 0, 0}, {-1.5, 0.5, 0}, {1, 0.5, 0}}},
	// front
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{1, 0, 2}, {-1.5, 0, 2}, {-1.5, 0.5, 2}, {1, 0.5, 2}}},
	// left
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, 0, 0}, {1, 0.5, 0}, {1, 0.5, 2}, {1, 0, 2}}},
	// right
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1.5, 0, 0}, {-1.5, 0.5, 0}, {-1.5, 0.5, 2}, {-1.5, 0, 2}}},

	// rotor arm left, back edge
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{0.5, 0, 0}, {0.5, 0.5, 0}, {1.5, 0.5, 0}, {1.5, 0, 0}}},
	// rotor arm left, front edge
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{0.5, 0, 2}, {0.5, 0.5, 2}, {1.5, 0.5, 2}, {1.5, 0, 2}}},
	// rotor arm right, back edge
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-1, 0, 0}, {-1, 0.5, 0}, {-2, 0.5, 0}, {-2, 0, 0}}},
	// rotor arm right, front edge
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, 0, 2}, {-1, 0.5, 2}, {-2, 0.5, 2}, {-2, 0, 2}}},
}

// BodyQuadCount is the number of flat quads making up the body and arms
var BodyQuadCount = len(bodyFaces)

// BuildDrone emits the four rotor shells and the body, all offset by translation
func BuildDrone(b *Batch, c *Cylinders, translation mgl32.Vec3) {
	b.Color3(DroneColor[0], DroneColor[1], DroneColor[2])

	for _, center := range RotorCenters {
		p := center.Add(translation)
		b.PushMatrix()
		b.Translate(p[0], p[1], p[2])
		b.Rotate(-90, mgl32.Vec3{1, 0, 0})
		c.Cylinder(b, RotorHeight, RotorRadius, RotorSlices, RotorStacks)
		b.PopMatrix()
	}

	b.PushMatrix()
	b.Begin(Quads)
	for _, f := range bodyFaces {
		b.Normal3(f.normal[0], f.normal[1], f.normal[2])
		for _, v := range f.corners {
			p := v.Add(translation)
			b.Vertex3(p[0], p[1], p[2])
		}
	}
	b.End()
	b.PopMatrix()
}
