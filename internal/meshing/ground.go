package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ground tiling extent and tile size in world units
const (
	GroundHalfExtent = 100.0
	GroundTile       = 5.0
)

// Checker colors, alternating per tile
var (
	GroundColorA = mgl32.Vec3{1.0, 1.0, 1.0}
	GroundColorB = mgl32.Vec3{0.0, 0.5, 0.5}
)

// The floor is placed through an extra look-at transform on top of the view
var groundLookAt = mgl32.LookAt(0, 5, 30, 0, 10, 0, 0, 1, 0)

// GroundRows and GroundColumns are the number of strips and tile columns per strip
var (
	GroundRows    = countSteps(GroundHalfExtent, -GroundHalfExtent)
	GroundColumns = countSteps(GroundHalfExtent, -GroundHalfExtent)
)

func countSteps(from, to float32) int {
	n := 0
	for v := from; v > to; v -= GroundTile {
		n++
	}
	return n
}

// BuildGround emits the checkered floor as one triangle strip per row
func BuildGround(b *Batch) {
	b.PushMatrix()
	b.MultMatrix(groundLookAt)

	b.Normal3(0, 1, 0)
	i := 0
	for z := float32(GroundHalfExtent); z > -GroundHalfExtent; z -= GroundTile {
		b.Begin(TriangleStrip)
		for x := float32(-GroundHalfExtent); x < GroundHalfExtent; x += GroundTile {
			c := GroundColorA
			if i%2 == 1 {
				c = GroundColorB
			}
			b.Color3(c[0], c[1], c[2])
			b.Vertex3(x, 0, z-GroundTile)
			b.Vertex3(x, 0, z)
			i++
		}
		b.End()
		i++
	}

	b.PopMatrix()
}
