package meshing

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCylinderVertexCount(t *testing.T) {
	b := NewBatch()
	var c Cylinders
	c.Cylinder(b, 0.5, 0.75, 100, 10)
	// stacks * slices quads, two triangles each
	want := 10 * 100 * 6
	if got := b.VertexCount(); got != want {
		t.Fatalf("got %d vertices, want %d", got, want)
	}
}

func TestCylinderMatchesSlantWithEqualRadii(t *testing.T) {
	a := NewBatch()
	b := NewBatch()
	var c Cylinders
	c.Cylinder(a, 2.0, 1.25, 16, 3)
	c.SlantCylinder(b, 2.0, 1.25, 1.25, 16, 3)

	va, vb := a.Vertices(), b.Vertices()
	if len(va) != len(vb) {
		t.Fatalf("vertex count differs: %d vs %d", len(va), len(vb))
	}
	for i := range va {
		if va[i].Position != vb[i].Position {
			t.Fatalf("vertex %d differs: %v vs %v", i, va[i].Position, vb[i].Position)
		}
	}
}

func TestCylinderRadiusInterpolatesAlongHeight(t *testing.T) {
	b := NewBatch()
	var c Cylinders
	const height, base, top = 4.0, 2.0, 1.0
	c.SlantCylinder(b, height, base, top, 12, 4)

	for _, v := range b.Vertices() {
		p := v.Position
		z := float64(p[2])
		if z < -1e-5 || z > height+1e-5 {
			t.Fatalf("z out of range: %v", p)
		}
		r := math.Hypot(float64(p[0]), float64(p[1]))
		want := base + (top-base)*z/height
		if math.Abs(r-want) > 1e-4 {
			t.Fatalf("radius at z=%v: got %v, want %v", z, r, want)
		}
	}
}

func TestCylinderNormalsPointOutward(t *testing.T) {
	b := NewBatch()
	var c Cylinders
	c.SlantCylinder(b, 1.0, 1.0, 0.5, 8, 2)
	for _, v := range b.Vertices() {
		radial := mgl32.Vec3{v.Position[0], v.Position[1], 0}
		if radial.Dot(v.Normal) <= 0 {
			t.Fatalf("normal %v points inward at %v", v.Normal, v.Position)
		}
		// narrowing towards +Z tilts normals up
		if v.Normal[2] <= 0 {
			t.Fatalf("expected positive z normal for taper, got %v", v.Normal)
		}
		if l := v.Normal.Len(); math.Abs(float64(l)-1) > 1e-4 {
			t.Fatalf("normal not unit length: %v", l)
		}
	}
}

func TestCapsFaceOutward(t *testing.T) {
	const slices, stacks = 10, 3
	side := NewBatch()
	var c Cylinders
	c.SlantCylinder(side, 2.0, 1.0, 0.5, slices, stacks)

	capped := NewBatch()
	c.SlantCylinderWithCaps(capped, 2.0, 1.0, 0.5, slices, stacks)

	// each disk: (loops-1) quad rings plus a center fan
	disk := (stacks-1)*slices*6 + slices*3
	if got, want := capped.VertexCount(), side.VertexCount()+2*disk; got != want {
		t.Fatalf("got %d vertices, want %d", got, want)
	}

	caps := capped.Vertices()[side.VertexCount():]
	top, bottom := caps[:disk], caps[disk:]
	for _, v := range top {
		if !v.Normal.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) || math.Abs(float64(v.Position[2])-2) > 1e-5 {
			t.Fatalf("top cap vertex %v normal %v", v.Position, v.Normal)
		}
		if r := math.Hypot(float64(v.Position[0]), float64(v.Position[1])); r > 0.5+1e-5 {
			t.Fatalf("top cap wider than top radius: %v", r)
		}
	}
	for _, v := range bottom {
		if !v.Normal.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) || math.Abs(float64(v.Position[2])) > 1e-5 {
			t.Fatalf("bottom cap vertex %v normal %v", v.Position, v.Normal)
		}
		if r := math.Hypot(float64(v.Position[0]), float64(v.Position[1])); r > 1.0+1e-5 {
			t.Fatalf("bottom cap wider than base radius: %v", r)
		}
	}
	if capped.Matrix() != mgl32.Ident4() {
		t.Fatalf("caps left the matrix stack modified")
	}
}

func TestCylindersCreatedLazily(t *testing.T) {
	var c Cylinders
	if c.Created() {
		t.Fatalf("generator allocated before first draw")
	}
	c.CylinderWithCaps(NewBatch(), 1, 1, 4, 1)
	if !c.Created() {
		t.Fatalf("generator not allocated after draw")
	}
	c.Release()
	if c.Created() {
		t.Fatalf("generator still held after release")
	}
}

func TestDegenerateCountsEmitNothing(t *testing.T) {
	b := NewBatch()
	var c Cylinders
	c.CylinderWithCaps(b, 1, 1, 0, 4)
	c.Cylinder(b, 1, 1, 4, 0)
	if b.VertexCount() != 0 {
		t.Fatalf("got %d vertices, want 0", b.VertexCount())
	}
}
