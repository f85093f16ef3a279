package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz + color.rgb)
const VertexStride = 9

// Primitive selects how vertices between Begin and End are assembled
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Quads
	QuadStrip
)

// Vertex is one emitted, already transformed vertex
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// Batch collects geometry the way fixed-function GL calls would, and hands it out as a
// triangle list ready for a dynamic vertex buffer.
//
// Triangles are ordered so that their last vertex is the provoking vertex GL would have used
// for the source primitive, so flat shading with the last-vertex convention looks the same.
type Batch struct {
	triangles []Vertex

	inPrimitive bool
	mode        Primitive
	pending     []Vertex

	color  mgl32.Vec3
	normal mgl32.Vec3

	stack []mgl32.Mat4
}

// NewBatch creates an empty batch with an identity transform and white color
func NewBatch() *Batch {
	b := &Batch{}
	b.Reset()
	return b
}

// Reset drops all geometry and restores the default attribute and matrix state
func (b *Batch) Reset() {
	b.triangles = b.triangles[:0]
	b.pending = b.pending[:0]
	b.inPrimitive = false
	b.color = mgl32.Vec3{1, 1, 1}
	b.normal = mgl32.Vec3{0, 0, 1}
	b.stack = append(b.stack[:0], mgl32.Ident4())
}

// Color3 sets the color for subsequent vertices
func (b *Batch) Color3(r, g, bl float32) {
	b.color = mgl32.Vec3{r, g, bl}
}

// Normal3 sets the normal for subsequent vertices
func (b *Batch) Normal3(x, y, z float32) {
	b.normal = mgl32.Vec3{x, y, z}
}

// Begin starts a primitive. A Begin without End discards the previous primitive.
func (b *Batch) Begin(mode Primitive) {
	b.mode = mode
	b.pending = b.pending[:0]
	b.inPrimitive = true
}

// Vertex3 emits a vertex with the current color and normal, transformed by the top matrix.
// Vertices outside Begin/End are ignored.
func (b *Batch) Vertex3(x, y, z float32) {
	if !b.inPrimitive {
		return
	}
	m := b.top()
	p := m.Mul4x1(mgl32.Vec4{x, y, z, 1})
	n := normalMatrix(m).Mul3x1(b.normal)
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	b.pending = append(b.pending, Vertex{Position: p.Vec3(), Normal: n, Color: b.color})
}

// End assembles the pending vertices into triangles. Incomplete trailing vertices are dropped.
func (b *Batch) End() {
	if !b.inPrimitive {
		return
	}
	v := b.pending
	switch b.mode {
	case Triangles:
		for i := 0; i+2 < len(v); i += 3 {
			b.emit(v[i], v[i+1], v[i+2])
		}
	case TriangleStrip:
		for i := 0; i+2 < len(v); i++ {
			if i%2 == 0 {
				b.emit(v[i], v[i+1], v[i+2])
			} else {
				b.emit(v[i+1], v[i], v[i+2])
			}
		}
	case TriangleFan:
		for i := 1; i+1 < len(v); i++ {
			b.emit(v[0], v[i], v[i+1])
		}
	case Quads:
		for i := 0; i+3 < len(v); i += 4 {
			b.emit(v[i], v[i+1], v[i+3])
			b.emit(v[i+1], v[i+2], v[i+3])
		}
	case QuadStrip:
		for i := 0; i+3 < len(v); i += 2 {
			b.emit(v[i], v[i+1], v[i+3])
			b.emit(v[i+2], v[i], v[i+3])
		}
	}
	b.pending = b.pending[:0]
	b.inPrimitive = false
}

func (b *Batch) emit(a, c, d Vertex) {
	b.triangles = append(b.triangles, a, c, d)
}

// PushMatrix duplicates the top matrix
func (b *Batch) PushMatrix() {
	b.stack = append(b.stack, b.top())
}

// PopMatrix restores the previous matrix. Popping the last matrix is a no-op.
func (b *Batch) PopMatrix() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// LoadIdentity replaces the top matrix with identity
func (b *Batch) LoadIdentity() {
	b.stack[len(b.stack)-1] = mgl32.Ident4()
}

// MultMatrix post-multiplies the top matrix by m
func (b *Batch) MultMatrix(m mgl32.Mat4) {
	b.stack[len(b.stack)-1] = b.top().Mul4(m)
}

// Translate post-multiplies the top matrix by a translation
func (b *Batch) Translate(x, y, z float32) {
	b.MultMatrix(mgl32.Translate3D(x, y, z))
}

// Rotate post-multiplies the top matrix by a rotation of deg degrees around axis
func (b *Batch) Rotate(deg float32, axis mgl32.Vec3) {
	if axis.Len() == 0 {
		return
	}
	b.MultMatrix(mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()))
}

// Matrix returns the current top matrix
func (b *Batch) Matrix() mgl32.Mat4 {
	return b.top()
}

// Vertices returns the assembled triangle list
func (b *Batch) Vertices() []Vertex {
	return b.triangles
}

// VertexCount returns the number of assembled vertices
func (b *Batch) VertexCount() int {
	return len(b.triangles)
}

// AppendFloats appends the interleaved pos/normal/color data to dst
func (b *Batch) AppendFloats(dst []float32) []float32 {
	for _, v := range b.triangles {
		dst = append(dst,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.Color[0], v.Color[1], v.Color[2],
		)
	}
	return dst
}

func (b *Batch) top() mgl32.Mat4 {
	return b.stack[len(b.stack)-1]
}

// normalMatrix is the inverse transpose of the upper 3x3
func normalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	m3 := m.Mat3()
	if m3.Det() == 0 {
		return m3
	}
	return m3.Inv().Transpose()
}
