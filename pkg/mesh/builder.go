package mesh

import (
	"github.com/philipparndt/shapegen/pkg/geometry"
)

// Builder accumulates vertices and faces while a generator runs. Every Add
// call appends fresh vertices, so faces never share corners. Build freezes the
// result into a Mesh; the builder should be dropped afterwards.
type Builder struct {
	positions []geometry.Vector3
	faces     []Face
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// VertexCount returns the number of vertices added so far
func (b *Builder) VertexCount() int {
	return len(b.positions)
}

// FaceCount returns the number of faces added so far
func (b *Builder) FaceCount() int {
	return len(b.faces)
}

// AddQuad appends a quad given in grid order: points[0] and points[1] form one
// row, points[2] and points[3] the next, with points[2] above points[0]. The
// face's normal is (p1-p0) x (p2-p0).
func (b *Builder) AddQuad(points [4]geometry.Vector3, attrs ...FaceAttr) {
	base := b.addVertices(points[:]...)
	b.addFace(NewFace(base, base+1, base+3, base+2), attrs)
}

// AddTriangle appends a triangle wound p0 -> p1 -> p2
func (b *Builder) AddTriangle(points [3]geometry.Vector3, attrs ...FaceAttr) {
	base := b.addVertices(points[:]...)
	b.addFace(NewFace(base, base+1, base+2), attrs)
}

// AddPolygon appends a convex polygon whose corners are given in cyclic
// winding order
func (b *Builder) AddPolygon(points []geometry.Vector3, attrs ...FaceAttr) {
	base := b.addVertices(points...)
	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = base + i
	}
	b.addFace(NewFace(indices...), attrs)
}

// Transform applies fn to every vertex added so far
func (b *Builder) Transform(fn func(geometry.Vector3) geometry.Vector3) {
	for i, p := range b.positions {
		b.positions[i] = fn(p)
	}
}

// ReverseWinding flips every face added so far
func (b *Builder) ReverseWinding() {
	for i := range b.faces {
		b.faces[i].Reverse()
	}
}

// Build snapshots the accumulated geometry into a Mesh, moves it onto the
// pivot and computes its bounds. The builder's buffers are copied, so later
// Add calls do not leak into the returned mesh.
func (b *Builder) Build(pivot Pivot) *Mesh {
	m := &Mesh{
		Positions: append([]geometry.Vector3(nil), b.positions...),
		Faces:     make([]Face, len(b.faces)),
	}
	for i, f := range b.faces {
		m.Faces[i] = f.clone()
	}

	bounds := UpdateBounds(m)
	if offset := pivot.Offset(bounds); offset != (geometry.Vector3{}) {
		for i := range m.Positions {
			m.Positions[i] = m.Positions[i].Add(offset)
		}
		bounds = bounds.Translate(offset)
	}
	m.Bounds = bounds
	return m
}

func (b *Builder) addVertices(points ...geometry.Vector3) int {
	base := len(b.positions)
	b.positions = append(b.positions, points...)
	return base
}

func (b *Builder) addFace(f Face, attrs []FaceAttr) {
	for _, attr := range attrs {
		attr(&f)
	}
	b.faces = append(b.faces, f)
}
