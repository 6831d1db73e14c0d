// Package stl reads and writes STL triangle soups and converts them to and
// from polygon meshes.
package stl

import (
	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromMesh fans every polygon of m into triangles
func FromMesh(name string, m *mesh.Mesh) *Model {
	return &Model{Name: name, Triangles: m.Triangles()}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	if len(m.Triangles) == 0 {
		return geometry.BoundingBox{}
	}
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// ToMesh turns the triangle soup into a mesh with one face per triangle.
// Corners are not shared between faces, matching generated meshes.
func (m *Model) ToMesh() *mesh.Mesh {
	b := mesh.NewBuilder()
	for _, t := range m.Triangles {
		b.AddTriangle([3]geometry.Vector3{t.V1, t.V2, t.V3})
	}
	return b.Build(mesh.PivotNone)
}
