// Package mesh holds polygon meshes and the builder that generators use to
// assemble them.
package mesh

import (
	"github.com/philipparndt/shapegen/pkg/geometry"
)

// Mesh is a finished vertex/face set. Faces reference Positions by index and
// vertices are never shared or deduplicated. A Mesh is replaced wholesale on
// every rebuild and should be treated as read-only.
type Mesh struct {
	Positions []geometry.Vector3   `json:"positions"`
	Faces     []Face               `json:"faces"`
	Bounds    geometry.BoundingBox `json:"bounds"`
}

// VertexCount returns the number of vertex positions
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// FaceCount returns the number of polygons
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// TriangleCount returns the number of triangles after fanning every face
func (m *Mesh) TriangleCount() int {
	count := 0
	for _, f := range m.Faces {
		if len(f.Indices) >= 3 {
			count += len(f.Indices) - 2
		}
	}
	return count
}

// IsEmpty returns true if the mesh has no geometry
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// FacePoints returns the corner positions of face i in winding order
func (m *Mesh) FacePoints(i int) []geometry.Vector3 {
	f := m.Faces[i]
	points := make([]geometry.Vector3, len(f.Indices))
	for j, idx := range f.Indices {
		points[j] = m.Positions[idx]
	}
	return points
}

// FaceNormal returns the unit normal of face i. Newell's method is used so
// the result is stable for any planar polygon regardless of which corner is
// listed first.
func (m *Mesh) FaceNormal(i int) geometry.Vector3 {
	return newellNormal(m.FacePoints(i)).Normalize()
}

// FaceArea returns the area of face i
func (m *Mesh) FaceArea(i int) float64 {
	return newellNormal(m.FacePoints(i)).Length() / 2.0
}

// Triangles fans every face into triangles. Each triangle carries the normal
// of the polygon it came from.
func (m *Mesh) Triangles() []geometry.Triangle {
	tris := make([]geometry.Triangle, 0, m.TriangleCount())
	for i, f := range m.Faces {
		normal := m.FaceNormal(i)
		for _, t := range f.Triangles() {
			tri := geometry.TriangleFromPoints(m.Positions[t[0]], m.Positions[t[1]], m.Positions[t[2]])
			tri.Normal = normal
			tris = append(tris, tri)
		}
	}
	return tris
}

// UpdateBounds recomputes the axis-aligned bounding box of m from its current
// positions without touching topology. An empty mesh has a zero box.
func UpdateBounds(m *Mesh) geometry.BoundingBox {
	if m == nil {
		return geometry.BoundingBox{}
	}
	return geometry.BoundsOf(m.Positions)
}

// newellNormal returns the area-weighted (unnormalized) polygon normal
func newellNormal(points []geometry.Vector3) geometry.Vector3 {
	var n geometry.Vector3
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n
}

// Indexed merges exactly coincident positions and returns the shared
// positions together with every face's corners remapped onto them. Positions
// keep the order of their first use.
func (m *Mesh) Indexed() ([]geometry.Vector3, [][]int) {
	index := make(map[geometry.Vector3]int, len(m.Positions))
	remap := make([]int, len(m.Positions))
	var positions []geometry.Vector3

	for i, p := range m.Positions {
		id, ok := index[p]
		if !ok {
			id = len(positions)
			index[p] = id
			positions = append(positions, p)
		}
		remap[i] = id
	}

	faces := make([][]int, len(m.Faces))
	for i, f := range m.Faces {
		faces[i] = make([]int, len(f.Indices))
		for j, idx := range f.Indices {
			faces[i][j] = remap[idx]
		}
	}
	return positions, faces
}
