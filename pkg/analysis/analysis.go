// Package analysis reports statistics and closure checks for polygon meshes.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

// WeldTolerance is the distance under which two vertices count as the same
// point when edges are matched between faces
const WeldTolerance = 1e-6

// EdgeInfo contains information about a polygon edge in the mesh
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	FaceID int
}

// Result contains various measurements of a mesh
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	Volume        float64
	VertexCount   int
	FaceCount     int
	TriangleCount int
	EdgeCount     int
	// TriangleFaces and QuadFaces count faces by corner count; the rest are
	// larger polygons
	TriangleFaces int
	QuadFaces     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo

	// OpenEdges are used by a single face
	OpenEdges []EdgeInfo
	// NonManifoldEdges are shared by more than two faces
	NonManifoldEdges []EdgeInfo
	// InconsistentEdges are shared by two faces that walk them the same way,
	// meaning one of the faces is wound backwards
	InconsistentEdges []EdgeInfo
}

// IsWatertight reports whether every edge is shared by exactly two faces
// that agree on orientation
func (r *Result) IsWatertight() bool {
	return len(r.OpenEdges) == 0 && len(r.NonManifoldEdges) == 0 && len(r.InconsistentEdges) == 0
}

type pointKey [3]int64

func keyOf(v geometry.Vector3) pointKey {
	return pointKey{
		int64(math.Round(v.X / WeldTolerance)),
		int64(math.Round(v.Y / WeldTolerance)),
		int64(math.Round(v.Z / WeldTolerance)),
	}
}

func less(a, b pointKey) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// edgeUse counts how often an undirected edge is walked in each direction
type edgeUse struct {
	first    EdgeInfo
	forward  int
	backward int
}

// AnalyzeMesh performs comprehensive analysis on a mesh
func AnalyzeMesh(m *mesh.Mesh) *Result {
	result := &Result{
		BoundingBox:   mesh.UpdateBounds(m),
		VertexCount:   m.VertexCount(),
		FaceCount:     m.FaceCount(),
		TriangleCount: m.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0),
	}
	result.Dimensions = result.BoundingBox.Size()

	for _, tri := range m.Triangles() {
		result.SurfaceArea += tri.Area()
		result.Volume += tri.V1.Dot(tri.V2.Cross(tri.V3)) / 6.0
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	uses := make(map[[2]pointKey]*edgeUse)
	var order [][2]pointKey

	for i, f := range m.Faces {
		switch {
		case f.IsTriangle():
			result.TriangleFaces++
		case f.IsQuad():
			result.QuadFaces++
		}
		for j, idx := range f.Indices {
			start := m.Positions[idx]
			end := m.Positions[f.Indices[(j+1)%len(f.Indices)]]
			length := start.Distance(end)

			edge := EdgeInfo{Start: start, End: end, Length: length, FaceID: i}
			result.AllEdges = append(result.AllEdges, edge)

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)

			a, b := keyOf(start), keyOf(end)
			if a == b {
				continue
			}
			forward := less(a, b)
			key := [2]pointKey{a, b}
			if !forward {
				key = [2]pointKey{b, a}
			}
			use, ok := uses[key]
			if !ok {
				use = &edgeUse{first: edge}
				uses[key] = use
				order = append(order, key)
			}
			if forward {
				use.forward++
			} else {
				use.backward++
			}
		}
	}

	for _, key := range order {
		use := uses[key]
		switch total := use.forward + use.backward; {
		case total == 1:
			result.OpenEdges = append(result.OpenEdges, use.first)
		case total > 2:
			result.NonManifoldEdges = append(result.NonManifoldEdges, use.first)
		case use.forward != use.backward:
			result.InconsistentEdges = append(result.InconsistentEdges, use.first)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *Result, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *Result, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a > b })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *Result, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a < b })
}

func sortedEdges(result *Result, count int, before func(a, b float64) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return before(edges[i].Length, edges[j].Length)
	})

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
