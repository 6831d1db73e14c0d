package mesh

import (
	"testing"

	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() [4]geometry.Vector3 {
	return [4]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(1, 1, 0),
	}
}

func TestAddQuadGridOrder(t *testing.T) {
	b := NewBuilder()
	b.AddQuad(unitSquare())
	m := b.Build(PivotNone)

	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 1, m.FaceCount())
	assert.Equal(t, []int{0, 1, 3, 2}, m.Faces[0].Indices)
	assert.Equal(t, 2, m.TriangleCount())
	assert.True(t, m.FaceNormal(0).ApproxEqual(geometry.NewVector3(0, 0, 1), 1e-12))
	assert.InDelta(t, 1.0, m.FaceArea(0), 1e-12)
}

func TestFlippedQuadHasOppositeNormal(t *testing.T) {
	b := NewBuilder()
	b.AddQuad(unitSquare())
	b.AddQuad(unitSquare(), Flipped())
	m := b.Build(PivotNone)

	front, back := m.FaceNormal(0), m.FaceNormal(1)
	assert.InDelta(t, -1.0, front.Dot(back), 1e-12)
}

func TestFaceAttributes(t *testing.T) {
	b := NewBuilder()
	b.AddTriangle([3]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	}, WithTextureGroup(3), WithSmoothingGroup(2), WithUVRotation(45))
	m := b.Build(PivotNone)

	f := m.Faces[0]
	assert.True(t, f.IsTriangle())
	assert.Equal(t, 3, f.TextureGroup)
	assert.Equal(t, 2, f.SmoothingGroup)
	assert.Equal(t, 45.0, f.UV.Rotation)
	assert.Equal(t, geometry.Vector2{X: 1, Y: 1}, f.UV.Scale)
}

func TestFaceTrianglesFan(t *testing.T) {
	f := NewFace(4, 5, 6, 7, 8)
	assert.Equal(t, [][3]int{{4, 5, 6}, {4, 6, 7}, {4, 7, 8}}, f.Triangles())
	assert.Nil(t, NewFace(1, 2).Triangles())
}

func TestBuildPivot(t *testing.T) {
	tests := []struct {
		name    string
		pivot   Pivot
		wantMin geometry.Vector3
		wantMax geometry.Vector3
	}{
		{"none", PivotNone, geometry.NewVector3(2, 4, 0), geometry.NewVector3(4, 8, 0)},
		{"center", PivotCenter, geometry.NewVector3(-1, -2, 0), geometry.NewVector3(1, 2, 0)},
		{"min", PivotMin, geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 4, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			b.AddQuad([4]geometry.Vector3{
				geometry.NewVector3(2, 4, 0),
				geometry.NewVector3(4, 4, 0),
				geometry.NewVector3(2, 8, 0),
				geometry.NewVector3(4, 8, 0),
			})
			m := b.Build(tt.pivot)
			assert.True(t, m.Bounds.Min.ApproxEqual(tt.wantMin, 1e-12), "min %v", m.Bounds.Min)
			assert.True(t, m.Bounds.Max.ApproxEqual(tt.wantMax, 1e-12), "max %v", m.Bounds.Max)
			assert.Equal(t, m.Bounds, UpdateBounds(m))
		})
	}
}

func TestBuildSnapshotsBuffers(t *testing.T) {
	b := NewBuilder()
	b.AddQuad(unitSquare())
	m := b.Build(PivotNone)

	b.AddQuad(unitSquare())
	b.ReverseWinding()

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, []int{0, 1, 3, 2}, m.Faces[0].Indices)
}

func TestBuilderTransformAndReverse(t *testing.T) {
	b := NewBuilder()
	b.AddQuad(unitSquare())
	b.Transform(func(p geometry.Vector3) geometry.Vector3 {
		return geometry.NewVector3(-p.X, p.Y, p.Z)
	})
	b.ReverseWinding()
	m := b.Build(PivotNone)

	assert.Equal(t, []int{2, 3, 1, 0}, m.Faces[0].Indices)
	assert.True(t, m.FaceNormal(0).ApproxEqual(geometry.NewVector3(0, 0, 1), 1e-12))
	assert.Equal(t, -1.0, m.Bounds.Min.X)
}

func TestUpdateBoundsEmpty(t *testing.T) {
	assert.Equal(t, geometry.BoundingBox{}, UpdateBounds(&Mesh{}))
	assert.Equal(t, geometry.BoundingBox{}, UpdateBounds(nil))
}

func TestSlabQuad(t *testing.T) {
	q := SlabQuad(geometry.NewVector2(1, 0), geometry.NewVector2(0, 1), 0.5)
	assert.Equal(t, geometry.NewVector3(1, 0, 0.5), q[0])
	assert.Equal(t, geometry.NewVector3(0, 1, 0.5), q[1])
	assert.Equal(t, geometry.NewVector3(1, 0, -0.5), q[2])
	assert.Equal(t, geometry.NewVector3(0, 1, -0.5), q[3])
}

func TestValidate(t *testing.T) {
	b := NewBuilder()
	b.AddQuad(unitSquare())
	require.NoError(t, b.Build(PivotNone).Validate())

	bad := &Mesh{
		Positions: []geometry.Vector3{{}, {X: 1}, {X: 2}},
		Faces:     []Face{NewFace(0, 1, 5), NewFace(0, 1), NewFace(0, 1, 2)},
	}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "face 0 references vertex 5")
	assert.Contains(t, err.Error(), "face 1 has 2 indices")
	assert.Contains(t, err.Error(), "face 2 is degenerate")
}

func TestParsePivot(t *testing.T) {
	for _, p := range []Pivot{PivotNone, PivotCenter, PivotMin} {
		got, err := ParsePivot(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePivot("CENTER")
	require.NoError(t, err)
	assert.Equal(t, PivotCenter, got)

	_, err = ParsePivot("corner")
	assert.Error(t, err)
}

func TestTrianglesCarryFaceNormal(t *testing.T) {
	b := NewBuilder()
	// the first fan triangle is degenerate
	b.AddPolygon([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(2, 1, 0),
		geometry.NewVector3(0, 1, 0),
	})
	m := b.Build(PivotNone)

	tris := m.Triangles()
	require.Len(t, tris, 3)
	for _, tri := range tris {
		assert.True(t, tri.Normal.ApproxEqual(geometry.NewVector3(0, 0, 1), 1e-12))
	}
}

func TestIndexedMergesSharedCorners(t *testing.T) {
	b := NewBuilder()
	b.AddQuad(unitSquare())
	b.AddTriangle([3]geometry.Vector3{
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(1, 1, 0),
	})
	m := b.Build(PivotNone)

	positions, faces := m.Indexed()
	assert.Len(t, positions, 5)
	assert.Equal(t, [][]int{{0, 1, 3, 2}, {1, 4, 3}}, faces)
	assert.Equal(t, []int{0, 1, 3, 2}, m.Faces[0].Indices)
}
