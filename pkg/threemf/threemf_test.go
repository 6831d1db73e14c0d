package threemf

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoQuads shares an edge between two separately emitted quads
func twoQuads() *mesh.Mesh {
	b := mesh.NewBuilder()
	b.AddQuad([4]geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
	})
	b.AddQuad([4]geometry.Vector3{
		{X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0}, {X: 2, Y: 1, Z: 0},
	})
	return b.Build(mesh.PivotNone)
}

func TestModelMergesCorners(t *testing.T) {
	model := Model("panel", twoQuads())

	require.Len(t, model.Resources.Objects, 1)
	obj := model.Resources.Objects[0]
	assert.Equal(t, "panel", obj.Name)
	assert.Len(t, obj.Mesh.Vertices.Vertex, 6)
	assert.Len(t, obj.Mesh.Triangles.Triangle, 4)

	require.Len(t, model.Build.Items, 1)
	assert.Equal(t, obj.ID, model.Build.Items[0].ObjectID)
}

func TestModelKeepsWinding(t *testing.T) {
	model := Model("panel", twoQuads())
	obj := model.Resources.Objects[0].Mesh

	for _, tri := range obj.Triangles.Triangle {
		a := obj.Vertices.Vertex[tri.V1]
		b := obj.Vertices.Vertex[tri.V2]
		c := obj.Vertices.Vertex[tri.V3]
		// z component of (b-a) x (c-a)
		z := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
		assert.Positive(t, z)
	}
}

func TestWritePackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.3mf")
	require.NoError(t, Write(path, "panel", twoQuads()))

	archive, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer archive.Close()

	var model string
	for _, f := range archive.File {
		if f.Name != "3D/3dmodel.model" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		model = string(data)
	}
	require.NotEmpty(t, model)
	assert.Equal(t, 4, strings.Count(model, "<triangle "))
	assert.Equal(t, 6, strings.Count(model, "<vertex "))
}
