package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
	"github.com/philipparndt/shapegen/pkg/shapes"
	"github.com/philipparndt/shapegen/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" 3MF ")
	require.NoError(t, err)
	assert.Equal(t, Format3MF, f)

	_, err = ParseFormat("fbx")
	assert.ErrorContains(t, err, "unknown format")
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"a.stl":      FormatSTL,
		"dir/b.OBJ":  FormatOBJ,
		"c.scad":     FormatSCAD,
		"/tmp/d.3mf": Format3MF,
	}
	for path, expected := range tests {
		f, err := FormatForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, f, path)
	}

	_, err := FormatForPath("noext")
	assert.Error(t, err)
}

func TestWriteEveryFormat(t *testing.T) {
	m, err := shapes.Build(shapes.DefaultArchParams(), geometry.Vector3{X: 1, Y: 1, Z: 0.2}, mesh.PivotCenter)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range Formats() {
		f, err := ParseFormat(name)
		require.NoError(t, err)

		path := filepath.Join(dir, name+f.Extension())
		require.NoError(t, Write(path, f, "arch", m), name)

		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	for _, name := range []string{"stl", "stl-ascii"} {
		model, err := stl.Parse(filepath.Join(dir, name+".stl"))
		require.NoError(t, err)
		assert.Equal(t, m.TriangleCount(), model.TriangleCount(), name)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "x"), Format("fbx"), "x", &mesh.Mesh{})
	assert.Error(t, err)
}
