// Package threemf writes meshes as 3MF packages.
package threemf

import (
	"fmt"

	"github.com/hpinc/go3mf"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

// modelPath is the part name of the root model inside the package
const modelPath = "/3D/3dmodel.model"

// Model converts m into a 3MF model with a single object. Coincident
// positions are merged so faces share their corners, and every polygon is
// fanned into triangles.
func Model(name string, m *mesh.Mesh) *go3mf.Model {
	positions, faces := m.Indexed()

	var out go3mf.Mesh
	out.Vertices.Vertex = make([]go3mf.Point3D, len(positions))
	for i, p := range positions {
		out.Vertices.Vertex[i] = go3mf.Point3D{float32(p.X), float32(p.Y), float32(p.Z)}
	}

	for _, f := range faces {
		for k := 1; k+1 < len(f); k++ {
			a, b, c := uint32(f[0]), uint32(f[k]), uint32(f[k+1])
			if a == b || b == c || a == c {
				continue
			}
			out.Triangles.Triangle = append(out.Triangles.Triangle, go3mf.Triangle{V1: a, V2: b, V3: c})
		}
	}

	model := &go3mf.Model{Path: modelPath}
	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID:   1,
		Name: name,
		Mesh: &out,
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})
	return model
}

// Write saves m as a 3MF package at path
func Write(path, name string, m *mesh.Mesh) error {
	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create 3MF %s: %w", path, err)
	}
	if err := w.Encode(Model(name, m)); err != nil {
		w.Close()
		return fmt.Errorf("failed to encode 3MF %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close 3MF %s: %w", path, err)
	}
	return nil
}
