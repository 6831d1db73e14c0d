package stl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

func toVec(v geometry.Vector3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// triangles3 fans the mesh into sdfx triangles, keeping the face winding
func triangles3(m *mesh.Mesh) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for _, f := range m.Faces {
		for _, t := range f.Triangles() {
			tris = append(tris, &sdf.Triangle3{
				toVec(m.Positions[t[0]]),
				toVec(m.Positions[t[1]]),
				toVec(m.Positions[t[2]]),
			})
		}
	}
	return tris
}

// Write saves m as a binary STL file
func Write(path string, m *mesh.Mesh) error {
	if err := render.SaveSTL(path, triangles3(m)); err != nil {
		return fmt.Errorf("failed to write STL %s: %w", path, err)
	}
	return nil
}

// WriteASCII writes m as an ASCII STL solid called name
func WriteASCII(w io.Writer, name string, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles() {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}
