// Package obj writes meshes as Wavefront OBJ text. Polygons are kept as
// they are, and face tags become smoothing groups ("s") and named groups
// ("g").
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/shapegen/pkg/mesh"
)

// Encode writes m as an OBJ object called name
func Encode(w io.Writer, name string, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	positions, faces := m.Indexed()

	fmt.Fprintf(bw, "# %d vertices, %d faces\n", len(positions), len(faces))
	fmt.Fprintf(bw, "o %s\n", name)
	for _, p := range positions {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}

	group, smoothing := -1, -1
	for i, f := range faces {
		attrs := m.Faces[i]
		if attrs.TextureGroup != group {
			group = attrs.TextureGroup
			fmt.Fprintf(bw, "g %s_%d\n", name, group)
		}
		if attrs.SmoothingGroup != smoothing {
			smoothing = attrs.SmoothingGroup
			if smoothing == 0 {
				fmt.Fprintln(bw, "s off")
			} else {
				fmt.Fprintf(bw, "s %d\n", smoothing)
			}
		}

		corners := make([]string, len(f))
		for j, idx := range f {
			corners[j] = strconv.Itoa(idx + 1)
		}
		fmt.Fprintf(bw, "f %s\n", strings.Join(corners, " "))
	}
	return bw.Flush()
}

// Write saves m as an OBJ file at path
func Write(path, name string, m *mesh.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create OBJ %s: %w", path, err)
	}
	if err := Encode(file, name, m); err != nil {
		file.Close()
		return fmt.Errorf("failed to write OBJ %s: %w", path, err)
	}
	return file.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
