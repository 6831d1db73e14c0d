// Package openscad exports meshes as OpenSCAD polyhedra and drives the
// openscad binary to render .scad files.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/shapegen/pkg/mesh"
)

// Encode writes m as a single polyhedron() statement. OpenSCAD expects faces
// listed clockwise when seen from outside, so every face is written in
// reverse.
func Encode(w io.Writer, name string, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	positions, faces := m.Indexed()

	fmt.Fprintf(bw, "// %s\n", name)
	fmt.Fprintln(bw, "polyhedron(")
	fmt.Fprintln(bw, "  points = [")
	for i, p := range positions {
		fmt.Fprintf(bw, "    [%s, %s, %s]%s\n", num(p.X), num(p.Y), num(p.Z), separator(i, len(positions)))
	}
	fmt.Fprintln(bw, "  ],")
	fmt.Fprintln(bw, "  faces = [")
	for i, f := range faces {
		corners := make([]string, len(f))
		for j, idx := range f {
			corners[len(f)-1-j] = strconv.Itoa(idx)
		}
		fmt.Fprintf(bw, "    [%s]%s\n", strings.Join(corners, ", "), separator(i, len(faces)))
	}
	fmt.Fprintln(bw, "  ],")
	fmt.Fprintln(bw, "  convexity = 10")
	fmt.Fprintln(bw, ");")
	return bw.Flush()
}

// Write saves m as a .scad file at path
func Write(path, name string, m *mesh.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(file, name, m); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func separator(i, n int) string {
	if i == n-1 {
		return ""
	}
	return ","
}
