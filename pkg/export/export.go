// Package export writes meshes in every supported file format.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/shapegen/pkg/mesh"
	"github.com/philipparndt/shapegen/pkg/obj"
	"github.com/philipparndt/shapegen/pkg/openscad"
	"github.com/philipparndt/shapegen/pkg/stl"
	"github.com/philipparndt/shapegen/pkg/threemf"
	"github.com/samber/lo"
)

// Format names an output file format
type Format string

const (
	FormatSTL      Format = "stl"
	FormatSTLASCII Format = "stl-ascii"
	Format3MF      Format = "3mf"
	FormatOBJ      Format = "obj"
	FormatSCAD     Format = "scad"
)

var formats = []Format{FormatSTL, FormatSTLASCII, Format3MF, FormatOBJ, FormatSCAD}

var extensions = map[string]Format{
	".stl":  FormatSTL,
	".3mf":  Format3MF,
	".obj":  FormatOBJ,
	".scad": FormatSCAD,
}

// Formats lists the format names accepted by ParseFormat
func Formats() []string {
	return lo.Map(formats, func(f Format, _ int) string { return string(f) })
}

// ParseFormat converts a format name into a Format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(formats, f) {
		return "", fmt.Errorf("unknown format %q (expected %s)", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// FormatForPath picks the format matching the file extension of path
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("cannot tell the format of %s from its extension", path)
	}
	return f, nil
}

// Extension returns the file extension used for f, including the dot
func (f Format) Extension() string {
	switch f {
	case FormatSTL, FormatSTLASCII:
		return ".stl"
	default:
		return "." + string(f)
	}
}

// Write saves m at path in format f. name becomes the object or solid name
// where the format has one.
func Write(path string, f Format, name string, m *mesh.Mesh) error {
	switch f {
	case FormatSTL:
		return stl.Write(path, m)
	case FormatSTLASCII:
		return writeFile(path, func(file *os.File) error {
			return stl.WriteASCII(file, name, m)
		})
	case Format3MF:
		return threemf.Write(path, name, m)
	case FormatOBJ:
		return obj.Write(path, name, m)
	case FormatSCAD:
		return openscad.Write(path, name, m)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
