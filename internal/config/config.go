// Package config loads shape documents: YAML or TOML files naming a shape,
// its size, its parameters and where the result should be written.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/shapegen/pkg/export"
	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
	"github.com/philipparndt/shapegen/pkg/shapes"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a shape build. Only the section matching
// Shape is used; the others keep their defaults.
type Document struct {
	Shape  string              `yaml:"shape" toml:"shape"`
	Size   []float64           `yaml:"size,flow" toml:"size"`
	Pivot  string              `yaml:"pivot" toml:"pivot"`
	Output string              `yaml:"output,omitempty" toml:"output,omitempty"`
	Format string              `yaml:"format,omitempty" toml:"format,omitempty"`
	Arch   shapes.ArchParams   `yaml:"arch" toml:"arch"`
	Door   shapes.DoorParams   `yaml:"door" toml:"door"`
	Stairs shapes.StairsParams `yaml:"stairs" toml:"stairs"`
}

// Default returns a document for shape with every section at its defaults
func Default(shape string) Document {
	return Document{
		Shape:  shape,
		Size:   []float64{1, 1, 1},
		Pivot:  mesh.PivotCenter.String(),
		Arch:   shapes.DefaultArchParams(),
		Door:   shapes.DefaultDoorParams(),
		Stairs: shapes.DefaultStairsParams(),
	}
}

// Job is a resolved document, ready to build and write
type Job struct {
	Name   string
	Params shapes.Parameters
	Size   geometry.Vector3
	Pivot  mesh.Pivot
	Output string
	Format export.Format
}

type decodeFunc func(r io.Reader, v any) error

type encodeFunc func(w io.Writer, v any) error

var decoders = map[string]decodeFunc{
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
}

var encoders = map[string]encodeFunc{
	".yaml": encodeYAML,
	".yml":  encodeYAML,
	".toml": encodeTOML,
}

func decodeYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(r io.Reader, v any) error {
	md, err := toml.NewDecoder(r).Decode(v)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func encodeTOML(w io.Writer, v any) error {
	return toml.NewEncoder(w).Encode(v)
}

func codecKey(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Read decodes a document from path, picking YAML or TOML by extension.
// Keys missing from the file keep their defaults.
func Read(path string) (Document, error) {
	decode, ok := decoders[codecKey(path)]
	if !ok {
		return Document{}, fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}

	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	doc := Default("")
	if err := decode(file, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Load reads the document at path and resolves it. Relative output paths
// are taken relative to the document's directory.
func Load(path string) (*Job, error) {
	doc, err := Read(path)
	if err != nil {
		return nil, err
	}
	job, err := doc.Resolve(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return job, nil
}

// Save writes doc to path as YAML or TOML, picked by extension
func Save(path string, doc Document) error {
	encode, ok := encoders[codecKey(path)]
	if !ok {
		return fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if err := encode(file, doc); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// Params returns the parameter section that belongs to the document's shape
func (d Document) Params() (shapes.Parameters, error) {
	switch strings.ToLower(d.Shape) {
	case shapes.KindArch:
		return d.Arch, nil
	case shapes.KindDoor:
		return d.Door, nil
	case shapes.KindStairs:
		return d.Stairs, nil
	case "":
		return nil, errors.New("no shape given")
	default:
		return nil, fmt.Errorf("unknown shape %q (known: %s)", d.Shape, strings.Join(shapes.Kinds(), ", "))
	}
}

// Resolve validates the document and clamps its parameters and size into
// the ranges the generators accept
func (d Document) Resolve(baseDir string) (*Job, error) {
	params, err := d.Params()
	if err != nil {
		return nil, err
	}

	if len(d.Size) != 3 {
		return nil, fmt.Errorf("size needs 3 components, got %d", len(d.Size))
	}
	size := geometry.NewVector3(d.Size[0], d.Size[1], d.Size[2])
	if !size.IsFinite() {
		return nil, fmt.Errorf("size %v is not finite", d.Size)
	}

	pivot := mesh.PivotCenter
	if d.Pivot != "" {
		if pivot, err = mesh.ParsePivot(d.Pivot); err != nil {
			return nil, err
		}
	}

	clamped := params.Clamp()
	if clamped != params {
		slog.Info("parameters clamped", "shape", params.Kind(), "from", params, "to", clamped)
	}
	clampedSize := clamped.ClampSize(size)
	if clampedSize != size {
		slog.Info("size clamped", "shape", params.Kind(), "from", size, "to", clampedSize)
	}

	format, err := d.format()
	if err != nil {
		return nil, err
	}

	output := d.Output
	if output == "" {
		output = params.Kind() + format.Extension()
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(baseDir, output)
	}

	return &Job{
		Name:   params.Kind(),
		Params: clamped,
		Size:   clampedSize,
		Pivot:  pivot,
		Output: output,
		Format: format,
	}, nil
}

func (d Document) format() (export.Format, error) {
	switch {
	case d.Format != "":
		return export.ParseFormat(d.Format)
	case d.Output != "":
		return export.FormatForPath(d.Output)
	default:
		return export.FormatSTL, nil
	}
}

// Build generates the job's mesh
func (j *Job) Build() (*mesh.Mesh, error) {
	m, err := shapes.Build(j.Params, j.Size, j.Pivot)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s mesh is malformed: %w", j.Name, err)
	}
	return m, nil
}

// Run builds the mesh and writes it to the job's output
func (j *Job) Run() (*mesh.Mesh, error) {
	m, err := j.Build()
	if err != nil {
		return nil, err
	}
	if err := export.Write(j.Output, j.Format, j.Name, m); err != nil {
		return nil, err
	}
	return m, nil
}
