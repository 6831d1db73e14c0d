package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/shapegen/internal/config"
	"github.com/philipparndt/shapegen/pkg/mesh"
	"github.com/philipparndt/shapegen/pkg/openscad"
	"github.com/philipparndt/shapegen/pkg/stl"
	"github.com/spf13/cobra"
)

// loadMesh resolves a command argument into a mesh. The argument is a shape
// document, an STL file, an OpenSCAD file or the name of a shape built from
// the command line flags.
func loadMesh(ctx context.Context, cmd *cobra.Command, arg string, flags *shapeFlags) (*mesh.Mesh, string, error) {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yaml", ".yml", ".toml":
		job, err := config.Load(arg)
		if err != nil {
			return nil, "", err
		}
		m, err := job.Build()
		return m, job.Name, err

	case ".stl":
		model, err := stl.Parse(arg)
		if err != nil {
			return nil, "", fmt.Errorf("error parsing STL file: %w", err)
		}
		return model.ToMesh(), model.Name, nil

	case ".scad":
		return renderScad(ctx, arg)
	}

	doc, err := flags.document(cmd, arg)
	if err != nil {
		return nil, "", err
	}
	job, err := doc.Resolve(".")
	if err != nil {
		return nil, "", err
	}
	m, err := job.Build()
	return m, job.Name, err
}

func renderScad(ctx context.Context, path string) (*mesh.Mesh, string, error) {
	dir, err := os.MkdirTemp("", "shapegen-*")
	if err != nil {
		return nil, "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}

	output := filepath.Join(dir, "render.stl")
	if err := openscad.NewRenderer(cwd).RenderToSTL(ctx, path, output); err != nil {
		return nil, "", err
	}
	model, err := stl.Parse(output)
	if err != nil {
		return nil, "", fmt.Errorf("error parsing rendered STL: %w", err)
	}
	return model.ToMesh(), filepath.Base(path), nil
}
