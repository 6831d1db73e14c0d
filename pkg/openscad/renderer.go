package openscad

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotInstalled is returned when the openscad binary cannot be found
var ErrNotInstalled = errors.New("openscad not found in PATH; install it from https://openscad.org/")

// Renderer runs the OpenSCAD binary to turn .scad files into meshes
type Renderer struct {
	workDir string
}

// NewRenderer creates a new OpenSCAD renderer resolving relative paths
// against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
	}
}

// Available reports whether the openscad binary is on the PATH
func Available() bool {
	_, err := exec.LookPath("openscad")
	return err == nil
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	absScadFile := scadFile
	if !filepath.IsAbs(scadFile) {
		absScadFile = filepath.Join(r.workDir, scadFile)
	}

	if !Available() {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, "openscad", "-o", outputFile, absScadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		fmt.Fprintf(&errMsg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			errMsg.WriteString("\nstderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("\nstdout: ")
			errMsg.WriteString(stdout.String())
		}
		return errors.New(errMsg.String())
	}

	return nil
}
