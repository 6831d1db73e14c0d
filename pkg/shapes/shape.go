// Package shapes implements the parametric primitives. Every shape turns a
// bounding-box size plus its own parameter record into a complete mesh; a
// rebuild is a pure function of those inputs and always starts from scratch.
package shapes

import (
	"fmt"

	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

// Parameters is the per-shape parameter record. Ranges are enforced by the
// editing layer through Clamp before a rebuild; generators assume they hold.
type Parameters interface {
	// Kind names the shape the parameters belong to
	Kind() string
	// Clamp returns a copy with every field forced into its valid range
	Clamp() Parameters
	// ClampSize forces the size into the range the shape can build from.
	// Axis meaning is shape specific.
	ClampSize(size geometry.Vector3) geometry.Vector3
}

// Shape is the capability contract the editing layer drives. An instance owns
// its mesh and bounding box and replaces both on every RebuildMesh.
type Shape interface {
	Kind() string
	Parameters() Parameters
	// SetParameters replaces the parameter record; it fails if p belongs to
	// another shape kind
	SetParameters(p Parameters) error
	// RebuildMesh regenerates the whole mesh for size and moves it onto pivot
	RebuildMesh(size geometry.Vector3, pivot mesh.Pivot)
	// UpdateBounds refreshes the cached box from the current mesh only
	UpdateBounds()
	BoundingBox() geometry.BoundingBox
	Mesh() *mesh.Mesh
}

// generator emits raw geometry for one rebuild
type generator func(b *mesh.Builder, size geometry.Vector3)

// base carries the state every shape shares: the owned mesh and its cached
// bounding box.
type base struct {
	mesh   *mesh.Mesh
	bounds geometry.BoundingBox
}

// rebuild runs gen into a fresh builder and only then swaps the result in,
// so a generator that panics leaves the previous mesh untouched.
func (s *base) rebuild(gen generator, size geometry.Vector3, pivot mesh.Pivot) {
	b := mesh.NewBuilder()
	gen(b, size)
	m := b.Build(pivot)
	s.mesh = m
	s.bounds = m.Bounds
}

// Mesh returns the mesh built by the last RebuildMesh, or nil
func (s *base) Mesh() *mesh.Mesh {
	return s.mesh
}

// BoundingBox returns the cached box
func (s *base) BoundingBox() geometry.BoundingBox {
	return s.bounds
}

// UpdateBounds recomputes the cached box without regenerating geometry
func (s *base) UpdateBounds() {
	s.bounds = mesh.UpdateBounds(s.mesh)
	if s.mesh != nil {
		s.mesh.Bounds = s.bounds
	}
}

func kindMismatch(want string, p Parameters) error {
	if p == nil {
		return fmt.Errorf("shapes: nil parameters for %s", want)
	}
	return fmt.Errorf("shapes: %s parameters given to %s shape", p.Kind(), want)
}

// Build is a convenience for one-shot generation: it creates a shape of the
// parameters' kind, rebuilds it and returns the mesh.
func Build(p Parameters, size geometry.Vector3, pivot mesh.Pivot) (*mesh.Mesh, error) {
	if p == nil {
		return nil, fmt.Errorf("shapes: nil parameters")
	}
	s, err := New(p.Kind())
	if err != nil {
		return nil, err
	}
	if err := s.SetParameters(p); err != nil {
		return nil, err
	}
	s.RebuildMesh(size, pivot)
	return s.Mesh(), nil
}
