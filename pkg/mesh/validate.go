package mesh

import (
	"errors"
	"fmt"
)

// degenerateArea is the face area below which a polygon counts as collapsed
const degenerateArea = 1e-12

// Validate checks the structural invariants every generator must uphold:
// positions are finite, faces have at least three in-range indices and no
// face has collapsed to zero area.
func (m *Mesh) Validate() error {
	var errs []error

	for i, p := range m.Positions {
		if !p.IsFinite() {
			errs = append(errs, fmt.Errorf("vertex %d is not finite: %v", i, p))
		}
	}

	for i, f := range m.Faces {
		if len(f.Indices) < 3 {
			errs = append(errs, fmt.Errorf("face %d has %d indices", i, len(f.Indices)))
			continue
		}
		inRange := true
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(m.Positions) {
				errs = append(errs, fmt.Errorf("face %d references vertex %d of %d", i, idx, len(m.Positions)))
				inRange = false
			}
		}
		if inRange && m.FaceArea(i) < degenerateArea {
			errs = append(errs, fmt.Errorf("face %d is degenerate", i))
		}
	}

	return errors.Join(errs...)
}
