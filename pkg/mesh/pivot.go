package mesh

import (
	"fmt"
	"strings"

	"github.com/philipparndt/shapegen/pkg/geometry"
)

// Pivot selects where the origin of a finished mesh lies. It is applied once,
// after a generator has emitted all of its geometry.
type Pivot int

const (
	// PivotNone keeps the generator's own coordinates
	PivotNone Pivot = iota
	// PivotCenter moves the bounding box center to the origin
	PivotCenter
	// PivotMin moves the bounding box minimum corner to the origin
	PivotMin
)

var pivotNames = map[Pivot]string{
	PivotNone:   "none",
	PivotCenter: "center",
	PivotMin:    "min",
}

func (p Pivot) String() string {
	if name, ok := pivotNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Pivot(%d)", int(p))
}

// ParsePivot converts a pivot name into a Pivot
func ParsePivot(s string) (Pivot, error) {
	for p, name := range pivotNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return PivotNone, fmt.Errorf("unknown pivot %q (expected none, center or min)", s)
}

// Offset returns the translation that moves bounds onto the pivot
func (p Pivot) Offset(bounds geometry.BoundingBox) geometry.Vector3 {
	switch p {
	case PivotCenter:
		return bounds.Center().Mul(-1)
	case PivotMin:
		return bounds.Min.Mul(-1)
	default:
		return geometry.Vector3{}
	}
}
