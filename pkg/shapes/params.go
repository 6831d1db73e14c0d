package shapes

import (
	"math"

	"github.com/philipparndt/shapegen/pkg/geometry"
)

// MinExtent is the smallest thickness, height or size component the editing
// layer lets through
const MinExtent = 0.01

// radiusEpsilon is the radius below which a curve collapses to its center
const radiusEpsilon = 1e-6

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// clampExtent raises every size component to at least MinExtent
func clampExtent(size geometry.Vector3) geometry.Vector3 {
	return geometry.Vector3{
		X: math.Max(size.X, MinExtent),
		Y: math.Max(size.Y, MinExtent),
		Z: math.Max(size.Z, MinExtent),
	}
}
