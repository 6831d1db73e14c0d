package mesh

import "github.com/philipparndt/shapegen/pkg/geometry"

// SlabQuad extrudes the segment a-b into a quad spanning z = +depth and
// z = -depth. The points come back in grid order: (a,+d) (b,+d) (a,-d) (b,-d).
// Passing a negative depth swaps the rows and therefore flips the normal.
func SlabQuad(a, b geometry.Vector2, depth float64) [4]geometry.Vector3 {
	return [4]geometry.Vector3{
		a.AtDepth(depth),
		b.AtDepth(depth),
		a.AtDepth(-depth),
		b.AtDepth(-depth),
	}
}

// PlanarQuad lays out four profile points at a single depth, in grid order
func PlanarQuad(p0, p1, p2, p3 geometry.Vector2, z float64) [4]geometry.Vector3 {
	return [4]geometry.Vector3{p0.AtDepth(z), p1.AtDepth(z), p2.AtDepth(z), p3.AtDepth(z)}
}
