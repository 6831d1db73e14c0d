package shapes

import (
	"math"

	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

// curvePoint places a point at angle a (radians) and radius r around the
// stair well, at height h
func curvePoint(a, r, h float64) geometry.Vector3 {
	return geometry.Vector3{X: -math.Cos(a) * r, Y: h, Z: math.Sin(a) * r}
}

// treadRotation returns the texture rotation that follows a tread whose
// wedge is centered at mid radians, in [0, 360) degrees
func treadRotation(mid float64) float64 {
	r := math.Mod(-mid*geometry.Rad2Deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r -= 360
	}
	return r
}

// generateCurved sweeps the flight around the stair well. The steps always
// turn the positive way; a negative circumference mirrors the finished mesh.
func (p StairsParams) generateCurved(b *mesh.Builder, size geometry.Vector3) {
	l := newStepLayout(p, size.Y)

	inner := size.Z
	outer := inner + size.X
	noInner := inner < radiusEpsilon
	sweep := math.Abs(p.Circumference) * geometry.Deg2Rad

	angle := func(k int) float64 {
		if k >= l.count {
			return sweep
		}
		return sweep * (float64(k) / float64(l.count))
	}

	for i := 0; i < l.count; i++ {
		a0, a1 := angle(i), angle(i+1)
		h0, h1 := l.rise(i), l.rise(i+1)

		// riser
		b.AddQuad([4]geometry.Vector3{
			curvePoint(a0, inner, h0), curvePoint(a0, outer, h0),
			curvePoint(a0, inner, h1), curvePoint(a0, outer, h1),
		})

		// tread; without a well the inner edge collapses to the axis
		rotation := mesh.WithUVRotation(treadRotation((a0 + a1) / 2))
		if noInner {
			b.AddTriangle([3]geometry.Vector3{
				curvePoint(a0, inner, h1), curvePoint(a0, outer, h1), curvePoint(a1, outer, h1),
			}, rotation)
		} else {
			b.AddPolygon([]geometry.Vector3{
				curvePoint(a0, inner, h1), curvePoint(a0, outer, h1),
				curvePoint(a1, outer, h1), curvePoint(a1, inner, h1),
			}, rotation)
		}

		if !p.Sides {
			continue
		}
		for side := 0; side < 2; side++ {
			if side == 0 && noInner {
				continue
			}
			r := outer
			if side == 0 {
				r = inner
			}

			attrs := []mesh.FaceAttr{mesh.WithSmoothingGroup(side + 1)}
			if i > 0 {
				attrs = append(attrs, mesh.WithTextureGroup(side*l.count+i))
			}
			wallAttrs := attrs
			if side == 0 {
				wallAttrs = append(wallAttrs[:len(wallAttrs):len(wallAttrs)], mesh.Flipped())
			}
			b.AddQuad([4]geometry.Vector3{
				curvePoint(a0, r, 0), curvePoint(a1, r, 0),
				curvePoint(a0, r, l.sideLow(i)), curvePoint(a1, r, h1),
			}, wallAttrs...)

			if i == 0 {
				continue
			}
			tri := [3]geometry.Vector3{
				curvePoint(a0, r, h0), curvePoint(a1, r, h1), curvePoint(a0, r, h1),
			}
			if side == 0 {
				tri[0], tri[2] = tri[2], tri[0]
			}
			b.AddTriangle(tri, attrs...)
		}
	}

	if p.Sides {
		b.AddQuad([4]geometry.Vector3{
			curvePoint(sweep, inner, 0), curvePoint(sweep, outer, 0),
			curvePoint(sweep, inner, size.Y), curvePoint(sweep, outer, size.Y),
		}, mesh.Flipped())
	}

	b.Transform(swapRunAxis)
	if p.Circumference < 0 {
		b.Transform(func(v geometry.Vector3) geometry.Vector3 {
			v.X = -v.X
			return v
		})
		b.ReverseWinding()
	}
}
