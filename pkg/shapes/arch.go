package shapes

import (
	"github.com/philipparndt/shapegen/internal/assert"
	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

// KindArch is the registry name of the arch shape
const KindArch = "arch"

// ArchParams shapes an arch: a ring segment of the given thickness swept
// over Degrees and extruded along z.
//
// Size axes: y is the outer radius, z the depth. x is unused.
type ArchParams struct {
	Thickness float64 `yaml:"thickness" toml:"thickness" json:"thickness"`
	Sides     int     `yaml:"sides" toml:"sides" json:"sides"`
	Degrees   float64 `yaml:"degrees" toml:"degrees" json:"degrees"`
	EndCaps   bool    `yaml:"endCaps" toml:"endCaps" json:"endCaps"`
}

// DefaultArchParams returns a half circle with six sides and end caps
func DefaultArchParams() ArchParams {
	return ArchParams{Thickness: 0.1, Sides: 6, Degrees: 180, EndCaps: true}
}

func (p ArchParams) Kind() string { return KindArch }

// Clamp forces thickness >= 0.01, sides into [3, 200] and degrees into [1, 360]
func (p ArchParams) Clamp() Parameters {
	p.Thickness = max(p.Thickness, MinExtent)
	p.Sides = clampInt(p.Sides, 3, 200)
	p.Degrees = clampFloat(p.Degrees, 1, 360)
	return p
}

func (p ArchParams) ClampSize(size geometry.Vector3) geometry.Vector3 {
	return clampExtent(size)
}

// Arch is the arch shape
type Arch struct {
	base
	params ArchParams
}

// NewArch creates an arch with the given parameters
func NewArch(p ArchParams) *Arch {
	return &Arch{params: p}
}

func init() {
	Register(KindArch, func() Shape { return NewArch(DefaultArchParams()) })
}

func (a *Arch) Kind() string { return KindArch }

func (a *Arch) Parameters() Parameters { return a.params }

func (a *Arch) SetParameters(p Parameters) error {
	ap, ok := p.(ArchParams)
	if !ok {
		return kindMismatch(KindArch, p)
	}
	a.params = ap
	return nil
}

func (a *Arch) RebuildMesh(size geometry.Vector3, pivot mesh.Pivot) {
	a.rebuild(a.params.generate, size, pivot)
}

// generate sweeps an outer and an inner curve and joins them with quads.
// When the thickness reaches the radius the inner curve collapses to the
// center: inner faces disappear and the front and back become triangle fans.
func (p ArchParams) generate(b *mesh.Builder, size geometry.Vector3) {
	sides := p.Sides
	if !assert.That(sides >= 3, "arch: %d sides", sides) {
		sides = 3
	}
	degrees := p.Degrees
	if !assert.That(degrees >= 1 && degrees <= 360, "arch: %v degrees", degrees) {
		degrees = clampFloat(degrees, 1, 360)
	}

	radius := size.Y
	depth := size.Z / 2
	innerRadius := max(radius-p.Thickness, 0)
	solid := innerRadius < radiusEpsilon
	if solid {
		innerRadius = 0
	}

	origin := geometry.NewVector2(0, -radius/2)
	outer := geometry.SampleArc(radius, degrees, sides, origin)
	inner := geometry.SampleArc(innerRadius, degrees, sides, origin)

	// A full circle closes on itself, so there is no open end to cap.
	caps := degrees < 360 && p.EndCaps
	last := sides - 1

	for n := 0; n < last; n++ {
		b.AddQuad(mesh.SlabQuad(outer[n], outer[n+1], -depth))
		if !solid {
			b.AddQuad(mesh.SlabQuad(inner[n+1], inner[n], -depth))
		}

		if caps && n == 0 {
			b.AddQuad(mesh.SlabQuad(outer[0], inner[0], depth))
		}
		if caps && n == last-1 {
			b.AddQuad(mesh.SlabQuad(inner[last], outer[last], depth))
		}
	}

	for i := 0; i < last; i++ {
		if solid {
			b.AddTriangle([3]geometry.Vector3{
				outer[i].AtDepth(depth), outer[i+1].AtDepth(depth), origin.AtDepth(depth),
			})
			b.AddTriangle([3]geometry.Vector3{
				outer[i+1].AtDepth(-depth), outer[i].AtDepth(-depth), origin.AtDepth(-depth),
			})
			continue
		}
		b.AddQuad(mesh.PlanarQuad(outer[i], outer[i+1], inner[i], inner[i+1], depth))
		b.AddQuad(mesh.PlanarQuad(outer[i+1], outer[i], inner[i+1], inner[i], -depth))
	}
}
