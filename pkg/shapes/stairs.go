package shapes

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/shapegen/internal/assert"
	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

// KindStairs is the registry name of the stairs shape
const KindStairs = "stairs"

// residualEpsilon is the leftover height below which no extra step is added
const residualEpsilon = 0.001

// StepGeneration selects how the number of steps is derived
type StepGeneration int

const (
	// StepsByCount uses StepCount and divides the height evenly
	StepsByCount StepGeneration = iota
	// StepsByHeight derives the count from StepHeight
	StepsByHeight
)

func (g StepGeneration) String() string {
	switch g {
	case StepsByHeight:
		return "height"
	default:
		return "count"
	}
}

// MarshalText implements encoding.TextMarshaler
func (g StepGeneration) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (g *StepGeneration) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "count":
		*g = StepsByCount
	case "height":
		*g = StepsByHeight
	default:
		return fmt.Errorf("unknown step generation mode %q (use count or height)", text)
	}
	return nil
}

// StairsParams shapes a flight of stairs. A non-zero Circumference turns the
// flight into a curve swept over that many degrees; the sign picks the turn
// direction.
//
// Size axes, straight: x is the width, y the height, z the run.
// Size axes, curved: x is the width, y the height, z the inner radius.
type StairsParams struct {
	Mode          StepGeneration `yaml:"mode" toml:"mode" json:"mode"`
	StepHeight    float64        `yaml:"stepHeight" toml:"stepHeight" json:"stepHeight"`
	StepCount     int            `yaml:"stepCount" toml:"stepCount" json:"stepCount"`
	Homogeneous   bool           `yaml:"homogeneous" toml:"homogeneous" json:"homogeneous"`
	Circumference float64        `yaml:"circumference" toml:"circumference" json:"circumference"`
	Sides         bool           `yaml:"sides" toml:"sides" json:"sides"`
}

// DefaultStairsParams returns ten even straight steps with side walls
func DefaultStairsParams() StairsParams {
	return StairsParams{
		Mode:        StepsByCount,
		StepHeight:  0.2,
		StepCount:   10,
		Homogeneous: true,
		Sides:       true,
	}
}

func (p StairsParams) Kind() string { return KindStairs }

// Curved reports whether the parameters describe a curved flight
func (p StairsParams) Curved() bool {
	return p.Circumference != 0
}

// Clamp forces stepHeight >= 0.01, stepCount >= 1 and circumference into
// [-360, 360]
func (p StairsParams) Clamp() Parameters {
	p.StepHeight = max(p.StepHeight, MinExtent)
	p.StepCount = max(p.StepCount, 1)
	p.Circumference = clampFloat(p.Circumference, -360, 360)
	return p
}

// ClampSize lets the inner radius of a curved flight reach zero
func (p StairsParams) ClampSize(size geometry.Vector3) geometry.Vector3 {
	z := size.Z
	size = clampExtent(size)
	if p.Curved() {
		size.Z = max(z, 0)
	}
	return size
}

// Stairs is the stairs shape, straight or curved
type Stairs struct {
	base
	params StairsParams
}

// NewStairs creates stairs with the given parameters
func NewStairs(p StairsParams) *Stairs {
	return &Stairs{params: p}
}

func init() {
	Register(KindStairs, func() Shape { return NewStairs(DefaultStairsParams()) })
}

func (s *Stairs) Kind() string { return KindStairs }

func (s *Stairs) Parameters() Parameters { return s.params }

func (s *Stairs) SetParameters(p Parameters) error {
	sp, ok := p.(StairsParams)
	if !ok {
		return kindMismatch(KindStairs, p)
	}
	s.params = sp
	return nil
}

func (s *Stairs) RebuildMesh(size geometry.Vector3, pivot mesh.Pivot) {
	if s.params.Curved() {
		s.rebuild(s.params.generateCurved, size, pivot)
		return
	}
	s.rebuild(s.params.generateStraight, size, pivot)
}

// stepLayout holds the step boundaries of one flight. Boundary k of n is the
// bottom of step k; boundary n is snapped to the full extent.
type stepLayout struct {
	count      int
	height     float64
	stepHeight float64
	byHeight   bool
}

// newStepLayout derives the number of steps for a flight of the given height
func newStepLayout(p StairsParams, height float64) stepLayout {
	l := stepLayout{height: height}

	if p.Mode != StepsByHeight {
		l.count = p.StepCount
		if !assert.That(l.count >= 1, "stairs: %d steps", l.count) {
			l.count = 1
		}
		return l
	}

	stepHeight := p.StepHeight
	if !assert.That(stepHeight > 0, "stairs: step height %v", stepHeight) {
		stepHeight = MinExtent
	}
	// exact multiples can land just below the whole number
	ratio := height / stepHeight
	count := int(math.Floor(ratio + residualEpsilon))
	if p.Homogeneous {
		count = max(count, 1)
		stepHeight = height / float64(count)
	} else if ratio-float64(count) > residualEpsilon {
		// the remainder becomes a shorter last step
		count++
	}

	l.count = max(count, 1)
	l.stepHeight = stepHeight
	l.byHeight = true
	return l
}

// rise returns the height of boundary k
func (l stepLayout) rise(k int) float64 {
	if k >= l.count {
		return l.height
	}
	if l.byHeight {
		return float64(k) * l.stepHeight
	}
	return l.height * (float64(k) / float64(l.count))
}

// fraction returns boundary k as a share of the run
func (l stepLayout) fraction(k int) float64 {
	if k >= l.count {
		return 1
	}
	return float64(k) / float64(l.count)
}

// sideLow is the height where the side wall of step i meets its riser. The
// first step has no connecting triangle, so its wall rises straight to the
// tread.
func (l stepLayout) sideLow(i int) float64 {
	if i == 0 {
		return l.rise(1)
	}
	return l.rise(i)
}

// generateStraight builds the flight along +z in [0, size] space, then
// centers it and turns the run onto the forward axis.
func (p StairsParams) generateStraight(b *mesh.Builder, size geometry.Vector3) {
	l := newStepLayout(p, size.Y)
	x0, x1 := size.X, 0.0

	for i := 0; i < l.count; i++ {
		y0, y1 := l.rise(i), l.rise(i+1)
		z0, z1 := size.Z*l.fraction(i), size.Z*l.fraction(i+1)

		// riser
		b.AddQuad([4]geometry.Vector3{
			{X: x0, Y: y0, Z: z0}, {X: x1, Y: y0, Z: z0},
			{X: x0, Y: y1, Z: z0}, {X: x1, Y: y1, Z: z0},
		})
		// tread
		b.AddQuad([4]geometry.Vector3{
			{X: x0, Y: y1, Z: z0}, {X: x1, Y: y1, Z: z0},
			{X: x0, Y: y1, Z: z1}, {X: x1, Y: y1, Z: z1},
		})

		if !p.Sides {
			continue
		}
		for side := 0; side < 2; side++ {
			x := x1
			if side == 1 {
				x = x0
			}
			attrs := []mesh.FaceAttr{mesh.WithTextureGroup(side + 1)}
			if side == 1 {
				attrs = append(attrs, mesh.Flipped())
			}
			b.AddQuad([4]geometry.Vector3{
				{X: x, Y: 0, Z: z0}, {X: x, Y: 0, Z: z1},
				{X: x, Y: l.sideLow(i), Z: z0}, {X: x, Y: y1, Z: z1},
			}, attrs...)

			if i == 0 {
				continue
			}
			a := geometry.Vector3{X: x, Y: y0, Z: z0}
			c := geometry.Vector3{X: x, Y: y1, Z: z0}
			d := geometry.Vector3{X: x, Y: y1, Z: z1}
			if side == 0 {
				a, d = d, a
			}
			b.AddTriangle([3]geometry.Vector3{a, c, d}, mesh.WithTextureGroup(side+1))
		}
	}

	if p.Sides {
		b.AddQuad([4]geometry.Vector3{
			{X: 0, Y: 0, Z: size.Z}, {X: size.X, Y: 0, Z: size.Z},
			{X: 0, Y: size.Y, Z: size.Z}, {X: size.X, Y: size.Y, Z: size.Z},
		})
	}

	half := size.Mul(0.5)
	b.Transform(func(v geometry.Vector3) geometry.Vector3 {
		return swapRunAxis(v.Sub(half))
	})
}

// swapRunAxis turns a run along +z onto -x. It is a rotation, so windings
// keep their orientation.
func swapRunAxis(v geometry.Vector3) geometry.Vector3 {
	return geometry.Vector3{X: -v.Z, Y: v.Y, Z: v.X}
}
