package shapes

import (
	"fmt"
	"testing"

	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(x, y, z float64) geometry.Vector3 {
	return geometry.Vector3{X: x, Y: y, Z: z}
}

func build(t *testing.T, p Parameters, size geometry.Vector3) *mesh.Mesh {
	t.Helper()
	m, err := Build(p, size, mesh.PivotNone)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

type buildCase struct {
	name   string
	params Parameters
	size   geometry.Vector3
}

func parameterGrid() []buildCase {
	var cases []buildCase
	add := func(p Parameters, size geometry.Vector3) {
		p = p.Clamp()
		size = p.ClampSize(size)
		cases = append(cases, buildCase{name: fmt.Sprintf("%s/%d", p.Kind(), len(cases)), params: p, size: size})
	}

	for _, sides := range []int{3, 6, 200} {
		for _, degrees := range []float64{1, 90, 180, 360} {
			for _, thickness := range []float64{0.01, 0.1, 0.5, 3} {
				for _, caps := range []bool{true, false} {
					add(ArchParams{Thickness: thickness, Sides: sides, Degrees: degrees, EndCaps: caps}, vec(1, 1, 0.2))
				}
			}
		}
	}

	for _, legWidth := range []float64{0.01, 0.75, 10} {
		for _, doorHeight := range []float64{0.01, 0.5, 10} {
			for _, perimeter := range []bool{true, false} {
				add(DoorParams{DoorHeight: doorHeight, LegWidth: legWidth, Perimeter: perimeter}, vec(2, 3, 0.5))
			}
		}
	}

	for _, mode := range []StepGeneration{StepsByCount, StepsByHeight} {
		for _, circumference := range []float64{0, 90, -90, 360, -360} {
			for _, inner := range []float64{0, 0.5} {
				for _, homogeneous := range []bool{true, false} {
					for _, sides := range []bool{true, false} {
						add(StairsParams{
							Mode:          mode,
							StepHeight:    0.3,
							StepCount:     7,
							Homogeneous:   homogeneous,
							Circumference: circumference,
							Sides:         sides,
						}, vec(1, 2, inner))
					}
				}
			}
		}
	}
	return cases
}

func TestRegistryKinds(t *testing.T) {
	assert.Equal(t, []string{KindArch, KindDoor, KindStairs}, Kinds())

	s, err := New("ARCH")
	require.NoError(t, err)
	assert.Equal(t, KindArch, s.Kind())
	assert.Equal(t, DefaultArchParams(), s.Parameters())

	_, err = New("dome")
	assert.ErrorContains(t, err, "unknown shape")
}

func TestRegisterTwicePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("Door", func() Shape { return NewDoor(DefaultDoorParams()) })
	})
}

func TestSetParametersKindMismatch(t *testing.T) {
	s := NewArch(DefaultArchParams())
	assert.Error(t, s.SetParameters(DefaultDoorParams()))
	assert.Error(t, s.SetParameters(nil))
	assert.Equal(t, DefaultArchParams(), s.Parameters())
}

func TestEveryShapeBuildsValidMesh(t *testing.T) {
	for _, tc := range parameterGrid() {
		t.Run(tc.name, func(t *testing.T) {
			m := build(t, tc.params, tc.size)
			assert.NotZero(t, m.FaceCount())
			assert.NoError(t, m.Validate())
			assert.Equal(t, mesh.UpdateBounds(m), m.Bounds)
		})
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	for _, tc := range parameterGrid() {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.params.Kind())
			require.NoError(t, err)
			require.NoError(t, s.SetParameters(tc.params))

			s.RebuildMesh(tc.size, mesh.PivotCenter)
			first := s.Mesh()
			s.RebuildMesh(tc.size, mesh.PivotCenter)
			second := s.Mesh()

			assert.NotSame(t, first, second)
			assert.Equal(t, first.Positions, second.Positions)
			assert.Equal(t, first.Faces, second.Faces)
			assert.Equal(t, first.Bounds, s.BoundingBox())
		})
	}
}

func TestPivotCenterCentersBounds(t *testing.T) {
	m, err := Build(DefaultStairsParams(), vec(2, 3, 4), mesh.PivotCenter)
	require.NoError(t, err)
	assert.True(t, m.Bounds.Center().ApproxEqual(geometry.Vector3{}, 1e-9))
	assert.True(t, m.Bounds.Size().ApproxEqual(vec(4, 3, 2), 1e-9))
}

func TestUpdateBoundsAfterTransform(t *testing.T) {
	s := NewDoor(DefaultDoorParams())
	s.RebuildMesh(vec(2, 3, 0.5), mesh.PivotNone)
	before := s.BoundingBox()

	m := s.Mesh()
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Add(vec(1, 0, 0))
	}
	s.UpdateBounds()

	assert.True(t, s.BoundingBox().ApproxEqual(before.Translate(vec(1, 0, 0)), 1e-12))
	assert.Equal(t, s.BoundingBox(), m.Bounds)
}

func TestUnbuiltShapeHasEmptyBounds(t *testing.T) {
	s := NewStairs(DefaultStairsParams())
	assert.Nil(t, s.Mesh())
	s.UpdateBounds()
	assert.Equal(t, geometry.BoundingBox{}, s.BoundingBox())
}
