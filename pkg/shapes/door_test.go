package shapes

import (
	"testing"

	"github.com/philipparndt/shapegen/pkg/analysis"
	"github.com/stretchr/testify/assert"
)

func TestDoorFaceCount(t *testing.T) {
	m := build(t, DefaultDoorParams(), vec(2, 3, 0.5))

	// 5 front, 5 back, 3 seams around the opening
	assert.Equal(t, 13, m.FaceCount())
	assert.True(t, m.Bounds.Min.ApproxEqual(vec(-1, -1.5, -0.25), 1e-12))
	assert.True(t, m.Bounds.Max.ApproxEqual(vec(1, 1.5, 0.25), 1e-12))
}

func TestDoorFrontAndBackFaceOpposite(t *testing.T) {
	m := build(t, DefaultDoorParams(), vec(2, 3, 0.5))

	for i := 0; i < 5; i++ {
		front := m.FaceNormal(i)
		back := m.FaceNormal(i + 5)
		assert.InDelta(t, 1.0, front.Z, 1e-9, "face %d", i)
		assert.InDelta(t, -1.0, back.Z, 1e-9, "face %d", i+5)
	}
}

func TestDoorOpeningIsOpenWithoutPerimeter(t *testing.T) {
	result := analysis.AnalyzeMesh(build(t, DefaultDoorParams(), vec(2, 3, 0.5)))

	assert.NotEmpty(t, result.OpenEdges)
	assert.Empty(t, result.InconsistentEdges)
	assert.Empty(t, result.NonManifoldEdges)
}

func TestDoorWithPerimeterIsWatertight(t *testing.T) {
	p := DefaultDoorParams()
	p.Perimeter = true
	m := build(t, p, vec(2, 3, 0.5))
	assert.Equal(t, 22, m.FaceCount())

	result := analysis.AnalyzeMesh(m)
	assert.True(t, result.IsWatertight())

	// frame area minus the 0.5 x 2.5 opening, times the depth
	assert.InDelta(t, 0.5*(2*3-0.5*2.5), result.Volume, 1e-9)
}

func TestDoorShrinksOversizedLegs(t *testing.T) {
	p := DoorParams{DoorHeight: 10, LegWidth: 10, Perimeter: true}
	m := build(t, p, vec(2, 3, 0.5))

	assert.NoError(t, m.Validate())
	assert.True(t, analysis.AnalyzeMesh(m).IsWatertight())
	assert.True(t, m.Bounds.Size().ApproxEqual(vec(2, 3, 0.5), 1e-12))
}

func TestDoorClamp(t *testing.T) {
	p := DoorParams{DoorHeight: -1, LegWidth: 0}.Clamp().(DoorParams)
	assert.Equal(t, MinExtent, p.DoorHeight)
	assert.Equal(t, MinExtent, p.LegWidth)

	size := p.ClampSize(vec(0, 0, 0))
	assert.GreaterOrEqual(t, size.X, 2*MinExtent+minOpening)
	assert.GreaterOrEqual(t, size.Y, 2*MinExtent)
	assert.Equal(t, MinExtent, size.Z)
}
