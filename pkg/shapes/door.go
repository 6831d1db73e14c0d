package shapes

import (
	"math"

	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/philipparndt/shapegen/pkg/mesh"
)

// KindDoor is the registry name of the door frame shape
const KindDoor = "door"

// minOpening keeps the gap between the legs from closing completely
const minOpening = 0.01

// DoorParams shapes a door frame: two legs under a lintel.
//
// Size axes: x is the width, y the height, z the depth.
type DoorParams struct {
	// DoorHeight is the height of the lintel above the opening
	DoorHeight float64 `yaml:"doorHeight" toml:"doorHeight" json:"doorHeight"`
	// LegWidth is the width of each side post
	LegWidth float64 `yaml:"legWidth" toml:"legWidth" json:"legWidth"`
	// Perimeter also closes the outer sides, top and leg bottoms
	Perimeter bool `yaml:"perimeter" toml:"perimeter" json:"perimeter"`
}

// DefaultDoorParams returns the standard frame proportions
func DefaultDoorParams() DoorParams {
	return DoorParams{DoorHeight: 0.5, LegWidth: 0.75}
}

func (p DoorParams) Kind() string { return KindDoor }

// Clamp forces DoorHeight and LegWidth to at least 0.01
func (p DoorParams) Clamp() Parameters {
	p.DoorHeight = max(p.DoorHeight, MinExtent)
	p.LegWidth = max(p.LegWidth, MinExtent)
	return p
}

// ClampSize leaves room for two minimal legs around a minimal opening and a
// minimal lintel above one
func (p DoorParams) ClampSize(size geometry.Vector3) geometry.Vector3 {
	size = clampExtent(size)
	size.X = max(size.X, 2*MinExtent+minOpening)
	size.Y = max(size.Y, 2*MinExtent)
	return size
}

// Door is the door frame shape
type Door struct {
	base
	params DoorParams
}

// NewDoor creates a door frame with the given parameters
func NewDoor(p DoorParams) *Door {
	return &Door{params: p}
}

func init() {
	Register(KindDoor, func() Shape { return NewDoor(DefaultDoorParams()) })
}

func (d *Door) Kind() string { return KindDoor }

func (d *Door) Parameters() Parameters { return d.params }

func (d *Door) SetParameters(p Parameters) error {
	dp, ok := p.(DoorParams)
	if !ok {
		return kindMismatch(KindDoor, p)
	}
	d.params = dp
	return nil
}

func (d *Door) RebuildMesh(size geometry.Vector3, pivot mesh.Pivot) {
	d.rebuild(d.params.generate, size, pivot)
}

// Silhouette indices, front view:
//
//	8---9---10--11
//	|           |
//	4   5---6   7
//	|   |   |   |
//	0   1   2   3
func doorTemplate(size geometry.Vector3, p DoorParams) [12]geometry.Vector2 {
	halfW := size.X / 2
	halfH := size.Y / 2

	// Legs and lintel that do not fit the size shrink rather than cross over.
	legWidth := math.Min(p.LegWidth, halfW-minOpening/2)
	doorHeight := math.Min(p.DoorHeight, size.Y-MinExtent)

	inner := halfW - legWidth
	ledge := halfH - doorHeight
	bottom := -halfH

	return [12]geometry.Vector2{
		{X: -halfW, Y: bottom}, {X: -inner, Y: bottom}, {X: inner, Y: bottom}, {X: halfW, Y: bottom},
		{X: -halfW, Y: ledge}, {X: -inner, Y: ledge}, {X: inner, Y: ledge}, {X: halfW, Y: ledge},
		{X: -halfW, Y: halfH}, {X: -inner, Y: halfH}, {X: inner, Y: halfH}, {X: halfW, Y: halfH},
	}
}

// doorPanels lists the five front quads in grid order: left leg, right leg,
// the two header columns and the lintel between them
var doorPanels = [5][4]int{
	{0, 1, 4, 5},
	{6, 2, 7, 3},
	{8, 4, 9, 5},
	{6, 7, 10, 11},
	{5, 6, 9, 10},
}

func (p DoorParams) generate(b *mesh.Builder, size geometry.Vector3) {
	t := doorTemplate(size, p)
	front := size.Z / 2
	back := front - size.Z

	f := func(i int) geometry.Vector3 { return t[i].AtDepth(front) }
	k := func(i int) geometry.Vector3 { return t[i].AtDepth(back) }

	for _, q := range doorPanels {
		b.AddQuad([4]geometry.Vector3{f(q[0]), f(q[1]), f(q[2]), f(q[3])})
	}
	// The back mirrors the front with each row swapped, which flips the normal.
	for _, q := range doorPanels {
		b.AddQuad([4]geometry.Vector3{k(q[1]), k(q[0]), k(q[3]), k(q[2])})
	}

	// Seams around the opening: lintel underside, right leg, left leg.
	b.AddQuad([4]geometry.Vector3{f(6), f(5), k(6), k(5)})
	b.AddQuad([4]geometry.Vector3{k(2), f(2), k(6), f(6)})
	b.AddQuad([4]geometry.Vector3{f(1), k(1), f(5), k(5)})

	if !p.Perimeter {
		return
	}

	// Outer sides, split at the ledge so every edge meets exactly one
	// front or back edge.
	for _, s := range [][2]int{{0, 4}, {4, 8}} {
		b.AddQuad([4]geometry.Vector3{k(s[0]), f(s[0]), k(s[1]), f(s[1])})
	}
	for _, s := range [][2]int{{3, 7}, {7, 11}} {
		b.AddQuad([4]geometry.Vector3{f(s[0]), k(s[0]), f(s[1]), k(s[1])})
	}
	for _, s := range [][2]int{{8, 9}, {9, 10}, {10, 11}} {
		b.AddQuad([4]geometry.Vector3{f(s[0]), f(s[1]), k(s[0]), k(s[1])})
	}
	for _, s := range [][2]int{{0, 1}, {2, 3}} {
		b.AddQuad([4]geometry.Vector3{f(s[1]), f(s[0]), k(s[1]), k(s[0])})
	}
}
