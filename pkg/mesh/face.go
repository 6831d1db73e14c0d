package mesh

import (
	"github.com/philipparndt/shapegen/pkg/geometry"
	"github.com/samber/lo"
)

// UV describes how a face's texture is projected. Rotation is in degrees.
type UV struct {
	Rotation float64          `json:"rotation"`
	Offset   geometry.Vector2 `json:"offset"`
	Scale    geometry.Vector2 `json:"scale"`
}

// DefaultUV returns an unrotated, unscaled projection
func DefaultUV() UV {
	return UV{Scale: geometry.Vector2{X: 1, Y: 1}}
}

// Face is one polygon of a mesh. Indices list the polygon corners in cyclic
// order; the outward normal follows the right-hand rule over that order.
type Face struct {
	Indices        []int `json:"indices"`
	UV             UV    `json:"uv"`
	SmoothingGroup int   `json:"smoothingGroup"`
	TextureGroup   int   `json:"textureGroup"`
}

// NewFace creates a face over the given vertex indices
func NewFace(indices ...int) Face {
	return Face{Indices: indices, UV: DefaultUV()}
}

// Reverse flips the winding of the face in place
func (f *Face) Reverse() {
	lo.Reverse(f.Indices)
}

// IsTriangle reports whether the face has exactly three corners
func (f Face) IsTriangle() bool {
	return len(f.Indices) == 3
}

// IsQuad reports whether the face has exactly four corners
func (f Face) IsQuad() bool {
	return len(f.Indices) == 4
}

// Triangles fans the polygon into triangles that keep its winding
func (f Face) Triangles() [][3]int {
	if len(f.Indices) < 3 {
		return nil
	}
	tris := make([][3]int, 0, len(f.Indices)-2)
	for i := 1; i+1 < len(f.Indices); i++ {
		tris = append(tris, [3]int{f.Indices[0], f.Indices[i], f.Indices[i+1]})
	}
	return tris
}

func (f Face) clone() Face {
	c := f
	c.Indices = append([]int(nil), f.Indices...)
	return c
}

// FaceAttr adjusts a face as it is added to a Builder
type FaceAttr func(*Face)

// WithTextureGroup tags the face with a texture group
func WithTextureGroup(group int) FaceAttr {
	return func(f *Face) { f.TextureGroup = group }
}

// WithSmoothingGroup tags the face with a smoothing group
func WithSmoothingGroup(group int) FaceAttr {
	return func(f *Face) { f.SmoothingGroup = group }
}

// WithUVRotation sets the texture rotation in degrees
func WithUVRotation(degrees float64) FaceAttr {
	return func(f *Face) { f.UV.Rotation = degrees }
}

// Flipped reverses the face winding
func Flipped() FaceAttr {
	return func(f *Face) { f.Reverse() }
}
