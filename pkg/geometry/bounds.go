package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an inverted bounding box that any extended point
// will replace
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// BoundsOf returns the bounding box of the given points, or the zero box if
// there are none
func BoundsOf(points []Vector3) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	bbox := NewBoundingBox()
	for _, p := range points {
		bbox.Extend(p)
	}
	return bbox
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether the box has never been extended
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Translate returns the box moved by offset
func (b BoundingBox) Translate(offset Vector3) BoundingBox {
	return BoundingBox{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// ApproxEqual compares both corners within epsilon
func (b BoundingBox) ApproxEqual(other BoundingBox, epsilon float64) bool {
	return b.Min.ApproxEqual(other.Min, epsilon) && b.Max.ApproxEqual(other.Max, epsilon)
}
