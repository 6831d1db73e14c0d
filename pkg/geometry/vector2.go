package geometry

// Vector2 represents a point on a 2D profile, such as a sampled arch curve
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// AtDepth lifts the point into 3D at the given z
func (v Vector2) AtDepth(z float64) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: z}
}
