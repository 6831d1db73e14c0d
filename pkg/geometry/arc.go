package geometry

import (
	"math"

	"github.com/philipparndt/shapegen/internal/assert"
)

// Deg2Rad converts degrees to radians
const Deg2Rad = math.Pi / 180.0

// Rad2Deg converts radians to degrees
const Rad2Deg = 180.0 / math.Pi

// PointOnCircle returns the point at angleDegrees on a circle of the given
// radius around origin. The angle is measured counter-clockwise from +X.
func PointOnCircle(radius, angleDegrees float64, origin Vector2) Vector2 {
	rad := angleDegrees * Deg2Rad
	return Vector2{
		X: radius*math.Cos(rad) + origin.X,
		Y: radius*math.Sin(rad) + origin.Y,
	}
}

// SampleArc returns count evenly angle-spaced points on a circular arc.
//
// Point i lies at angle i*totalDegrees/(count-1), so the first point is on +X
// and the last one closes the arc at totalDegrees. A full 360 degree arc
// therefore returns coincident first and last points.
//
// count must be at least 2; smaller values are a caller bug and are raised
// to 2.
func SampleArc(radius, totalDegrees float64, count int, origin Vector2) []Vector2 {
	if !assert.That(count >= 2, "geometry: SampleArc needs at least 2 samples, got %d", count) {
		count = 2
	}

	step := totalDegrees / float64(count-1)
	points := make([]Vector2, count)
	for i := range points {
		points[i] = PointOnCircle(radius, float64(i)*step, origin)
	}
	return points
}
