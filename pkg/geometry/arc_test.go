package geometry

import (
	"math"
	"testing"
)

func TestPointOnCircle(t *testing.T) {
	p := PointOnCircle(2, 90, NewVector2(1, 1))
	if math.Abs(p.X-1) > 1e-12 || math.Abs(p.Y-3) > 1e-12 {
		t.Errorf("PointOnCircle failed: expected (1, 3), got %v", p)
	}
}

func TestSampleArcEndpoints(t *testing.T) {
	points := SampleArc(1, 180, 6, Vector2{})

	if len(points) != 6 {
		t.Fatalf("SampleArc failed: expected 6 points, got %d", len(points))
	}
	if points[0] != NewVector2(1, 0) {
		t.Errorf("first point: expected (1, 0), got %v", points[0])
	}
	last := points[len(points)-1]
	if math.Abs(last.X+1) > 1e-12 || math.Abs(last.Y) > 1e-12 {
		t.Errorf("last point: expected (-1, 0), got %v", last)
	}
}

func TestSampleArcSpacing(t *testing.T) {
	points := SampleArc(3, 90, 4, Vector2{})

	for i, p := range points {
		radius := math.Hypot(p.X, p.Y)
		if math.Abs(radius-3) > 1e-12 {
			t.Errorf("point %d: expected radius 3, got %v", i, radius)
		}
		angle := math.Atan2(p.Y, p.X) * Rad2Deg
		if math.Abs(angle-float64(i)*30) > 1e-9 {
			t.Errorf("point %d: expected angle %v, got %v", i, float64(i)*30, angle)
		}
	}
}

func TestSampleArcIsDeterministic(t *testing.T) {
	a := SampleArc(1.5, 270, 17, NewVector2(0, -0.75))
	b := SampleArc(1.5, 270, 17, NewVector2(0, -0.75))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSampleArcClampsCount(t *testing.T) {
	points := SampleArc(1, 90, 1, Vector2{})
	if len(points) != 2 {
		t.Errorf("expected count to be raised to 2, got %d", len(points))
	}
}
