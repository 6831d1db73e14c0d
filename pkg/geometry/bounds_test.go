package geometry

import "testing"

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundsOfEmpty(t *testing.T) {
	if got := BoundsOf(nil); got != (BoundingBox{}) {
		t.Errorf("BoundsOf(nil) failed: expected zero box, got %v", got)
	}
	if !NewBoundingBox().IsEmpty() {
		t.Error("NewBoundingBox should be empty")
	}
}

func TestBoundingBoxCenterSize(t *testing.T) {
	bbox := BoundsOf([]Vector3{NewVector3(0, 0, 0), NewVector3(10, 20, 30)})

	if size := bbox.Size(); size != NewVector3(10, 20, 30) {
		t.Errorf("Size failed: expected (10, 20, 30), got %v", size)
	}
	if center := bbox.Center(); center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: expected (5, 10, 15), got %v", center)
	}
}

func TestBoundingBoxTranslate(t *testing.T) {
	bbox := BoundsOf([]Vector3{NewVector3(1, 2, 3), NewVector3(4, 5, 6)})
	moved := bbox.Translate(NewVector3(-1, 0, 2))

	if moved.Min != NewVector3(0, 2, 5) || moved.Max != NewVector3(3, 5, 8) {
		t.Errorf("Translate failed: got %v", moved)
	}
}

