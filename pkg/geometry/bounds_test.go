package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(-1, 2, 0))
	bbox.Extend(NewVector3(3, -4, 5))

	expectedMin := NewVector3(-1, -4, 0)
	expectedMax := NewVector3(3, 2, 5)

	if bbox.Min != expectedMin {
		t.Errorf("Extend failed: expected min %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Extend failed: expected max %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 4, 6))

	center := bbox.Center()
	expected := NewVector3(1, 2, 3)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestRectExtend(t *testing.T) {
	rect := NewRect()
	rect.Extend(NewVector2(-2, 1))
	rect.Extend(NewVector2(4, -3))

	expectedMin := NewVector2(-2, -3)
	expectedMax := NewVector2(4, 1)

	if rect.Min != expectedMin {
		t.Errorf("Extend failed: expected min %v, got %v", expectedMin, rect.Min)
	}
	if rect.Max != expectedMax {
		t.Errorf("Extend failed: expected max %v, got %v", expectedMax, rect.Max)
	}
}

func TestRectSize(t *testing.T) {
	rect := NewRect()
	rect.Extend(NewVector2(1, 1))
	rect.Extend(NewVector2(4, 5))

	size := rect.Size()
	if math.Abs(size.X-3.0) > 1e-10 || math.Abs(size.Y-4.0) > 1e-10 {
		t.Errorf("Size failed: expected (3, 4), got %v", size)
	}
}

func TestRectEmpty(t *testing.T) {
	rect := NewRect()
	if !rect.Empty() {
		t.Errorf("Empty failed: new rect should be empty")
	}

	rect.Extend(NewVector2(1, 1))
	if rect.Empty() {
		t.Errorf("Empty failed: rect with a point should not be empty")
	}
}
