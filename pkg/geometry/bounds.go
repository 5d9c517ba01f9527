package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box in 3D
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min.X = math.Min(b.Min.X, point.X)
	b.Min.Y = math.Min(b.Min.Y, point.Y)
	b.Min.Z = math.Min(b.Min.Z, point.Z)
	b.Max.X = math.Max(b.Max.X, point.X)
	b.Max.Y = math.Max(b.Max.Y, point.Y)
	b.Max.Z = math.Max(b.Max.Z, point.Z)
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

// Rect represents an axis-aligned rectangle on the receiver plane
type Rect struct {
	Min Vector2
	Max Vector2
}

// NewRect creates an empty rectangle
func NewRect() Rect {
	return Rect{
		Min: Vector2{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Vector2{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// Extend expands the rectangle to include a point
func (r *Rect) Extend(point Vector2) {
	r.Min.X = math.Min(r.Min.X, point.X)
	r.Min.Y = math.Min(r.Min.Y, point.Y)
	r.Max.X = math.Max(r.Max.X, point.X)
	r.Max.Y = math.Max(r.Max.Y, point.Y)
}

// Size returns the dimensions of the rectangle
func (r Rect) Size() Vector2 {
	return r.Max.Sub(r.Min)
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vector2 {
	return Vector2{
		X: (r.Min.X + r.Max.X) / 2.0,
		Y: (r.Min.Y + r.Max.Y) / 2.0,
	}
}

// Empty reports whether the rectangle contains no points yet
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}
