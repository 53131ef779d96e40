package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box.
// Y grows downward, so Min.Y() is the top edge and Max.Y() the bottom edge.
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

func (a AABB) Left() float64   { return a.Min.X() }
func (a AABB) Right() float64  { return a.Max.X() }
func (a AABB) Top() float64    { return a.Min.Y() }
func (a AABB) Bottom() float64 { return a.Max.Y() }

// Size returns the width and height of the box
func (a AABB) Size() mgl64.Vec2 {
	return a.Max.Sub(a.Min)
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs share a region of positive area.
// Boxes that only touch along an edge do not overlap.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() > other.Min.X() && a.Min.X() < other.Max.X() &&
		a.Max.Y() > other.Min.Y() && a.Min.Y() < other.Max.Y()
}

// ClosestPoint clamps a point to the box extents
func (a AABB) ClosestPoint(point mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(point.X(), a.Min.X(), a.Max.X()),
		mgl64.Clamp(point.Y(), a.Min.Y(), a.Max.Y()),
	}
}
