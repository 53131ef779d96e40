package feather2d

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

type RaycastHit struct {
	Collider *actor.Collider
	Point    mgl64.Vec2
	// Normal is the outward normal of the entry face, zero when the ray starts inside the box
	Normal mgl64.Vec2
	// Distance is the ray parameter at entry, in units of the direction length
	Distance float64
}

// Raycast returns the closest active box collider hit by the ray within maxDistance.
// Boxes containing the origin are ranked by where the ray entered them, so the
// outermost one wins regardless of registration order. Circles are not ray-testable.
func (w *World) Raycast(origin, direction mgl64.Vec2, maxDistance float64) (RaycastHit, bool) {
	var closest RaycastHit
	var closestEntry float64
	hit := false

	for _, collider := range w.colliders {
		if !collider.IsActive() || collider.Shape.Kind() != actor.ShapeKindBox {
			continue
		}

		entry, normal, ok := slabEntry(origin, direction, collider.AABB(), maxDistance)
		if !ok {
			continue
		}
		if hit && entry >= closestEntry {
			continue
		}

		distance := math.Max(entry, 0)
		closest = RaycastHit{
			Collider: collider,
			Point:    origin.Add(direction.Mul(distance)),
			Normal:   normal,
			Distance: distance,
		}
		closestEntry = entry
		hit = true
	}

	return closest, hit
}

// RaycastAABB intersects a ray with a box using the slab method.
// A ray starting inside the box hits at distance 0.
func RaycastAABB(origin, direction mgl64.Vec2, box actor.AABB, maxDistance float64) (float64, mgl64.Vec2, bool) {
	entry, normal, ok := slabEntry(origin, direction, box, maxDistance)
	if !ok {
		return 0, mgl64.Vec2{}, false
	}

	return math.Max(entry, 0), normal, true
}

// slabEntry returns the unclamped entry parameter, negative when the origin is inside the box
func slabEntry(origin, direction mgl64.Vec2, box actor.AABB, maxDistance float64) (float64, mgl64.Vec2, bool) {
	nearX, farX, ok := slab(origin.X(), direction.X(), box.Min.X(), box.Max.X())
	if !ok {
		return 0, mgl64.Vec2{}, false
	}
	nearY, farY, ok := slab(origin.Y(), direction.Y(), box.Min.Y(), box.Max.Y())
	if !ok {
		return 0, mgl64.Vec2{}, false
	}

	entry := math.Max(nearX, nearY)
	exit := math.Min(farX, farY)
	if entry > exit || exit < 0 || entry > maxDistance {
		return 0, mgl64.Vec2{}, false
	}

	if entry < 0 {
		return entry, mgl64.Vec2{}, true
	}

	var normal mgl64.Vec2
	if nearX >= nearY {
		normal[0] = -sign(direction.X())
	} else {
		normal[1] = -sign(direction.Y())
	}

	return entry, normal, true
}

// slab returns the ray parameters where it crosses the two planes of one axis.
// A ray parallel to the axis spans (-Inf, +Inf) when it lies between the planes and misses otherwise.
func slab(origin, direction, min, max float64) (near, far float64, ok bool) {
	if direction == 0 {
		if origin < min || origin > max {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}

	near = (min - origin) / direction
	far = (max - origin) / direction
	if near > far {
		near, far = far, near
	}

	return near, far, true
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}
