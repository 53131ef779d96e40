package feather2d

import (
	"github.com/akmonengine/feather2d/actor"
)

// IntersectFunc reports whether two colliders of a given kind pair overlap
type IntersectFunc func(a, b *actor.Collider) bool

// intersectTable dispatches narrow phase tests by (kindA, kindB).
// A missing entry means the pair never collides.
var intersectTable = [actor.ShapeKindCount][actor.ShapeKindCount]IntersectFunc{
	actor.ShapeKindBox: {
		actor.ShapeKindBox:    boxBox,
		actor.ShapeKindCircle: boxCircle,
	},
	actor.ShapeKindCircle: {
		actor.ShapeKindBox:    circleBox,
		actor.ShapeKindCircle: circleCircle,
	},
}

// Intersects runs the narrow phase test matching the two shape kinds.
// Unknown kind pairs report no collision.
func Intersects(a, b *actor.Collider) bool {
	kindA, kindB := a.Shape.Kind(), b.Shape.Kind()
	if kindA < 0 || kindA >= actor.ShapeKindCount || kindB < 0 || kindB >= actor.ShapeKindCount {
		return false
	}

	fn := intersectTable[kindA][kindB]
	if fn == nil {
		return false
	}

	return fn(a, b)
}

func boxBox(a, b *actor.Collider) bool {
	return a.AABB().Overlaps(b.AABB())
}

func circleCircle(a, b *actor.Collider) bool {
	circleA, okA := a.Shape.(*actor.Circle)
	circleB, okB := b.Shape.(*actor.Circle)
	if !okA || !okB {
		return false
	}

	radii := circleA.Radius + circleB.Radius

	return a.Origin().Sub(b.Origin()).LenSqr() < radii*radii
}

// circleBox compares the distance between the circle center and its closest point on the box
func circleBox(circle, box *actor.Collider) bool {
	c, ok := circle.Shape.(*actor.Circle)
	if !ok {
		return false
	}
	center := circle.Origin()
	closest := box.AABB().ClosestPoint(center)

	return center.Sub(closest).LenSqr() < c.Radius*c.Radius
}

func boxCircle(box, circle *actor.Collider) bool {
	return circleBox(circle, box)
}
