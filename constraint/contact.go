package constraint

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
)

// Axis is the axis a contact was separated along
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// ContactConstraint separates one overlapping collider pair
type ContactConstraint struct {
	ColliderA *actor.Collider
	ColliderB *actor.Collider
}

// Penetration returns the overlap depth on each axis of two boxes
func Penetration(a, b actor.AABB) (overlapX, overlapY float64) {
	overlapX = math.Min(a.Right()-b.Left(), b.Right()-a.Left())
	overlapY = math.Min(a.Bottom()-b.Top(), b.Bottom()-a.Top())

	return overlapX, overlapY
}

// SolvePosition pushes the pair apart along the axis of smaller overlap.
// Only box/box pairs are resolved, other shape pairs are left in place.
// Equal overlaps resolve horizontally.
func (c *ContactConstraint) SolvePosition() {
	c.solve()
}

func (c *ContactConstraint) solve() Axis {
	a, b := c.ColliderA, c.ColliderB
	if a.Shape.Kind() != actor.ShapeKindBox || b.Shape.Kind() != actor.ShapeKindBox {
		return AxisNone
	}
	if !a.IsMovable() && !b.IsMovable() {
		return AxisNone
	}

	boxA, boxB := a.AABB(), b.AABB()
	overlapX, overlapY := Penetration(boxA, boxB)

	if overlapX <= overlapY {
		direction := sign(boxA.Left() - boxB.Left())
		push(a, AxisX, direction*overlapX*share(a, b))
		push(b, AxisX, -direction*overlapX*share(b, a))

		return AxisX
	}

	direction := sign(boxA.Top() - boxB.Top())
	push(a, AxisY, direction*overlapY*share(a, b))
	push(b, AxisY, -direction*overlapY*share(b, a))

	return AxisY
}

// push moves a movable collider body along one axis, zeroes its velocity on that axis and flags the contact.
// A body pushed upward (negative Y) is standing on the other collider.
func push(collider *actor.Collider, axis Axis, amount float64) {
	if !collider.IsMovable() {
		return
	}

	rb := collider.Body
	switch axis {
	case AxisX:
		rb.Transform.Position[0] += amount
		rb.Velocity[0] = 0
		rb.IsTouchingWall = true
	case AxisY:
		rb.Transform.Position[1] += amount
		rb.Velocity[1] = 0
		if amount < 0 {
			rb.IsGrounded = true
		}
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}
