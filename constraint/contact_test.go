package constraint

import (
	"math"
	"testing"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

func createBox(t *testing.T, x, y, w, h float64, withBody, kinematic bool) *actor.Collider {
	t.Helper()
	shape, err := actor.NewBox(w, h)
	if err != nil {
		t.Fatalf("NewBox() unexpected error: %v", err)
	}
	transform := actor.NewTransform(x, y)
	collider := actor.NewCollider(transform, shape)
	if withBody {
		body, err := actor.NewRigidBody(transform, 1)
		if err != nil {
			t.Fatalf("NewRigidBody() unexpected error: %v", err)
		}
		body.IsKinematic = kinematic
		collider.Body = body
	}
	return collider
}

func TestPenetration(t *testing.T) {
	a := actor.AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{10, 10}}
	b := actor.AABB{Min: mgl64.Vec2{6, 7}, Max: mgl64.Vec2{16, 17}}

	overlapX, overlapY := Penetration(a, b)
	if overlapX != 4 || overlapY != 3 {
		t.Errorf("Penetration() = (%v, %v), want (4, 3)", overlapX, overlapY)
	}

	overlapX, overlapY = Penetration(b, a)
	if overlapX != 4 || overlapY != 3 {
		t.Errorf("Penetration() reversed = (%v, %v), want (4, 3)", overlapX, overlapY)
	}
}

// =============================================================================
// Horizontal Resolution Tests
// =============================================================================

func TestSolvePosition_HorizontalSplit(t *testing.T) {
	a := createBox(t, 0, 0, 10, 10, true, false)
	b := createBox(t, 6, 0, 10, 10, true, false)
	a.Body.Velocity = mgl64.Vec2{5, 3}
	b.Body.Velocity = mgl64.Vec2{-5, 3}

	c := &ContactConstraint{ColliderA: a, ColliderB: b}
	if axis := c.solve(); axis != AxisX {
		t.Fatalf("resolved on axis %v, want AxisX", axis)
	}

	if a.Transform.Position.X() > 0 {
		t.Errorf("A.x = %v, want <= 0", a.Transform.Position.X())
	}
	if b.Transform.Position.X() < 6 {
		t.Errorf("B.x = %v, want >= 6", b.Transform.Position.X())
	}
	if gap := b.AABB().Left() - a.AABB().Right(); gap < 0 {
		t.Errorf("boxes still overlap, gap = %v", gap)
	}
	if a.Transform.Position.X() != -2 || b.Transform.Position.X() != 8 {
		t.Errorf("positions = (%v, %v), want (-2, 8)", a.Transform.Position.X(), b.Transform.Position.X())
	}
	if a.Body.Velocity != (mgl64.Vec2{0, 3}) || b.Body.Velocity != (mgl64.Vec2{0, 3}) {
		t.Errorf("velocities = %v %v, want horizontal component zeroed", a.Body.Velocity, b.Body.Velocity)
	}
	if !a.Body.IsTouchingWall || !b.Body.IsTouchingWall {
		t.Errorf("both bodies should touch a wall")
	}
	if a.Body.IsGrounded || b.Body.IsGrounded {
		t.Errorf("horizontal resolution should not ground bodies")
	}
}

func TestSolvePosition_HorizontalAgainstStatic(t *testing.T) {
	wall := createBox(t, 6, 0, 10, 10, false, false)
	mover := createBox(t, 0, 0, 10, 10, true, false)

	// Order of the pair must not change the outcome
	c := &ContactConstraint{ColliderA: wall, ColliderB: mover}
	c.SolvePosition()

	if mover.Transform.Position.X() != -4 {
		t.Errorf("mover.x = %v, want -4", mover.Transform.Position.X())
	}
	if wall.Transform.Position.X() != 6 {
		t.Errorf("wall moved to %v", wall.Transform.Position.X())
	}
	if !mover.Body.IsTouchingWall {
		t.Errorf("mover should touch the wall")
	}
}

func TestSolvePosition_TieResolvesHorizontally(t *testing.T) {
	a := createBox(t, 0, 0, 10, 10, true, false)
	b := createBox(t, 5, 5, 10, 10, false, false)

	c := &ContactConstraint{ColliderA: a, ColliderB: b}
	if axis := c.solve(); axis != AxisX {
		t.Fatalf("equal overlaps resolved on axis %v, want AxisX", axis)
	}
	if a.Transform.Position != (mgl64.Vec2{-5, 0}) {
		t.Errorf("A position = %v, want [-5 0]", a.Transform.Position)
	}
}

// =============================================================================
// Vertical Resolution Tests
// =============================================================================

func TestSolvePosition_LandingOnFloor(t *testing.T) {
	tests := []struct {
		name  string
		floor *actor.Collider
	}{
		{"bodyless floor", createBox(t, 0, 100, 200, 20, false, false)},
		{"kinematic floor", createBox(t, 0, 100, 200, 20, true, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			falling := createBox(t, 10, 93, 10, 10, true, false)
			falling.Body.Velocity = mgl64.Vec2{2, 300}

			c := &ContactConstraint{ColliderA: tt.floor, ColliderB: falling}
			if axis := c.solve(); axis != AxisY {
				t.Fatalf("resolved on axis %v, want AxisY", axis)
			}

			if !falling.Body.IsGrounded {
				t.Errorf("falling body should be grounded")
			}
			if falling.Body.Velocity != (mgl64.Vec2{2, 0}) {
				t.Errorf("velocity = %v, want [2 0]", falling.Body.Velocity)
			}
			if math.Abs(falling.AABB().Bottom()-100) > 1e-9 {
				t.Errorf("bottom = %v, want 100", falling.AABB().Bottom())
			}
			if tt.floor.Transform.Position != (mgl64.Vec2{0, 100}) {
				t.Errorf("floor moved to %v", tt.floor.Transform.Position)
			}
			if tt.floor.Body != nil && (tt.floor.Body.IsGrounded || tt.floor.Body.IsTouchingWall) {
				t.Errorf("kinematic floor flags should not change")
			}
		})
	}
}

func TestSolvePosition_VerticalSplitGroundsUpperBody(t *testing.T) {
	lower := createBox(t, 0, 8, 10, 10, true, false)
	upper := createBox(t, 0, 0, 10, 10, true, false)
	lower.Body.Velocity = mgl64.Vec2{0, -10}
	upper.Body.Velocity = mgl64.Vec2{0, 10}

	c := &ContactConstraint{ColliderA: lower, ColliderB: upper}
	c.SolvePosition()

	if upper.Transform.Position.Y() != -1 || lower.Transform.Position.Y() != 9 {
		t.Errorf("positions = (%v, %v), want upper -1, lower 9", upper.Transform.Position.Y(), lower.Transform.Position.Y())
	}
	if !upper.Body.IsGrounded {
		t.Errorf("upper body should be grounded")
	}
	if lower.Body.IsGrounded {
		t.Errorf("lower body should not be grounded")
	}
	if upper.Body.Velocity.Y() != 0 || lower.Body.Velocity.Y() != 0 {
		t.Errorf("vertical velocities = %v %v, want 0", upper.Body.Velocity.Y(), lower.Body.Velocity.Y())
	}
}

// =============================================================================
// No-op Resolution Tests
// =============================================================================

func TestSolvePosition_NoMovableSide(t *testing.T) {
	tests := []struct {
		name string
		a, b *actor.Collider
	}{
		{"both bodyless", createBox(t, 0, 0, 10, 10, false, false), createBox(t, 5, 0, 10, 10, false, false)},
		{"both kinematic", createBox(t, 0, 0, 10, 10, true, true), createBox(t, 5, 0, 10, 10, true, true)},
		{"bodyless and kinematic", createBox(t, 0, 0, 10, 10, false, false), createBox(t, 5, 0, 10, 10, true, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ContactConstraint{ColliderA: tt.a, ColliderB: tt.b}
			if axis := c.solve(); axis != AxisNone {
				t.Errorf("resolved on axis %v, want AxisNone", axis)
			}
			if tt.a.Transform.Position != (mgl64.Vec2{0, 0}) || tt.b.Transform.Position != (mgl64.Vec2{5, 0}) {
				t.Errorf("positions changed to %v %v", tt.a.Transform.Position, tt.b.Transform.Position)
			}
		})
	}
}

func TestSolvePosition_CircleNotResolved(t *testing.T) {
	transform := actor.NewTransform(5, 5)
	circle := actor.NewCollider(transform, &actor.Circle{Radius: 3})
	body, err := actor.NewRigidBody(transform, 1)
	if err != nil {
		t.Fatal(err)
	}
	circle.Body = body
	box := createBox(t, 0, 0, 10, 10, false, false)

	c := &ContactConstraint{ColliderA: circle, ColliderB: box}
	if axis := c.solve(); axis != AxisNone {
		t.Errorf("circle/box resolved on axis %v, want AxisNone", axis)
	}
	if transform.Position != (mgl64.Vec2{5, 5}) {
		t.Errorf("circle moved to %v", transform.Position)
	}
}
