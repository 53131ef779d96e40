package actor

import "github.com/go-gl/mathgl/mgl64"

// CollisionHandler is implemented by collider owners that want to be told about contacts.
// Trigger overlaps are reported through the same three methods.
type CollisionHandler interface {
	OnCollisionEnter(other *Collider)
	OnCollisionStay(other *Collider)
	OnCollisionExit(other *Collider)
}

// Activatable can be implemented by an owner to pause its colliders without unregistering them
type Activatable interface {
	IsActive() bool
}

// Collider attaches a shape to an entity transform
type Collider struct {
	// ID is assigned by the world on registration and stays stable until removal.
	// It is the only identity used to key contact pairs.
	ID uint64
	// Name is informative only
	Name string

	Shape     Shape
	Offset    mgl64.Vec2
	IsTrigger bool
	Disabled  bool

	// Transform is the owning entity transform, shared with Body when present
	Transform *Transform
	// Body is optional, a collider without a body is treated as immovable
	Body *RigidBody
	// Owner receives enter/stay/exit callbacks, may be nil
	Owner CollisionHandler
}

// NewCollider creates a collider for the given transform and shape
func NewCollider(transform *Transform, shape Shape) *Collider {
	return &Collider{
		Transform: transform,
		Shape:     shape,
	}
}

// Origin returns the world position of the shape: entity position plus offset
func (c *Collider) Origin() mgl64.Vec2 {
	return c.Transform.Position.Add(c.Offset)
}

// AABB returns the world bounds of the shape
func (c *Collider) AABB() AABB {
	return c.Shape.ComputeAABB(c.Origin())
}

// Center returns the world center of the shape bounds
func (c *Collider) Center() mgl64.Vec2 {
	aabb := c.AABB()
	return aabb.Min.Add(aabb.Max).Mul(0.5)
}

// IsActive reports whether the collider takes part in detection and queries
func (c *Collider) IsActive() bool {
	if c.Disabled || c.Shape == nil || c.Transform == nil {
		return false
	}
	if owner, ok := c.Owner.(Activatable); ok {
		return owner.IsActive()
	}

	return true
}

// IsMovable reports whether the resolver may push this collider
func (c *Collider) IsMovable() bool {
	return c.Body != nil && c.Body.IsMovable()
}
