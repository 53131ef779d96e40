package actor

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultMass         = 1.0
	DefaultDrag         = 0.0
	DefaultGravityScale = 1.0
)

var (
	ErrInvalidMass = errors.New("mass must be positive and finite")
	ErrInvalidDrag = errors.New("drag must be in [0, 1)")
)

type Material struct {
	mass float64
	// Drag is the fraction of velocity removed once per tick, in [0, 1)
	Drag float64
}

func (material Material) GetMass() float64 {
	return material.mass
}

// RigidBody holds the linear motion state of one entity.
// Create it with NewRigidBody: the zero value has no mass and is never integrated.
type RigidBody struct {
	// Transform is the owning entity transform
	Transform *Transform

	Velocity         mgl64.Vec2
	acceleration     mgl64.Vec2
	accumulatedForce mgl64.Vec2

	// MaxVelocity clamps each velocity component to [-MaxVelocity, +MaxVelocity]
	MaxVelocity mgl64.Vec2

	Material     Material
	GravityScale float64
	UseGravity   bool
	// IsKinematic bodies are moved externally and never pushed by forces or collisions
	IsKinematic bool
	Disabled    bool
	// Owner pauses the body while it reports inactive, may be nil
	Owner Activatable

	// Contact flags are set by the resolver during detection.
	// They are sticky: the world clears them at the start of every tick.
	IsGrounded     bool
	IsTouchingWall bool
}

// NewRigidBody creates a dynamic body with gravity enabled and unbounded velocity
func NewRigidBody(transform *Transform, mass float64) (*RigidBody, error) {
	rb := &RigidBody{
		Transform:    transform,
		MaxVelocity:  mgl64.Vec2{math.Inf(1), math.Inf(1)},
		GravityScale: DefaultGravityScale,
		UseGravity:   true,
	}
	if err := rb.SetMass(mass); err != nil {
		return nil, err
	}

	return rb, nil
}

// SetMass changes the body mass
func (rb *RigidBody) SetMass(mass float64) error {
	if !positiveFinite(mass) {
		return fmt.Errorf("mass %v: %w", mass, ErrInvalidMass)
	}
	rb.Material.mass = mass

	return nil
}

// SetDrag changes the per-tick velocity damping factor
func (rb *RigidBody) SetDrag(drag float64) error {
	if math.IsNaN(drag) || drag < 0 || drag >= 1 {
		return fmt.Errorf("drag %v: %w", drag, ErrInvalidDrag)
	}
	rb.Material.Drag = drag

	return nil
}

// Integrate advances the body by one fixed tick.
// Drag is applied once per tick and not scaled by dt, so tuning depends on the tick rate.
func (rb *RigidBody) Integrate(dt float64, gravity float64) {
	if rb.IsKinematic || !rb.IsActive() || !positiveFinite(rb.Material.GetMass()) {
		return
	}

	if rb.UseGravity {
		rb.acceleration = rb.acceleration.Add(mgl64.Vec2{0, gravity * rb.GravityScale})
	}
	rb.acceleration = rb.acceleration.Add(rb.accumulatedForce.Mul(1.0 / rb.Material.GetMass()))

	rb.Velocity = rb.Velocity.Add(rb.acceleration.Mul(dt))
	rb.Velocity = rb.Velocity.Mul(1 - rb.Material.Drag)
	rb.Velocity = mgl64.Vec2{
		mgl64.Clamp(rb.Velocity.X(), -rb.MaxVelocity.X(), rb.MaxVelocity.X()),
		mgl64.Clamp(rb.Velocity.Y(), -rb.MaxVelocity.Y(), rb.MaxVelocity.Y()),
	}

	rb.Transform.Position = rb.Transform.Position.Add(rb.Velocity.Mul(dt))

	rb.ClearForces()
}

// AddForce accumulates a continuous force, consumed by the next Integrate
func (rb *RigidBody) AddForce(force mgl64.Vec2) {
	rb.accumulatedForce = rb.accumulatedForce.Add(force)
}

// AddImpulse changes the velocity immediately by impulse / mass
func (rb *RigidBody) AddImpulse(impulse mgl64.Vec2) {
	if !positiveFinite(rb.Material.GetMass()) {
		return
	}
	rb.Velocity = rb.Velocity.Add(impulse.Mul(1.0 / rb.Material.GetMass()))
}

// SetVelocity overwrites the velocity immediately
func (rb *RigidBody) SetVelocity(velocity mgl64.Vec2) {
	rb.Velocity = velocity
}

func (rb *RigidBody) ClearForces() {
	rb.accumulatedForce = mgl64.Vec2{}
	rb.acceleration = mgl64.Vec2{}
}

// ClearContacts resets the contact flags before a detection pass
func (rb *RigidBody) ClearContacts() {
	rb.IsGrounded = false
	rb.IsTouchingWall = false
}

// IsActive reports whether the body is enabled and its owner, if any, is active
func (rb *RigidBody) IsActive() bool {
	if rb.Disabled {
		return false
	}
	if rb.Owner != nil {
		return rb.Owner.IsActive()
	}

	return true
}

// IsMovable reports whether forces and collisions may change this body
func (rb *RigidBody) IsMovable() bool {
	return !rb.IsKinematic && rb.IsActive()
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
