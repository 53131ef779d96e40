// Package scene builds physics worlds from YAML descriptions.
package scene

import (
	"fmt"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/actor"
)

// Entity owns a transform and optionally a body and a collider.
// It receives the collision callbacks of its collider and forwards them to the hooks.
type Entity struct {
	Name      string
	Active    bool
	Transform *actor.Transform
	Body      *actor.RigidBody
	Collider  *actor.Collider

	OnEnter func(self *Entity, other *actor.Collider)
	OnStay  func(self *Entity, other *actor.Collider)
	OnExit  func(self *Entity, other *actor.Collider)
}

func (e *Entity) IsActive() bool { return e.Active }

func (e *Entity) OnCollisionEnter(other *actor.Collider) {
	if e.OnEnter != nil {
		e.OnEnter(e, other)
	}
}

func (e *Entity) OnCollisionStay(other *actor.Collider) {
	if e.OnStay != nil {
		e.OnStay(e, other)
	}
}

func (e *Entity) OnCollisionExit(other *actor.Collider) {
	if e.OnExit != nil {
		e.OnExit(e, other)
	}
}

// Scene is a world with its entities and the scheduler settings it was described with
type Scene struct {
	World     *feather2d.World
	Entities  []*Entity
	Scheduler *feather2d.Scheduler
}

// Build creates a world and registers every entity of the spec.
// The scheduler is wired to World.Step, update is called once per rendered frame.
func Build(spec Spec, update func(frameDelta float64)) (*Scene, error) {
	world := feather2d.NewWorld()
	if spec.Gravity != nil {
		world.Gravity = *spec.Gravity
	}
	world.Workers = max(feather2d.DEFAULT_WORKERS, spec.Workers)

	scheduler := feather2d.NewScheduler(world.Step, update)
	if spec.FixedTick > 0 {
		scheduler.FixedTick = spec.FixedTick
	}
	if spec.MaxFrameDelta > 0 {
		scheduler.MaxFrameDelta = spec.MaxFrameDelta
	}

	s := &Scene{World: world, Scheduler: scheduler}
	for i, entitySpec := range spec.Entities {
		entity, err := buildEntity(entitySpec)
		if err != nil {
			return nil, fmt.Errorf("scene: entity %d (%q): %w", i, entitySpec.Name, err)
		}
		s.Add(entity)
	}

	return s, nil
}

// Add registers the entity body and collider with the world
func (s *Scene) Add(entity *Entity) {
	s.Entities = append(s.Entities, entity)
	if entity.Body != nil {
		s.World.AddBody(entity.Body)
	}
	if entity.Collider != nil {
		s.World.AddCollider(entity.Collider)
	}
}

// Remove unregisters the entity from the world
func (s *Scene) Remove(entity *Entity) {
	for i, e := range s.Entities {
		if e == entity {
			s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
			break
		}
	}
	if entity.Body != nil {
		s.World.RemoveBody(entity.Body)
	}
	if entity.Collider != nil {
		s.World.RemoveCollider(entity.Collider)
	}
}

// Find returns the first entity with the given name
func (s *Scene) Find(name string) *Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}

	return nil
}

func buildEntity(spec EntitySpec) (*Entity, error) {
	entity := &Entity{
		Name:      spec.Name,
		Active:    true,
		Transform: actor.NewTransform(spec.Position.X, spec.Position.Y),
	}

	if spec.Body != nil {
		body, err := buildBody(entity.Transform, *spec.Body)
		if err != nil {
			return nil, err
		}
		body.Owner = entity
		entity.Body = body
	}

	if spec.Collider != nil {
		shape, err := buildShape(*spec.Collider)
		if err != nil {
			return nil, err
		}
		collider := actor.NewCollider(entity.Transform, shape)
		collider.Name = spec.Name
		collider.Offset = spec.Collider.Offset.Vec2()
		collider.IsTrigger = spec.Collider.Trigger
		collider.Body = entity.Body
		collider.Owner = entity
		entity.Collider = collider
	}

	return entity, nil
}

func buildBody(transform *actor.Transform, spec BodySpec) (*actor.RigidBody, error) {
	mass := actor.DefaultMass
	if spec.Mass != nil {
		mass = *spec.Mass
	}

	body, err := actor.NewRigidBody(transform, mass)
	if err != nil {
		return nil, err
	}
	if err := body.SetDrag(spec.Drag); err != nil {
		return nil, err
	}
	if spec.GravityScale != nil {
		body.GravityScale = *spec.GravityScale
	}
	if spec.UseGravity != nil {
		body.UseGravity = *spec.UseGravity
	}
	if spec.MaxVelocity != nil {
		body.MaxVelocity = spec.MaxVelocity.Vec2()
	}
	body.IsKinematic = spec.Kinematic
	body.SetVelocity(spec.Velocity.Vec2())

	return body, nil
}

func buildShape(spec ColliderSpec) (actor.Shape, error) {
	switch spec.Shape {
	case "box", "":
		box, err := actor.NewBox(spec.Width, spec.Height)
		if err != nil {
			return nil, err
		}
		return box, nil
	case "circle":
		circle, err := actor.NewCircle(spec.Radius)
		if err != nil {
			return nil, err
		}
		return circle, nil
	default:
		return nil, fmt.Errorf("%q: %w", spec.Shape, ErrUnknownShape)
	}
}
