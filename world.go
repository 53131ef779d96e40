package feather2d

import (
	"slices"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/constraint"
)

const DEFAULT_WORKERS = 1

// DefaultGravity is the downward acceleration in px/s²
const DefaultGravity = 980.0

type pendingCollider struct {
	collider *actor.Collider
	add      bool
}

type World struct {
	// List of all rigid bodies integrated by Step
	Bodies []*actor.RigidBody
	// Gravity acceleration along +Y (px/s²)
	Gravity float64
	Workers int

	Events Events

	colliders []*actor.Collider
	nextID    uint64

	// Registrations requested during a detection pass, applied once it ends
	detecting bool
	pending   []pendingCollider
}

func NewWorld() *World {
	return &World{
		Gravity: DefaultGravity,
		Workers: DEFAULT_WORKERS,
		Events:  NewEvents(),
	}
}

// AddBody adds a rigid body to the world
func (w *World) AddBody(body *actor.RigidBody) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a rigid body from the world
func (w *World) RemoveBody(body *actor.RigidBody) {
	k := slices.Index(w.Bodies, body)
	if k != -1 {
		w.Bodies = slices.Delete(w.Bodies, k, k+1)
	}
}

// AddCollider registers a collider and assigns its ID.
// During a detection pass the registration is deferred until the pass ends.
func (w *World) AddCollider(collider *actor.Collider) {
	if w.detecting {
		w.pending = append(w.pending, pendingCollider{collider: collider, add: true})
		return
	}
	if slices.Contains(w.colliders, collider) {
		return
	}

	w.nextID++
	collider.ID = w.nextID
	w.colliders = append(w.colliders, collider)
}

// RemoveCollider unregisters a collider and forgets its contact pairs without dispatching Exit.
// During a detection pass the removal is deferred until the pass ends.
func (w *World) RemoveCollider(collider *actor.Collider) {
	if w.detecting {
		w.pending = append(w.pending, pendingCollider{collider: collider, add: false})
		return
	}

	k := slices.Index(w.colliders, collider)
	if k == -1 {
		return
	}

	w.colliders = slices.Delete(w.colliders, k, k+1)
	w.Events.forget(collider)
	collider.ID = 0
}

// Colliders returns a copy of the registered colliders
func (w *World) Colliders() []*actor.Collider {
	return slices.Clone(w.colliders)
}

// Step runs one fixed tick: integrate bodies, clear contact flags, then detect and resolve
func (w *World) Step(dt float64) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	w.integrate(dt)
	w.clearContacts()
	w.Detect()
}

func (w *World) integrate(dt float64) {
	task(w.Workers, w.Bodies, func(body *actor.RigidBody) {
		body.Integrate(dt, w.Gravity)
	})
}

func (w *World) clearContacts() {
	for _, body := range w.Bodies {
		body.ClearContacts()
	}
}

// Detect tests every pair of active colliders, dispatches Enter/Stay as pairs are found,
// resolves non-trigger pairs, then dispatches Exit for pairs that stopped overlapping.
// Contact flags on bodies are only ever set here, Step clears them beforehand.
func (w *World) Detect() {
	w.detecting = true

	for i, colliderA := range w.colliders {
		if !colliderA.IsActive() {
			continue
		}

		for _, colliderB := range w.colliders[i+1:] {
			if !colliderB.IsActive() {
				continue
			}
			if !Intersects(colliderA, colliderB) {
				continue
			}

			w.Events.recordContact(colliderA, colliderB)

			if !colliderA.IsTrigger && !colliderB.IsTrigger {
				contact := constraint.ContactConstraint{ColliderA: colliderA, ColliderB: colliderB}
				contact.SolvePosition()
			}
		}
	}

	w.Events.processExits()

	w.detecting = false
	w.flushPending()
}

func (w *World) flushPending() {
	pending := w.pending
	w.pending = nil

	for _, p := range pending {
		if p.add {
			w.AddCollider(p.collider)
		} else {
			w.RemoveCollider(p.collider)
		}
	}
}
