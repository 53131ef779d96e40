package feather2d

import (
	"github.com/akmonengine/feather2d/actor"
)

const (
	TRIGGER_ENTER EventType = iota
	COLLISION_ENTER
	TRIGGER_STAY
	COLLISION_STAY
	TRIGGER_EXIT
	COLLISION_EXIT
)

// pairKey identifies an unordered collider pair by registration IDs
type pairKey struct {
	idA uint64
	idB uint64
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(colliderA, colliderB *actor.Collider) pairKey {
	if colliderB.ID < colliderA.ID {
		colliderA, colliderB = colliderB, colliderA
	}

	return pairKey{idA: colliderA.ID, idB: colliderB.ID}
}

func (k pairKey) contains(id uint64) bool {
	return k.idA == id || k.idB == id
}

type contactPair struct {
	colliderA *actor.Collider
	colliderB *actor.Collider
}

func (p contactPair) isTrigger() bool {
	return p.colliderA.IsTrigger || p.colliderB.IsTrigger
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Trigger events
type TriggerEnterEvent struct {
	ColliderA *actor.Collider
	ColliderB *actor.Collider
}

func (e TriggerEnterEvent) Type() EventType { return TRIGGER_ENTER }

type TriggerStayEvent struct {
	ColliderA *actor.Collider
	ColliderB *actor.Collider
}

func (e TriggerStayEvent) Type() EventType { return TRIGGER_STAY }

type TriggerExitEvent struct {
	ColliderA *actor.Collider
	ColliderB *actor.Collider
}

func (e TriggerExitEvent) Type() EventType { return TRIGGER_EXIT }

// Collision events
type CollisionEnterEvent struct {
	ColliderA *actor.Collider
	ColliderB *actor.Collider
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	ColliderA *actor.Collider
	ColliderB *actor.Collider
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	ColliderA *actor.Collider
	ColliderB *actor.Collider
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events tracks contact pairs across detection passes and dispatches Enter/Stay/Exit
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Contact tables of the previous and the running detection pass
	previousActivePairs map[pairKey]contactPair
	currentActivePairs  map[pairKey]contactPair
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		previousActivePairs: make(map[pairKey]contactPair),
		currentActivePairs:  make(map[pairKey]contactPair),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// IsColliding reports whether the pair was overlapping at the end of the last detection pass
func (e *Events) IsColliding(colliderA, colliderB *actor.Collider) bool {
	_, ok := e.previousActivePairs[makePairKey(colliderA, colliderB)]
	return ok
}

// ActivePairs returns the number of pairs overlapping at the end of the last detection pass
func (e *Events) ActivePairs() int {
	return len(e.previousActivePairs)
}

// recordContact stores an overlapping pair for the running pass and dispatches Enter or Stay
func (e *Events) recordContact(colliderA, colliderB *actor.Collider) {
	key := makePairKey(colliderA, colliderB)
	pair := contactPair{colliderA: colliderA, colliderB: colliderB}
	e.currentActivePairs[key] = pair

	if _, ok := e.previousActivePairs[key]; ok {
		e.dispatchStay(pair)
	} else {
		e.dispatchEnter(pair)
	}
}

// processExits dispatches Exit for pairs missing from the running pass, then swaps the tables
func (e *Events) processExits() {
	for key, pair := range e.previousActivePairs {
		if _, ok := e.currentActivePairs[key]; !ok {
			e.dispatchExit(pair)
		}
	}

	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// forget drops every pair referencing the collider without dispatching Exit
func (e *Events) forget(collider *actor.Collider) {
	for key := range e.previousActivePairs {
		if key.contains(collider.ID) {
			delete(e.previousActivePairs, key)
		}
	}
	for key := range e.currentActivePairs {
		if key.contains(collider.ID) {
			delete(e.currentActivePairs, key)
		}
	}
}

func (e *Events) dispatchEnter(pair contactPair) {
	a, b := pair.colliderA, pair.colliderB
	if a.Owner != nil {
		a.Owner.OnCollisionEnter(b)
	}
	if b.Owner != nil {
		b.Owner.OnCollisionEnter(a)
	}

	if pair.isTrigger() {
		e.emit(TriggerEnterEvent{ColliderA: a, ColliderB: b})
	} else {
		e.emit(CollisionEnterEvent{ColliderA: a, ColliderB: b})
	}
}

func (e *Events) dispatchStay(pair contactPair) {
	a, b := pair.colliderA, pair.colliderB
	if a.Owner != nil {
		a.Owner.OnCollisionStay(b)
	}
	if b.Owner != nil {
		b.Owner.OnCollisionStay(a)
	}

	if pair.isTrigger() {
		e.emit(TriggerStayEvent{ColliderA: a, ColliderB: b})
	} else {
		e.emit(CollisionStayEvent{ColliderA: a, ColliderB: b})
	}
}

func (e *Events) dispatchExit(pair contactPair) {
	a, b := pair.colliderA, pair.colliderB
	if a.Owner != nil {
		a.Owner.OnCollisionExit(b)
	}
	if b.Owner != nil {
		b.Owner.OnCollisionExit(a)
	}

	if pair.isTrigger() {
		e.emit(TriggerExitEvent{ColliderA: a, ColliderB: b})
	} else {
		e.emit(CollisionExitEvent{ColliderA: a, ColliderB: b})
	}
}

func (e *Events) emit(event Event) {
	for _, listener := range e.listeners[event.Type()] {
		listener(event)
	}
}
