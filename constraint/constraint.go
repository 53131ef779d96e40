package constraint

import "github.com/akmonengine/feather2d/actor"

type Constraint interface {
	SolvePosition()
}

// share returns the part of a correction each movable side absorbs:
// the full amount when it is alone, half when both sides can move
func share(a, b *actor.Collider) float64 {
	if a.IsMovable() && b.IsMovable() {
		return 0.5
	}

	return 1.0
}
