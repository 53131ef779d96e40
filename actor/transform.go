package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents an entity position in 2D space.
// Rotation is carried for renderers only, shapes ignore it and stay axis-aligned.
type Transform struct {
	Position mgl64.Vec2
	Rotation float64
}

// NewTransform creates a transform at the given position
func NewTransform(x, y float64) *Transform {
	return &Transform{
		Position: mgl64.Vec2{x, y},
	}
}
