package actor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind represents the type of collision shape
type ShapeKind int

const (
	ShapeKindBox ShapeKind = iota
	ShapeKindCircle

	// ShapeKindCount is the number of known shape kinds, used to size dispatch tables
	ShapeKindCount
)

var ErrInvalidSize = errors.New("shape dimensions must be positive and finite")

func (k ShapeKind) String() string {
	switch k {
	case ShapeKindBox:
		return "box"
	case ShapeKindCircle:
		return "circle"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is the interface that all collision shapes must implement
type Shape interface {
	Kind() ShapeKind
	// ComputeAABB returns the world bounds of the shape placed at origin,
	// origin being the entity position plus the collider offset
	ComputeAABB(origin mgl64.Vec2) AABB
}

// Box is an axis-aligned rectangle whose top-left corner sits at the collider origin
type Box struct {
	Width  float64
	Height float64
}

// NewBox creates a box shape, rejecting non-positive or non-finite dimensions
func NewBox(width, height float64) (*Box, error) {
	if !positiveFinite(width) || !positiveFinite(height) {
		return nil, fmt.Errorf("box %vx%v: %w", width, height, ErrInvalidSize)
	}

	return &Box{Width: width, Height: height}, nil
}

func (b *Box) Kind() ShapeKind {
	return ShapeKindBox
}

func (b *Box) ComputeAABB(origin mgl64.Vec2) AABB {
	return AABB{
		Min: origin,
		Max: origin.Add(mgl64.Vec2{b.Width, b.Height}),
	}
}

// Circle is centered on the collider origin
type Circle struct {
	Radius float64
}

// NewCircle creates a circle shape, rejecting non-positive or non-finite radii
func NewCircle(radius float64) (*Circle, error) {
	if !positiveFinite(radius) {
		return nil, fmt.Errorf("circle radius %v: %w", radius, ErrInvalidSize)
	}

	return &Circle{Radius: radius}, nil
}

func (c *Circle) Kind() ShapeKind {
	return ShapeKindCircle
}

func (c *Circle) ComputeAABB(origin mgl64.Vec2) AABB {
	r := mgl64.Vec2{c.Radius, c.Radius}

	return AABB{
		Min: origin.Sub(r),
		Max: origin.Add(r),
	}
}
