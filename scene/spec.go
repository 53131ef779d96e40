package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

var ErrUnknownShape = errors.New("unknown collider shape")

// Spec describes a world and the entities it starts with
type Spec struct {
	Gravity       *float64     `yaml:"gravity"`
	FixedTick     float64      `yaml:"fixed_tick"`
	MaxFrameDelta float64      `yaml:"max_frame_delta"`
	Workers       int          `yaml:"workers"`
	Entities      []EntitySpec `yaml:"entities"`
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

type EntitySpec struct {
	Name     string        `yaml:"name"`
	Position Vec2Spec      `yaml:"position"`
	Body     *BodySpec     `yaml:"body"`
	Collider *ColliderSpec `yaml:"collider"`
}

// BodySpec leaves optional fields nil so the body defaults apply
type BodySpec struct {
	Mass         *float64  `yaml:"mass"`
	Drag         float64   `yaml:"drag"`
	GravityScale *float64  `yaml:"gravity_scale"`
	UseGravity   *bool     `yaml:"use_gravity"`
	Kinematic    bool      `yaml:"kinematic"`
	MaxVelocity  *Vec2Spec `yaml:"max_velocity"`
	Velocity     Vec2Spec  `yaml:"velocity"`
}

type ColliderSpec struct {
	Shape   string   `yaml:"shape"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	Radius  float64  `yaml:"radius"`
	Offset  Vec2Spec `yaml:"offset"`
	Trigger bool     `yaml:"trigger"`
}

// Load reads and parses a scene file
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("scene: load %s: %w", path, err)
	}

	spec, err := Parse(data)
	if err != nil {
		return Spec{}, fmt.Errorf("scene: %s: %w", path, err)
	}

	return spec, nil
}

// Parse decodes a YAML scene description
func Parse(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("unmarshal: %w", err)
	}

	return spec, nil
}
