package constraint

import (
	"testing"

	"github.com/akmonengine/feather2d/actor"
)

var _ Constraint = (*ContactConstraint)(nil)

func TestShare(t *testing.T) {
	dynamic := createBox(t, 0, 0, 1, 1, true, false)
	other := createBox(t, 0, 0, 1, 1, true, false)
	static := createBox(t, 0, 0, 1, 1, false, false)
	kinematic := createBox(t, 0, 0, 1, 1, true, true)

	tests := []struct {
		name string
		a, b *actor.Collider
		want float64
	}{
		{"both dynamic", dynamic, other, 0.5},
		{"dynamic against static", dynamic, static, 1},
		{"dynamic against kinematic", dynamic, kinematic, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := share(tt.a, tt.b); got != tt.want {
				t.Errorf("share() = %v, want %v", got, tt.want)
			}
		})
	}
}
