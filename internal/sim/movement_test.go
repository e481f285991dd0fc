package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tomz197/octoshot/internal/component"
	"github.com/tomz197/octoshot/internal/direction"
	"github.com/tomz197/octoshot/internal/vmath"
)

func TestIntent(t *testing.T) {
	tests := []struct {
		name string
		keys direction.Keys
		want vmath.Vec2
	}{
		{"none", direction.Keys{}, vmath.Zero},
		{"up", direction.Keys{Up: true}, vmath.V(0, 1)},
		{"down left", direction.Keys{Down: true, Left: true}, vmath.V(-1, -1)},
		{"up wins", direction.Keys{Up: true, Down: true}, vmath.V(0, 1)},
		{"left wins", direction.Keys{Left: true, Right: true}, vmath.V(-1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intent(tt.keys))
		})
	}
}

func TestNextVelocity(t *testing.T) {
	p := component.PlayerData{MaxVelocity: 20, Acceleration: 50}

	tests := []struct {
		name   string
		v      vmath.Vec2
		intent vmath.Vec2
		want   vmath.Vec2
	}{
		{"accelerate right", vmath.Zero, vmath.V(1, 0), vmath.V(2.352, 0)},
		{"accelerate down", vmath.Zero, vmath.V(0, -1), vmath.V(0, -2.156)},
		{"capped", vmath.V(19.9, 0), vmath.V(1, 0), vmath.V(19.502, 0)},
		{"over max without push stops", vmath.V(25, 0), vmath.Zero, vmath.Zero},
		{"coast", vmath.V(1, -1), vmath.Zero, vmath.V(0.882, -0.686)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Velocity = tt.v
			got := NextVelocity(p, tt.intent, 0.05)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestMovePlayersUpdatesAim(t *testing.T) {
	w, engine := newMockWorld(t)
	player := w.SpawnPlayer(vmath.Zero)
	h, _ := w.registry.Body(player)
	engine.EXPECT().SetLinearVelocity(h, gomock.Any(), true).Times(2)

	w.movePlayers(0.05, Controls{Keys: direction.Keys{Up: true, Right: true}})
	entry := w.ecs.Entry(player)
	assert.Equal(t, direction.NorthEast, *component.Aim.Get(entry))

	w.movePlayers(0.05, Controls{})
	assert.Equal(t, direction.NorthEast, *component.Aim.Get(entry), "aim is kept when no key is held")
}
