package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/octoshot/internal/vmath"
)

func box(x, y, hw, hh float64) Box {
	return Box{Center: vmath.V(x, y), Half: vmath.V(hw, hh)}
}

func TestOverlaps(t *testing.T) {
	a := box(0, 0, 1, 1)

	assert.True(t, a.Overlaps(box(1.5, 0, 1, 1)))
	assert.True(t, a.Overlaps(box(0, 0, 0.1, 0.1)))
	assert.False(t, a.Overlaps(box(2, 0, 1, 1)), "touching edges")
	assert.False(t, a.Overlaps(box(0, 5, 1, 1)))
}

func TestSweep(t *testing.T) {
	wall := box(0, 0, 1, 1)

	tests := []struct {
		name  string
		mover Box
		d     vmath.Vec2
		want  bool
	}{
		{"at rest inside", box(0.2, 0, 0.1, 0.1), vmath.Zero, true},
		{"at rest apart", box(3, 0, 0.1, 0.1), vmath.Zero, false},
		{"passes through", box(-10, 0, 0.1, 0.1), vmath.V(20, 0), true},
		{"stops short", box(-10, 0, 0.1, 0.1), vmath.V(8, 0), false},
		{"ends on the edge", box(-10, 0, 1, 1), vmath.V(8, 0), false},
		{"passes beside", box(-10, 2.5, 0.1, 0.1), vmath.V(20, 0), false},
		{"diagonal clips corner", box(-2, -2, 0.5, 0.5), vmath.V(4, 4), true},
		{"diagonal misses corner", box(-3, 0, 0.1, 0.1), vmath.V(3, 3), false},
		{"moving away", box(0.5, 0, 0.1, 0.1), vmath.V(5, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mover.Sweep(wall, tt.d))
		})
	}
}

func TestContains(t *testing.T) {
	a := box(0, 0, 1, 1)
	assert.True(t, a.Contains(vmath.V(1, -1)))
	assert.False(t, a.Contains(vmath.V(1.01, 0)))
}

func TestKeepInside(t *testing.T) {
	bounds := box(0, 0, 10, 5)

	moved, hitX, hitY := box(12, 0, 1, 1).KeepInside(bounds)
	assert.Equal(t, vmath.V(9, 0), moved.Center)
	assert.True(t, hitX)
	assert.False(t, hitY)

	moved, hitX, hitY = box(0, -7, 1, 1).KeepInside(bounds)
	assert.Equal(t, vmath.V(0, -4), moved.Center)
	assert.False(t, hitX)
	assert.True(t, hitY)

	moved, hitX, hitY = box(3, 2, 1, 1).KeepInside(bounds)
	assert.Equal(t, vmath.V(3, 2), moved.Center)
	assert.False(t, hitX || hitY)
}

func TestKeepInsideOversized(t *testing.T) {
	moved, _, _ := box(3, 0, 20, 1).KeepInside(box(0, 0, 10, 5))
	assert.Equal(t, 0.0, moved.Center.X)
}
