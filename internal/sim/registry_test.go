package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/physics"
)

func TestRegistryBindAndLookup(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(testTag)

	r := NewRegistry()
	r.Bind(physics.BodyHandle(7), e)

	got, ok := r.Entity(7)
	assert.True(t, ok)
	assert.Equal(t, e, got)

	h, ok := r.Body(e)
	assert.True(t, ok)
	assert.Equal(t, physics.BodyHandle(7), h)
}

func TestRegistryRebind(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(testTag)

	r := NewRegistry()
	r.Bind(1, e)
	r.Bind(2, e)

	_, ok := r.Entity(1)
	assert.False(t, ok, "old body must be forgotten")
	assert.Equal(t, 1, r.Len())
}

func TestRegistryUnbind(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(testTag)

	r := NewRegistry()
	r.Bind(3, e)

	h, ok := r.Unbind(e)
	assert.True(t, ok)
	assert.Equal(t, physics.BodyHandle(3), h)

	_, ok = r.Unbind(e)
	assert.False(t, ok)
	_, ok = r.Entity(3)
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

var testTag = donburi.NewTag()
