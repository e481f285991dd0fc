package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/octoshot/internal/vmath"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultEngineConfig())
}

func unitBody(x, y float64) BodyDesc {
	return BodyDesc{Translation: vmath.V(x, y), HalfExtents: vmath.V(0.5, 0.5)}
}

func TestCreateBodyIssuesDistinctHandles(t *testing.T) {
	e := newTestEngine()

	a := e.CreateBody(unitBody(0, 0))
	b := e.CreateBody(unitBody(10, 0))
	require.NotEqual(t, a, b)
	assert.NotZero(t, a)
	assert.Equal(t, 2, e.Len())

	ca, ok := e.Collider(a)
	require.True(t, ok)
	parent, ok := e.ColliderParent(ca)
	require.True(t, ok)
	assert.Equal(t, a, parent)
}

func TestStepIntegratesVelocity(t *testing.T) {
	e := newTestEngine()
	h := e.CreateBody(unitBody(0, 0))

	e.SetLinearVelocity(h, vmath.V(2, -1), true)
	e.Step(0.5)

	pos, ok := e.Translation(h)
	require.True(t, ok)
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.InDelta(t, -0.5, pos.Y, 1e-9)
}

func TestBodiesSleepAtRestAndWake(t *testing.T) {
	e := newTestEngine()
	h := e.CreateBody(unitBody(0, 0))

	e.Step(0.1)
	assert.True(t, e.Sleeping(h))

	e.SetLinearVelocity(h, vmath.V(1, 0), false)
	e.Step(1)
	pos, _ := e.Translation(h)
	assert.Equal(t, 0.0, pos.X, "sleeping body must not move until woken")

	e.SetLinearVelocity(h, vmath.V(1, 0), true)
	e.Step(1)
	pos, _ = e.Translation(h)
	assert.InDelta(t, 1.0, pos.X, 1e-9)
}

func TestContainedBodyStopsAtArenaEdge(t *testing.T) {
	e := newTestEngine()
	h := e.CreateBody(BodyDesc{
		Translation: vmath.V(0, 0),
		HalfExtents: vmath.V(1, 1),
		Contained:   true,
	})

	e.SetLinearVelocity(h, vmath.V(100, 0), true)
	e.Step(1)

	pos, _ := e.Translation(h)
	assert.InDelta(t, 31.0, pos.X, 1e-9, "arena half width is 640px / 20 = 32 units")
	vel, _ := e.LinearVelocity(h)
	assert.Zero(t, vel.X)
}

func TestContactStartIsReportedOnce(t *testing.T) {
	e := newTestEngine()
	a := e.CreateBody(unitBody(0, 0))
	b := e.CreateBody(unitBody(5, 0))

	e.Step(0)
	assert.Empty(t, e.DrainContactEvents(), "bodies start apart")

	e.SetLinearVelocity(b, vmath.V(-4.5, 0), true)
	e.Step(1)

	events := e.DrainContactEvents()
	require.Len(t, events, 1)
	ca, _ := e.Collider(a)
	cb, _ := e.Collider(b)
	assert.ElementsMatch(t, []ColliderHandle{ca, cb}, []ColliderHandle{events[0].A, events[0].B})

	e.SetLinearVelocity(b, vmath.Zero, true)
	e.Step(1)
	assert.Empty(t, e.DrainContactEvents(), "still touching is not a new contact")

	e.SetLinearVelocity(b, vmath.V(10, 0), true)
	e.Step(1)
	assert.Empty(t, e.DrainContactEvents())

	e.SetLinearVelocity(b, vmath.V(-10, 0), true)
	e.Step(1)
	assert.Len(t, e.DrainContactEvents(), 1, "touching again starts a new contact")
}

func TestDrainClearsQueue(t *testing.T) {
	e := newTestEngine()
	e.CreateBody(unitBody(0, 0))
	e.CreateBody(unitBody(0.2, 0))

	e.Step(0)
	assert.Len(t, e.DrainContactEvents(), 1)
	assert.Empty(t, e.DrainContactEvents())
}

func TestRemoveBodyBreaksLookups(t *testing.T) {
	e := newTestEngine()
	a := e.CreateBody(unitBody(0, 0))
	e.CreateBody(unitBody(0.2, 0))
	e.Step(0)
	events := e.DrainContactEvents()
	require.Len(t, events, 1)

	ca, _ := e.Collider(a)
	e.RemoveBody(a)
	e.RemoveBody(a)

	_, ok := e.ColliderParent(ca)
	assert.False(t, ok)
	_, ok = e.Translation(a)
	assert.False(t, ok)
	assert.False(t, e.Contains(a))
	assert.Equal(t, 1, e.Len())

	e.Step(0)
	assert.Empty(t, e.DrainContactEvents())
}

func TestSetVelocityOnMissingBodyIsNoop(t *testing.T) {
	e := newTestEngine()
	assert.NotPanics(t, func() {
		e.SetLinearVelocity(BodyHandle(99), vmath.V(1, 1), true)
	})
}

func TestBodiesOutsideSpaceNeverTouch(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.Margin = 20
	e := NewEngine(cfg)

	// 660px is the right edge of the space; both bodies are well past it.
	e.CreateBody(unitBody(40, 0))
	e.CreateBody(unitBody(40.2, 0))
	e.Step(0)
	assert.Empty(t, e.DrainContactEvents())
}

func TestBodyWhollyInsideAnotherTouches(t *testing.T) {
	e := newTestEngine()
	big := e.CreateBody(BodyDesc{Translation: vmath.V(-6, 0), HalfExtents: vmath.V(0.75, 0.75)})
	small := e.CreateBody(BodyDesc{Translation: vmath.V(-4, 0), HalfExtents: vmath.V(0.125, 0.125)})

	e.Step(0)
	assert.Empty(t, e.DrainContactEvents())

	// Ends at -5.45, wholly inside [-6.75, -5.25].
	e.SetLinearVelocity(small, vmath.V(-29, 0), true)
	e.Step(0.05)

	events := e.DrainContactEvents()
	require.Len(t, events, 1)
	cb, _ := e.Collider(big)
	cs, _ := e.Collider(small)
	assert.ElementsMatch(t, []ColliderHandle{cb, cs}, []ColliderHandle{events[0].A, events[0].B})
}

func TestFastBodyCannotTunnel(t *testing.T) {
	e := newTestEngine()
	wall := e.CreateBody(unitBody(0, 0))
	bullet := e.CreateBody(BodyDesc{Translation: vmath.V(-10, 0), HalfExtents: vmath.V(0.125, 0.125)})

	e.SetLinearVelocity(bullet, vmath.V(400, 0), true)
	e.Step(0.05)

	pos, _ := e.Translation(bullet)
	require.InDelta(t, 10.0, pos.X, 1e-9, "moved well past the wall in one step")

	events := e.DrainContactEvents()
	require.Len(t, events, 1)
	cw, _ := e.Collider(wall)
	cb, _ := e.Collider(bullet)
	assert.ElementsMatch(t, []ColliderHandle{cw, cb}, []ColliderHandle{events[0].A, events[0].B})

	e.Step(0.05)
	assert.Empty(t, e.DrainContactEvents(), "a passed contact does not repeat")
}

func TestFastBodyMissingSidewaysDoesNotTouch(t *testing.T) {
	e := newTestEngine()
	e.CreateBody(unitBody(0, 0))
	bullet := e.CreateBody(BodyDesc{Translation: vmath.V(-10, 2), HalfExtents: vmath.V(0.125, 0.125)})

	e.SetLinearVelocity(bullet, vmath.V(400, 0), true)
	e.Step(0.05)
	assert.Empty(t, e.DrainContactEvents())
}
