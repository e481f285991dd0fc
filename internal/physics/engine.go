package physics

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/tomz197/octoshot/internal/vmath"
)

// BodyHandle identifies a rigid body owned by an Engine. The zero value is
// never issued.
type BodyHandle uint32

// ColliderHandle identifies a collider attached to a body. The zero value is
// never issued.
type ColliderHandle uint32

// ContactEvent reports that two colliders started touching during a Step.
type ContactEvent struct {
	A, B ColliderHandle
}

// BodyDesc describes a dynamic body with a single box collider. Translation
// and HalfExtents are in physics units.
type BodyDesc struct {
	Translation vmath.Vec2
	HalfExtents vmath.Vec2
	// Contained bodies cannot leave the arena.
	Contained bool
}

// EngineConfig configures an Engine. Arena sizes and Margin are in pixels.
type EngineConfig struct {
	// Scale is the number of pixels per physics unit.
	Scale           float64
	ArenaHalfWidth  float64
	ArenaHalfHeight float64
	// Margin extends the collision space beyond the arena so that shapes
	// leaving it are still tracked for a while.
	Margin float64
	// CellSize is the resolv space cell size in pixels.
	CellSize int
}

// DefaultEngineConfig matches the default tuning: 20 pixels per unit and a
// 1280x720 arena centered on the origin.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Scale:           20,
		ArenaHalfWidth:  640,
		ArenaHalfHeight: 360,
		Margin:          640,
		CellSize:        32,
	}
}

type body struct {
	handle   BodyHandle
	collider ColliderHandle
	pos      vmath.Vec2
	prev     vmath.Vec2
	vel      vmath.Vec2
	half     vmath.Vec2
	awake    bool
	contain  bool
	shape    *resolv.ConvexPolygon
}

type pairKey struct {
	lo, hi ColliderHandle
}

func newPairKey(a, b ColliderHandle) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

var tagBody = resolv.NewTag("body")

// Engine is a small kinematic rigid-body world: bodies move with their
// linear velocity, never respond to each other, and report when their
// colliders start touching. The broad phase is a resolv space kept in pixel
// coordinates; the narrow phase sweeps each pair of boxes over the step, so
// a fast body cannot tunnel through a slow one and a body wholly inside
// another still touches it.
//
// Engine is not safe for concurrent use.
type Engine struct {
	cfg   EngineConfig
	space *resolv.Space
	arena Box // physics units
	// bounds is the collision space in pixels, centered on the origin.
	bounds Box

	bodies    map[BodyHandle]*body
	colliders map[ColliderHandle]BodyHandle
	byShape   map[resolv.IShape]ColliderHandle
	order     []BodyHandle

	// travel is the largest per-axis displacement of the last Step, in
	// pixels. Broad-phase queries are widened by it.
	travel vmath.Vec2

	nextBody     BodyHandle
	nextCollider ColliderHandle

	active map[pairKey]struct{}
	// touched holds every pair that met during the Step and whether it
	// still overlaps at the end of it.
	touched map[pairKey]bool
	started []pairKey
	events  []ContactEvent
}

// NewEngine creates an empty engine.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 32
	}
	w := int(2 * (cfg.ArenaHalfWidth + cfg.Margin))
	h := int(2 * (cfg.ArenaHalfHeight + cfg.Margin))

	return &Engine{
		cfg:   cfg,
		space: resolv.NewSpace(w, h, cfg.CellSize, cfg.CellSize),
		arena: Box{
			Half: vmath.V(cfg.ArenaHalfWidth, cfg.ArenaHalfHeight).Div(cfg.Scale),
		},
		bounds: Box{
			Half: vmath.V(cfg.ArenaHalfWidth+cfg.Margin, cfg.ArenaHalfHeight+cfg.Margin),
		},
		bodies:    make(map[BodyHandle]*body),
		colliders: make(map[ColliderHandle]BodyHandle),
		byShape:   make(map[resolv.IShape]ColliderHandle),
		active:    make(map[pairKey]struct{}),
		touched:   make(map[pairKey]bool),
	}
}

// Scale returns the number of pixels per physics unit.
func (e *Engine) Scale() float64 {
	return e.cfg.Scale
}

// Arena returns the arena bounds in physics units.
func (e *Engine) Arena() Box {
	return e.arena
}

// CreateBody adds a dynamic body with one box collider and returns its
// handle. New bodies are awake and at rest.
func (e *Engine) CreateBody(desc BodyDesc) BodyHandle {
	e.nextBody++
	e.nextCollider++

	b := &body{
		handle:   e.nextBody,
		collider: e.nextCollider,
		pos:      desc.Translation,
		half:     desc.HalfExtents,
		awake:    true,
		contain:  desc.Contained,
	}
	if b.contain {
		b.pos = e.keepInside(b)
	}
	b.prev = b.pos

	size := b.half.Scale(2 * e.cfg.Scale)
	center := e.toSpace(b.pos)
	b.shape = resolv.NewRectangle(center.X, center.Y, size.X, size.Y)
	b.shape.Tags().Set(tagBody)
	e.space.Add(b.shape)
	e.syncShape(b)

	e.bodies[b.handle] = b
	e.colliders[b.collider] = b.handle
	e.byShape[b.shape] = b.collider
	e.order = append(e.order, b.handle)
	return b.handle
}

// RemoveBody removes a body and its collider. Removing an unknown body is a
// no-op. Pending contact events that mention the collider stay queued; their
// lookups simply fail.
func (e *Engine) RemoveBody(h BodyHandle) {
	b, ok := e.bodies[h]
	if !ok {
		return
	}
	e.space.Remove(b.shape)
	delete(e.byShape, b.shape)
	delete(e.colliders, b.collider)
	delete(e.bodies, h)
	if i := slices.Index(e.order, h); i >= 0 {
		e.order = slices.Delete(e.order, i, i+1)
	}
	for k := range e.active {
		if k.lo == b.collider || k.hi == b.collider {
			delete(e.active, k)
		}
	}
}

// Contains reports whether h refers to a live body.
func (e *Engine) Contains(h BodyHandle) bool {
	_, ok := e.bodies[h]
	return ok
}

// Len returns the number of live bodies.
func (e *Engine) Len() int {
	return len(e.bodies)
}

// SetLinearVelocity sets the velocity of a body. When wake is false a
// sleeping body keeps the new velocity but does not move until woken.
func (e *Engine) SetLinearVelocity(h BodyHandle, v vmath.Vec2, wake bool) {
	b, ok := e.bodies[h]
	if !ok {
		return
	}
	b.vel = v
	if wake {
		b.awake = true
	}
}

// LinearVelocity returns the velocity of a body.
func (e *Engine) LinearVelocity(h BodyHandle) (vmath.Vec2, bool) {
	b, ok := e.bodies[h]
	if !ok {
		return vmath.Zero, false
	}
	return b.vel, true
}

// Sleeping reports whether a body is asleep.
func (e *Engine) Sleeping(h BodyHandle) bool {
	b, ok := e.bodies[h]
	return ok && !b.awake
}

// Translation returns the position of a body in physics units.
func (e *Engine) Translation(h BodyHandle) (vmath.Vec2, bool) {
	b, ok := e.bodies[h]
	if !ok {
		return vmath.Zero, false
	}
	return b.pos, true
}

// Collider returns the collider attached to a body.
func (e *Engine) Collider(h BodyHandle) (ColliderHandle, bool) {
	b, ok := e.bodies[h]
	if !ok {
		return 0, false
	}
	return b.collider, true
}

// ColliderParent returns the body a collider is attached to.
func (e *Engine) ColliderParent(c ColliderHandle) (BodyHandle, bool) {
	h, ok := e.colliders[c]
	return h, ok
}

// Step integrates every awake body by dt seconds and queues a ContactEvent
// for each collider pair that started touching.
func (e *Engine) Step(dt float64) {
	e.travel = vmath.Zero
	for _, h := range e.order {
		b := e.bodies[h]
		b.prev = b.pos
		if dt > 0 {
			e.integrate(b, dt)
		}
		d := b.pos.Sub(b.prev).Scale(e.cfg.Scale)
		e.travel.X = max(e.travel.X, math.Abs(d.X))
		e.travel.Y = max(e.travel.Y, math.Abs(d.Y))
	}
	e.detectContacts()
}

// DrainContactEvents returns all queued contact events in the order they
// were detected and clears the queue.
func (e *Engine) DrainContactEvents() []ContactEvent {
	if len(e.events) == 0 {
		return nil
	}
	out := e.events
	e.events = nil
	return out
}

func (e *Engine) integrate(b *body, dt float64) {
	if !b.awake {
		return
	}
	if b.vel.IsZero() {
		b.awake = false
		return
	}

	b.pos = b.pos.Add(b.vel.Scale(dt))
	if b.contain {
		moved, hitX, hitY := Box{Center: b.pos, Half: b.half}.KeepInside(e.arena)
		b.pos = moved.Center
		if hitX {
			b.vel.X = 0
		}
		if hitY {
			b.vel.Y = 0
		}
	}
	e.syncShape(b)
}

func (e *Engine) keepInside(b *body) vmath.Vec2 {
	moved, _, _ := Box{Center: b.pos, Half: b.half}.KeepInside(e.arena)
	return moved.Center
}

// toSpace converts a position in physics units to resolv space pixels.
func (e *Engine) toSpace(p vmath.Vec2) vmath.Vec2 {
	return vmath.V(
		p.X*e.cfg.Scale+e.cfg.ArenaHalfWidth+e.cfg.Margin,
		p.Y*e.cfg.Scale+e.cfg.ArenaHalfHeight+e.cfg.Margin,
	)
}

// syncShape moves the resolv shape to the body. Shapes are pinned to the
// space edge once the body leaves it.
func (e *Engine) syncShape(b *body) {
	p := e.toSpace(b.pos)
	p = p.Clamp(vmath.Zero, e.bounds.Half.Scale(2))
	b.shape.SetPosition(p.X, p.Y)
}

// inSpace reports whether the body center is still inside the collision
// space. Bodies outside it never produce contacts.
func (e *Engine) inSpace(b *body) bool {
	return b != nil && e.bounds.Contains(b.pos.Scale(e.cfg.Scale))
}

// sweptBounds covers every pixel the body passed through during the last
// Step, widened by the fastest body's travel.
func (e *Engine) sweptBounds(b *body) resolv.Bounds {
	half := b.half.Scale(e.cfg.Scale).Add(e.travel)
	p, q := e.toSpace(b.prev), e.toSpace(b.pos)
	return resolv.Bounds{
		Min: resolv.NewVector(min(p.X, q.X)-half.X, min(p.Y, q.Y)-half.Y),
		Max: resolv.NewVector(max(p.X, q.X)+half.X, max(p.Y, q.Y)+half.Y),
	}
}

// met reports whether two bodies overlapped at any point of the last Step.
func met(a, b *body) bool {
	start := Box{Center: a.prev, Half: a.half}
	rel := a.pos.Sub(a.prev).Sub(b.pos.Sub(b.prev))
	return start.Sweep(Box{Center: b.prev, Half: b.half}, rel)
}

func overlapping(a, b *body) bool {
	return Box{Center: a.pos, Half: a.half}.Overlaps(Box{Center: b.pos, Half: b.half})
}

func (e *Engine) detectContacts() {
	clear(e.touched)
	e.started = e.started[:0]

	for _, h := range e.order {
		b := e.bodies[h]
		if !e.inSpace(b) {
			continue
		}
		e.space.FilterCells(e.sweptBounds(b)).FilterShapes().ByTags(tagBody).ForEach(func(shape resolv.IShape) bool {
			other, ok := e.byShape[shape]
			if !ok || other == b.collider {
				return true
			}
			ob := e.bodies[e.colliders[other]]
			if !e.inSpace(ob) {
				return true
			}
			key := newPairKey(b.collider, other)
			if _, seen := e.touched[key]; seen || !met(b, ob) {
				return true
			}
			e.touched[key] = overlapping(b, ob)
			if _, was := e.active[key]; !was {
				e.started = append(e.started, key)
			}
			return true
		})
	}

	clear(e.active)
	for k, still := range e.touched {
		if still {
			e.active[k] = struct{}{}
		}
	}
	for _, k := range e.started {
		e.events = append(e.events, ContactEvent{A: k.lo, B: k.hi})
	}
}
