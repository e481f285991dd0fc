package sim

import (
	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/physics"
)

// Registry maps physics bodies to the entities that own them and back.
type Registry struct {
	entities map[physics.BodyHandle]donburi.Entity
	bodies   map[donburi.Entity]physics.BodyHandle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[physics.BodyHandle]donburi.Entity),
		bodies:   make(map[donburi.Entity]physics.BodyHandle),
	}
}

// Bind records that e owns body h, replacing any previous binding of either.
func (r *Registry) Bind(h physics.BodyHandle, e donburi.Entity) {
	if old, ok := r.bodies[e]; ok {
		delete(r.entities, old)
	}
	if old, ok := r.entities[h]; ok {
		delete(r.bodies, old)
	}
	r.entities[h] = e
	r.bodies[e] = h
}

// Entity returns the owner of body h.
func (r *Registry) Entity(h physics.BodyHandle) (donburi.Entity, bool) {
	e, ok := r.entities[h]
	return e, ok
}

// Body returns the body owned by e.
func (r *Registry) Body(e donburi.Entity) (physics.BodyHandle, bool) {
	h, ok := r.bodies[e]
	return h, ok
}

// Unbind forgets the body owned by e and returns it.
func (r *Registry) Unbind(e donburi.Entity) (physics.BodyHandle, bool) {
	h, ok := r.bodies[e]
	if !ok {
		return 0, false
	}
	delete(r.bodies, e)
	delete(r.entities, h)
	return h, true
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	return len(r.entities)
}
