package sim

import (
	"github.com/tomz197/octoshot/internal/physics"
	"github.com/tomz197/octoshot/internal/vmath"
)

//go:generate go tool mockgen -destination=./mocks/physics_mock.go -package=mocks . PhysicsEngine

// PhysicsEngine is the rigid-body world the simulation drives. Translations
// and velocities are in physics units; Scale converts them to pixels.
type PhysicsEngine interface {
	CreateBody(desc physics.BodyDesc) physics.BodyHandle
	RemoveBody(h physics.BodyHandle)
	SetLinearVelocity(h physics.BodyHandle, v vmath.Vec2, wake bool)
	Translation(h physics.BodyHandle) (vmath.Vec2, bool)
	ColliderParent(c physics.ColliderHandle) (physics.BodyHandle, bool)
	DrainContactEvents() []physics.ContactEvent
	Step(dt float64)
	Scale() float64
}

var _ PhysicsEngine = (*physics.Engine)(nil)
