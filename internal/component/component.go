// Package component declares the entity components and tags of the game
// world.
package component

import (
	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/clock"
	"github.com/tomz197/octoshot/internal/direction"
	"github.com/tomz197/octoshot/internal/physics"
	"github.com/tomz197/octoshot/internal/vmath"
)

// PlayerData is the movement state of a player. Velocity is in physics
// units per second.
type PlayerData struct {
	MaxVelocity  float64
	Acceleration float64
	Velocity     vmath.Vec2
}

// BulletData is a projectile travelling at a fixed speed along Direction.
type BulletData struct {
	Speed     float64
	Direction direction.Direction
}

// TransformData is the on-screen position of an entity in pixels, y up.
type TransformData struct {
	Position vmath.Vec2
	// HalfExtents of the entity's box in pixels, used for drawing.
	HalfExtents vmath.Vec2
}

// BodyData links an entity to its physics body.
type BodyData struct {
	Handle physics.BodyHandle
}

var (
	Player    = donburi.NewComponentType[PlayerData]()
	Bullet    = donburi.NewComponentType[BulletData]()
	Transform = donburi.NewComponentType[TransformData]()
	Body      = donburi.NewComponentType[BodyData]()

	// Aim is the last heading resolved from the player's keys.
	Aim = donburi.NewComponentType[direction.Direction]()

	// FireCooldown is attached to a player the first time it fires and
	// gates every later shot.
	FireCooldown = donburi.NewComponentType[clock.Timer]()

	// Lifetime despawns a bullet when it completes.
	Lifetime = donburi.NewComponentType[clock.Timer]()

	// Enemy marks enemy entities.
	Enemy = donburi.NewTag()
)
