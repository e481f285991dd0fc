// Package sim runs the shooter simulation: player movement, firing, bullet
// lifetime, enemy spawning and contact resolution, one fixed-order tick at a
// time.
package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/tomz197/octoshot/internal/clock"
	"github.com/tomz197/octoshot/internal/component"
	"github.com/tomz197/octoshot/internal/config"
	"github.com/tomz197/octoshot/internal/direction"
	"github.com/tomz197/octoshot/internal/physics"
	"github.com/tomz197/octoshot/internal/vmath"
)

var (
	playerQuery = query.NewQuery(filter.Contains(component.Player))
	bulletQuery = query.NewQuery(filter.Contains(component.Bullet, component.Body))
	enemyQuery  = query.NewQuery(filter.Contains(component.Enemy, component.Transform))
	bodyQuery   = query.NewQuery(filter.Contains(component.Body, component.Transform))
)

// Controls is the input for one tick.
type Controls struct {
	direction.Keys
	Fire bool
}

// Options configures a World. Zero fields get defaults.
type Options struct {
	Tuning config.Tuning
	Rand   *rand.Rand
	Logger *log.Logger
}

// Report summarizes what happened during one tick.
type Report struct {
	Tick           uint64
	BulletsFired   int
	BulletsExpired int
	EnemiesSpawned int
	// Kills counts enemies destroyed by bullets.
	Kills int
	// PlayerHits counts enemies that ran into a player.
	PlayerHits int
	Contacts   []Contact
	// Explosions are pixel positions of destroyed enemies.
	Explosions []vmath.Vec2
}

// World owns the entity store, the physics engine and all simulation
// timers. It is not safe for concurrent use.
type World struct {
	ecs      donburi.World
	engine   PhysicsEngine
	registry *Registry
	tuning   config.Tuning
	arena    physics.Box
	rng      *rand.Rand
	logger   *log.Logger

	bulletMove clock.Timer
	enemySpawn clock.Timer
	enemies    int
	ticks      uint64
	report     Report
}

// NewWorld creates an empty world driving engine.
func NewWorld(engine PhysicsEngine, opts Options) *World {
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	t := opts.Tuning

	return &World{
		ecs:        donburi.NewWorld(),
		engine:     engine,
		registry:   NewRegistry(),
		tuning:     t,
		arena:      physics.Box{Half: vmath.V(t.Arena.HalfWidth, t.Arena.HalfHeight)},
		rng:        opts.Rand,
		logger:     opts.Logger,
		bulletMove: clock.NewTimer(t.Bullet.MoveInterval, clock.Repeating),
		enemySpawn: clock.NewTimer(t.Enemy.SpawnInterval, clock.Repeating),
	}
}

// EngineConfig returns a physics engine configuration matching t. The
// collision space extends past the arena far enough to hold a bullet fired
// from the arena edge for its whole lifetime.
func EngineConfig(t config.Tuning) physics.EngineConfig {
	cfg := physics.DefaultEngineConfig()
	cfg.Scale = t.Physics.Scale
	cfg.ArenaHalfWidth = t.Arena.HalfWidth
	cfg.ArenaHalfHeight = t.Arena.HalfHeight
	cfg.Margin = t.Bullet.Speed*t.Bullet.Lifetime*t.Physics.Scale + t.Bullet.SpawnDistance + t.Bullet.Size
	return cfg
}

// Tick advances the simulation by dt seconds: movement, firing, bullet
// velocity, enemy spawning, bullet expiry, contact resolution, physics step
// and transform sync, in that order.
func (w *World) Tick(dt float64, c Controls) Report {
	w.report = Report{Tick: w.ticks}
	w.ticks++

	w.movePlayers(dt, c)
	w.fireBullets(dt, c)
	w.moveBullets(dt)
	w.spawnEnemies(dt)
	w.expireBullets(dt)
	w.resolveContacts()

	w.engine.Step(dt)
	w.syncTransforms()

	return w.report
}

// SpawnPlayer creates a player at pos (pixels) aiming West.
func (w *World) SpawnPlayer(pos vmath.Vec2) donburi.Entity {
	p := w.tuning.Player
	entry := w.spawnBody(pos, pos, p.Size, true, component.Player, component.Aim)
	component.Player.SetValue(entry, component.PlayerData{
		MaxVelocity:  p.MaxVelocity,
		Acceleration: p.Acceleration,
	})
	component.Aim.SetValue(entry, direction.West)
	w.logger.Debug("player spawned", "entity", entry.Entity(), "x", pos.X, "y", pos.Y)
	return entry.Entity()
}

// EnemyCount returns the number of live enemies.
func (w *World) EnemyCount() int {
	return w.enemies
}

// BulletCount returns the number of live bullets.
func (w *World) BulletCount() int {
	return bulletQuery.Count(w.ecs)
}

// Alive reports whether e has not been despawned.
func (w *World) Alive(e donburi.Entity) bool {
	return w.ecs.Valid(e)
}

// spawnBody creates an entity with a box body of the given pixel size. The
// entity's transform starts at at, its body at bodyAt.
func (w *World) spawnBody(at, bodyAt vmath.Vec2, size float64, contained bool, extra ...donburi.IComponentType) *donburi.Entry {
	scale := w.engine.Scale()
	half := vmath.V(size/2, size/2)

	h := w.engine.CreateBody(physics.BodyDesc{
		Translation: bodyAt.Div(scale),
		HalfExtents: half.Div(scale),
		Contained:   contained,
	})

	types := append([]donburi.IComponentType{component.Transform, component.Body}, extra...)
	e := w.ecs.Create(types...)
	entry := w.ecs.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{Position: at, HalfExtents: half})
	component.Body.SetValue(entry, component.BodyData{Handle: h})
	w.registry.Bind(h, e)
	return entry
}

// despawn removes e, its body and its registry binding. It returns false
// when e was already gone.
func (w *World) despawn(e donburi.Entity) bool {
	if !w.ecs.Valid(e) {
		return false
	}
	entry := w.ecs.Entry(e)
	if h, ok := w.registry.Unbind(e); ok {
		w.engine.RemoveBody(h)
	}
	if entry.HasComponent(component.Enemy) {
		w.enemies--
	}
	w.ecs.Remove(e)
	return true
}

func (w *World) position(e donburi.Entity) (vmath.Vec2, bool) {
	if !w.ecs.Valid(e) {
		return vmath.Zero, false
	}
	entry := w.ecs.Entry(e)
	if !entry.HasComponent(component.Transform) {
		return vmath.Zero, false
	}
	return component.Transform.Get(entry).Position, true
}

func bodyOf(entry *donburi.Entry) (physics.BodyHandle, bool) {
	if !entry.HasComponent(component.Body) {
		return 0, false
	}
	return component.Body.Get(entry).Handle, true
}

func (w *World) syncTransforms() {
	scale := w.engine.Scale()
	bodyQuery.Each(w.ecs, func(entry *donburi.Entry) {
		pos, ok := w.engine.Translation(component.Body.Get(entry).Handle)
		if !ok {
			return
		}
		component.Transform.Get(entry).Position = pos.Scale(scale)
	})
}
