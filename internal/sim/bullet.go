package sim

import (
	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/clock"
	"github.com/tomz197/octoshot/internal/component"
	"github.com/tomz197/octoshot/internal/direction"
)

// fireBullets spawns bullets for every player while Fire is held. A player
// without a cooldown fires at once and gets one; a player that already had a
// cooldown at the start of the tick fires whenever it completes.
func (w *World) fireBullets(dt float64, c Controls) {
	if !c.Fire {
		return
	}

	var fresh, cooling []donburi.Entity
	playerQuery.Each(w.ecs, func(entry *donburi.Entry) {
		if entry.HasComponent(component.FireCooldown) {
			cooling = append(cooling, entry.Entity())
		} else {
			fresh = append(fresh, entry.Entity())
		}
	})

	for _, e := range fresh {
		w.spawnBullet(e)
		entry := w.ecs.Entry(e)
		entry.AddComponent(component.FireCooldown)
		component.FireCooldown.SetValue(entry, clock.NewTimer(w.tuning.Bullet.FireCooldown, clock.Repeating))
	}

	for _, e := range cooling {
		if !w.ecs.Valid(e) {
			continue
		}
		cooldown := component.FireCooldown.Get(w.ecs.Entry(e))
		if cooldown.Tick(dt) {
			w.spawnBullet(e)
		}
	}
}

// spawnBullet creates a bullet at the shooter's position. Its body is placed
// SpawnDistance pixels along the shooter's aim.
func (w *World) spawnBullet(shooter donburi.Entity) {
	entry := w.ecs.Entry(shooter)
	pos := component.Transform.Get(entry).Position
	aim := direction.West
	if entry.HasComponent(component.Aim) {
		aim = *component.Aim.Get(entry)
	}

	b := w.tuning.Bullet
	bodyAt := pos.Add(direction.Offset(aim).Scale(b.SpawnDistance))
	bullet := w.spawnBody(pos, bodyAt, b.Size, false, component.Bullet, component.Lifetime)
	component.Bullet.SetValue(bullet, component.BulletData{Speed: b.Speed, Direction: aim})
	component.Lifetime.SetValue(bullet, clock.NewTimer(b.Lifetime, clock.Once))

	w.report.BulletsFired++
	w.logger.Debug("bullet fired", "entity", bullet.Entity(), "direction", aim)
}

// moveBullets re-asserts every bullet's velocity each time the move interval
// elapses.
func (w *World) moveBullets(dt float64) {
	if !w.bulletMove.Tick(dt) {
		return
	}
	bulletQuery.Each(w.ecs, func(entry *donburi.Entry) {
		b := component.Bullet.Get(entry)
		w.engine.SetLinearVelocity(component.Body.Get(entry).Handle, direction.Velocity(b.Direction, b.Speed), true)
	})
}

// expireBullets despawns bullets whose lifetime completed this tick.
func (w *World) expireBullets(dt float64) {
	var expired []donburi.Entity
	component.Lifetime.Each(w.ecs, func(entry *donburi.Entry) {
		if component.Lifetime.Get(entry).Tick(dt) {
			expired = append(expired, entry.Entity())
		}
	})
	for _, e := range expired {
		if w.despawn(e) {
			w.report.BulletsExpired++
		}
	}
}
