package sim

import (
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/component"
	"github.com/tomz197/octoshot/internal/physics"
	"github.com/tomz197/octoshot/internal/vmath"
)

// RandomPosition picks a spawn point inside arena that keeps buffer distance
// from player on each axis where that is possible. Each axis is sampled
// independently from the range above the player, the range below it, or a
// uniformly chosen one of the two when both exist. An axis with no room on
// either side falls back to 0.
func RandomPosition(rng *rand.Rand, player vmath.Vec2, arena physics.Box, buffer float64) vmath.Vec2 {
	lo, hi := arena.Min(), arena.Max()
	return vmath.V(
		randomAxis(rng, player.X, lo.X, hi.X, buffer),
		randomAxis(rng, player.Y, lo.Y, hi.Y, buffer),
	)
}

func randomAxis(rng *rand.Rand, p, lo, hi, buffer float64) float64 {
	above := p+buffer < hi
	below := lo < p-buffer

	switch {
	case above && below:
		if rng.Intn(2) == 0 {
			return uniform(rng, p+buffer, hi)
		}
		return uniform(rng, lo, p-buffer)
	case above:
		return uniform(rng, p+buffer, hi)
	case below:
		return uniform(rng, lo, p-buffer)
	}
	return 0
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// spawnEnemies places one enemy per player whenever the spawn interval
// elapses, as long as fewer than Cap enemies are alive.
func (w *World) spawnEnemies(dt float64) {
	if !w.enemySpawn.Tick(dt) || w.enemies >= w.tuning.Enemy.Cap {
		return
	}

	var targets []vmath.Vec2
	playerQuery.Each(w.ecs, func(entry *donburi.Entry) {
		if entry.HasComponent(component.Transform) {
			targets = append(targets, component.Transform.Get(entry).Position)
		}
	})

	for _, p := range targets {
		if w.enemies >= w.tuning.Enemy.Cap {
			break
		}
		pos := RandomPosition(w.rng, p, w.arena, w.tuning.Enemy.SpawnBuffer)
		w.spawnEnemy(pos)
	}
}

func (w *World) spawnEnemy(pos vmath.Vec2) donburi.Entity {
	entry := w.spawnBody(pos, pos, w.tuning.Enemy.Size, false, component.Enemy)
	w.enemies++
	w.report.EnemiesSpawned++
	w.logger.Debug("enemy spawned", "entity", entry.Entity(), "x", pos.X, "y", pos.Y, "alive", w.enemies)
	return entry.Entity()
}
