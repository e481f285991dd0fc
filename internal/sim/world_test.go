package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/config"
	"github.com/tomz197/octoshot/internal/physics"
	"github.com/tomz197/octoshot/internal/vmath"
)

const testDt = 0.05

func newTestWorld(t *testing.T, tuning config.Tuning) *World {
	t.Helper()
	return NewWorld(physics.NewEngine(EngineConfig(tuning)), Options{
		Tuning: tuning,
		Rand:   rand.New(rand.NewSource(1)),
	})
}

func tickN(w *World, n int, c Controls) Report {
	var total Report
	for range n {
		r := w.Tick(testDt, c)
		total.BulletsFired += r.BulletsFired
		total.BulletsExpired += r.BulletsExpired
		total.EnemiesSpawned += r.EnemiesSpawned
		total.Kills += r.Kills
		total.PlayerHits += r.PlayerHits
		total.Explosions = append(total.Explosions, r.Explosions...)
	}
	return total
}

func bulletSprites(w *World) []Sprite {
	var out []Sprite
	for _, s := range w.Sprites(nil) {
		if s.Kind == SpriteBullet {
			out = append(out, s)
		}
	}
	return out
}

func TestFireRespectsCooldown(t *testing.T) {
	w := newTestWorld(t, config.DefaultTuning())
	w.SpawnPlayer(vmath.Zero)
	fire := Controls{Fire: true}

	tickN(w, 3, fire)
	assert.Equal(t, 1, w.BulletCount(), "first shot is immediate, the next waits 0.15s")

	tickN(w, 1, fire)
	assert.Equal(t, 2, w.BulletCount())
}

func TestNoFireWithoutTrigger(t *testing.T) {
	w := newTestWorld(t, config.DefaultTuning())
	w.SpawnPlayer(vmath.Zero)

	r := tickN(w, 10, Controls{})
	assert.Zero(t, r.BulletsFired)
	assert.Zero(t, w.BulletCount())
}

func TestBulletSpawnsAlongAim(t *testing.T) {
	w := newTestWorld(t, config.DefaultTuning())
	w.SpawnPlayer(vmath.Zero)

	w.Tick(testDt, Controls{Fire: true})

	bullets := bulletSprites(w)
	require.Len(t, bullets, 1)
	assert.InDelta(t, -21.0, bullets[0].Position.X, 1e-9)
	assert.InDelta(t, 0.0, bullets[0].Position.Y, 1e-9)
	assert.Equal(t, vmath.V(2.5, 2.5), bullets[0].HalfExtents)
}

func TestBulletExpires(t *testing.T) {
	w := newTestWorld(t, config.DefaultTuning())
	w.SpawnPlayer(vmath.Zero)

	w.Tick(testDt, Controls{Fire: true})
	tickN(w, 25, Controls{})
	require.Equal(t, 1, w.BulletCount())

	r := tickN(w, 10, Controls{})
	assert.Zero(t, w.BulletCount())
	assert.Equal(t, 1, r.BulletsExpired)
}

func TestBulletTravelsWest(t *testing.T) {
	w := newTestWorld(t, config.DefaultTuning())
	w.SpawnPlayer(vmath.Zero)

	w.Tick(testDt, Controls{Fire: true})
	tickN(w, 3, Controls{})

	bullets := bulletSprites(w)
	require.Len(t, bullets, 1)
	assert.Less(t, bullets[0].Position.X, -21.0)
}

func TestEnemySpawnsOnInterval(t *testing.T) {
	w := newTestWorld(t, config.DefaultTuning())
	w.SpawnPlayer(vmath.Zero)

	r := tickN(w, 55, Controls{})
	assert.Zero(t, r.EnemiesSpawned)

	r = tickN(w, 10, Controls{})
	assert.Equal(t, 1, r.EnemiesSpawned)
	assert.Equal(t, 1, w.EnemyCount())
	assert.Zero(t, r.PlayerHits, "enemies keep their distance from the player")
}

func TestEnemyCapBoundsLiveEnemies(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Enemy.SpawnInterval = 0.1
	tuning.Enemy.Cap = 2
	w := newTestWorld(t, tuning)
	w.SpawnPlayer(vmath.Zero)

	tickN(w, 20, Controls{})
	require.Equal(t, 2, w.EnemyCount())

	var victim donburi.Entity
	enemyQuery.Each(w.ecs, func(entry *donburi.Entry) {
		victim = entry.Entity()
	})
	require.True(t, w.despawn(victim))
	assert.Equal(t, 1, w.EnemyCount())

	tickN(w, 2, Controls{})
	assert.Equal(t, 2, w.EnemyCount())
}

func TestBulletKillsEnemy(t *testing.T) {
	w := newTestWorld(t, config.DefaultTuning())
	w.SpawnPlayer(vmath.Zero)
	enemy := w.spawnEnemy(vmath.V(-120, 0))

	r := w.Tick(testDt, Controls{Fire: true})
	r2 := tickN(w, 10, Controls{})

	assert.Equal(t, 1, r.BulletsFired+r2.BulletsFired)
	assert.Equal(t, 1, r2.Kills)
	assert.False(t, w.Alive(enemy))
	assert.Zero(t, w.EnemyCount())
	assert.Zero(t, w.BulletCount())
	require.Len(t, r2.Explosions, 1)
	assert.InDelta(t, -120.0, r2.Explosions[0].X, 1e-9)
}

func TestPlayerStaysInArena(t *testing.T) {
	w := newTestWorld(t, config.DefaultTuning())
	w.SpawnPlayer(vmath.Zero)

	right := Controls{}
	right.Right = true
	tickN(w, 200, right)

	var player Sprite
	for _, s := range w.Sprites(nil) {
		if s.Kind == SpritePlayer {
			player = s
		}
	}
	assert.InDelta(t, 620.0, player.Position.X, 1e-6)
}

func TestEngineConfigMargin(t *testing.T) {
	cfg := EngineConfig(config.DefaultTuning())
	assert.Equal(t, 20.0, cfg.Scale)
	assert.InDelta(t, 30*1.5*20+21+5, cfg.Margin, 1e-9)
}
