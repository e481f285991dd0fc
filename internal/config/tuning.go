package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidTuning is returned when a tuning file decodes but holds values
// the game cannot run with.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. Distances are in pixels, times in
// seconds, player and bullet speeds in physics units per second.
type Tuning struct {
	Arena   ArenaTuning   `toml:"arena"`
	Physics PhysicsTuning `toml:"physics"`
	Player  PlayerTuning  `toml:"player"`
	Bullet  BulletTuning  `toml:"bullet"`
	Enemy   EnemyTuning   `toml:"enemy"`
}

// ArenaTuning is the playable area, centered on the origin.
type ArenaTuning struct {
	HalfWidth  float64 `toml:"half_width"`
	HalfHeight float64 `toml:"half_height"`
}

// PhysicsTuning configures the rigid-body engine.
type PhysicsTuning struct {
	Scale float64 `toml:"scale"` // pixels per physics unit
}

// PlayerTuning configures the player body and movement.
type PlayerTuning struct {
	MaxVelocity  float64 `toml:"max_velocity"`
	Acceleration float64 `toml:"acceleration"`
	Size         float64 `toml:"size"`
}

// BulletTuning configures firing and projectiles.
type BulletTuning struct {
	Speed         float64 `toml:"speed"`
	FireCooldown  float64 `toml:"fire_cooldown"`
	Lifetime      float64 `toml:"lifetime"`
	MoveInterval  float64 `toml:"move_interval"`
	SpawnDistance float64 `toml:"spawn_distance"`
	Size          float64 `toml:"size"`
}

// EnemyTuning configures the enemy spawner.
type EnemyTuning struct {
	SpawnInterval float64 `toml:"spawn_interval"`
	Cap           int     `toml:"cap"`
	SpawnBuffer   float64 `toml:"spawn_buffer"`
	Size          float64 `toml:"size"`
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		Arena:   ArenaTuning{HalfWidth: 640, HalfHeight: 360},
		Physics: PhysicsTuning{Scale: 20},
		Player: PlayerTuning{
			MaxVelocity:  20,
			Acceleration: 50,
			Size:         40,
		},
		Bullet: BulletTuning{
			Speed:         30,
			FireCooldown:  0.15,
			Lifetime:      1.5,
			MoveInterval:  0.1,
			SpawnDistance: 21,
			Size:          5,
		},
		Enemy: EnemyTuning{
			SpawnInterval: 3.0,
			Cap:           20,
			SpawnBuffer:   50,
			Size:          30,
		},
	}
}

// LoadTuning reads a TOML file on top of DefaultTuning. Keys missing from the
// file keep their defaults; unknown keys are rejected.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Tuning{}, fmt.Errorf("decode tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Tuning{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidTuning, path, strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks that every value is usable.
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"arena.half_width", t.Arena.HalfWidth},
		{"arena.half_height", t.Arena.HalfHeight},
		{"physics.scale", t.Physics.Scale},
		{"player.max_velocity", t.Player.MaxVelocity},
		{"player.acceleration", t.Player.Acceleration},
		{"player.size", t.Player.Size},
		{"bullet.speed", t.Bullet.Speed},
		{"bullet.fire_cooldown", t.Bullet.FireCooldown},
		{"bullet.lifetime", t.Bullet.Lifetime},
		{"bullet.move_interval", t.Bullet.MoveInterval},
		{"bullet.size", t.Bullet.Size},
		{"enemy.spawn_interval", t.Enemy.SpawnInterval},
		{"enemy.size", t.Enemy.Size},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.value)
		}
	}
	if t.Bullet.SpawnDistance < 0 {
		return fmt.Errorf("%w: bullet.spawn_distance must not be negative", ErrInvalidTuning)
	}
	if t.Enemy.SpawnBuffer < 0 {
		return fmt.Errorf("%w: enemy.spawn_buffer must not be negative", ErrInvalidTuning)
	}
	if t.Enemy.Cap < 0 {
		return fmt.Errorf("%w: enemy.cap must not be negative", ErrInvalidTuning)
	}
	return nil
}
