package sim

import (
	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/component"
	"github.com/tomz197/octoshot/internal/direction"
	"github.com/tomz197/octoshot/internal/vmath"
)

// SpriteKind tells the renderer how to draw a sprite.
type SpriteKind uint8

const (
	SpritePlayer SpriteKind = iota
	SpriteBullet
	SpriteEnemy
)

// Sprite is a read-only view of one live entity, in pixels.
type Sprite struct {
	Kind        SpriteKind
	Position    vmath.Vec2
	HalfExtents vmath.Vec2
	Aim         direction.Direction
}

// Sprites appends a view of every drawable entity to dst: enemies first,
// then bullets, then players.
func (w *World) Sprites(dst []Sprite) []Sprite {
	enemyQuery.Each(w.ecs, func(entry *donburi.Entry) {
		dst = append(dst, spriteOf(entry, SpriteEnemy))
	})
	bulletQuery.Each(w.ecs, func(entry *donburi.Entry) {
		if entry.HasComponent(component.Transform) {
			dst = append(dst, spriteOf(entry, SpriteBullet))
		}
	})
	playerQuery.Each(w.ecs, func(entry *donburi.Entry) {
		if entry.HasComponent(component.Transform) {
			dst = append(dst, spriteOf(entry, SpritePlayer))
		}
	})
	return dst
}

func spriteOf(entry *donburi.Entry, kind SpriteKind) Sprite {
	t := component.Transform.Get(entry)
	s := Sprite{Kind: kind, Position: t.Position, HalfExtents: t.HalfExtents}
	if entry.HasComponent(component.Aim) {
		s.Aim = *component.Aim.Get(entry)
	}
	return s
}
