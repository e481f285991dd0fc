package sim

import (
	"strconv"

	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/component"
	"github.com/tomz197/octoshot/internal/physics"
)

// ContactKind classifies a contact between two entities.
type ContactKind uint8

const (
	// BulletEnemy is a bullet touching an enemy. First is the bullet.
	BulletEnemy ContactKind = iota + 1
	// EnemyPlayer is an enemy touching a player. First is the enemy.
	EnemyPlayer
)

func (k ContactKind) String() string {
	switch k {
	case BulletEnemy:
		return "BulletEnemy"
	case EnemyPlayer:
		return "EnemyPlayer"
	}
	return "ContactKind(" + strconv.Itoa(int(k)) + ")"
}

// Contact is a classified contact event, valid for the tick that produced
// it.
type Contact struct {
	Kind          ContactKind
	First, Second donburi.Entity
}

// resolveContacts drains the engine's contact events, classifies all of them
// against the live entities and then applies their effects in drain order.
// Events whose colliders no longer map to live entities are skipped.
func (w *World) resolveContacts() {
	events := w.engine.DrainContactEvents()
	if len(events) == 0 {
		return
	}

	contacts := w.classifyContacts(events)
	w.report.Contacts = contacts
	for _, c := range contacts {
		w.applyContact(c)
	}
}

func (w *World) classifyContacts(events []physics.ContactEvent) []Contact {
	var contacts []Contact
	for _, ev := range events {
		a, okA := w.entryOf(ev.A)
		b, okB := w.entryOf(ev.B)
		if !okA || !okB {
			w.logger.Debug("contact skipped", "a", ev.A, "b", ev.B)
			continue
		}
		if c, ok := classifyPair(a, b); ok {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// entryOf follows a collider to its body and the body to its live entity.
func (w *World) entryOf(c physics.ColliderHandle) (*donburi.Entry, bool) {
	h, ok := w.engine.ColliderParent(c)
	if !ok {
		return nil, false
	}
	e, ok := w.registry.Entity(h)
	if !ok || !w.ecs.Valid(e) {
		return nil, false
	}
	return w.ecs.Entry(e), true
}

func classifyPair(a, b *donburi.Entry) (Contact, bool) {
	switch {
	case a.HasComponent(component.Bullet) && b.HasComponent(component.Enemy):
		return Contact{Kind: BulletEnemy, First: a.Entity(), Second: b.Entity()}, true
	case b.HasComponent(component.Bullet) && a.HasComponent(component.Enemy):
		return Contact{Kind: BulletEnemy, First: b.Entity(), Second: a.Entity()}, true
	case a.HasComponent(component.Enemy) && b.HasComponent(component.Player):
		return Contact{Kind: EnemyPlayer, First: a.Entity(), Second: b.Entity()}, true
	case b.HasComponent(component.Enemy) && a.HasComponent(component.Player):
		return Contact{Kind: EnemyPlayer, First: b.Entity(), Second: a.Entity()}, true
	}
	return Contact{}, false
}

func (w *World) applyContact(c Contact) {
	switch c.Kind {
	case BulletEnemy:
		pos, _ := w.position(c.Second)
		w.despawn(c.First)
		if w.despawn(c.Second) {
			w.report.Kills++
			w.report.Explosions = append(w.report.Explosions, pos)
			w.logger.Debug("enemy shot", "bullet", c.First, "enemy", c.Second, "alive", w.enemies)
		}
	case EnemyPlayer:
		pos, _ := w.position(c.First)
		if w.despawn(c.First) {
			w.report.PlayerHits++
			w.report.Explosions = append(w.report.Explosions, pos)
			w.logger.Debug("player hit", "enemy", c.First, "player", c.Second)
		}
	}
}
