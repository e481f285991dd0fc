package sim

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/tomz197/octoshot/internal/component"
	"github.com/tomz197/octoshot/internal/direction"
	"github.com/tomz197/octoshot/internal/vmath"
)

// Intent converts held keys to a push direction with components in
// {-1, 0, 1}. Up wins over Down and Left wins over Right.
func Intent(k direction.Keys) vmath.Vec2 {
	var x, y float64
	if k.Up {
		y = 1
	} else if k.Down {
		y = -1
	}
	if k.Left {
		x = -1
	} else if k.Right {
		x = 1
	}
	return vmath.V(x, y)
}

// NextVelocity returns the player's velocity after one tick of dt seconds
// pushing along intent. An axis whose unclamped velocity exceeds MaxVelocity
// is set to MaxVelocity along that axis' intent, which stops the axis when
// nothing pushes it. Friction is applied last.
func NextVelocity(p component.PlayerData, intent vmath.Vec2, dt float64) vmath.Vec2 {
	return vmath.V(
		nextAxis(p.Velocity.X, intent.X, p, dt),
		nextAxis(p.Velocity.Y, intent.Y, p, dt),
	)
}

func nextAxis(v, intent float64, p component.PlayerData, dt float64) float64 {
	candidate := v + p.Acceleration*dt*intent
	if p.MaxVelocity < math.Abs(candidate) {
		candidate = p.MaxVelocity * intent
	}
	return ApplyFriction(candidate)
}

// movePlayers updates every player's velocity and aim and pushes the
// velocity to its body.
func (w *World) movePlayers(dt float64, c Controls) {
	intent := Intent(c.Keys)
	playerQuery.Each(w.ecs, func(entry *donburi.Entry) {
		p := component.Player.Get(entry)
		p.Velocity = NextVelocity(*p, intent, dt)

		if entry.HasComponent(component.Aim) {
			aim := component.Aim.Get(entry)
			*aim = direction.Classify(c.Keys, *aim)
		}

		if h, ok := bodyOf(entry); ok {
			w.engine.SetLinearVelocity(h, p.Velocity, true)
		}
	})
}
