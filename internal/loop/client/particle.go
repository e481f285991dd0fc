package client

import (
	"math"
	"math/rand"

	"github.com/tomz197/octoshot/internal/draw"
	"github.com/tomz197/octoshot/internal/vmath"
)

// particle is a short-lived explosion fragment in arena pixels.
type particle struct {
	pos         vmath.Vec2
	vel         vmath.Vec2
	lifetime    float64 // Seconds remaining
	maxLifetime float64
	drag        float64 // Velocity kept per 1/60 s
}

// particles is the set of live explosion fragments of one client.
type particles struct {
	items []particle
	rng   *rand.Rand
}

func newParticles(rng *rand.Rand) *particles {
	return &particles{rng: rng}
}

// explode bursts count fragments out of pos in random directions.
func (ps *particles) explode(pos vmath.Vec2, count int, speed, lifetime float64) {
	for range count {
		angle := ps.rng.Float64() * 2 * math.Pi
		// Speed varies 50% to 150%, lifetime 50% to 100%.
		spd := speed * (0.5 + ps.rng.Float64())
		life := lifetime * (0.5 + ps.rng.Float64()*0.5)
		ps.items = append(ps.items, particle{
			pos:         pos,
			vel:         vmath.V(math.Cos(angle)*spd, math.Sin(angle)*spd),
			lifetime:    life,
			maxLifetime: life,
			drag:        0.95,
		})
	}
}

// update ages and moves every fragment, dropping the expired ones.
func (ps *particles) update(dt float64) {
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			continue
		}
		p.vel = p.vel.Scale(math.Pow(p.drag, dt*60)) // Normalize drag to ~60fps
		p.pos = p.pos.Add(p.vel.Scale(dt))
		kept = append(kept, p)
	}
	ps.items = kept
}

func (ps *particles) reset() {
	ps.items = ps.items[:0]
}

func (ps *particles) len() int {
	return len(ps.items)
}

// draw plots the fragments that are not yet faded.
func (ps *particles) draw(c *draw.Canvas) {
	for _, p := range ps.items {
		if p.lifetime/p.maxLifetime < 0.25 {
			continue
		}
		x, y := toCanvas(p.pos)
		c.Plot(draw.Point{X: x, Y: y})
	}
}
