// Package physics provides the rigid-body engine used by the simulation and
// the box geometry it is built on.
package physics

import (
	"math"

	"github.com/tomz197/octoshot/internal/vmath"
)

// Box is an axis-aligned rectangle given by its center and half extents.
type Box struct {
	Center vmath.Vec2
	Half   vmath.Vec2
}

// Min returns the lower-left corner.
func (b Box) Min() vmath.Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the upper-right corner.
func (b Box) Max() vmath.Vec2 {
	return b.Center.Add(b.Half)
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.Center.X-o.Center.X) < b.Half.X+o.Half.X &&
		math.Abs(b.Center.Y-o.Center.Y) < b.Half.Y+o.Half.Y
}

// Sweep reports whether b overlaps o at any point while moving by d. o is
// held still; for two moving boxes pass the relative displacement. Touching
// edges do not count.
func (b Box) Sweep(o Box, d vmath.Vec2) bool {
	half := b.Half.Add(o.Half)
	enter, exit := 0.0, 1.0
	for _, ax := range [2][4]float64{
		{b.Center.X, d.X, o.Center.X, half.X},
		{b.Center.Y, d.Y, o.Center.Y, half.Y},
	} {
		p, dp, c, h := ax[0], ax[1], ax[2], ax[3]
		if dp == 0 {
			if math.Abs(p-c) >= h {
				return false
			}
			continue
		}
		t0, t1 := (c-h-p)/dp, (c+h-p)/dp
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		enter, exit = max(enter, t0), min(exit, t1)
		if enter >= exit {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside b (edges inclusive).
func (b Box) Contains(p vmath.Vec2) bool {
	return math.Abs(p.X-b.Center.X) <= b.Half.X && math.Abs(p.Y-b.Center.Y) <= b.Half.Y
}

// KeepInside moves b the minimum amount needed to fit inside bounds and
// reports on which axes it had to be moved. A box larger than bounds is
// centered on that axis.
func (b Box) KeepInside(bounds Box) (moved Box, hitX, hitY bool) {
	moved = b
	moved.Center.X, hitX = clampAxis(b.Center.X, b.Half.X, bounds.Center.X, bounds.Half.X)
	moved.Center.Y, hitY = clampAxis(b.Center.Y, b.Half.Y, bounds.Center.Y, bounds.Half.Y)
	return moved, hitX, hitY
}

func clampAxis(c, half, boundsCenter, boundsHalf float64) (float64, bool) {
	room := boundsHalf - half
	if room < 0 {
		return boundsCenter, c != boundsCenter
	}
	lo, hi := boundsCenter-room, boundsCenter+room
	switch {
	case c < lo:
		return lo, true
	case c > hi:
		return hi, true
	}
	return c, false
}
