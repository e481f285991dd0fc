package sim

import "math"

const (
	frictionPositiveStep = 0.1
	frictionNegativeStep = 0.3
	frictionFactor       = 0.02
)

// ApplyFriction returns the next-tick velocity of one axis at rest. Positive
// velocities lose 0.1 and negative ones gain 0.3 before a further 2% decay;
// a velocity that would cross zero stops at exactly zero.
func ApplyFriction(v float64) float64 {
	switch {
	case v > 0:
		v -= frictionPositiveStep
		if v < 0 {
			return 0
		}
		return v - frictionFactor*v
	case v < 0:
		v += frictionNegativeStep
		if v > 0 {
			return 0
		}
		return v + frictionFactor*math.Abs(v)
	}
	return 0
}
