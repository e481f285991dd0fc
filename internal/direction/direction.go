// Package direction models the eight compass headings a shot can travel in.
package direction

import (
	"strconv"

	"github.com/tomz197/octoshot/internal/vmath"
)

// Direction is one of eight compass headings.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Diagonal is the per-axis magnitude of a diagonal offset. It is not
// normalized: a diagonal shot covers more ground than a cardinal one.
const Diagonal = 0.7

var names = [...]string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"}

var offsets = [...]vmath.Vec2{
	North:     {X: 0, Y: 1},
	NorthEast: {X: Diagonal, Y: Diagonal},
	East:      {X: 1, Y: 0},
	SouthEast: {X: Diagonal, Y: -Diagonal},
	South:     {X: 0, Y: -1},
	SouthWest: {X: -Diagonal, Y: -Diagonal},
	West:      {X: -1, Y: 0},
	NorthWest: {X: -Diagonal, Y: Diagonal},
}

func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Valid reports whether d is one of the eight headings.
func (d Direction) Valid() bool {
	return int(d) < len(offsets)
}

// Offset returns the heading vector for d (y points up). Cardinal headings
// are axis-aligned unit vectors, diagonals are (±0.7, ±0.7). Invalid values
// yield the zero vector.
func Offset(d Direction) vmath.Vec2 {
	if !d.Valid() {
		return vmath.Zero
	}
	return offsets[d]
}

// Velocity returns the velocity of something moving along d at speed.
func Velocity(d Direction, speed float64) vmath.Vec2 {
	return Offset(d).Scale(speed)
}

// Keys is the state of the four directional keys for one tick.
type Keys struct {
	Up, Down, Left, Right bool
}

// Classify turns held keys into a heading. Combinations are checked in a
// fixed order; when no key combination matches, prev is returned unchanged
// so the last heading sticks.
func Classify(k Keys, prev Direction) Direction {
	horizontal := k.Left || k.Right
	switch {
	case k.Up && !horizontal:
		return North
	case k.Down && !horizontal:
		return South
	case k.Up && k.Left:
		return NorthWest
	case k.Up && k.Right:
		return NorthEast
	case k.Down && k.Right:
		return SouthEast
	case k.Down && k.Left:
		return SouthWest
	case k.Right:
		return East
	case k.Left:
		return West
	}
	return prev
}
