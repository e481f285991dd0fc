package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	assert.Equal(t, V(4, 2), a.Add(b))
	assert.Equal(t, V(2, 6), a.Sub(b))
	assert.Equal(t, V(6, 8), a.Scale(2))
	assert.Equal(t, V(1.5, 2), a.Div(2))
	assert.InDelta(t, 5.0, a.Len(), 1e-12)
}

func TestDivByZero(t *testing.T) {
	assert.True(t, V(3, 4).Div(0).IsZero())
}

func TestClamp(t *testing.T) {
	lo, hi := V(-1, -1), V(1, 1)
	assert.Equal(t, V(1, -1), V(5, -5).Clamp(lo, hi))
	assert.Equal(t, V(0.5, 0), V(0.5, 0).Clamp(lo, hi))
}
