package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRepeatingTimer(t *testing.T) {
	timer := NewTimer(0.15, Repeating)

	assert.False(t, timer.Tick(0.05))
	assert.False(t, timer.Tick(0.05))
	assert.True(t, timer.Tick(0.1), "0.2s elapsed, period is 0.15s")
	assert.InDelta(t, 0.1, timer.Remaining(), 1e-9)
	assert.False(t, timer.Finished(), "repeating timers never finish")

	assert.False(t, timer.Tick(0.05))
	assert.True(t, timer.Tick(0.06))
}

func TestOnceTimerFiresOnce(t *testing.T) {
	timer := NewTimer(1.5, Once)

	assert.False(t, timer.Tick(1.0))
	assert.InDelta(t, 0.5, timer.Remaining(), 1e-9)
	assert.True(t, timer.Tick(1.0))
	assert.True(t, timer.Finished())
	assert.Zero(t, timer.Remaining())
	assert.False(t, timer.Tick(5.0), "one-shot timers complete once")
	assert.True(t, timer.Finished())
}

func TestTickIgnoresNonPositiveDelta(t *testing.T) {
	timer := NewTimer(1, Repeating)
	assert.False(t, timer.Tick(0))
	assert.False(t, timer.Tick(-1))
	assert.Equal(t, 1.0, timer.Remaining())
}

func TestReset(t *testing.T) {
	timer := NewTimer(1, Once)
	timer.Tick(2)
	timer.Reset()
	assert.False(t, timer.Finished())
	assert.Equal(t, 1.0, timer.Remaining())
	assert.True(t, timer.Tick(1))
}

func TestRepeatingTimerCountsPeriods(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		duration := rapid.Float64Range(0.01, 10).Draw(t, "duration")
		steps := rapid.SliceOfN(rapid.Float64Range(0.001, 1), 1, 200).Draw(t, "steps")

		timer := NewTimer(duration, Repeating)
		total := 0.0
		completions := 0
		for _, dt := range steps {
			dt = min(dt, duration)
			total += dt
			if timer.Tick(dt) {
				completions++
			}
			if r := timer.Remaining(); r <= 0 || r > duration {
				t.Fatalf("remaining %v outside (0, %v]", r, duration)
			}
		}
		want := int(total / duration)
		if completions < want-1 || completions > want+1 {
			t.Fatalf("completions = %d, want about %d", completions, want)
		}
	})
}
