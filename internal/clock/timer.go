// Package clock provides cooldown timers advanced by externally supplied
// elapsed time.
package clock

import "math"

// Mode selects what a Timer does once its duration has elapsed.
type Mode uint8

const (
	Once      Mode = iota // stops when finished
	Repeating             // wraps around and keeps running
)

// Timer accumulates elapsed seconds and reports when a duration completes.
type Timer struct {
	duration float64
	elapsed  float64
	mode     Mode
	finished bool
}

// NewTimer creates a timer that completes every duration seconds.
func NewTimer(duration float64, mode Mode) Timer {
	return Timer{duration: duration, mode: mode}
}

// Tick advances the timer by dt seconds and reports whether it completed
// during this tick. A repeating timer that covers several periods in one
// tick still reports a single completion and keeps the remainder.
func (t *Timer) Tick(dt float64) bool {
	if dt <= 0 || t.finished {
		return false
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}

	switch {
	case t.mode == Once:
		t.elapsed = t.duration
		t.finished = true
	case t.duration <= 0:
		t.elapsed = 0
	default:
		t.elapsed = math.Mod(t.elapsed, t.duration)
	}
	return true
}

// Finished reports whether a one-shot timer has completed. Repeating timers
// never finish.
func (t *Timer) Finished() bool {
	return t.finished
}

// Remaining returns the seconds left in the current period.
func (t *Timer) Remaining() float64 {
	return t.duration - t.elapsed
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}
