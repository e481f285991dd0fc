// Package input turns a raw terminal byte stream into held-key state.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/octoshot/internal/direction"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only repeat keys, they never report releases.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Fire    bool
	Enter   bool
	Escape  bool
	Pressed []byte
}

// Keys returns the held movement keys.
func (in Input) Keys() direction.Keys {
	return direction.Keys{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}
}

// Start reports whether a key that leaves a menu screen is held.
func (in Input) Start() bool {
	return in.Fire || in.Enter
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	up     time.Time
	down   time.Time
	fire   time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.drain()
	s.state.apply(buf, now)
	in := s.state.input(now)
	in.Pressed = buf
	return in
}

// ResetKeyInput forgets every held key and discards unread bytes, so a key
// that started a game does not also act inside it.
func ResetKeyInput(s *Stream) {
	s.drain()
	s.state = keyState{}
}

func (s *Stream) drain() []byte {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// apply parses buf and updates the key timestamps.
func (k *keyState) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				k.up = now
				i += 2
				continue
			case 'B':
				k.down = now
				i += 2
				continue
			case 'C':
				k.right = now
				i += 2
				continue
			case 'D':
				k.left = now
				i += 2
				continue
			}
		}

		k.applyByte(b, now)
	}
}

func (k *keyState) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		k.quit = now
	case 'a', 'A', 'h', 'H':
		k.left = now
	case 'd', 'D', 'l', 'L':
		k.right = now
	case 'w', 'W', 'k', 'K':
		k.up = now
	case 's', 'S', 'j', 'J':
		k.down = now
	case ' ':
		k.fire = now
	case '\n', '\r':
		k.enter = now
	case '\x1b':
		k.escape = now
	}
}

// input builds the held-key view: keys are held if seen within keyHoldDuration.
func (k *keyState) input(now time.Time) Input {
	held := func(t time.Time) bool {
		return now.Sub(t) < keyHoldDuration
	}
	return Input{
		Quit:   held(k.quit),
		Left:   held(k.left),
		Right:  held(k.right),
		Up:     held(k.up),
		Down:   held(k.down),
		Fire:   held(k.fire),
		Enter:  held(k.enter),
		Escape: held(k.escape),
	}
}
