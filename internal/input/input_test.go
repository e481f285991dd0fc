package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/octoshot/internal/direction"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestApplyParsesKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"wasd", "wa", Input{Up: true, Left: true}},
		{"vim", "jl", Input{Down: true, Right: true}},
		{"arrows", "\x1b[A\x1b[C", Input{Up: true, Right: true}},
		{"fire", " ", Input{Fire: true}},
		{"enter", "\r", Input{Enter: true}},
		{"quit", "Q", Input{Quit: true}},
		{"lone escape", "\x1b", Input{Escape: true}},
		{"unknown", "z9", Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k keyState
			k.apply([]byte(tt.in), t0)
			assert.Equal(t, tt.want, k.input(t0))
		})
	}
}

func TestKeysExpireAfterHoldDuration(t *testing.T) {
	var k keyState
	k.apply([]byte("w "), t0)

	assert.True(t, k.input(t0.Add(keyHoldDuration-time.Millisecond)).Up)
	in := k.input(t0.Add(keyHoldDuration))
	assert.False(t, in.Up)
	assert.False(t, in.Fire)
}

func TestKeysCombineAcrossReads(t *testing.T) {
	var k keyState
	k.apply([]byte("w"), t0)
	k.apply([]byte("d"), t0.Add(10*time.Millisecond))

	in := k.input(t0.Add(20 * time.Millisecond))
	assert.Equal(t, direction.Keys{Up: true, Right: true}, in.Keys())
	assert.Equal(t, direction.NorthEast, direction.Classify(in.Keys(), direction.West))
}

func TestStartAcceptsFireOrEnter(t *testing.T) {
	assert.True(t, Input{Fire: true}.Start())
	assert.True(t, Input{Enter: true}.Start())
	assert.False(t, Input{Up: true}.Start())
}

func TestStreamDeliversBytes(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("ws")))

	var got []byte
	require.Eventually(t, func() bool {
		got = append(got, s.drain()...)
		return len(got) == 2
	}, time.Second, time.Millisecond)
	assert.Equal(t, []byte("ws"), got)
}

func TestResetKeyInput(t *testing.T) {
	s := &Stream{ch: make(chan byte, 4)}
	s.state.apply([]byte(" "), time.Now())
	s.ch <- 'w'

	ResetKeyInput(s)

	assert.Equal(t, keyState{}, s.state)
	assert.Empty(t, s.drain())
}
