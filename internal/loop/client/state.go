package client

import (
	"time"

	"github.com/tomz197/octoshot/internal/clock"
	"github.com/tomz197/octoshot/internal/draw"
	"github.com/tomz197/octoshot/internal/input"
	"github.com/tomz197/octoshot/internal/loop/config"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active gameplay
	GameStateDead                      // Out of lives, show restart prompt
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-player state (input, score, lives, screen flags).
// Each client has their own instance, managed by the Client.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	prevGameState GameState // GameState at the last full clear
	Score         int
	Lives         int
	Invincible    clock.Timer // Running while hits are ignored
	RestartDelay  clock.Timer // Running while the game over screen ignores restarts
	termSizeFunc  draw.TermSizeFunc
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	shutdown      clock.Timer   // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state
	wasInactive   bool          // isInactive at the last full clear
	reportedScore int           // Last score sent to the hub
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStateStart,
		prevGameState: GameStateStart,
		Lives:         config.InitialLives,
		Invincible:    clock.NewTimer(config.InvincibilitySeconds, clock.Once),
		RestartDelay:  clock.NewTimer(config.RespawnTimeoutSeconds, clock.Once),
		shutdown:      clock.NewTimer(config.ShutdownDisplaySeconds, clock.Once),
		Running:       true,
	}
}
