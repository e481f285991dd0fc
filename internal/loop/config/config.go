// Package config centralizes the client and session timing parameters.
// Gameplay tuning lives in internal/config.
package config

import "time"

// View resolution - the visible arena in logical units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 1280 // Logical viewport width (arena pixels)
	ViewHeight = 720  // Logical viewport height (arena pixels)
)

// Max render resolution in terminal cells. Larger terminals get a centered
// canvas with a border.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 68
)

// Scoring
const (
	ScorePerKill = 100
)

// Player
const (
	InitialLives          = 3
	InvincibilitySeconds  = 3.0
	PlayerBlinkFrequency  = 10.0 // Hz
	RespawnTimeoutSeconds = 1.0  // Delay before the game over screen accepts a restart
	MaxUsernameLength     = 16
)

// Explosion particles
const (
	ExplosionParticles = 14
	ExplosionSpeed     = 240.0 // arena pixels per second
	ExplosionLifetime  = 0.6   // seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownWait           = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client frame loop
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxFrameDelta         = 0.06 // Seconds; longer frames are simulated as this
)

// Session hub tick rate
const (
	ServerTickRate = 20
	ServerTickTime = time.Second / ServerTickRate
)
