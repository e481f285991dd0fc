package client

import (
	"fmt"
	"time"

	"github.com/tomz197/octoshot/internal/direction"
	"github.com/tomz197/octoshot/internal/draw"
	"github.com/tomz197/octoshot/internal/loop/config"
	"github.com/tomz197/octoshot/internal/loop/server"
	"github.com/tomz197/octoshot/internal/sim"
	"github.com/tomz197/octoshot/internal/vmath"
)

// aimLength is how far the aim marker reaches past the player's edge, in
// arena pixels.
const aimLength = 14.0

// toCanvas maps arena pixels (origin at the center, y up) to logical canvas
// coordinates (origin top-left, y down).
func toCanvas(p vmath.Vec2) (x, y float64) {
	return p.X + config.ViewWidth/2, config.ViewHeight/2 - p.Y
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if c.state.GameState == GameStatePlaying || c.state.GameState == GameStateDead {
		c.drawWorld()
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(c.server.Snapshot())

	return c.chunkWriter.Flush()
}

// drawWorld plots the last sprite view and the explosion particles.
func (c *Client) drawWorld() {
	blinkOn := shouldRenderBlink(c.state.Invincible.Remaining(), config.PlayerBlinkFrequency)
	for _, s := range c.sprites {
		x, y := toCanvas(s.Position)
		switch s.Kind {
		case sim.SpriteEnemy:
			c.canvas.DrawRect(x, y, s.HalfExtents.X, s.HalfExtents.Y, false)
		case sim.SpriteBullet:
			c.canvas.DrawRect(x, y, s.HalfExtents.X, s.HalfExtents.Y, true)
		case sim.SpritePlayer:
			if c.state.GameState == GameStateDead || !blinkOn {
				continue
			}
			c.canvas.DrawRect(x, y, s.HalfExtents.X, s.HalfExtents.Y, true)
			tip := s.Position.Add(direction.Offset(s.Aim).Scale(s.HalfExtents.X + aimLength))
			tx, ty := toCanvas(tip)
			c.canvas.DrawLine(draw.Point{X: x, Y: y}, draw.Point{X: tx, Y: ty})
		}
	}
	c.particles.draw(c.canvas)
}

// shouldRenderBlink reports whether a blinking object is visible this frame.
// Objects only blink while invincible.
func shouldRenderBlink(invincible, frequency float64) bool {
	if invincible <= 0 {
		return true
	}
	return int(invincible*frequency)%2 == 0
}

// drawUI draws the game UI overlay.
func (c *Client) drawUI(snapshot *server.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
	case GameStateStart:
		c.drawStartScreen(centerX, centerY, snapshot)
	case GameStateDead:
		c.drawDeadScreen(centerX, centerY, snapshot)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int, snapshot *server.Snapshot) {
	titleArt := []string{
		`   ___   ___ _____ ___  ___ _  _  ___ _____  `,
		`  / _ \ / __|_   _/ _ \/ __| || |/ _ \_   _| `,
		` | (_) | (__  | || (_) \__ \ __ | (_) || |   `,
		`  \___/ \___| |_| \___/|___/_||_|\___/ |_|   `,
		`                                             `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := c.chunkWriter
	titleStartY := centerY - 9
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	subtitle := "~ Eight-way arena shooter over SSH ~"
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"WASD / arrows . . Move",
		"HJKL  . . . . . . Move",
		"SPACE . . . . .  Shoot",
		"Q . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Start  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+2, prompt)
	}

	c.drawLeaderboard(centerX, controlsY+len(controlLines)+4, snapshot, 5)
}

// drawLeaderboard lists up to n best scores of connected players.
func (c *Client) drawLeaderboard(centerX, startY int, snapshot *server.Snapshot, n int) {
	if snapshot == nil || len(snapshot.Leaderboard) == 0 {
		return
	}
	cw := c.chunkWriter
	header := fmt.Sprintf("Best of %d online", snapshot.Players)
	cw.WriteAt(centerX-len(header)/2, startY, header)
	for i, e := range snapshot.Leaderboard[:min(n, len(snapshot.Leaderboard))] {
		line := fmt.Sprintf("%d. %-16s %8d", i+1, e.Username, e.Best)
		cw.WriteAt(centerX-len(line)/2, startY+1+i, line)
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen (since we no longer clear every frame).
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snapshot *server.Snapshot) {
	cw := c.chunkWriter
	scoreText := fmt.Sprintf("Score: %-8d", c.state.Score)
	cw.WriteAt(2, 1, scoreText)
	c.canvas.MarkTextDirty(2, 1, len(scoreText))

	livesText := fmt.Sprintf("Lives: %-3d", c.state.Lives)
	cw.WriteColorAt(termWidth-len(livesText)-1, 1, draw.ColorRed, livesText)
	c.canvas.MarkTextDirty(termWidth-len(livesText)-1, 1, len(livesText))

	enemiesText := fmt.Sprintf("Enemies: %-4d", c.world.EnemyCount())
	cw.WriteAt(2, termHeight, enemiesText)
	c.canvas.MarkTextDirty(2, termHeight, len(enemiesText))

	if snapshot != nil {
		playersText := fmt.Sprintf("Players: %-4d", snapshot.Players)
		cw.WriteAt(termWidth-len(playersText)-1, termHeight, playersText)
		c.canvas.MarkTextDirty(termWidth-len(playersText)-1, termHeight, len(playersText))
	}

	if !c.state.Invincible.Finished() {
		shield := fmt.Sprintf("Shield %.1fs", c.state.Invincible.Remaining())
		cw.WriteColorAt(termWidth/2-len(shield)/2, 1, draw.ColorBrightCyan, shield)
		c.canvas.MarkTextDirty(termWidth/2-len(shield)/2, 1, len(shield))
	}
}

// drawDeadScreen draws the game over screen.
func (c *Client) drawDeadScreen(centerX, centerY int, snapshot *server.Snapshot) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := c.chunkWriter
	titleStartY := centerY - 8
	for i, line := range titleArt {
		cw.WriteColorAt(centerX-titleWidth/2, titleStartY+i, draw.ColorYellow, line)
		c.canvas.MarkTextDirty(centerX-titleWidth/2, titleStartY+i, len(line))
	}

	scoreText := fmt.Sprintf("Score: %d", c.state.Score)
	cw.WriteAt(centerX-len(scoreText)/2, titleStartY+len(titleArt)+1, scoreText)

	promptY := titleStartY + len(titleArt) + 3
	if !c.state.RestartDelay.Finished() {
		countdown := fmt.Sprintf("Restart in %.1f seconds...", c.state.RestartDelay.Remaining())
		cw.WriteAt(centerX-len(countdown)/2, promptY, countdown)
	} else if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Restart  <<"
		cw.WriteAt(centerX-len(prompt)/2, promptY, prompt)
	} else {
		// Blank the prompt line while it blinks off.
		cw.WriteAt(centerX-15, promptY, fmt.Sprintf("%30s", ""))
	}

	c.drawLeaderboard(centerX, promptY+2, snapshot, 5)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "SERVER SHUTTING DOWN"
	cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	msg1 := "The server is restarting for maintenance."
	cw.WriteAt(centerX-len(msg1)/2, centerY-1, msg1)

	msg2 := "Please reconnect in a moment."
	cw.WriteAt(centerX-len(msg2)/2, centerY, msg2)

	remaining := int(c.state.shutdown.Remaining()) + 1
	countdown := fmt.Sprintf("Disconnecting in %d seconds...", remaining)
	cw.WriteAt(centerX-len(countdown)/2, centerY+2, countdown)

	hint := "Press Q to disconnect now"
	cw.WriteAt(centerX-len(hint)/2, centerY+4, hint)
}
