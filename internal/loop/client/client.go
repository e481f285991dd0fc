// Package client runs one player's game: it reads terminal input, ticks that
// player's own simulation and renders it to the terminal.
package client

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	gameconfig "github.com/tomz197/octoshot/internal/config"
	"github.com/tomz197/octoshot/internal/draw"
	"github.com/tomz197/octoshot/internal/input"
	"github.com/tomz197/octoshot/internal/loop/config"
	"github.com/tomz197/octoshot/internal/loop/server"
	"github.com/tomz197/octoshot/internal/physics"
	"github.com/tomz197/octoshot/internal/sim"
	"github.com/tomz197/octoshot/internal/vmath"
)

// Client handles rendering, input and simulation for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	tuning       gameconfig.Tuning
	world        *sim.World
	sprites      []sim.Sprite
	particles    *particles
	rng          *rand.Rand
	logger       *log.Logger
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	reader       *bufio.Reader
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
}

// ClientOptions configures the client. Zero fields get defaults.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Tuning       gameconfig.Tuning
	Logger       *log.Logger
	Seed         int64
}

// NewClient creates a new client registered with the given hub.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Tuning == (gameconfig.Tuning{}) {
		opts.Tuning = gameconfig.DefaultTuning()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	handle := gs.RegisterClient(opts.Username)
	state := NewClientState()
	state.termSizeFunc = termSizeFunc
	rng := rand.New(rand.NewSource(opts.Seed))

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSize(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		state:        state,
		tuning:       opts.Tuning,
		particles:    newParticles(rng),
		rng:          rng,
		logger:       opts.Logger.With("client", handle.ID, "user", handle.Username),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		reader:       r,
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
	}
}

// Run starts the client loop. Blocks until the client disconnects or the hub stops.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer c.server.UnregisterClient(c.handle.ID)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.updatePlayingState()
		case GameStateDead:
			c.updateDeadState()
		case GameStateShutdown:
			c.updateShutdownState()
		}

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	c.logger.Info("session finished", "score", c.state.Score)
	return nil
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Hub closed the channel
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown {
				c.state.GameState = GameStateShutdown
				c.state.shutdown.Reset()
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSize(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.ForceRedraw()
	}

	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateStartState handles the start screen.
func (c *Client) updateStartState() {
	if c.state.Input.Start() {
		c.startGame()
	}
}

// updatePlayingState advances the simulation by one frame.
func (c *Client) updatePlayingState() {
	dt := min(c.state.delta.Seconds(), config.MaxFrameDelta)
	c.step(dt, sim.Controls{Keys: c.state.Input.Keys(), Fire: c.state.Input.Fire})
}

// step ticks the world and applies the outcome to the client's game.
func (c *Client) step(dt float64, controls sim.Controls) {
	c.state.Invincible.Tick(dt)

	report := c.world.Tick(dt, controls)
	c.applyReport(report)
	c.particles.update(dt)
	c.sprites = c.world.Sprites(c.sprites[:0])
}

// applyReport scores kills, spawns explosions and takes lives for hits.
func (c *Client) applyReport(r sim.Report) {
	c.state.Score += r.Kills * config.ScorePerKill
	for _, pos := range r.Explosions {
		c.particles.explode(pos, config.ExplosionParticles, config.ExplosionSpeed, config.ExplosionLifetime)
	}

	if r.PlayerHits > 0 && c.state.Invincible.Finished() {
		c.state.Lives--
		c.state.Invincible.Reset()
		c.logger.Debug("player hit", "lives", c.state.Lives)
		if c.state.Lives <= 0 {
			c.gameOver()
		}
	}

	if c.state.Score != c.state.reportedScore {
		c.server.ReportScore(c.handle.ID, c.state.Score)
		c.state.reportedScore = c.state.Score
	}
}

func (c *Client) gameOver() {
	c.state.Lives = 0
	c.state.GameState = GameStateDead
	c.state.RestartDelay.Reset()
	c.logger.Info("game over", "score", c.state.Score)
}

// updateDeadState handles the game over screen.
func (c *Client) updateDeadState() {
	c.state.RestartDelay.Tick(c.state.delta.Seconds())
	c.particles.update(min(c.state.delta.Seconds(), config.MaxFrameDelta))
	if c.state.Input.Start() && c.state.RestartDelay.Finished() {
		c.startGame()
	}
}

// startGame starts a fresh game with a new world and full lives.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)

	engine := physics.NewEngine(sim.EngineConfig(c.tuning))
	c.world = sim.NewWorld(engine, sim.Options{
		Tuning: c.tuning,
		Rand:   c.rng,
		Logger: c.logger,
	})
	c.world.SpawnPlayer(vmath.Zero)
	c.sprites = c.world.Sprites(c.sprites[:0])
	c.particles.reset()

	c.state.Score = 0
	c.state.Lives = config.InitialLives
	c.state.Invincible.Reset()
	c.server.ReportScore(c.handle.ID, 0)
	c.state.reportedScore = 0

	c.state.GameState = GameStatePlaying
	c.logger.Debug("game started")
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	if c.state.shutdown.Tick(c.state.delta.Seconds()) {
		c.state.Running = false
	}
}
