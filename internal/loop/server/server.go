// Package server is the session hub shared by every connected client. It
// tracks who is connected, collects their scores into a leaderboard and
// coordinates graceful shutdown.
package server

import (
	"cmp"
	"context"
	"io"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/octoshot/internal/loop/config"
)

// LeaderboardSize is the number of entries kept in a Snapshot.
const LeaderboardSize = 10

// GameServer is the interface clients use to talk to the hub.
// Decouples the Client from the concrete Server implementation.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID string)
	ReportScore(clientID string, score int)
	Snapshot() *Snapshot
}

// ClientHandle represents a client's connection to the hub.
type ClientHandle struct {
	ID       string
	Username string
	EventsCh chan ClientEvent // Events sent to client; closed on unregister
}

// ClientEvent represents an event sent from the hub to a client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// Entry is one leaderboard row.
type Entry struct {
	Username string
	Score    int // Score of the current game
	Best     int // Best score this session
}

// Snapshot is an immutable view of the hub published once per tick.
type Snapshot struct {
	Players     int
	Leaderboard []Entry
}

type scoreReport struct {
	clientID string
	score    int
}

type session struct {
	handle *ClientHandle
	score  int
	best   int
}

// Server owns the session table. Only Run mutates it; other goroutines talk
// to it through channels and read the published Snapshot.
type Server struct {
	logger       *log.Logger
	snapshot     atomic.Pointer[Snapshot]
	clients      map[string]*session
	registerCh   chan *ClientHandle
	unregisterCh chan string
	scoreCh      chan scoreReport
	mu           sync.RWMutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// NewServer creates a hub. A nil logger discards output.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		logger:       logger,
		clients:      make(map[string]*session),
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan string, 16),
		scoreCh:      make(chan scoreReport, 256),
	}
	s.snapshot.Store(&Snapshot{})
	return s
}

// Run processes registrations and score reports until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(config.ServerTickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		s.processRegistrations()
		s.collectScores()
		s.publish()
	}
}

// Shutdown notifies all connected clients and waits for them to disconnect,
// up to the given timeout. The caller should cancel Run's context after
// Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, sess := range s.clients {
		select {
		case sess.handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	notified := len(s.clients)
	s.mu.RUnlock()
	s.logger.Info("notified players about shutdown", "players", notified)

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			s.logger.Warn("shutdown timed out", "players", s.Len())
			return
		case <-ticker.C:
			if s.Len() == 0 {
				return
			}
		}
	}
}

// Len returns the number of registered clients.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	handle := &ClientHandle{
		ID:       uuid.NewString(),
		Username: sanitizeUsername(username),
		EventsCh: make(chan ClientEvent, 16),
	}
	s.registerCh <- handle
	return handle
}

// UnregisterClient removes a client from the hub.
func (s *Server) UnregisterClient(clientID string) {
	s.unregisterCh <- clientID
}

// ReportScore records the current score of a client. Reports are dropped
// when the hub is backed up.
func (s *Server) ReportScore(clientID string, score int) {
	select {
	case s.scoreCh <- scoreReport{clientID: clientID, score: score}:
	default:
	}
}

// Snapshot returns the latest published view.
func (s *Server) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

func (s *Server) processRegistrations() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.clients[handle.ID] = &session{handle: handle}
			s.mu.Unlock()
			s.logger.Debug("client registered", "id", handle.ID, "user", handle.Username)
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			if sess, ok := s.clients[clientID]; ok {
				close(sess.handle.EventsCh)
				delete(s.clients, clientID)
				s.logger.Debug("client unregistered", "id", clientID, "best", sess.best)
			}
			s.mu.Unlock()
		default:
			return
		}
	}
}

func (s *Server) collectScores() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		select {
		case r := <-s.scoreCh:
			if sess, ok := s.clients[r.clientID]; ok {
				sess.score = r.score
				sess.best = max(sess.best, r.score)
			}
		default:
			return
		}
	}
}

func (s *Server) publish() {
	s.mu.RLock()
	entries := make([]Entry, 0, len(s.clients))
	for _, sess := range s.clients {
		entries = append(entries, Entry{
			Username: sess.handle.Username,
			Score:    sess.score,
			Best:     sess.best,
		})
	}
	players := len(s.clients)
	s.mu.RUnlock()

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Best, a.Best); c != 0 {
			return c
		}
		return cmp.Compare(a.Username, b.Username)
	})
	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}

	s.snapshot.Store(&Snapshot{Players: players, Leaderboard: entries})
}

func sanitizeUsername(name string) string {
	if name == "" {
		return "anonymous"
	}
	r := []rune(name)
	if len(r) > config.MaxUsernameLength {
		r = r[:config.MaxUsernameLength]
	}
	return string(r)
}
