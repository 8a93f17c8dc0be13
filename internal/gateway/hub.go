package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/events"
)

// Hub manages viewer WebSocket sessions and fans events out to all of
// them. Delivery is best-effort: sessions that cannot keep up are
// dropped, and nothing is replayed to late subscribers.
type Hub struct {
	sessions map[*Session]bool
	mu       sync.RWMutex

	upgrader websocket.Upgrader

	config Config

	broadcastCh chan events.Event
}

// Config holds WebSocket session configuration
type Config struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

// DefaultConfig returns default WebSocket configuration
func DefaultConfig() Config {
	return Config{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// Allow all origins in development - restrict in production
			return true
		},
	}
}

// NewHub creates a new viewer session hub
func NewHub(config Config) *Hub {
	return &Hub{
		sessions: make(map[*Session]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan events.Event, 1000),
	}
}

// Run processes broadcasts until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	log.Info().Msg("score hub started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("score hub shutting down")
			h.closeAll()
			return
		case event := <-h.broadcastCh:
			h.handleBroadcast(event)
		}
	}
}

// Publish queues an event for delivery to every connected session. It
// never blocks: if the queue is full the event is dropped.
func (h *Hub) Publish(_ context.Context, event events.Event) error {
	select {
	case h.broadcastCh <- event:
	default:
		log.Warn().Str("event_type", string(event.Type)).Msg("broadcast channel full, dropping event")
	}
	return nil
}

// Upgrade turns an HTTP request into a viewer session
func (h *Hub) Upgrade(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	session := newSession(conn, h)
	h.register(session)

	go session.writePump()
	go session.readPump()

	log.Info().
		Str("session_id", session.ID).
		Str("remote_addr", r.RemoteAddr).
		Msg("viewer session established")

	return nil
}

func (h *Hub) register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sessions[s] = true

	log.Debug().
		Str("session_id", s.ID).
		Int("total_sessions", len(h.sessions)).
		Msg("session registered")
}

// unregister removes a session from the registry. The send channel is
// never closed: a broadcast may hold a snapshot that still contains the
// session, and sending on a closed channel would panic the run loop.
// The pumps exit through the connection error instead, and the buffered
// channel is collected with the session.
func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.sessions[s]; exists {
		delete(h.sessions, s)

		log.Info().
			Str("session_id", s.ID).
			Int("total_sessions", len(h.sessions)).
			Msg("session unregistered")
	}
}

func (h *Hub) handleBroadcast(event events.Event) {
	h.mu.RLock()
	targets := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	// Marshal once, send to everyone
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for broadcast")
		return
	}

	for _, s := range targets {
		select {
		case s.send <- data:
		default:
			log.Warn().Str("session_id", s.ID).Msg("session send buffer full, closing session")
			h.unregister(s)
			s.conn.Close()
		}
	}

	log.Debug().
		Str("event_type", string(event.Type)).
		Str("match_id", event.MatchID.String()).
		Int("sessions", len(targets)).
		Msg("event broadcasted")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.sessions {
		delete(h.sessions, s)
		s.conn.Close()
	}
}

// Stats returns counts about active sessions
func (h *Hub) Stats() map[string]int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return map[string]int{
		"total_sessions": len(h.sessions),
	}
}
