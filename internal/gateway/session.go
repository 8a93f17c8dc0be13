package gateway

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Session is one viewer's WebSocket connection
type Session struct {
	ID   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub

	ConnectedAt time.Time
}

func newSession(conn *websocket.Conn, hub *Hub) *Session {
	return &Session{
		ID:          uuid.New().String(),
		conn:        conn,
		send:        make(chan []byte, 256),
		hub:         hub,
		ConnectedAt: time.Now(),
	}
}

// writePump handles sending messages to the WebSocket connection. It
// exits when a write or ping fails, which is also how an unregistered
// session winds down after the hub closes the connection.
func (s *Session) writePump() {
	ticker := time.NewTicker(s.hub.config.PingInterval)
	defer func() {
		ticker.Stop()
		s.conn.Close()
		s.hub.unregister(s)
	}()

	for {
		select {
		case message := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.hub.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().
					Err(err).
					Str("session_id", s.ID).
					Msg("failed to write message to WebSocket")
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.hub.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Error().
					Err(err).
					Str("session_id", s.ID).
					Msg("failed to send ping")
				return
			}
		}
	}
}

// readPump handles reading messages from the WebSocket connection.
// Viewers are read-only; incoming frames only refresh the deadline.
func (s *Session) readPump() {
	defer func() {
		s.hub.unregister(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(s.hub.config.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.hub.config.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(s.hub.config.ReadTimeout))
		return nil
	})

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().
					Err(err).
					Str("session_id", s.ID).
					Msg("unexpected WebSocket close error")
			}
			break
		}

		log.Debug().
			Str("session_id", s.ID).
			Int("bytes", len(message)).
			Msg("received client message")
		s.conn.SetReadDeadline(time.Now().Add(s.hub.config.ReadTimeout))
	}
}
