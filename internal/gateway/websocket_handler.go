package gateway

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
)

// WebSocketHandler handles WebSocket upgrade requests for the live
// score stream
type WebSocketHandler struct {
	hub *Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// RegisterRoutes registers WebSocket routes with an HTTP mux
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/scores", h.HandleScoreStream)
	mux.HandleFunc("GET /ws/stats", h.HandleStats)
}

// HandleScoreStream upgrades a viewer connection onto the score stream
func (h *WebSocketHandler) HandleScoreStream(w http.ResponseWriter, r *http.Request) {
	if err := h.hub.Upgrade(w, r); err != nil {
		log.Error().Err(err).Str("remote_addr", r.RemoteAddr).Msg("failed to upgrade WebSocket connection")
		// Upgrade already wrote an HTTP error to the client
		return
	}
}

// HandleStats returns counts about active viewer sessions
func (h *WebSocketHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, h.hub.Stats())
}
