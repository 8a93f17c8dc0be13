package matchevents

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// MatchEventsApp defines what the service layer needs from the application
type MatchEventsApp interface {
	CreateMatchEvent(ctx context.Context, req CreateMatchEventRequest) (*models.MatchEvent, error)
	ListEventsByMatch(ctx context.Context, matchID uuid.UUID) ([]models.MatchEvent, error)
}

// Service exposes match event operations over HTTP
type Service struct {
	app MatchEventsApp
}

// NewService creates a new match events HTTP service
func NewService(app MatchEventsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers match event routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /events", s.handleCreateMatchEvent)
	mux.HandleFunc("GET /matches/{match_id}/events", s.handleListEventsByMatch)
}

func (s *Service) handleCreateMatchEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	event, err := s.app.CreateMatchEvent(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, event)
}

func (s *Service) handleListEventsByMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(r.PathValue("match_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid match id"})
		return
	}

	eventsList, err := s.app.ListEventsByMatch(r.Context(), matchID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, eventsList)
}
