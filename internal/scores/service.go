package scores

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// ScoresApp defines what the service layer needs from the scores application
type ScoresApp interface {
	UpsertScore(ctx context.Context, req UpsertScoreRequest) (*models.Score, error)
	GetScoreByMatch(ctx context.Context, matchID uuid.UUID) (*models.Score, error)
}

// Service exposes score operations over HTTP
type Service struct {
	app ScoresApp
}

// NewService creates a new scores HTTP service
func NewService(app ScoresApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers score routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /scores", s.handleUpsertScore)
	mux.HandleFunc("GET /matches/{match_id}/score", s.handleGetScore)
}

func (s *Service) handleUpsertScore(w http.ResponseWriter, r *http.Request) {
	var req UpsertScoreRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	score, err := s.app.UpsertScore(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, score)
}

func (s *Service) handleGetScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(r.PathValue("match_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid match id"})
		return
	}

	score, err := s.app.GetScoreByMatch(r.Context(), matchID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, score)
}
