package leagues

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeagues(ctx context.Context) ([]models.League, error)
}

// Service exposes league operations over HTTP
type Service struct {
	app LeaguesApp
}

// NewService creates a new leagues HTTP service
func NewService(app LeaguesApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers league routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /leagues", s.handleCreateLeague)
	mux.HandleFunc("GET /leagues", s.handleListLeagues)
	mux.HandleFunc("GET /leagues/{id}", s.handleGetLeague)
}

func (s *Service) handleCreateLeague(w http.ResponseWriter, r *http.Request) {
	var req CreateLeagueRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	league, err := s.app.CreateLeague(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, league)
}

func (s *Service) handleListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := s.app.ListLeagues(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, leagues)
}

func (s *Service) handleGetLeague(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid league id"})
		return
	}

	league, err := s.app.GetLeague(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, league)
}
