package players

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// PlayersApp defines what the service layer needs from the players application
type PlayersApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	ListTeamsForMatch(ctx context.Context, matchID uuid.UUID) ([]TeamOption, error)
}

// Service exposes player operations over HTTP
type Service struct {
	app PlayersApp
}

// NewService creates a new players HTTP service
func NewService(app PlayersApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers player routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /players", s.handleCreatePlayer)
	mux.HandleFunc("GET /players/{id}", s.handleGetPlayer)
	mux.HandleFunc("GET /teams/{team_id}/players", s.handleListPlayersByTeam)
	mux.HandleFunc("GET /matches/{match_id}/teams", s.handleListTeamsForMatch)
}

func (s *Service) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	player, err := s.app.CreatePlayer(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, player)
}

func (s *Service) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid player id"})
		return
	}

	player, err := s.app.GetPlayer(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, player)
}

func (s *Service) handleListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := uuid.Parse(r.PathValue("team_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid team id"})
		return
	}

	players, err := s.app.ListPlayersByTeam(r.Context(), teamID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, players)
}

func (s *Service) handleListTeamsForMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(r.PathValue("match_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid match id"})
		return
	}

	options, err := s.app.ListTeamsForMatch(r.Context(), matchID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, options)
}
