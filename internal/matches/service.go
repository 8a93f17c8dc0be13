package matches

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListFixturesByLeague(ctx context.Context, leagueID uuid.UUID) ([]Fixture, error)
	ListOngoingByLeague(ctx context.Context, leagueID uuid.UUID) ([]Fixture, error)
	NextMatch(ctx context.Context, leagueID uuid.UUID) (*Fixture, error)
	ListResultsByLeague(ctx context.Context, leagueID uuid.UUID) ([]MatchResult, error)
	UpdateMatch(ctx context.Context, id uuid.UUID, req UpdateMatchRequest) (*models.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

// Service exposes match operations over HTTP
type Service struct {
	app MatchesApp
}

// NewService creates a new matches HTTP service
func NewService(app MatchesApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers match routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /matches", s.handleCreateMatch)
	mux.HandleFunc("GET /matches/{id}", s.handleGetMatch)
	mux.HandleFunc("PUT /matches/{id}", s.handleUpdateMatch)
	mux.HandleFunc("DELETE /matches/{id}", s.handleDeleteMatch)
	mux.HandleFunc("GET /leagues/{league_id}/fixtures", s.handleListFixtures)
	mux.HandleFunc("GET /leagues/{league_id}/live", s.handleListOngoing)
	mux.HandleFunc("GET /leagues/{league_id}/matches/next", s.handleNextMatch)
	mux.HandleFunc("GET /leagues/{league_id}/results", s.handleListResults)
}

func (s *Service) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	match, err := s.app.CreateMatch(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, match)
}

func (s *Service) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid match id"})
		return
	}

	match, err := s.app.GetMatch(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, match)
}

func (s *Service) handleUpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid match id"})
		return
	}

	var req UpdateMatchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	match, err := s.app.UpdateMatch(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, match)
}

func (s *Service) handleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid match id"})
		return
	}

	if err := s.app.DeleteMatch(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) handleListFixtures(w http.ResponseWriter, r *http.Request) {
	s.listForLeague(w, r, s.app.ListFixturesByLeague)
}

func (s *Service) handleListOngoing(w http.ResponseWriter, r *http.Request) {
	s.listForLeague(w, r, s.app.ListOngoingByLeague)
}

func (s *Service) listForLeague(w http.ResponseWriter, r *http.Request, list func(context.Context, uuid.UUID) ([]Fixture, error)) {
	leagueID, err := uuid.Parse(r.PathValue("league_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid league id"})
		return
	}

	fixtures, err := list(r.Context(), leagueID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, fixtures)
}

func (s *Service) handleNextMatch(w http.ResponseWriter, r *http.Request) {
	leagueID, err := uuid.Parse(r.PathValue("league_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid league id"})
		return
	}

	next, err := s.app.NextMatch(r.Context(), leagueID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, next)
}

func (s *Service) handleListResults(w http.ResponseWriter, r *http.Request) {
	leagueID, err := uuid.Parse(r.PathValue("league_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid league id"})
		return
	}

	results, err := s.app.ListResultsByLeague(r.Context(), leagueID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, results)
}
