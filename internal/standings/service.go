package standings

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
)

// StandingsApp defines what the service layer needs from the application
type StandingsApp interface {
	StandingsByLeague(ctx context.Context, leagueID uuid.UUID) ([]Row, error)
}

// Service exposes league tables over HTTP
type Service struct {
	app StandingsApp
}

// NewService creates a new standings HTTP service
func NewService(app StandingsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers standings routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /leagues/{league_id}/standings", s.handleStandings)
}

func (s *Service) handleStandings(w http.ResponseWriter, r *http.Request) {
	leagueID, err := uuid.Parse(r.PathValue("league_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid league id"})
		return
	}

	rows, err := s.app.StandingsByLeague(r.Context(), leagueID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, rows)
}
