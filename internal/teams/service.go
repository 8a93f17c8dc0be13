package teams

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// Service exposes team operations over HTTP. Creation accepts a multipart
// form because the logo is a file upload.
type Service struct {
	app TeamsApp
}

// NewService creates a new teams HTTP service
func NewService(app TeamsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes registers team routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /teams", s.handleCreateTeam)
	mux.HandleFunc("GET /teams/{id}", s.handleGetTeam)
	mux.HandleFunc("GET /teams/{id}/logo", s.handleGetTeamLogo)
	mux.HandleFunc("GET /leagues/{league_id}/teams", s.handleListTeamsByLeague)
	mux.HandleFunc("PUT /teams/{id}", s.handleUpdateTeam)
	mux.HandleFunc("DELETE /teams/{id}", s.handleDeleteTeam)
}

func (s *Service) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxLogoSize); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	leagueID, err := uuid.Parse(r.FormValue("league_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid league_id"})
		return
	}

	req := CreateTeamRequest{
		Name:     r.FormValue("team_name"),
		LeagueID: leagueID,
	}

	if file, _, err := r.FormFile("logo"); err == nil {
		defer file.Close()
		logo, err := io.ReadAll(io.LimitReader(file, MaxLogoSize+1))
		if err != nil {
			httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read logo"})
			return
		}
		req.Logo = logo
	}

	team, err := s.app.CreateTeam(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, team)
}

func (s *Service) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid team id"})
		return
	}

	team, err := s.app.GetTeam(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, team)
}

// handleGetTeamLogo serves the logo as an inline data URI. This is the
// only place stored logo bytes are transcoded.
func (s *Service) handleGetTeamLogo(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid team id"})
		return
	}

	team, err := s.app.GetTeam(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]string{
		"team_id": team.ID.String(),
		"logo":    LogoDataURI(team.Logo),
	})
}

func (s *Service) handleListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	leagueID, err := uuid.Parse(r.PathValue("league_id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid league id"})
		return
	}

	teams, err := s.app.ListTeamsByLeague(r.Context(), leagueID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, teams)
}

func (s *Service) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid team id"})
		return
	}

	var req UpdateTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	team, err := s.app.UpdateTeam(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, team)
}

func (s *Service) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid team id"})
		return
	}

	if err := s.app.DeleteTeam(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
