package teams

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// App handles teams business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{repo: repo}
}

// CreateTeam registers a new team with validation
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, err
	}

	team, err := a.repo.CreateTeam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("name", team.Name).
		Str("league_id", team.LeagueID.String()).
		Msg("created team")
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return a.repo.GetTeam(ctx, id)
}

// ListTeamsByLeague retrieves all teams in a league
func (a *App) ListTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	return a.repo.ListTeamsByLeague(ctx, leagueID)
}

// UpdateTeam updates an existing team with validation
func (a *App) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
	}
	if len(req.Logo) > 0 {
		if err := validateLogo(req.Logo); err != nil {
			return nil, err
		}
	}

	team, err := a.repo.UpdateTeam(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().Str("team_id", team.ID.String()).Str("name", team.Name).Msg("updated team")
	return team, nil
}

// DeleteTeam deletes a team by ID
func (a *App) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	log.Info().Str("team_id", id.String()).Msg("deleted team")
	return nil
}

func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if req.LeagueID == uuid.Nil {
		return fmt.Errorf("%w: league_id is required", apperrors.ErrValidation)
	}
	if len(req.Logo) == 0 {
		return fmt.Errorf("%w: logo is required", apperrors.ErrValidation)
	}
	return validateLogo(req.Logo)
}

func validateLogo(logo []byte) error {
	if len(logo) > MaxLogoSize {
		return fmt.Errorf("%w: logo exceeds %d bytes", apperrors.ErrValidation, MaxLogoSize)
	}
	if contentType, ok := DetectLogoType(logo); !ok {
		return fmt.Errorf("%w: only images are allowed, got %s", apperrors.ErrValidation, contentType)
	}
	return nil
}
