package leagues

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeagues(ctx context.Context) ([]models.League, error)
}

// App handles leagues business logic
type App struct {
	repo LeaguesRepository
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository) *App {
	return &App{repo: repo}
}

// CreateLeague creates a new league with validation
func (a *App) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	league, err := a.repo.CreateLeague(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	log.Info().Str("league_id", league.ID.String()).Str("name", league.Name).Msg("created league")
	return league, nil
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return a.repo.GetLeague(ctx, id)
}

// ListLeagues retrieves all leagues
func (a *App) ListLeagues(ctx context.Context) ([]models.League, error) {
	return a.repo.ListLeagues(ctx)
}
