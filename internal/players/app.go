package players

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// PlayersRepository defines what the app layer needs from the repository
type PlayersRepository interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	ListTeamsForMatch(ctx context.Context, matchID uuid.UUID) ([]TeamOption, error)
}

// App handles players business logic
type App struct {
	repo PlayersRepository
}

// NewApp creates a new players App
func NewApp(repo PlayersRepository) *App {
	return &App{repo: repo}
}

// CreatePlayer registers a new player with validation
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if req.TeamID == uuid.Nil {
		return nil, fmt.Errorf("%w: team_id is required", apperrors.ErrValidation)
	}
	if req.JerseyNumber <= 0 {
		return nil, fmt.Errorf("%w: jersey_number is required", apperrors.ErrValidation)
	}

	player, err := a.repo.CreatePlayer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info().
		Str("player_id", player.ID.String()).
		Str("name", player.Name).
		Int("jersey", player.JerseyNumber).
		Msg("created player")
	return player, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return a.repo.GetPlayer(ctx, id)
}

// ListPlayersByTeam retrieves all players on a team
func (a *App) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	return a.repo.ListPlayersByTeam(ctx, teamID)
}

// ListTeamsForMatch returns the two teams contesting a match
func (a *App) ListTeamsForMatch(ctx context.Context, matchID uuid.UUID) ([]TeamOption, error) {
	return a.repo.ListTeamsForMatch(ctx, matchID)
}
