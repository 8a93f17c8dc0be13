package matches

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListFixturesByLeague(ctx context.Context, leagueID uuid.UUID) ([]Fixture, error)
	ListOngoingByLeague(ctx context.Context, leagueID uuid.UUID) ([]Fixture, error)
	NextMatch(ctx context.Context, leagueID uuid.UUID) (*Fixture, error)
	ListResultsByLeague(ctx context.Context, leagueID uuid.UUID) ([]MatchResult, error)
	UpdateMatch(ctx context.Context, id uuid.UUID, req UpdateMatchRequest) (*models.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	ListDueScheduled(ctx context.Context, now time.Time) ([]models.Match, error)
	ListDueOngoing(ctx context.Context, cutoff time.Time) ([]models.Match, error)
	MarkOngoing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

// App handles matches business logic
type App struct {
	repo MatchesRepository
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository) *App {
	return &App{repo: repo}
}

// CreateMatch schedules a new match with validation
func (a *App) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	if req.HomeTeamID == uuid.Nil || req.AwayTeamID == uuid.Nil {
		return nil, fmt.Errorf("%w: home and away teams must be selected", apperrors.ErrValidation)
	}
	if req.HomeTeamID == req.AwayTeamID {
		return nil, fmt.Errorf("%w: a team cannot play itself", apperrors.ErrValidation)
	}
	if req.LeagueID == uuid.Nil {
		return nil, fmt.Errorf("%w: league_id is required", apperrors.ErrValidation)
	}
	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", apperrors.ErrValidation)
	}

	match, err := a.repo.CreateMatch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Time("start_time", match.StartTime).
		Msg("scheduled match")
	return match, nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return a.repo.GetMatch(ctx, id)
}

// ListFixturesByLeague retrieves upcoming matches for a league
func (a *App) ListFixturesByLeague(ctx context.Context, leagueID uuid.UUID) ([]Fixture, error) {
	return a.repo.ListFixturesByLeague(ctx, leagueID)
}

// ListOngoingByLeague retrieves matches currently being played
func (a *App) ListOngoingByLeague(ctx context.Context, leagueID uuid.UUID) ([]Fixture, error) {
	return a.repo.ListOngoingByLeague(ctx, leagueID)
}

// NextMatch retrieves the next scheduled match in a league
func (a *App) NextMatch(ctx context.Context, leagueID uuid.UUID) (*Fixture, error) {
	return a.repo.NextMatch(ctx, leagueID)
}

// ListResultsByLeague retrieves completed matches with scores
func (a *App) ListResultsByLeague(ctx context.Context, leagueID uuid.UUID) ([]MatchResult, error) {
	return a.repo.ListResultsByLeague(ctx, leagueID)
}

// UpdateMatch corrects match details. Lifecycle status is not updatable:
// an already-started match keeps its status even if start_time is edited
// backwards.
func (a *App) UpdateMatch(ctx context.Context, id uuid.UUID, req UpdateMatchRequest) (*models.Match, error) {
	match, err := a.repo.UpdateMatch(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	log.Info().Str("match_id", match.ID.String()).Msg("updated match")
	return match, nil
}

// DeleteMatch deletes a match by ID
func (a *App) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeleteMatch(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	log.Info().Str("match_id", id.String()).Msg("deleted match")
	return nil
}
