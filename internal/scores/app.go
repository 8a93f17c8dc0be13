package scores

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/events"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// ScoresRepository defines what the app layer needs from the repository
type ScoresRepository interface {
	UpsertScore(ctx context.Context, req UpsertScoreRequest, now time.Time) (*models.Score, error)
	GetScoreByMatch(ctx context.Context, matchID uuid.UUID) (*models.Score, error)
}

// MatchGetter verifies that the target match exists before a score write
type MatchGetter interface {
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
}

// App handles score business logic: persist first, then broadcast.
type App struct {
	repo    ScoresRepository
	matches MatchGetter
	bus     events.Bus
	clock   clockwork.Clock
}

// NewApp creates a new scores App
func NewApp(repo ScoresRepository, matches MatchGetter, bus events.Bus, clock clockwork.Clock) *App {
	return &App{
		repo:    repo,
		matches: matches,
		bus:     bus,
		clock:   clock,
	}
}

// UpsertScore validates and persists a score update, then publishes a
// scoreUpdate notification to connected viewers. The mutation is
// considered successful once persisted: a broadcast failure is logged and
// never surfaced to the caller.
func (a *App) UpsertScore(ctx context.Context, req UpsertScoreRequest) (*models.Score, error) {
	if req.MatchID == uuid.Nil {
		return nil, fmt.Errorf("%w: match_id is required", apperrors.ErrValidation)
	}
	if req.HomeScore < 0 || req.AwayScore < 0 {
		return nil, fmt.Errorf("%w: scores must be non-negative", apperrors.ErrValidation)
	}

	if _, err := a.matches.GetMatch(ctx, req.MatchID); err != nil {
		return nil, fmt.Errorf("match lookup failed: %w", err)
	}

	score, err := a.repo.UpsertScore(ctx, req, a.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert score: %w", err)
	}

	log.Info().
		Str("match_id", score.MatchID.String()).
		Int("home_score", score.HomeScore).
		Int("away_score", score.AwayScore).
		Msg("score updated")

	a.publishScoreUpdate(ctx, score)
	return score, nil
}

// GetScoreByMatch retrieves the current score for a match
func (a *App) GetScoreByMatch(ctx context.Context, matchID uuid.UUID) (*models.Score, error) {
	return a.repo.GetScoreByMatch(ctx, matchID)
}

func (a *App) publishScoreUpdate(ctx context.Context, score *models.Score) {
	event, err := events.New(events.TypeScoreUpdate, score.MatchID, events.ScoreUpdatePayload{
		MatchID:   score.MatchID,
		HomeScore: score.HomeScore,
		AwayScore: score.AwayScore,
	}, a.clock.Now())
	if err != nil {
		log.Error().Err(err).Str("match_id", score.MatchID.String()).Msg("failed to build scoreUpdate event")
		return
	}

	if err := a.bus.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("match_id", score.MatchID.String()).Msg("failed to publish scoreUpdate")
	}
}
