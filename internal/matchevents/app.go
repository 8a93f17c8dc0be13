package matchevents

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// MatchEventsRepository defines what the app layer needs from the repository
type MatchEventsRepository interface {
	CreateMatchEvent(ctx context.Context, req CreateMatchEventRequest) (*models.MatchEvent, error)
	ListEventsByMatch(ctx context.Context, matchID uuid.UUID) ([]models.MatchEvent, error)
}

// App handles match event business logic. Events are append-only and do
// not trigger broadcasts; the fan-out carries score and status changes
// only.
type App struct {
	repo MatchEventsRepository
}

// NewApp creates a new match events App
func NewApp(repo MatchEventsRepository) *App {
	return &App{repo: repo}
}

// CreateMatchEvent validates and appends a match event
func (a *App) CreateMatchEvent(ctx context.Context, req CreateMatchEventRequest) (*models.MatchEvent, error) {
	if req.MatchID == uuid.Nil {
		return nil, fmt.Errorf("%w: match_id is required", apperrors.ErrValidation)
	}
	if req.EventType == "" {
		return nil, fmt.Errorf("%w: event_type is required", apperrors.ErrValidation)
	}
	if !req.EventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event_type %q", apperrors.ErrValidation, req.EventType)
	}
	if req.EventTime < 0 {
		return nil, fmt.Errorf("%w: event_time must not be negative", apperrors.ErrValidation)
	}

	event, err := a.repo.CreateMatchEvent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create match event: %w", err)
	}

	log.Info().
		Str("event_id", event.ID.String()).
		Str("match_id", event.MatchID.String()).
		Str("event_type", string(event.EventType)).
		Int("event_time", event.EventTime).
		Msg("recorded match event")
	return event, nil
}

// ListEventsByMatch retrieves all events for a match
func (a *App) ListEventsByMatch(ctx context.Context, matchID uuid.UUID) ([]models.MatchEvent, error) {
	return a.repo.ListEventsByMatch(ctx, matchID)
}
