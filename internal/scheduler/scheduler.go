package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/events"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

const (
	// DefaultInterval is how often the scheduler sweeps for due matches
	DefaultInterval = time.Minute

	// DefaultMatchDuration is how long after kickoff an ongoing match is
	// considered finished
	DefaultMatchDuration = 90 * time.Minute
)

// MatchStore defines what the scheduler needs from the matches repository
type MatchStore interface {
	ListDueScheduled(ctx context.Context, now time.Time) ([]models.Match, error)
	ListDueOngoing(ctx context.Context, cutoff time.Time) ([]models.Match, error)
	MarkOngoing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

// Scheduler advances match lifecycle state on wall-clock time. Matches
// move scheduled -> ongoing at their start time and ongoing -> completed
// once the match duration has elapsed. Transitions never run backwards.
type Scheduler struct {
	store         MatchStore
	bus           events.Bus
	clock         clockwork.Clock
	interval      time.Duration
	matchDuration time.Duration
	instanceID    string
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock injects a clock, used by tests to control time
func WithClock(clock clockwork.Clock) Option {
	return func(s *Scheduler) { s.clock = clock }
}

// WithInterval overrides the sweep interval
func WithInterval(interval time.Duration) Option {
	return func(s *Scheduler) { s.interval = interval }
}

// WithMatchDuration overrides how long a match runs before completion
func WithMatchDuration(d time.Duration) Option {
	return func(s *Scheduler) { s.matchDuration = d }
}

// New creates a match lifecycle scheduler
func New(store MatchStore, bus events.Bus, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:         store,
		bus:           bus,
		clock:         clockwork.NewRealClock(),
		interval:      DefaultInterval,
		matchDuration: DefaultMatchDuration,
		instanceID:    uuid.New().String()[:8],
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run sweeps on the configured interval until ctx is cancelled. One
// sweep runs immediately on startup so a restart does not leave due
// matches waiting a full interval.
func (s *Scheduler) Run(ctx context.Context) error {
	log.Info().
		Str("instance_id", s.instanceID).
		Dur("interval", s.interval).
		Dur("match_duration", s.matchDuration).
		Msg("match scheduler started")

	if err := s.Tick(ctx); err != nil {
		log.Error().Err(err).Msg("scheduler sweep failed")
	}

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("instance_id", s.instanceID).Msg("match scheduler stopped")
			return ctx.Err()
		case <-ticker.Chan():
			if err := s.Tick(ctx); err != nil {
				log.Error().Err(err).Msg("scheduler sweep failed")
			}
		}
	}
}

// Tick runs a single sweep: start every due scheduled match, then
// complete every ongoing match past its duration. A failure on one
// match never blocks the others.
func (s *Scheduler) Tick(ctx context.Context) error {
	now := s.clock.Now().UTC()

	due, err := s.store.ListDueScheduled(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to list due scheduled matches: %w", err)
	}
	for _, match := range due {
		s.startMatch(ctx, match)
	}

	finished, err := s.store.ListDueOngoing(ctx, now.Add(-s.matchDuration))
	if err != nil {
		return fmt.Errorf("failed to list finished matches: %w", err)
	}
	for _, match := range finished {
		s.completeMatch(ctx, match)
	}

	return nil
}

func (s *Scheduler) startMatch(ctx context.Context, match models.Match) {
	if err := s.store.MarkOngoing(ctx, match.ID); err != nil {
		// Another instance may have won the transition; the guarded
		// update makes that safe to skip.
		log.Warn().Err(err).Str("match_id", match.ID.String()).Msg("skipping match start")
		return
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Time("start_time", match.StartTime).
		Msg("match started")

	s.publishStatus(ctx, events.TypeMatchStarted, match.ID, models.MatchStatusOngoing)
}

func (s *Scheduler) completeMatch(ctx context.Context, match models.Match) {
	if err := s.store.MarkCompleted(ctx, match.ID); err != nil {
		log.Warn().Err(err).Str("match_id", match.ID.String()).Msg("skipping match completion")
		return
	}

	log.Info().Str("match_id", match.ID.String()).Msg("match completed")

	s.publishStatus(ctx, events.TypeMatchStatusChanged, match.ID, models.MatchStatusCompleted)
}

func (s *Scheduler) publishStatus(ctx context.Context, t events.Type, matchID uuid.UUID, status models.MatchStatus) {
	event, err := events.New(t, matchID, events.MatchStatusPayload{
		MatchID: matchID,
		Status:  string(status),
	}, s.clock.Now())
	if err != nil {
		log.Error().Err(err).Str("match_id", matchID.String()).Msg("failed to build status event")
		return
	}

	if err := s.bus.Publish(ctx, event); err != nil {
		// Broadcast is best-effort: the state transition already
		// committed and is the source of truth.
		log.Error().Err(err).Str("match_id", matchID.String()).Msg("failed to publish status event")
	}
}
