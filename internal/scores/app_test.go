package scores

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/events"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

type fakeScoresRepo struct {
	scores  map[uuid.UUID]*models.Score
	upserts int
}

func newFakeScoresRepo() *fakeScoresRepo {
	return &fakeScoresRepo{scores: make(map[uuid.UUID]*models.Score)}
}

func (f *fakeScoresRepo) UpsertScore(_ context.Context, req UpsertScoreRequest, now time.Time) (*models.Score, error) {
	f.upserts++
	score, ok := f.scores[req.MatchID]
	if !ok {
		score = &models.Score{ID: uuid.New(), MatchID: req.MatchID}
		f.scores[req.MatchID] = score
	}
	score.HomeScore = req.HomeScore
	score.AwayScore = req.AwayScore
	score.TimeUpdated = now
	return score, nil
}

func (f *fakeScoresRepo) GetScoreByMatch(_ context.Context, matchID uuid.UUID) (*models.Score, error) {
	score, ok := f.scores[matchID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return score, nil
}

type fakeMatchGetter struct {
	matches map[uuid.UUID]*models.Match
}

func (f *fakeMatchGetter) GetMatch(_ context.Context, id uuid.UUID) (*models.Match, error) {
	match, ok := f.matches[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return match, nil
}

type captureBus struct {
	events []events.Event
	err    error
}

func (b *captureBus) Publish(_ context.Context, event events.Event) error {
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, event)
	return nil
}

func setup() (*App, *fakeScoresRepo, *captureBus, clockwork.Clock, uuid.UUID) {
	repo := newFakeScoresRepo()
	matchID := uuid.New()
	matches := &fakeMatchGetter{matches: map[uuid.UUID]*models.Match{
		matchID: {ID: matchID, Status: models.MatchStatusOngoing},
	}}
	bus := &captureBus{}
	clock := clockwork.NewFakeClock()
	app := NewApp(repo, matches, bus, clock)
	return app, repo, bus, clock, matchID
}

func TestUpsertScorePublishesScoreUpdate(t *testing.T) {
	app, _, bus, clock, matchID := setup()

	score, err := app.UpsertScore(context.Background(), UpsertScoreRequest{
		MatchID:   matchID,
		HomeScore: 2,
		AwayScore: 1,
	})
	if err != nil {
		t.Fatalf("UpsertScore: %v", err)
	}
	if score.HomeScore != 2 || score.AwayScore != 1 {
		t.Errorf("got %d-%d, want 2-1", score.HomeScore, score.AwayScore)
	}

	if len(bus.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(bus.events))
	}
	event := bus.events[0]
	if event.Type != events.TypeScoreUpdate {
		t.Errorf("event type %s, want %s", event.Type, events.TypeScoreUpdate)
	}
	if !event.Timestamp.Equal(clock.Now().UTC()) {
		t.Errorf("event timestamp %v, want clock time %v", event.Timestamp, clock.Now().UTC())
	}

	var payload events.ScoreUpdatePayload
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.MatchID != matchID || payload.HomeScore != 2 || payload.AwayScore != 1 {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestUpsertScoreReplacesExisting(t *testing.T) {
	app, repo, _, _, matchID := setup()

	for _, scores := range [][2]int{{1, 0}, {2, 0}, {2, 1}} {
		if _, err := app.UpsertScore(context.Background(), UpsertScoreRequest{
			MatchID:   matchID,
			HomeScore: scores[0],
			AwayScore: scores[1],
		}); err != nil {
			t.Fatalf("UpsertScore: %v", err)
		}
	}

	if len(repo.scores) != 1 {
		t.Fatalf("expected a single score row per match, got %d", len(repo.scores))
	}
	final := repo.scores[matchID]
	if final.HomeScore != 2 || final.AwayScore != 1 {
		t.Errorf("final score %d-%d, want 2-1", final.HomeScore, final.AwayScore)
	}
}

func TestUpsertScoreRejectsNegativeScores(t *testing.T) {
	app, repo, bus, _, matchID := setup()

	_, err := app.UpsertScore(context.Background(), UpsertScoreRequest{
		MatchID:   matchID,
		HomeScore: -1,
		AwayScore: 0,
	})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.upserts != 0 {
		t.Error("repository written despite validation failure")
	}
	if len(bus.events) != 0 {
		t.Error("event published despite validation failure")
	}
}

func TestUpsertScoreRequiresExistingMatch(t *testing.T) {
	app, _, bus, _, _ := setup()

	_, err := app.UpsertScore(context.Background(), UpsertScoreRequest{
		MatchID:   uuid.New(),
		HomeScore: 1,
		AwayScore: 0,
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if len(bus.events) != 0 {
		t.Error("event published for unknown match")
	}
}

func TestUpsertScoreSucceedsWhenBroadcastFails(t *testing.T) {
	app, repo, bus, _, matchID := setup()
	bus.err = errors.New("bus down")

	score, err := app.UpsertScore(context.Background(), UpsertScoreRequest{
		MatchID:   matchID,
		HomeScore: 3,
		AwayScore: 3,
	})
	if err != nil {
		t.Fatalf("UpsertScore should not fail on broadcast error: %v", err)
	}
	if score == nil || repo.upserts != 1 {
		t.Error("score not persisted")
	}
}
