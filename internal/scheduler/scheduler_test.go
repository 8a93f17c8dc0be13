package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/eugeneboyah/LIb-Score/internal/events"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

type fakeMatchStore struct {
	mu        sync.Mutex
	scheduled map[uuid.UUID]models.Match
	ongoing   map[uuid.UUID]models.Match
	completed map[uuid.UUID]models.Match
	failMark  map[uuid.UUID]bool
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{
		scheduled: make(map[uuid.UUID]models.Match),
		ongoing:   make(map[uuid.UUID]models.Match),
		completed: make(map[uuid.UUID]models.Match),
		failMark:  make(map[uuid.UUID]bool),
	}
}

func (f *fakeMatchStore) addScheduled(start time.Time) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.scheduled[id] = models.Match{ID: id, StartTime: start, Status: models.MatchStatusScheduled}
	return id
}

func (f *fakeMatchStore) ListDueScheduled(_ context.Context, now time.Time) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var due []models.Match
	for _, m := range f.scheduled {
		if !m.StartTime.After(now) {
			due = append(due, m)
		}
	}
	return due, nil
}

func (f *fakeMatchStore) ListDueOngoing(_ context.Context, cutoff time.Time) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var due []models.Match
	for _, m := range f.ongoing {
		if !m.StartTime.After(cutoff) {
			due = append(due, m)
		}
	}
	return due, nil
}

func (f *fakeMatchStore) MarkOngoing(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMark[id] {
		return errors.New("transition refused")
	}
	m, ok := f.scheduled[id]
	if !ok {
		return errors.New("not scheduled")
	}
	delete(f.scheduled, id)
	m.Status = models.MatchStatusOngoing
	f.ongoing[id] = m
	return nil
}

func (f *fakeMatchStore) MarkCompleted(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.ongoing[id]
	if !ok {
		return errors.New("not ongoing")
	}
	delete(f.ongoing, id)
	m.Status = models.MatchStatusCompleted
	f.completed[id] = m
	return nil
}

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *recordingBus) byType(t events.Type) []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []events.Event
	for _, e := range b.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestTickStartsDueMatchExactlyOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeMatchStore()
	bus := &recordingBus{}
	sched := New(store, bus, WithClock(clock))

	matchID := store.addScheduled(clock.Now().Add(-time.Minute))

	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	started := bus.byType(events.TypeMatchStarted)
	if len(started) != 1 {
		t.Fatalf("expected 1 matchStarted event, got %d", len(started))
	}
	if started[0].MatchID != matchID {
		t.Errorf("matchStarted for %s, want %s", started[0].MatchID, matchID)
	}
	if !started[0].Timestamp.Equal(clock.Now().UTC()) {
		t.Errorf("event timestamp %v, want clock time %v", started[0].Timestamp, clock.Now().UTC())
	}
	if _, ok := store.ongoing[matchID]; !ok {
		t.Error("match not marked ongoing")
	}

	// A second sweep must not start the match again
	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("second Tick: %v", err)
	}
	if got := len(bus.byType(events.TypeMatchStarted)); got != 1 {
		t.Errorf("expected 1 matchStarted event after second sweep, got %d", got)
	}
}

func TestTickIgnoresFutureMatches(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeMatchStore()
	bus := &recordingBus{}
	sched := New(store, bus, WithClock(clock))

	store.addScheduled(clock.Now().Add(time.Hour))

	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(bus.events) != 0 {
		t.Fatalf("expected no events for a future match, got %d", len(bus.events))
	}
	if len(store.ongoing) != 0 {
		t.Error("future match was started")
	}
}

func TestTickCompletesMatchAfterDuration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeMatchStore()
	bus := &recordingBus{}
	sched := New(store, bus, WithClock(clock))

	matchID := store.addScheduled(clock.Now())

	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if _, ok := store.ongoing[matchID]; !ok {
		t.Fatal("match not started")
	}

	// Not finished yet at 89 minutes in
	clock.Advance(DefaultMatchDuration - time.Minute)
	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(store.completed) != 0 {
		t.Fatal("match completed too early")
	}

	clock.Advance(time.Minute)
	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if _, ok := store.completed[matchID]; !ok {
		t.Fatal("match not completed after full duration")
	}

	changed := bus.byType(events.TypeMatchStatusChanged)
	if len(changed) != 1 {
		t.Fatalf("expected 1 matchStatusChanged event, got %d", len(changed))
	}
	if changed[0].MatchID != matchID {
		t.Errorf("matchStatusChanged for %s, want %s", changed[0].MatchID, matchID)
	}
}

func TestTickIsolatesPerMatchFailures(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeMatchStore()
	bus := &recordingBus{}
	sched := New(store, bus, WithClock(clock))

	failing := store.addScheduled(clock.Now().Add(-time.Minute))
	healthy := store.addScheduled(clock.Now().Add(-time.Minute))
	store.failMark[failing] = true

	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	started := bus.byType(events.TypeMatchStarted)
	if len(started) != 1 {
		t.Fatalf("expected 1 matchStarted event, got %d", len(started))
	}
	if started[0].MatchID != healthy {
		t.Errorf("wrong match started: %s", started[0].MatchID)
	}
	if _, ok := store.ongoing[failing]; ok {
		t.Error("failing match was started")
	}
}

func TestCustomMatchDuration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := newFakeMatchStore()
	bus := &recordingBus{}
	sched := New(store, bus, WithClock(clock), WithMatchDuration(10*time.Minute))

	matchID := store.addScheduled(clock.Now())

	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	clock.Advance(10 * time.Minute)
	if err := sched.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if _, ok := store.completed[matchID]; !ok {
		t.Fatal("match not completed after custom duration")
	}
}
