package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type identifies a notification on the wire. The names match what viewer
// sessions listen for.
type Type string

const (
	TypeScoreUpdate        Type = "scoreUpdate"
	TypeMatchStarted       Type = "matchStarted"
	TypeMatchStatusChanged Type = "matchStatusChanged"
)

// Event is the envelope delivered to viewer sessions and, when the NATS
// bridge is enabled, across instances.
type Event struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	MatchID   uuid.UUID       `json:"match_id"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// ScoreUpdatePayload carries a new scoreline for a match.
type ScoreUpdatePayload struct {
	MatchID   uuid.UUID `json:"match_id"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}

// MatchStatusPayload carries a lifecycle transition for a match.
type MatchStatusPayload struct {
	MatchID uuid.UUID `json:"match_id"`
	Status  string    `json:"status"`
}

// New builds an event envelope with a marshaled payload. The timestamp
// comes from the caller so publishers on an injected clock produce
// deterministic envelopes.
func New(t Type, matchID uuid.UUID, payload any, now time.Time) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", t, err)
	}

	return Event{
		ID:        uuid.New().String(),
		Type:      t,
		MatchID:   matchID,
		Timestamp: now.UTC(),
		Data:      data,
	}, nil
}

// Bus delivers events to currently interested subscribers. Delivery is
// best-effort and at-most-once: implementations never retry and never
// persist missed messages.
type Bus interface {
	Publish(ctx context.Context, event Event) error
}

// Fanout publishes to every bus in order. Errors are collected, not
// short-circuited, so one failing transport does not starve the others.
type Fanout []Bus

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, bus := range f {
		if err := bus.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
