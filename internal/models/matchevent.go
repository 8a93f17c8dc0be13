package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchEventType classifies an in-match event
type MatchEventType string

const (
	MatchEventGoal         MatchEventType = "goal"
	MatchEventYellowCard   MatchEventType = "yellow_card"
	MatchEventRedCard      MatchEventType = "red_card"
	MatchEventSubstitution MatchEventType = "substitution"
)

// Valid reports whether the event type is one of the known values.
func (t MatchEventType) Valid() bool {
	switch t {
	case MatchEventGoal, MatchEventYellowCard, MatchEventRedCard, MatchEventSubstitution:
		return true
	}
	return false
}

// MatchEvent is an append-only record of something that happened during a
// match. EventTime is the match minute.
type MatchEvent struct {
	ID          uuid.UUID      `json:"id"`
	MatchID     uuid.UUID      `json:"match_id"`
	PlayerID    *uuid.UUID     `json:"player_id,omitempty"`
	TeamID      *uuid.UUID     `json:"team_id,omitempty"`
	EventType   MatchEventType `json:"event_type"`
	EventTime   int            `json:"event_time"`
	Description *string        `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
