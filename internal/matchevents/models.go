package matchevents

import (
	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// CreateMatchEventRequest represents an in-match event to record.
// EventTime is the match minute.
type CreateMatchEventRequest struct {
	MatchID     uuid.UUID             `json:"match_id"`
	PlayerID    *uuid.UUID            `json:"player_id,omitempty"`
	TeamID      *uuid.UUID            `json:"team_id,omitempty"`
	EventType   models.MatchEventType `json:"event_type"`
	EventTime   int                   `json:"event_time"`
	Description *string               `json:"description,omitempty"`
}
