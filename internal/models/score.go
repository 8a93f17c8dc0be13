package models

import (
	"time"

	"github.com/google/uuid"
)

// Score is the current scoreline of a match. There is exactly one row per
// match; writes are upserts keyed by MatchID.
type Score struct {
	ID          uuid.UUID `json:"id"`
	MatchID     uuid.UUID `json:"match_id"`
	HomeScore   int       `json:"home_score"`
	AwayScore   int       `json:"away_score"`
	TimeUpdated time.Time `json:"time_updated"`
}
