package scores

import "github.com/google/uuid"

// UpsertScoreRequest represents a score update for a match. The write is
// an upsert keyed by MatchID: the first update inserts the row, later
// updates replace it in place.
type UpsertScoreRequest struct {
	MatchID   uuid.UUID `json:"match_id"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}
