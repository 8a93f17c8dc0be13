package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a match. Transitions are forward
// only: scheduled -> ongoing -> completed.
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusOngoing   MatchStatus = "ongoing"
	MatchStatusCompleted MatchStatus = "completed"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusOngoing, MatchStatusCompleted:
		return true
	}
	return false
}

// Match represents a fixture between two teams in a league
type Match struct {
	ID         uuid.UUID   `json:"id"`
	HomeTeamID uuid.UUID   `json:"home_team_id"`
	AwayTeamID uuid.UUID   `json:"away_team_id"`
	LeagueID   uuid.UUID   `json:"league_id"`
	StartTime  time.Time   `json:"start_time"`
	Status     MatchStatus `json:"status"`
	Venue      *string     `json:"venue,omitempty"`
	Referee    *string     `json:"referee,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
