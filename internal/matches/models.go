package matches

import (
	"time"

	"github.com/google/uuid"
)

// CreateMatchRequest represents the data needed to schedule a match.
// Matches are always created in the scheduled state; the scheduler owns
// all later transitions.
type CreateMatchRequest struct {
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	LeagueID   uuid.UUID `json:"league_id"`
	StartTime  time.Time `json:"start_time"`
	Venue      *string   `json:"venue,omitempty"`
	Referee    *string   `json:"referee,omitempty"`
}

// UpdateMatchRequest represents the fields an operator may correct.
// Status is deliberately absent: lifecycle state moves forward only, via
// the scheduler.
type UpdateMatchRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	Venue     *string    `json:"venue,omitempty"`
	Referee   *string    `json:"referee,omitempty"`
}

// Fixture is a scheduled match joined with team names for listing
type Fixture struct {
	MatchID      uuid.UUID `json:"match_id"`
	StartTime    time.Time `json:"start_time"`
	Status       string    `json:"status"`
	HomeTeamID   uuid.UUID `json:"home_team_id"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamID   uuid.UUID `json:"away_team_id"`
	AwayTeamName string    `json:"away_team_name"`
}

// MatchResult is a completed match joined with its final score
type MatchResult struct {
	MatchID      uuid.UUID `json:"match_id"`
	StartTime    time.Time `json:"start_time"`
	HomeTeamID   uuid.UUID `json:"home_team_id"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamID   uuid.UUID `json:"away_team_id"`
	AwayTeamName string    `json:"away_team_name"`
	HomeScore    int       `json:"home_score"`
	AwayScore    int       `json:"away_score"`
}
