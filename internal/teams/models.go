package teams

import "github.com/google/uuid"

// CreateTeamRequest represents the data needed to register a new team.
// Logo holds the raw bytes of the uploaded image.
type CreateTeamRequest struct {
	Name     string    `json:"name"`
	LeagueID uuid.UUID `json:"league_id"`
	Logo     []byte    `json:"-"`
}

// UpdateTeamRequest represents the data that can be updated for a team
type UpdateTeamRequest struct {
	Name *string `json:"name,omitempty"`
	Logo []byte  `json:"-"`
}
