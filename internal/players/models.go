package players

import "github.com/google/uuid"

// CreatePlayerRequest represents the data needed to register a player
type CreatePlayerRequest struct {
	Name         string    `json:"name"`
	TeamID       uuid.UUID `json:"team_id"`
	Position     *string   `json:"position,omitempty"`
	Nationality  *string   `json:"nationality,omitempty"`
	JerseyNumber int       `json:"jersey_number"`
}

// TeamOption is a team offered in the event entry form for a given match
type TeamOption struct {
	TeamID   uuid.UUID `json:"team_id"`
	TeamName string    `json:"team_name"`
}
