package standings

import "github.com/google/uuid"

// Row is one team's line in a league table
type Row struct {
	TeamID   uuid.UUID `json:"team_id"`
	TeamName string    `json:"team_name"`
	Played   int       `json:"played"`
	Wins     int       `json:"wins"`
	Draws    int       `json:"draws"`
	Losses   int       `json:"losses"`
	Points   int       `json:"points"`
}
