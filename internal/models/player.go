package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a squad member of a team
type Player struct {
	ID           uuid.UUID `json:"id"`
	TeamID       uuid.UUID `json:"team_id"`
	Name         string    `json:"name"`
	Position     *string   `json:"position,omitempty"`
	Nationality  *string   `json:"nationality,omitempty"`
	JerseyNumber int       `json:"jersey_number"`
	CreatedAt    time.Time `json:"created_at"`
}
