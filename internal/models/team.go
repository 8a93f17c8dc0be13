package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a club registered in a league. Logo holds the raw
// uploaded image bytes; transcoding to a displayable form happens at the
// presentation boundary only.
type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Logo      []byte    `json:"-"`
	LeagueID  uuid.UUID `json:"league_id"`
	CreatedAt time.Time `json:"created_at"`
}
