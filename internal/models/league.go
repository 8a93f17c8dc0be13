package models

import (
	"time"

	"github.com/google/uuid"
)

// League represents a competition that teams and matches belong to
type League struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
