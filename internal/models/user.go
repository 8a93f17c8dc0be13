package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names seeded by the initial migration.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// Role is a named permission level
type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// User is an operator or viewer account
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	RoleID       uuid.UUID `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
}
