// Package apperrors defines the sentinel errors shared across app layers.
// Handlers branch on these with errors.Is to pick a response status.
package apperrors

import "errors"

var (
	// ErrValidation marks a client-supplied request that failed validation.
	// Nothing was persisted.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup for an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write rejected by a uniqueness constraint.
	ErrConflict = errors.New("already exists")
)
