package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/store"
)

// entityTables is the closed set of entities the admin surface may
// delete from. Requests naming anything else are rejected before any
// SQL is built.
var entityTables = map[string]struct {
	table    string
	idColumn string
}{
	"teams":        {table: "teams", idColumn: "team_id"},
	"matches":      {table: "matches", idColumn: "match_id"},
	"players":      {table: "players", idColumn: "player_id"},
	"scores":       {table: "scores", idColumn: "score_id"},
	"match_events": {table: "match_events", idColumn: "event_id"},
}

// Repository implements administrative data access operations
type Repository struct {
	db store.DBTX
}

// NewRepository creates a new admin repository
func NewRepository(db store.DBTX) *Repository {
	return &Repository{db: db}
}

// DeleteEntity removes one row from a known entity table
func (r *Repository) DeleteEntity(ctx context.Context, entity string, id uuid.UUID) error {
	target, ok := entityTables[entity]
	if !ok {
		return fmt.Errorf("%w: unknown entity %q", apperrors.ErrValidation, entity)
	}

	tag, err := r.db.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, target.table, target.idColumn),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", entity, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrNotFound)
	}

	return nil
}
