package matchevents

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/eugeneboyah/LIb-Score/internal/models"
	"github.com/eugeneboyah/LIb-Score/internal/sqlutil"
	"github.com/eugeneboyah/LIb-Score/internal/store"
)

// Repository implements match event data access. Rows are append-only:
// there is no update or delete here.
type Repository struct {
	db store.DBTX
}

// NewRepository creates a new match events repository
func NewRepository(db store.DBTX) *Repository {
	return &Repository{db: db}
}

// CreateMatchEvent appends a new event row
func (r *Repository) CreateMatchEvent(ctx context.Context, req CreateMatchEventRequest) (*models.MatchEvent, error) {
	event := models.MatchEvent{
		ID:          uuid.New(),
		MatchID:     req.MatchID,
		PlayerID:    req.PlayerID,
		TeamID:      req.TeamID,
		EventType:   req.EventType,
		EventTime:   req.EventTime,
		Description: req.Description,
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO match_events (event_id, match_id, player_id, team_id, event_type, event_time, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		event.ID, event.MatchID,
		sqlutil.ToNullUUID(req.PlayerID), sqlutil.ToNullUUID(req.TeamID),
		event.EventType, event.EventTime, sqlutil.ToSqlString(req.Description),
	)
	if err := row.Scan(&event.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert match event: %w", err)
	}

	return &event, nil
}

// ListEventsByMatch retrieves all events for a match in match-minute order
func (r *Repository) ListEventsByMatch(ctx context.Context, matchID uuid.UUID) ([]models.MatchEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT event_id, match_id, player_id, team_id, event_type, event_time, description, created_at
		 FROM match_events WHERE match_id = $1
		 ORDER BY event_time ASC, created_at ASC`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match events: %w", err)
	}
	defer rows.Close()

	var result []models.MatchEvent
	for rows.Next() {
		event, err := scanMatchEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match event: %w", err)
		}
		result = append(result, *event)
	}

	return result, rows.Err()
}

func scanMatchEvent(row pgx.Row) (*models.MatchEvent, error) {
	var (
		event       models.MatchEvent
		playerID    uuid.NullUUID
		teamID      uuid.NullUUID
		description sql.NullString
	)

	if err := row.Scan(&event.ID, &event.MatchID, &playerID, &teamID,
		&event.EventType, &event.EventTime, &description, &event.CreatedAt); err != nil {
		return nil, err
	}

	event.PlayerID = sqlutil.FromNullUUID(playerID)
	event.TeamID = sqlutil.FromNullUUID(teamID)
	event.Description = sqlutil.FromSqlStringPtr(description)
	return &event, nil
}
