package leagues

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
	"github.com/eugeneboyah/LIb-Score/internal/store"
)

// Repository implements league data access operations
type Repository struct {
	db store.DBTX
}

// NewRepository creates a new leagues repository
func NewRepository(db store.DBTX) *Repository {
	return &Repository{db: db}
}

// CreateLeague creates a new league
func (r *Repository) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	league := models.League{ID: uuid.New(), Name: req.Name}

	row := r.db.QueryRow(ctx,
		`INSERT INTO leagues (league_id, league_name) VALUES ($1, $2)
		 RETURNING created_at`,
		league.ID, league.Name,
	)
	if err := row.Scan(&league.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	return &league, nil
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	var league models.League

	row := r.db.QueryRow(ctx,
		`SELECT league_id, league_name, created_at FROM leagues WHERE league_id = $1`,
		id,
	)
	if err := row.Scan(&league.ID, &league.Name, &league.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("league %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	return &league, nil
}

// ListLeagues retrieves all leagues ordered by name
func (r *Repository) ListLeagues(ctx context.Context) ([]models.League, error) {
	rows, err := r.db.Query(ctx,
		`SELECT league_id, league_name, created_at FROM leagues ORDER BY league_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	defer rows.Close()

	var leagues []models.League
	for rows.Next() {
		var league models.League
		if err := rows.Scan(&league.ID, &league.Name, &league.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan league: %w", err)
		}
		leagues = append(leagues, league)
	}

	return leagues, rows.Err()
}
