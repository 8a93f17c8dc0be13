package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
	"github.com/eugeneboyah/LIb-Score/internal/sqlutil"
	"github.com/eugeneboyah/LIb-Score/internal/store"
)

// Repository implements player data access operations
type Repository struct {
	db store.DBTX
}

// NewRepository creates a new players repository
func NewRepository(db store.DBTX) *Repository {
	return &Repository{db: db}
}

// CreatePlayer creates a new player
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	player := models.Player{
		ID:           uuid.New(),
		TeamID:       req.TeamID,
		Name:         req.Name,
		Position:     req.Position,
		Nationality:  req.Nationality,
		JerseyNumber: req.JerseyNumber,
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO players (player_id, team_id, player_name, position, nationality, jersey_number)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		player.ID, player.TeamID, player.Name,
		sqlutil.ToSqlString(req.Position), sqlutil.ToSqlString(req.Nationality),
		player.JerseyNumber,
	)
	if err := row.Scan(&player.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return &player, nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row := r.db.QueryRow(ctx,
		`SELECT player_id, team_id, player_name, position, nationality, jersey_number, created_at
		 FROM players WHERE player_id = $1`,
		id,
	)

	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

// ListPlayersByTeam retrieves all players on a team
func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	rows, err := r.db.Query(ctx,
		`SELECT player_id, team_id, player_name, position, nationality, jersey_number, created_at
		 FROM players WHERE team_id = $1 ORDER BY jersey_number`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}
	defer rows.Close()

	var result []models.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		result = append(result, *player)
	}

	return result, rows.Err()
}

// ListTeamsForMatch returns the two teams contesting a match, for the
// event entry form.
func (r *Repository) ListTeamsForMatch(ctx context.Context, matchID uuid.UUID) ([]TeamOption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT team_id, team_name FROM teams
		 WHERE team_id IN (
		     SELECT home_team_id FROM matches WHERE match_id = $1
		     UNION
		     SELECT away_team_id FROM matches WHERE match_id = $1
		 )
		 ORDER BY team_name`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for match: %w", err)
	}
	defer rows.Close()

	var options []TeamOption
	for rows.Next() {
		var opt TeamOption
		if err := rows.Scan(&opt.TeamID, &opt.TeamName); err != nil {
			return nil, fmt.Errorf("failed to scan team option: %w", err)
		}
		options = append(options, opt)
	}

	return options, rows.Err()
}

func scanPlayer(row pgx.Row) (*models.Player, error) {
	var (
		player      models.Player
		position    sql.NullString
		nationality sql.NullString
	)

	if err := row.Scan(&player.ID, &player.TeamID, &player.Name, &position, &nationality,
		&player.JerseyNumber, &player.CreatedAt); err != nil {
		return nil, err
	}

	player.Position = sqlutil.FromSqlStringPtr(position)
	player.Nationality = sqlutil.FromSqlStringPtr(nationality)
	return &player, nil
}
