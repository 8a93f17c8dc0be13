package teams

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

// Repository implements team data access operations
type Repository struct {
	db store.DBTX
}

// NewRepository creates a new teams repository
func NewRepository(db store.DBTX) *Repository {
	return &Repository{db: db}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	team := models.Team{
		ID:       uuid.New(),
		Name:     req.Name,
		Logo:     req.Logo,
		LeagueID: req.LeagueID,
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO teams (team_id, team_name, logo, league_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		team.ID, team.Name, team.Logo, team.LeagueID,
	)
	if err := row.Scan(&team.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return &team, nil
}

// GetTeam retrieves a team by ID, including its logo bytes
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team

	row := r.db.QueryRow(ctx,
		`SELECT team_id, team_name, logo, league_id, created_at
		 FROM teams WHERE team_id = $1`,
		id,
	)
	if err := row.Scan(&team.ID, &team.Name, &team.Logo, &team.LeagueID, &team.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("team %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &team, nil
}

// ListTeamsByLeague retrieves all teams in a league. Logos are omitted;
// list views only need names.
func (r *Repository) ListTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	rows, err := r.db.Query(ctx,
		`SELECT team_id, team_name, league_id, created_at
		 FROM teams WHERE league_id = $1 ORDER BY team_name`,
		leagueID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by league: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.LeagueID, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// UpdateTeam updates an existing team
func (r *Repository) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	var team models.Team

	row := r.db.QueryRow(ctx,
		`UPDATE teams
		 SET team_name = COALESCE($2, team_name),
		     logo = COALESCE($3, logo)
		 WHERE team_id = $1
		 RETURNING team_id, team_name, logo, league_id, created_at`,
		id, req.Name, req.Logo,
	)
	if err := row.Scan(&team.ID, &team.Name, &team.Logo, &team.LeagueID, &team.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("team %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return &team, nil
}

// DeleteTeam deletes a team by ID
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teams WHERE team_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("team %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}
