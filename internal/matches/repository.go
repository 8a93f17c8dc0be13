package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
	"github.com/eugeneboyah/LIb-Score/internal/sqlutil"
	"github.com/eugeneboyah/LIb-Score/internal/store"
)

// Repository implements match data access operations
type Repository struct {
	db store.DBTX
}

// NewRepository creates a new matches repository
func NewRepository(db store.DBTX) *Repository {
	return &Repository{db: db}
}

// CreateMatch creates a new match in the scheduled state
func (r *Repository) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	match := models.Match{
		ID:         uuid.New(),
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		LeagueID:   req.LeagueID,
		StartTime:  req.StartTime,
		Status:     models.MatchStatusScheduled,
		Venue:      req.Venue,
		Referee:    req.Referee,
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO matches (match_id, home_team_id, away_team_id, league_id, start_time, status, venue, referee)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		match.ID, match.HomeTeamID, match.AwayTeamID, match.LeagueID,
		match.StartTime, match.Status,
		sqlutil.ToSqlString(req.Venue), sqlutil.ToSqlString(req.Referee),
	)
	if err := row.Scan(&match.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return &match, nil
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	row := r.db.QueryRow(ctx,
		`SELECT match_id, home_team_id, away_team_id, league_id, start_time, status, venue, referee, created_at
		 FROM matches WHERE match_id = $1`,
		id,
	)

	match, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("match %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// ListFixturesByLeague retrieves scheduled matches for a league with team
// names, ordered soonest first.
func (r *Repository) ListFixturesByLeague(ctx context.Context, leagueID uuid.UUID) ([]Fixture, error) {
	return r.listFixtures(ctx, leagueID, models.MatchStatusScheduled)
}

// ListOngoingByLeague retrieves matches currently being played in a league
func (r *Repository) ListOngoingByLeague(ctx context.Context, leagueID uuid.UUID) ([]Fixture, error) {
	return r.listFixtures(ctx, leagueID, models.MatchStatusOngoing)
}

func (r *Repository) listFixtures(ctx context.Context, leagueID uuid.UUID, status models.MatchStatus) ([]Fixture, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.match_id, m.start_time, m.status,
		        m.home_team_id, home_team.team_name,
		        m.away_team_id, away_team.team_name
		 FROM matches m
		 JOIN teams home_team ON m.home_team_id = home_team.team_id
		 JOIN teams away_team ON m.away_team_id = away_team.team_id
		 WHERE m.league_id = $1 AND m.status = $2
		 ORDER BY m.start_time ASC`,
		leagueID, status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s matches: %w", status, err)
	}
	defer rows.Close()

	var fixtures []Fixture
	for rows.Next() {
		var f Fixture
		if err := rows.Scan(&f.MatchID, &f.StartTime, &f.Status,
			&f.HomeTeamID, &f.HomeTeamName, &f.AwayTeamID, &f.AwayTeamName); err != nil {
			return nil, fmt.Errorf("failed to scan fixture: %w", err)
		}
		fixtures = append(fixtures, f)
	}

	return fixtures, rows.Err()
}

// NextMatch returns the next scheduled match in a league, if any
func (r *Repository) NextMatch(ctx context.Context, leagueID uuid.UUID) (*Fixture, error) {
	fixtures, err := r.ListFixturesByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("no scheduled match in league %s: %w", leagueID, apperrors.ErrNotFound)
	}
	return &fixtures[0], nil
}

// ListResultsByLeague retrieves completed matches with final scores for a
// league, most recent first.
func (r *Repository) ListResultsByLeague(ctx context.Context, leagueID uuid.UUID) ([]MatchResult, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.match_id, m.start_time,
		        m.home_team_id, home_team.team_name,
		        m.away_team_id, away_team.team_name,
		        s.home_score, s.away_score
		 FROM matches m
		 JOIN teams home_team ON m.home_team_id = home_team.team_id
		 JOIN teams away_team ON m.away_team_id = away_team.team_id
		 JOIN scores s ON m.match_id = s.match_id
		 WHERE m.league_id = $1 AND m.status = 'completed'
		 ORDER BY m.start_time DESC`,
		leagueID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var res MatchResult
		if err := rows.Scan(&res.MatchID, &res.StartTime,
			&res.HomeTeamID, &res.HomeTeamName, &res.AwayTeamID, &res.AwayTeamName,
			&res.HomeScore, &res.AwayScore); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// UpdateMatch updates an existing match. Status is never touched here.
func (r *Repository) UpdateMatch(ctx context.Context, id uuid.UUID, req UpdateMatchRequest) (*models.Match, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE matches
		 SET start_time = COALESCE($2, start_time),
		     venue = COALESCE($3, venue),
		     referee = COALESCE($4, referee)
		 WHERE match_id = $1
		 RETURNING match_id, home_team_id, away_team_id, league_id, start_time, status, venue, referee, created_at`,
		id, sqlutil.ToSqlTime(req.StartTime),
		sqlutil.ToSqlString(req.Venue), sqlutil.ToSqlString(req.Referee),
	)

	match, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("match %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return match, nil
}

// DeleteMatch deletes a match by ID
func (r *Repository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM matches WHERE match_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// ListDueScheduled returns scheduled matches whose start time has passed
func (r *Repository) ListDueScheduled(ctx context.Context, now time.Time) ([]models.Match, error) {
	return r.listByStatusBefore(ctx, models.MatchStatusScheduled, now)
}

// ListDueOngoing returns ongoing matches that started at or before cutoff
func (r *Repository) ListDueOngoing(ctx context.Context, cutoff time.Time) ([]models.Match, error) {
	return r.listByStatusBefore(ctx, models.MatchStatusOngoing, cutoff)
}

func (r *Repository) listByStatusBefore(ctx context.Context, status models.MatchStatus, cutoff time.Time) ([]models.Match, error) {
	rows, err := r.db.Query(ctx,
		`SELECT match_id, home_team_id, away_team_id, league_id, start_time, status, venue, referee, created_at
		 FROM matches
		 WHERE status = $1 AND start_time <= $2
		 ORDER BY start_time ASC`,
		status, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list due %s matches: %w", status, err)
	}
	defer rows.Close()

	var result []models.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		result = append(result, *match)
	}

	return result, rows.Err()
}

// MarkOngoing flips a scheduled match to ongoing. The WHERE guard keeps
// the transition forward-only under concurrent writers.
func (r *Repository) MarkOngoing(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, models.MatchStatusScheduled, models.MatchStatusOngoing)
}

// MarkCompleted flips an ongoing match to completed
func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, models.MatchStatusOngoing, models.MatchStatusCompleted)
}

func (r *Repository) transition(ctx context.Context, id uuid.UUID, from, to models.MatchStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE matches SET status = $3 WHERE match_id = $1 AND status = $2`,
		id, from, to,
	)
	if err != nil {
		return fmt.Errorf("failed to mark match %s %s: %w", id, to, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s no longer %s: %w", id, from, apperrors.ErrNotFound)
	}

	return nil
}

func scanMatch(row pgx.Row) (*models.Match, error) {
	var (
		match   models.Match
		venue   sql.NullString
		referee sql.NullString
	)

	if err := row.Scan(&match.ID, &match.HomeTeamID, &match.AwayTeamID, &match.LeagueID,
		&match.StartTime, &match.Status, &venue, &referee, &match.CreatedAt); err != nil {
		return nil, err
	}

	match.Venue = sqlutil.FromSqlStringPtr(venue)
	match.Referee = sqlutil.FromSqlStringPtr(referee)
	return &match, nil
}
