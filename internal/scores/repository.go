package scores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
	"github.com/eugeneboyah/LIb-Score/internal/store"
)

// Repository implements score data access operations
type Repository struct {
	db store.DBTX
}

// NewRepository creates a new scores repository
func NewRepository(db store.DBTX) *Repository {
	return &Repository{db: db}
}

// UpsertScore inserts or replaces the score row for a match in a single
// statement. The unique constraint on match_id makes this atomic under
// concurrent writers; there is no read-then-branch window.
func (r *Repository) UpsertScore(ctx context.Context, req UpsertScoreRequest, now time.Time) (*models.Score, error) {
	var score models.Score

	row := r.db.QueryRow(ctx,
		`INSERT INTO scores (score_id, match_id, home_score, away_score, time_updated)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (match_id) DO UPDATE
		 SET home_score = EXCLUDED.home_score,
		     away_score = EXCLUDED.away_score,
		     time_updated = EXCLUDED.time_updated
		 RETURNING score_id, match_id, home_score, away_score, time_updated`,
		uuid.New(), req.MatchID, req.HomeScore, req.AwayScore, now,
	)
	if err := row.Scan(&score.ID, &score.MatchID, &score.HomeScore, &score.AwayScore, &score.TimeUpdated); err != nil {
		return nil, fmt.Errorf("failed to upsert score: %w", err)
	}

	return &score, nil
}

// GetScoreByMatch retrieves the score row for a match
func (r *Repository) GetScoreByMatch(ctx context.Context, matchID uuid.UUID) (*models.Score, error) {
	var score models.Score

	row := r.db.QueryRow(ctx,
		`SELECT score_id, match_id, home_score, away_score, time_updated
		 FROM scores WHERE match_id = $1`,
		matchID,
	)
	if err := row.Scan(&score.ID, &score.MatchID, &score.HomeScore, &score.AwayScore, &score.TimeUpdated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("score for match %s: %w", matchID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return &score, nil
}
