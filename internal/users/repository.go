package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
	"github.com/eugeneboyah/LIb-Score/internal/store"
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

// Repository implements user data access operations
type Repository struct {
	db store.DBTX
}

// NewRepository creates a new users repository
func NewRepository(db store.DBTX) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user with a pre-hashed password
func (r *Repository) CreateUser(ctx context.Context, username, passwordHash, email string, roleID uuid.UUID) (*models.User, error) {
	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		RoleID:       roleID,
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO users (user_id, username, password_hash, email, role_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		user.ID, user.Username, user.PasswordHash, user.Email, user.RoleID,
	)
	if err := row.Scan(&user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("username or email taken: %w", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	row := r.db.QueryRow(ctx,
		`SELECT user_id, username, password_hash, email, role_id, created_at
		 FROM users WHERE username = $1`,
		username,
	)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.RoleID, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", username, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetRoleByName retrieves a role by its name
func (r *Repository) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role

	row := r.db.QueryRow(ctx,
		`SELECT role_id, role_name FROM roles WHERE role_name = $1`,
		name,
	)
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("role %s: %w", name, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &role, nil
}
