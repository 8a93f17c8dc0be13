package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

// ErrInvalidCredentials is returned for a failed login without revealing
// whether the username exists.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperrors.ErrValidation)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, username, passwordHash, email string, roleID uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
}

// App handles account registration and login
type App struct {
	repo UsersRepository
}

// NewApp creates a new users App
func NewApp(repo UsersRepository) *App {
	return &App{repo: repo}
}

// Register creates an account. Passwords are stored as bcrypt hashes.
// The role defaults to operator when the request does not name one.
func (a *App) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", apperrors.ErrValidation)
	}

	roleName := req.Role
	if roleName == "" {
		roleName = models.RoleOperator
	}
	role, err := a.repo.GetRoleByName(ctx, roleName)
	if err != nil {
		return nil, fmt.Errorf("role lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, req.Username, string(hash), req.Email, role.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("registered user")
	return user, nil
}

// Login verifies credentials and returns the account
func (a *App) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	user, err := a.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	log.Info().Str("username", user.Username).Msg("user logged in")
	return user, nil
}
