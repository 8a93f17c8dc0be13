package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

type fakeUsersRepo struct {
	users map[string]*models.User
	roles map[string]*models.Role
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		users: make(map[string]*models.User),
		roles: map[string]*models.Role{
			models.RoleAdmin:    {ID: uuid.New(), Name: models.RoleAdmin},
			models.RoleOperator: {ID: uuid.New(), Name: models.RoleOperator},
			models.RoleViewer:   {ID: uuid.New(), Name: models.RoleViewer},
		},
	}
}

func (f *fakeUsersRepo) CreateUser(_ context.Context, username, passwordHash, email string, roleID uuid.UUID) (*models.User, error) {
	if _, exists := f.users[username]; exists {
		return nil, apperrors.ErrConflict
	}
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		RoleID:       roleID,
		CreatedAt:    time.Now(),
	}
	f.users[username] = user
	return user, nil
}

func (f *fakeUsersRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsersRepo) GetRoleByName(_ context.Context, name string) (*models.Role, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return role, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUsersRepo()
	app := NewApp(repo)

	user, err := app.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.PasswordHash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if user.RoleID != repo.roles[models.RoleOperator].ID {
		t.Error("default role should be operator")
	}
}

func TestRegisterWithExplicitRole(t *testing.T) {
	repo := newFakeUsersRepo()
	app := NewApp(repo)

	user, err := app.Register(context.Background(), RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "pw",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.RoleID != repo.roles[models.RoleAdmin].ID {
		t.Error("requested role not applied")
	}
}

func TestRegisterValidation(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	_, err := app.Register(context.Background(), RegisterRequest{Username: "carol"})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	req := RegisterRequest{Username: "dave", Email: "dave@example.com", Password: "pw"}
	if _, err := app.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := app.Register(context.Background(), req)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	if _, err := app.Register(context.Background(), RegisterRequest{
		Username: "erin",
		Email:    "erin@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := app.Login(context.Background(), LoginRequest{Username: "erin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "erin" {
		t.Errorf("logged in as %s", user.Username)
	}

	if _, err := app.Login(context.Background(), LoginRequest{Username: "erin", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
	if _, err := app.Login(context.Background(), LoginRequest{Username: "nobody", Password: "pw"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials for unknown user, got %v", err)
	}
}
