package leagues

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/apperrors"
	"github.com/eugeneboyah/LIb-Score/internal/models"
)

type fakeLeaguesRepo struct {
	leagues map[uuid.UUID]*models.League
}

func newFakeLeaguesRepo() *fakeLeaguesRepo {
	return &fakeLeaguesRepo{leagues: make(map[uuid.UUID]*models.League)}
}

func (f *fakeLeaguesRepo) CreateLeague(_ context.Context, req CreateLeagueRequest) (*models.League, error) {
	league := &models.League{ID: uuid.New(), Name: req.Name}
	f.leagues[league.ID] = league
	return league, nil
}

func (f *fakeLeaguesRepo) GetLeague(_ context.Context, id uuid.UUID) (*models.League, error) {
	league, ok := f.leagues[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return league, nil
}

func (f *fakeLeaguesRepo) ListLeagues(_ context.Context) ([]models.League, error) {
	var out []models.League
	for _, l := range f.leagues {
		out = append(out, *l)
	}
	return out, nil
}

func newTestMux() (*http.ServeMux, *fakeLeaguesRepo) {
	repo := newFakeLeaguesRepo()
	service := NewService(NewApp(repo))
	mux := http.NewServeMux()
	service.RegisterRoutes(mux)
	return mux, repo
}

func TestCreateLeagueEndpoint(t *testing.T) {
	mux, repo := newTestMux()

	req := httptest.NewRequest(http.MethodPost, "/leagues", strings.NewReader(`{"name":"Premier League"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(repo.leagues) != 1 {
		t.Errorf("expected 1 league stored, got %d", len(repo.leagues))
	}
}

func TestCreateLeagueRejectsEmptyName(t *testing.T) {
	mux, _ := newTestMux()

	req := httptest.NewRequest(http.MethodPost, "/leagues", strings.NewReader(`{"name":""}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetLeagueNotFound(t *testing.T) {
	mux, _ := newTestMux()

	req := httptest.NewRequest(http.MethodGet, "/leagues/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetLeagueInvalidID(t *testing.T) {
	mux, _ := newTestMux()

	req := httptest.NewRequest(http.MethodGet, "/leagues/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
