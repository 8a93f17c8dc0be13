package admin

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/httpx"
)

// AdminRepository defines what the service layer needs from the repository
type AdminRepository interface {
	DeleteEntity(ctx context.Context, entity string, id uuid.UUID) error
}

// Service exposes administrative delete operations over HTTP
type Service struct {
	repo AdminRepository
}

// NewService creates a new admin HTTP service
func NewService(repo AdminRepository) *Service {
	return &Service{repo: repo}
}

// RegisterRoutes registers admin routes on the mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("DELETE /admin/{entity}/{id}", s.handleDeleteEntity)
}

func (s *Service) handleDeleteEntity(w http.ResponseWriter, r *http.Request) {
	entity := r.PathValue("entity")

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := s.repo.DeleteEntity(r.Context(), entity, id); err != nil {
		httpx.RespondError(w, err)
		return
	}

	log.Info().Str("entity", entity).Str("id", id.String()).Msg("admin delete")
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
