package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/repository"
	"github.com/carewell-health/cms-api/internal/validation"
)

// mediaService is the concrete implementation of MediaService. The
// media library is only visible to authenticated staff, and deletes
// are scoped to the uploading user.
type mediaService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newMediaService creates a new MediaService
func newMediaService(repos *repository.Repositories, log zerolog.Logger) *mediaService {
	return &mediaService{
		repos: repos,
		log:   log.With().Str("service", "media").Logger(),
	}
}

// List returns one page of media items newest-first
func (s *mediaService) List(ctx context.Context, actor *auth.Identity, filter *models.MediaFilter) ([]*models.Media, *models.ListMeta, error) {
	if actor == nil {
		return nil, nil, ErrUnauthenticated
	}

	items, total, err := s.repos.Media.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if items == nil {
		items = []*models.Media{}
	}
	return items, models.NewListMeta(total, filter.Page, filter.Limit), nil
}

// Create records metadata for an uploaded asset. The file itself lives
// with the external upload service; this API stores name, URL, type,
// and size, and writes the audit entry in the same transaction.
func (s *mediaService) Create(ctx context.Context, actor *auth.Identity, in *models.MediaInput) (*models.Media, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	if errs := validation.ValidateMediaInput(in); len(errs) > 0 {
		return nil, errs
	}

	now := time.Now().UTC()
	media := &models.Media{
		ID:        uuid.New().String(),
		Name:      in.Name,
		URL:       in.URL,
		Type:      in.Type,
		Size:      in.Size,
		UserID:    actor.UserID,
		CreatedAt: now,
	}

	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Media.Create(ctx, media); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionCreate, "Media", media.ID,
			fmt.Sprintf("Uploaded media %q", media.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("media_id", media.ID).
		Str("actor_id", actor.UserID).
		Int64("size_bytes", media.Size).
		Msg("Media created")

	return s.repos.Media.GetByID(ctx, media.ID)
}

// BulkDelete removes the caller's own media items from the supplied id
// set and reports how many rows were deleted. Items owned by other
// users are silently skipped.
func (s *mediaService) BulkDelete(ctx context.Context, actor *auth.Identity, ids []string) (int, error) {
	if actor == nil {
		return 0, ErrUnauthenticated
	}
	if len(ids) == 0 {
		return 0, validation.Errors{{Field: "ids", Message: "ids must be a non-empty array of media ids"}}
	}

	now := time.Now().UTC()
	deleted := 0
	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		n, err := r.Media.DeleteOwnedBy(ctx, ids, actor.UserID)
		if err != nil {
			return err
		}
		deleted = n
		entry := auditEntry(actor, models.AuditActionDelete, "Media", strings.Join(ids, ", "),
			fmt.Sprintf("Deleted %d media items", deleted), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Int("deleted", deleted).
		Int("requested", len(ids)).
		Str("actor_id", actor.UserID).
		Msg("Media bulk delete completed")

	return deleted, nil
}
