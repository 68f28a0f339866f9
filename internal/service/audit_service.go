package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/repository"
)

// auditService exposes a read-only admin view over the audit log.
// Entries are written by the mutating services, never through here.
type auditService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newAuditService creates a new AuditService
func newAuditService(repos *repository.Repositories, log zerolog.Logger) *auditService {
	return &auditService{
		repos: repos,
		log:   log.With().Str("service", "audit").Logger(),
	}
}

// List returns one page of audit entries newest-first. ADMIN only.
func (s *auditService) List(ctx context.Context, actor *auth.Identity, filter *models.AuditFilter) ([]*models.AuditLogEntry, *models.ListMeta, error) {
	if actor == nil {
		return nil, nil, ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin) {
		return nil, nil, ErrForbidden
	}

	entries, total, err := s.repos.Audit.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if entries == nil {
		entries = []*models.AuditLogEntry{}
	}
	return entries, models.NewListMeta(total, filter.Page, filter.Limit), nil
}
