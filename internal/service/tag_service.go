package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/repository"
	"github.com/carewell-health/cms-api/internal/validation"
)

// tagService is the concrete implementation of TagService. Tag
// mutations require the ADMIN or EDITOR role, same as categories.
type tagService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newTagService creates a new TagService
func newTagService(repos *repository.Repositories, log zerolog.Logger) *tagService {
	return &tagService{
		repos: repos,
		log:   log.With().Str("service", "tag").Logger(),
	}
}

// List returns one page of tags matching the filter
func (s *tagService) List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Tag, *models.ListMeta, error) {
	tags, total, err := s.repos.Tag.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	return tags, models.NewListMeta(total, filter.Page, filter.Limit), nil
}

// Get returns a single tag
func (s *tagService) Get(ctx context.Context, id string) (*models.Tag, error) {
	tag, err := s.repos.Tag.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}
	return tag, nil
}

// Create validates the payload, derives the slug when absent, and
// writes the tag plus its audit entry in one transaction.
func (s *tagService) Create(ctx context.Context, actor *auth.Identity, in *models.TaxonomyInput) (*models.Tag, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrForbidden
	}

	if errs := validation.ValidateTaxonomyInput(in); len(errs) > 0 {
		return nil, errs
	}

	slug := in.Slug
	if slug == "" {
		slug = validation.Slugify(in.Name)
	}
	if slug == "" {
		return nil, validation.Errors{{Field: "name", Message: "name must contain at least one letter or number"}}
	}

	exists, err := s.repos.Tag.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, slugConflict("tag")
	}

	tag := &models.Tag{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
	}

	now := time.Now().UTC()
	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Tag.Create(ctx, tag); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionCreate, "Tag", tag.ID,
			fmt.Sprintf("Created tag %q", tag.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, slugConflict("tag")
		}
		return nil, err
	}

	s.log.Info().
		Str("tag_id", tag.ID).
		Str("slug", tag.Slug).
		Str("actor_id", actor.UserID).
		Msg("Tag created")

	return tag, nil
}

// Update applies changes to a tag, regenerating the slug from the name
// when no explicit slug is supplied.
func (s *tagService) Update(ctx context.Context, actor *auth.Identity, id string, in *models.TaxonomyInput) (*models.Tag, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrForbidden
	}

	existing, err := s.repos.Tag.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if errs := validation.ValidateTaxonomyInput(in); len(errs) > 0 {
		return nil, errs
	}

	slug := in.Slug
	if slug == "" {
		slug = validation.Slugify(in.Name)
	}
	if slug == "" {
		return nil, validation.Errors{{Field: "name", Message: "name must contain at least one letter or number"}}
	}

	exists, err := s.repos.Tag.SlugExists(ctx, slug, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, slugConflict("tag")
	}

	existing.Name = in.Name
	existing.Slug = slug
	existing.Description = in.Description

	now := time.Now().UTC()
	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Tag.Update(ctx, existing); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionUpdate, "Tag", id,
			fmt.Sprintf("Updated tag %q", existing.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, slugConflict("tag")
		}
		return nil, err
	}

	return existing, nil
}

// Delete removes a tag and its post links
func (s *tagService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin, models.RoleEditor) {
		return ErrForbidden
	}

	existing, err := s.repos.Tag.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	now := time.Now().UTC()
	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Tag.Delete(ctx, id); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionDelete, "Tag", id,
			fmt.Sprintf("Deleted tag %q", existing.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		return err
	}

	return nil
}
