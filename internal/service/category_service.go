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

// categoryService is the concrete implementation of CategoryService.
// Category mutations require the ADMIN or EDITOR role.
type categoryService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newCategoryService creates a new CategoryService
func newCategoryService(repos *repository.Repositories, log zerolog.Logger) *categoryService {
	return &categoryService{
		repos: repos,
		log:   log.With().Str("service", "category").Logger(),
	}
}

// List returns one page of categories matching the filter
func (s *categoryService) List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Category, *models.ListMeta, error) {
	categories, total, err := s.repos.Category.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return categories, models.NewListMeta(total, filter.Page, filter.Limit), nil
}

// Get returns a single category
func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repos.Category.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create validates the payload, derives the slug when absent, and
// writes the category plus its audit entry in one transaction.
func (s *categoryService) Create(ctx context.Context, actor *auth.Identity, in *models.TaxonomyInput) (*models.Category, error) {
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

	exists, err := s.repos.Category.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, slugConflict("category")
	}

	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
	}

	now := time.Now().UTC()
	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Category.Create(ctx, category); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionCreate, "Category", category.ID,
			fmt.Sprintf("Created category %q", category.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, slugConflict("category")
		}
		return nil, err
	}

	s.log.Info().
		Str("category_id", category.ID).
		Str("slug", category.Slug).
		Str("actor_id", actor.UserID).
		Msg("Category created")

	return category, nil
}

// Update applies changes to a category, regenerating the slug from the
// name when no explicit slug is supplied.
func (s *categoryService) Update(ctx context.Context, actor *auth.Identity, id string, in *models.TaxonomyInput) (*models.Category, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrForbidden
	}

	existing, err := s.repos.Category.GetByID(ctx, id)
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

	exists, err := s.repos.Category.SlugExists(ctx, slug, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, slugConflict("category")
	}

	existing.Name = in.Name
	existing.Slug = slug
	existing.Description = in.Description

	now := time.Now().UTC()
	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Category.Update(ctx, existing); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionUpdate, "Category", id,
			fmt.Sprintf("Updated category %q", existing.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, slugConflict("category")
		}
		return nil, err
	}

	return existing, nil
}

// Delete removes a category and its post links
func (s *categoryService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin, models.RoleEditor) {
		return ErrForbidden
	}

	existing, err := s.repos.Category.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	now := time.Now().UTC()
	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Category.Delete(ctx, id); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionDelete, "Category", id,
			fmt.Sprintf("Deleted category %q", existing.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("category_id", id).
		Str("actor_id", actor.UserID).
		Msg("Category deleted")

	return nil
}
