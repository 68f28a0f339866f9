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

// postService is the concrete implementation of PostService
type postService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newPostService creates a new PostService
func newPostService(repos *repository.Repositories, log zerolog.Logger) *postService {
	return &postService{
		repos: repos,
		log:   log.With().Str("service", "post").Logger(),
	}
}

// List returns one page of posts matching the filter
func (s *postService) List(ctx context.Context, filter *models.PostFilter) ([]*models.Post, *models.ListMeta, error) {
	posts, total, err := s.repos.Post.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, models.NewListMeta(total, filter.Page, filter.Limit), nil
}

// Get returns a single post with its relations
func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create validates the payload, derives the slug when absent, and
// writes the post plus its audit entry in one transaction.
func (s *postService) Create(ctx context.Context, actor *auth.Identity, in *models.PostInput) (*models.Post, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	if errs := validation.ValidatePostInput(in); len(errs) > 0 {
		return nil, errs
	}

	slug := in.Slug
	if slug == "" {
		slug = validation.Slugify(in.Title)
	}
	if slug == "" {
		return nil, validation.Errors{{Field: "title", Message: "title must contain at least one letter or number"}}
	}

	exists, err := s.repos.Post.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, slugConflict("post")
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Slug:            slug,
		Content:         in.Content,
		Excerpt:         in.Excerpt,
		FeaturedImage:   in.FeaturedImage,
		Status:          models.PostStatus(in.Status),
		PublishedAt:     in.PublishedAt,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		AuthorID:        actor.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Post.Create(ctx, post, dedupe(in.Categories), dedupe(in.Tags)); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionCreate, "Post", post.ID,
			fmt.Sprintf("Created post %q", post.Title), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, slugConflict("post")
		}
		return nil, err
	}

	s.log.Info().
		Str("post_id", post.ID).
		Str("slug", post.Slug).
		Str("actor_id", actor.UserID).
		Msg("Post created")

	return s.repos.Post.GetByID(ctx, post.ID)
}

// Update applies partial changes to a post. Only the original author or
// an admin may update. A title change without an explicit slug
// regenerates the slug, changing the public URL.
func (s *postService) Update(ctx context.Context, actor *auth.Identity, id string, in *models.PostUpdateInput) (*models.Post, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	existing, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.AuthorID != actor.UserID && actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	if errs := validation.ValidatePostUpdate(in); len(errs) > 0 {
		return nil, errs
	}

	previousTitle := existing.Title

	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Content != nil {
		existing.Content = *in.Content
	}
	if in.Excerpt != nil {
		existing.Excerpt = *in.Excerpt
	}
	if in.FeaturedImage != nil {
		existing.FeaturedImage = *in.FeaturedImage
	}
	if in.Status != nil {
		existing.Status = models.PostStatus(*in.Status)
	}
	if in.PublishedAt != nil {
		existing.PublishedAt = in.PublishedAt
	}
	if in.MetaTitle != nil {
		existing.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		existing.MetaDescription = *in.MetaDescription
	}

	if in.Slug != nil {
		existing.Slug = *in.Slug
	} else if in.Title != nil {
		existing.Slug = validation.Slugify(*in.Title)
	}
	if existing.Slug == "" {
		return nil, validation.Errors{{Field: "title", Message: "title must contain at least one letter or number"}}
	}

	exists, err := s.repos.Post.SlugExists(ctx, existing.Slug, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, slugConflict("post")
	}

	now := time.Now().UTC()
	existing.UpdatedAt = now

	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Post.Update(ctx, existing); err != nil {
			return err
		}
		if in.Categories != nil {
			if err := r.Post.ReplaceCategories(ctx, id, dedupe(in.Categories)); err != nil {
				return err
			}
		}
		if in.Tags != nil {
			if err := r.Post.ReplaceTags(ctx, id, dedupe(in.Tags)); err != nil {
				return err
			}
		}
		entry := auditEntry(actor, models.AuditActionUpdate, "Post", id,
			fmt.Sprintf("Updated post %q", previousTitle), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, slugConflict("post")
		}
		return nil, err
	}

	s.log.Info().
		Str("post_id", id).
		Str("actor_id", actor.UserID).
		Msg("Post updated")

	return s.repos.Post.GetByID(ctx, id)
}

// Delete removes a post. Only the original author or an admin may delete.
func (s *postService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	existing, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.AuthorID != actor.UserID && actor.Role != models.RoleAdmin {
		return ErrForbidden
	}

	now := time.Now().UTC()
	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Post.Delete(ctx, id); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionDelete, "Post", id,
			fmt.Sprintf("Deleted post %q", existing.Title), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("post_id", id).
		Str("actor_id", actor.UserID).
		Msg("Post deleted")

	return nil
}
