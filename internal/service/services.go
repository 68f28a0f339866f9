package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/repository"
)

// PostService defines the interface for post operations
type PostService interface {
	List(ctx context.Context, filter *models.PostFilter) ([]*models.Post, *models.ListMeta, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, actor *auth.Identity, in *models.PostInput) (*models.Post, error)
	Update(ctx context.Context, actor *auth.Identity, id string, in *models.PostUpdateInput) (*models.Post, error)
	Delete(ctx context.Context, actor *auth.Identity, id string) error
}

// CategoryService defines the interface for category operations
type CategoryService interface {
	List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Category, *models.ListMeta, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, actor *auth.Identity, in *models.TaxonomyInput) (*models.Category, error)
	Update(ctx context.Context, actor *auth.Identity, id string, in *models.TaxonomyInput) (*models.Category, error)
	Delete(ctx context.Context, actor *auth.Identity, id string) error
}

// TagService defines the interface for tag operations
type TagService interface {
	List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Tag, *models.ListMeta, error)
	Get(ctx context.Context, id string) (*models.Tag, error)
	Create(ctx context.Context, actor *auth.Identity, in *models.TaxonomyInput) (*models.Tag, error)
	Update(ctx context.Context, actor *auth.Identity, id string, in *models.TaxonomyInput) (*models.Tag, error)
	Delete(ctx context.Context, actor *auth.Identity, id string) error
}

// TeamService defines the interface for team member operations
type TeamService interface {
	List(ctx context.Context, filter *models.TeamFilter) ([]*models.TeamMember, *models.ListMeta, error)
	Get(ctx context.Context, id string) (*models.TeamMember, error)
	Create(ctx context.Context, actor *auth.Identity, in *models.TeamMemberInput) (*models.TeamMember, error)
	Update(ctx context.Context, actor *auth.Identity, id string, in *models.TeamMemberUpdateInput) (*models.TeamMember, error)
	Delete(ctx context.Context, actor *auth.Identity, id string) error
}

// MediaService defines the interface for media operations
type MediaService interface {
	List(ctx context.Context, actor *auth.Identity, filter *models.MediaFilter) ([]*models.Media, *models.ListMeta, error)
	Create(ctx context.Context, actor *auth.Identity, in *models.MediaInput) (*models.Media, error)
	BulkDelete(ctx context.Context, actor *auth.Identity, ids []string) (int, error)
}

// AuditService defines the read-only interface over the audit log
type AuditService interface {
	List(ctx context.Context, actor *auth.Identity, filter *models.AuditFilter) ([]*models.AuditLogEntry, *models.ListMeta, error)
}

// StatsService defines the interface for the metrics endpoint
type StatsService interface {
	Counts(ctx context.Context) (map[string]int, error)
}

// Services holds all service interfaces
type Services struct {
	Post     PostService
	Category CategoryService
	Tag      TagService
	Team     TeamService
	Media    MediaService
	Audit    AuditService
	Stats    StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Post:     newPostService(repos, log),
		Category: newCategoryService(repos, log),
		Tag:      newTagService(repos, log),
		Team:     newTeamService(repos, log),
		Media:    newMediaService(repos, log),
		Audit:    newAuditService(repos, log),
		Stats:    newStatsService(repos, log),
	}
}

// dedupe drops repeated ids so relation inserts never hit the
// join-table primary key. A nil slice stays nil, an empty one stays
// empty; both carry meaning on update.
func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// auditEntry builds the append-only record written alongside a mutation
func auditEntry(actor *auth.Identity, action models.AuditAction, entity, entityID, details string, at time.Time) *models.AuditLogEntry {
	return &models.AuditLogEntry{
		ID:        uuid.New().String(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		UserID:    actor.UserID,
		Details:   details,
		CreatedAt: at,
	}
}
