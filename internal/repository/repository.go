package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/carewell-health/cms-api/internal/database"
	"github.com/carewell-health/cms-api/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	List(ctx context.Context, filter *models.PostFilter) ([]*models.Post, int, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, post *models.Post, categoryIDs, tagIDs []string) error
	Update(ctx context.Context, post *models.Post) error
	ReplaceCategories(ctx context.Context, postID string, categoryIDs []string) error
	ReplaceTags(ctx context.Context, postID string, tagIDs []string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Category, int, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Tag, int, error)
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// TeamRepository defines the interface for team member data operations
type TeamRepository interface {
	List(ctx context.Context, filter *models.TeamFilter) ([]*models.TeamMember, int, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	NextDisplayOrder(ctx context.Context) (int, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	ReplaceSocialLinks(ctx context.Context, memberID string, links []models.SocialLink) error
	SetContactInfo(ctx context.Context, memberID string, info *models.ContactInfo) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	List(ctx context.Context, filter *models.MediaFilter) ([]*models.Media, int, error)
	GetByID(ctx context.Context, id string) (*models.Media, error)
	Create(ctx context.Context, media *models.Media) error
	DeleteOwnedBy(ctx context.Context, ids []string, userID string) (int, error)
	Count(ctx context.Context) (int, error)
}

// AuditRepository defines the interface for the append-only audit log
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	List(ctx context.Context, filter *models.AuditFilter) ([]*models.AuditLogEntry, int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Post     PostRepository
	Category CategoryRepository
	Tag      TagRepository
	Team     TeamRepository
	Media    MediaRepository
	Audit    AuditRepository

	// InTx runs fn against repositories bound to a single database
	// transaction, so a mutation and its audit entry commit together.
	InTx func(ctx context.Context, fn func(r *Repositories) error) error
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	repos := bind(db)
	repos.InTx = func(ctx context.Context, fn func(r *Repositories) error) error {
		return db.WithinTx(ctx, func(q database.Querier) error {
			txRepos := bind(q)
			// Nested InTx calls join the transaction already in flight.
			txRepos.InTx = func(ctx context.Context, nested func(r *Repositories) error) error {
				return nested(txRepos)
			}
			return fn(txRepos)
		})
	}
	return repos
}

func bind(q database.Querier) *Repositories {
	return &Repositories{
		User:     NewUserRepo(q),
		Post:     NewPostRepo(q),
		Category: NewCategoryRepo(q),
		Tag:      NewTagRepo(q),
		Team:     NewTeamRepo(q),
		Media:    NewMediaRepo(q),
		Audit:    NewAuditRepo(q),
	}
}

// IsUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation, used to map duplicate slugs to conflicts.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a contains pattern for ILIKE, escaping the
// wildcard characters so user input matches literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
