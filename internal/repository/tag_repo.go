package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/carewell-health/cms-api/internal/database"
	"github.com/carewell-health/cms-api/internal/models"
)

// tagRepo is the concrete implementation of TagRepository
type tagRepo struct {
	db database.Querier
}

// NewTagRepo creates a new tag repository
func NewTagRepo(db database.Querier) TagRepository {
	return &tagRepo{db: db}
}

// List returns one page of tags ordered by name, with per-tag post
// counts, plus the total match count.
func (r *tagRepo) List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Tag, int, error) {
	var where []string
	var args []any

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		where = append(where, fmt.Sprintf("(t.name ILIKE $%d OR t.description ILIKE $%d)", n, n))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tags t"+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT t.id, t.name, t.slug, COALESCE(t.description, ''),
			(SELECT COUNT(*) FROM post_tags pt WHERE pt.tag_id = t.id)
		FROM tags t` + clause +
		fmt.Sprintf(" ORDER BY t.name ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Description, &tag.PostCount); err != nil {
			return nil, 0, err
		}
		tags = append(tags, &tag)
	}
	return tags, total, rows.Err()
}

// GetByID retrieves a tag by ID
func (r *tagRepo) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	query := `
		SELECT t.id, t.name, t.slug, COALESCE(t.description, ''),
			(SELECT COUNT(*) FROM post_tags pt WHERE pt.tag_id = t.id)
		FROM tags t WHERE t.id = $1
	`
	var tag models.Tag
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tag.ID, &tag.Name, &tag.Slug, &tag.Description, &tag.PostCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// SlugExists checks whether another tag already uses the given slug
func (r *tagRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM tags WHERE slug = $1 AND id <> $2)",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new tag
func (r *tagRepo) Create(ctx context.Context, tag *models.Tag) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tags (id, name, slug, description) VALUES ($1, $2, $3, $4)",
		tag.ID, tag.Name, tag.Slug, nullString(tag.Description),
	)
	return err
}

// Update writes the tag row
func (r *tagRepo) Update(ctx context.Context, tag *models.Tag) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tags SET name = $2, slug = $3, description = $4 WHERE id = $1",
		tag.ID, tag.Name, tag.Slug, nullString(tag.Description),
	)
	return err
}

// Delete removes a tag; post links cascade
func (r *tagRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tags WHERE id = $1", id)
	return err
}

// Count returns the total number of tags
func (r *tagRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tags").Scan(&count)
	return count, err
}
