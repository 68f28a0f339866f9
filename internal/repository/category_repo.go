package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/carewell-health/cms-api/internal/database"
	"github.com/carewell-health/cms-api/internal/models"
)

// categoryRepo is the concrete implementation of CategoryRepository
type categoryRepo struct {
	db database.Querier
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db database.Querier) CategoryRepository {
	return &categoryRepo{db: db}
}

// List returns one page of categories ordered by name, with per-category
// post counts, plus the total match count.
func (r *categoryRepo) List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Category, int, error) {
	var where []string
	var args []any

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		where = append(where, fmt.Sprintf("(c.name ILIKE $%d OR c.description ILIKE $%d)", n, n))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories c"+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT c.id, c.name, c.slug, COALESCE(c.description, ''),
			(SELECT COUNT(*) FROM post_categories pc WHERE pc.category_id = c.id)
		FROM categories c` + clause +
		fmt.Sprintf(" ORDER BY c.name ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.PostCount); err != nil {
			return nil, 0, err
		}
		categories = append(categories, &cat)
	}
	return categories, total, rows.Err()
}

// GetByID retrieves a category by ID
func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, COALESCE(c.description, ''),
			(SELECT COUNT(*) FROM post_categories pc WHERE pc.category_id = c.id)
		FROM categories c WHERE c.id = $1
	`
	var cat models.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.PostCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// SlugExists checks whether another category already uses the given slug
func (r *categoryRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new category
func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, slug, description) VALUES ($1, $2, $3, $4)",
		category.ID, category.Name, category.Slug, nullString(category.Description),
	)
	return err
}

// Update writes the category row
func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE categories SET name = $2, slug = $3, description = $4 WHERE id = $1",
		category.ID, category.Name, category.Slug, nullString(category.Description),
	)
	return err
}

// Delete removes a category; post links cascade
func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}

// Count returns the total number of categories
func (r *categoryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count)
	return count, err
}
