package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/carewell-health/cms-api/internal/database"
	"github.com/carewell-health/cms-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db database.Querier
}

// NewPostRepo creates a new post repository
func NewPostRepo(db database.Querier) PostRepository {
	return &postRepo{db: db}
}

const postColumns = `
	p.id, p.title, p.slug, p.content, COALESCE(p.excerpt, ''),
	COALESCE(p.featured_image, ''), p.status, p.published_at,
	COALESCE(p.meta_title, ''), COALESCE(p.meta_description, ''),
	p.author_id, p.created_at, p.updated_at,
	u.id, u.name, u.email
`

// List returns one page of posts matching the filter plus the total
// match count ignoring pagination.
func (r *postRepo) List(ctx context.Context, filter *models.PostFilter) ([]*models.Post, int, error) {
	var where []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		where = append(where, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", n, n))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM post_categories pc WHERE pc.post_id = p.id AND pc.category_id = $%d)", len(args)))
	}
	if filter.TagID != "" {
		args = append(args, filter.TagID)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM post_tags pt WHERE pt.post_id = p.id AND pt.tag_id = $%d)", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM posts p" + clause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + postColumns + " FROM posts p JOIN users u ON u.id = p.author_id" + clause +
		fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachRelations(ctx, posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetByID retrieves a post with its author, categories, and tags
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := "SELECT " + postColumns + " FROM posts p JOIN users u ON u.id = p.author_id WHERE p.id = $1"

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.attachRelations(ctx, []*models.Post{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// SlugExists checks whether another post already uses the given slug
func (r *postRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1 AND id <> $2)",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new post together with its category and tag links
func (r *postRepo) Create(ctx context.Context, post *models.Post, categoryIDs, tagIDs []string) error {
	query := `
		INSERT INTO posts (id, title, slug, content, excerpt, featured_image, status,
			published_at, meta_title, meta_description, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Content, nullString(post.Excerpt),
		nullString(post.FeaturedImage), post.Status, post.PublishedAt,
		nullString(post.MetaTitle), nullString(post.MetaDescription),
		post.AuthorID, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := r.insertLinks(ctx, "post_categories", "category_id", post.ID, categoryIDs); err != nil {
		return err
	}
	return r.insertLinks(ctx, "post_tags", "tag_id", post.ID, tagIDs)
}

// Update writes the base post row; relations are replaced separately
func (r *postRepo) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, featured_image = $6,
			status = $7, published_at = $8, meta_title = $9, meta_description = $10,
			updated_at = $11
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Content, nullString(post.Excerpt),
		nullString(post.FeaturedImage), post.Status, post.PublishedAt,
		nullString(post.MetaTitle), nullString(post.MetaDescription), post.UpdatedAt,
	)
	return err
}

// ReplaceCategories removes every category link for the post and
// installs exactly the supplied set.
func (r *postRepo) ReplaceCategories(ctx context.Context, postID string, categoryIDs []string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM post_categories WHERE post_id = $1", postID); err != nil {
		return err
	}
	return r.insertLinks(ctx, "post_categories", "category_id", postID, categoryIDs)
}

// ReplaceTags removes every tag link for the post and installs exactly
// the supplied set.
func (r *postRepo) ReplaceTags(ctx context.Context, postID string, tagIDs []string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM post_tags WHERE post_id = $1", postID); err != nil {
		return err
	}
	return r.insertLinks(ctx, "post_tags", "tag_id", postID, tagIDs)
}

// Delete removes a post; join rows cascade
func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

func (r *postRepo) insertLinks(ctx context.Context, table, column, postID string, ids []string) error {
	for _, id := range ids {
		query := fmt.Sprintf("INSERT INTO %s (post_id, %s) VALUES ($1, $2)", table, column)
		if _, err := r.db.ExecContext(ctx, query, postID, id); err != nil {
			return err
		}
	}
	return nil
}

// attachRelations loads categories and tags for a page of posts in two
// queries rather than one per post.
func (r *postRepo) attachRelations(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[string]*models.Post, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		p.Categories = []models.Category{}
		p.Tags = []models.Tag{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	catQuery := `
		SELECT pc.post_id, c.id, c.name, c.slug, COALESCE(c.description, '')
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = ANY($1)
		ORDER BY c.name
	`
	rows, err := r.db.QueryContext(ctx, catQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var cat models.Category
		if err := rows.Scan(&postID, &cat.ID, &cat.Name, &cat.Slug, &cat.Description); err != nil {
			return err
		}
		if p, ok := byID[postID]; ok {
			p.Categories = append(p.Categories, cat)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	tagQuery := `
		SELECT pt.post_id, t.id, t.name, t.slug, COALESCE(t.description, '')
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY t.name
	`
	tagRows, err := r.db.QueryContext(ctx, tagQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var postID string
		var tag models.Tag
		if err := tagRows.Scan(&postID, &tag.ID, &tag.Name, &tag.Slug, &tag.Description); err != nil {
			return err
		}
		if p, ok := byID[postID]; ok {
			p.Tags = append(p.Tags, tag)
		}
	}
	return tagRows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	var author models.UserSummary
	var publishedAt sql.NullTime

	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
		&post.FeaturedImage, &post.Status, &publishedAt,
		&post.MetaTitle, &post.MetaDescription,
		&post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Name, &author.Email,
	)
	if err != nil {
		return nil, err
	}

	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}
	post.Author = &author
	return &post, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
