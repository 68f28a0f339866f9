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

// mediaRepo is the concrete implementation of MediaRepository
type mediaRepo struct {
	db database.Querier
}

// NewMediaRepo creates a new media repository
func NewMediaRepo(db database.Querier) MediaRepository {
	return &mediaRepo{db: db}
}

// List returns one page of media items newest-first plus the total
// match count.
func (r *mediaRepo) List(ctx context.Context, filter *models.MediaFilter) ([]*models.Media, int, error) {
	var where []string
	var args []any

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where = append(where, fmt.Sprintf("m.name ILIKE $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = append(where, fmt.Sprintf("m.type = $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM media m"+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT m.id, m.name, m.url, m.type, m.size, m.user_id, m.created_at, u.id, u.name
		FROM media m
		JOIN users u ON u.id = m.user_id` + clause +
		fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*models.Media
	for rows.Next() {
		var media models.Media
		var uploader models.UserSummary
		err := rows.Scan(
			&media.ID, &media.Name, &media.URL, &media.Type, &media.Size,
			&media.UserID, &media.CreatedAt, &uploader.ID, &uploader.Name,
		)
		if err != nil {
			return nil, 0, err
		}
		media.Uploader = &uploader
		items = append(items, &media)
	}
	return items, total, rows.Err()
}

// GetByID retrieves a media item by ID
func (r *mediaRepo) GetByID(ctx context.Context, id string) (*models.Media, error) {
	query := `
		SELECT m.id, m.name, m.url, m.type, m.size, m.user_id, m.created_at, u.id, u.name
		FROM media m
		JOIN users u ON u.id = m.user_id
		WHERE m.id = $1
	`
	var media models.Media
	var uploader models.UserSummary
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&media.ID, &media.Name, &media.URL, &media.Type, &media.Size,
		&media.UserID, &media.CreatedAt, &uploader.ID, &uploader.Name,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	media.Uploader = &uploader
	return &media, nil
}

// Create inserts a new media item
func (r *mediaRepo) Create(ctx context.Context, media *models.Media) error {
	query := `
		INSERT INTO media (id, name, url, type, size, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.Name, media.URL, media.Type, media.Size,
		media.UserID, media.CreatedAt,
	)
	return err
}

// DeleteOwnedBy deletes the given media ids that belong to userID and
// returns how many rows were removed. Rows owned by other users are
// left untouched.
func (r *mediaRepo) DeleteOwnedBy(ctx context.Context, ids []string, userID string) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM media WHERE id = ANY($1) AND user_id = $2",
		pq.Array(ids), userID,
	)
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(deleted), nil
}

// Count returns the total number of media items
func (r *mediaRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM media").Scan(&count)
	return count, err
}
