package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/carewell-health/cms-api/internal/database"
	"github.com/carewell-health/cms-api/internal/models"
)

// auditRepo is the concrete implementation of AuditRepository. The
// audit log is append-only; there are no update or delete operations.
type auditRepo struct {
	db database.Querier
}

// NewAuditRepo creates a new audit log repository
func NewAuditRepo(db database.Querier) AuditRepository {
	return &auditRepo{db: db}
}

// Create appends one audit entry
func (r *auditRepo) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (id, action, entity, entity_id, user_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Action, entry.Entity, entry.EntityID,
		entry.UserID, entry.Details, entry.CreatedAt,
	)
	return err
}

// List returns one page of audit entries newest-first plus the total
// match count.
func (r *auditRepo) List(ctx context.Context, filter *models.AuditFilter) ([]*models.AuditLogEntry, int, error) {
	var where []string
	var args []any

	if filter.Entity != "" {
		args = append(args, filter.Entity)
		where = append(where, fmt.Sprintf("entity = $%d", len(args)))
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		where = append(where, fmt.Sprintf("action = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_logs"+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT id, action, entity, entity_id, user_id, details, created_at FROM audit_logs" + clause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []*models.AuditLogEntry
	for rows.Next() {
		var entry models.AuditLogEntry
		err := rows.Scan(
			&entry.ID, &entry.Action, &entry.Entity, &entry.EntityID,
			&entry.UserID, &entry.Details, &entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, &entry)
	}
	return entries, total, rows.Err()
}
