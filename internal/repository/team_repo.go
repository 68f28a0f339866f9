package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/carewell-health/cms-api/internal/database"
	"github.com/carewell-health/cms-api/internal/models"
)

// teamRepo is the concrete implementation of TeamRepository
type teamRepo struct {
	db database.Querier
}

// NewTeamRepo creates a new team member repository
func NewTeamRepo(db database.Querier) TeamRepository {
	return &teamRepo{db: db}
}

const teamColumns = `
	m.id, m.name, m.title, m.bio, COALESCE(m.photo, ''),
	COALESCE(m.specializations, ''), m.display_order, m.is_visible,
	m.created_at, m.updated_at
`

// List returns one page of team members in display order plus the total
// match count. Hidden members are excluded unless the filter asks for them.
func (r *teamRepo) List(ctx context.Context, filter *models.TeamFilter) ([]*models.TeamMember, int, error) {
	var where []string
	var args []any

	if !filter.IncludeHidden {
		where = append(where, "m.is_visible = TRUE")
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(m.name ILIKE $%d OR m.title ILIKE $%d OR m.bio ILIKE $%d OR m.specializations ILIKE $%d)", n, n, n, n))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM team_members m"+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + teamColumns + " FROM team_members m" + clause +
		fmt.Sprintf(" ORDER BY m.display_order ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []*models.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachRelations(ctx, members); err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// GetByID retrieves a team member with social links and contact info
func (r *teamRepo) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	query := "SELECT " + teamColumns + " FROM team_members m WHERE m.id = $1"

	member, err := scanTeamMember(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.attachRelations(ctx, []*models.TeamMember{member}); err != nil {
		return nil, err
	}
	return member, nil
}

// NextDisplayOrder returns max(display_order)+1, or 0 for an empty table
func (r *teamRepo) NextDisplayOrder(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(display_order) + 1, 0) FROM team_members",
	).Scan(&next)
	return next, err
}

// Create inserts a new team member with social links and contact info
func (r *teamRepo) Create(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (id, name, title, bio, photo, specializations,
			display_order, is_visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.Name, member.Title, member.Bio, nullString(member.Photo),
		nullString(member.Specializations), member.DisplayOrder, member.IsVisible,
		member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := r.insertSocialLinks(ctx, member.ID, member.SocialLinks); err != nil {
		return err
	}
	if member.ContactInfo != nil {
		return r.SetContactInfo(ctx, member.ID, member.ContactInfo)
	}
	return nil
}

// Update writes the base team member row; relations are replaced separately
func (r *teamRepo) Update(ctx context.Context, member *models.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, title = $3, bio = $4, photo = $5, specializations = $6,
			display_order = $7, is_visible = $8, updated_at = $9
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.Name, member.Title, member.Bio, nullString(member.Photo),
		nullString(member.Specializations), member.DisplayOrder, member.IsVisible,
		member.UpdatedAt,
	)
	return err
}

// ReplaceSocialLinks removes every social link for the member and
// installs exactly the supplied set.
func (r *teamRepo) ReplaceSocialLinks(ctx context.Context, memberID string, links []models.SocialLink) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM social_links WHERE member_id = $1", memberID); err != nil {
		return err
	}
	return r.insertSocialLinks(ctx, memberID, links)
}

// SetContactInfo upserts the member's contact info row
func (r *teamRepo) SetContactInfo(ctx context.Context, memberID string, info *models.ContactInfo) error {
	query := `
		INSERT INTO contact_infos (member_id, email, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (member_id) DO UPDATE SET email = EXCLUDED.email, phone = EXCLUDED.phone
	`
	_, err := r.db.ExecContext(ctx, query, memberID, nullString(info.Email), nullString(info.Phone))
	return err
}

// Delete removes a team member; links and contact info cascade
func (r *teamRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM team_members WHERE id = $1", id)
	return err
}

// Count returns the total number of team members
func (r *teamRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM team_members").Scan(&count)
	return count, err
}

func (r *teamRepo) insertSocialLinks(ctx context.Context, memberID string, links []models.SocialLink) error {
	for _, link := range links {
		id := link.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO social_links (id, member_id, platform, url) VALUES ($1, $2, $3, $4)",
			id, memberID, link.Platform, link.URL,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *teamRepo) attachRelations(ctx context.Context, members []*models.TeamMember) error {
	if len(members) == 0 {
		return nil
	}

	byID := make(map[string]*models.TeamMember, len(members))
	ids := make([]string, 0, len(members))
	for _, m := range members {
		m.SocialLinks = []models.SocialLink{}
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}

	linkRows, err := r.db.QueryContext(ctx,
		"SELECT member_id, id, platform, url FROM social_links WHERE member_id = ANY($1) ORDER BY platform",
		pq.Array(ids),
	)
	if err != nil {
		return err
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var memberID string
		var link models.SocialLink
		if err := linkRows.Scan(&memberID, &link.ID, &link.Platform, &link.URL); err != nil {
			return err
		}
		if m, ok := byID[memberID]; ok {
			m.SocialLinks = append(m.SocialLinks, link)
		}
	}
	if err := linkRows.Err(); err != nil {
		return err
	}

	contactRows, err := r.db.QueryContext(ctx,
		"SELECT member_id, COALESCE(email, ''), COALESCE(phone, '') FROM contact_infos WHERE member_id = ANY($1)",
		pq.Array(ids),
	)
	if err != nil {
		return err
	}
	defer contactRows.Close()

	for contactRows.Next() {
		var memberID string
		var info models.ContactInfo
		if err := contactRows.Scan(&memberID, &info.Email, &info.Phone); err != nil {
			return err
		}
		if m, ok := byID[memberID]; ok {
			m.ContactInfo = &info
		}
	}
	return contactRows.Err()
}

func scanTeamMember(row rowScanner) (*models.TeamMember, error) {
	var member models.TeamMember
	err := row.Scan(
		&member.ID, &member.Name, &member.Title, &member.Bio, &member.Photo,
		&member.Specializations, &member.DisplayOrder, &member.IsVisible,
		&member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}
