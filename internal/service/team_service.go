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

// teamService is the concrete implementation of TeamService. Team
// member mutations require the ADMIN role.
type teamService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newTeamService creates a new TeamService
func newTeamService(repos *repository.Repositories, log zerolog.Logger) *teamService {
	return &teamService{
		repos: repos,
		log:   log.With().Str("service", "team").Logger(),
	}
}

// List returns one page of team members in display order
func (s *teamService) List(ctx context.Context, filter *models.TeamFilter) ([]*models.TeamMember, *models.ListMeta, error) {
	members, total, err := s.repos.Team.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if members == nil {
		members = []*models.TeamMember{}
	}
	return members, models.NewListMeta(total, filter.Page, filter.Limit), nil
}

// Get returns a single team member with social links and contact info
func (s *teamService) Get(ctx context.Context, id string) (*models.TeamMember, error) {
	member, err := s.repos.Team.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotFound
	}
	return member, nil
}

// Create validates the payload, derives the display order when absent
// (highest existing + 1), and writes the member plus its audit entry in
// one transaction.
func (s *teamService) Create(ctx context.Context, actor *auth.Identity, in *models.TeamMemberInput) (*models.TeamMember, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin) {
		return nil, ErrForbidden
	}

	if errs := validation.ValidateTeamMemberInput(in); len(errs) > 0 {
		return nil, errs
	}

	displayOrder := 0
	if in.DisplayOrder != nil {
		displayOrder = *in.DisplayOrder
	} else {
		next, err := s.repos.Team.NextDisplayOrder(ctx)
		if err != nil {
			return nil, err
		}
		displayOrder = next
	}

	isVisible := true
	if in.IsVisible != nil {
		isVisible = *in.IsVisible
	}

	now := time.Now().UTC()
	member := &models.TeamMember{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Title:           in.Title,
		Bio:             in.Bio,
		Photo:           in.Photo,
		Specializations: in.Specializations,
		DisplayOrder:    displayOrder,
		IsVisible:       isVisible,
		SocialLinks:     in.SocialLinks,
		ContactInfo:     in.ContactInfo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Team.Create(ctx, member); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionCreate, "TeamMember", member.ID,
			fmt.Sprintf("Created team member %q", member.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("member_id", member.ID).
		Int("display_order", member.DisplayOrder).
		Str("actor_id", actor.UserID).
		Msg("Team member created")

	return s.repos.Team.GetByID(ctx, member.ID)
}

// Update applies partial changes to a team member. A supplied
// socialLinks set fully replaces the existing one; contactInfo is
// upserted when present.
func (s *teamService) Update(ctx context.Context, actor *auth.Identity, id string, in *models.TeamMemberUpdateInput) (*models.TeamMember, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin) {
		return nil, ErrForbidden
	}

	existing, err := s.repos.Team.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if errs := validation.ValidateTeamMemberUpdate(in); len(errs) > 0 {
		return nil, errs
	}

	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Bio != nil {
		existing.Bio = *in.Bio
	}
	if in.Photo != nil {
		existing.Photo = *in.Photo
	}
	if in.Specializations != nil {
		existing.Specializations = *in.Specializations
	}
	if in.DisplayOrder != nil {
		existing.DisplayOrder = *in.DisplayOrder
	}
	if in.IsVisible != nil {
		existing.IsVisible = *in.IsVisible
	}

	now := time.Now().UTC()
	existing.UpdatedAt = now

	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Team.Update(ctx, existing); err != nil {
			return err
		}
		if in.SocialLinks != nil {
			if err := r.Team.ReplaceSocialLinks(ctx, id, in.SocialLinks); err != nil {
				return err
			}
		}
		if in.ContactInfo != nil {
			if err := r.Team.SetContactInfo(ctx, id, in.ContactInfo); err != nil {
				return err
			}
		}
		entry := auditEntry(actor, models.AuditActionUpdate, "TeamMember", id,
			fmt.Sprintf("Updated team member %q", existing.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return s.repos.Team.GetByID(ctx, id)
}

// Delete removes a team member; social links and contact info cascade
func (s *teamService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.HasRole(models.RoleAdmin) {
		return ErrForbidden
	}

	existing, err := s.repos.Team.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	now := time.Now().UTC()
	err = s.repos.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Team.Delete(ctx, id); err != nil {
			return err
		}
		entry := auditEntry(actor, models.AuditActionDelete, "TeamMember", id,
			fmt.Sprintf("Deleted team member %q", existing.Name), now)
		return r.Audit.Create(ctx, entry)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("member_id", id).
		Str("actor_id", actor.UserID).
		Msg("Team member deleted")

	return nil
}
