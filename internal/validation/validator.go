package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/carewell-health/cms-api/internal/models"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

// FieldError represents a single validation error
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is the full set of field-level violations for one request body.
// Validators report every failing field, not just the first.
type Errors []FieldError

// Error implements the error interface
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, len(e))
	for i, fe := range e {
		fields[i] = fe.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Slugify derives a URL-safe identifier from a human-readable name:
// lowercase, non-alphanumeric runs collapsed to a single hyphen, and
// leading/trailing hyphens trimmed.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlnumRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// ValidatePostInput validates a post creation payload
func ValidatePostInput(in *models.PostInput) Errors {
	var errs Errors

	if in.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if in.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	}
	if in.Status == "" {
		errs = append(errs, FieldError{Field: "status", Message: "status is required"})
	} else if !models.ValidPostStatuses[models.PostStatus(in.Status)] {
		errs = append(errs, FieldError{
			Field:   "status",
			Message: "invalid status, must be one of: DRAFT, PENDING_REVIEW, PUBLISHED, SCHEDULED",
			Value:   in.Status,
		})
	}
	if in.Slug != "" && !slugRegex.MatchString(in.Slug) {
		errs = append(errs, FieldError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: in.Slug})
	}

	return errs
}

// ValidatePostUpdate validates a post update payload. Only supplied
// fields are checked.
func ValidatePostUpdate(in *models.PostUpdateInput) Errors {
	var errs Errors

	if in.Title != nil && *in.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if in.Content != nil && *in.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	}
	if in.Status != nil && !models.ValidPostStatuses[models.PostStatus(*in.Status)] {
		errs = append(errs, FieldError{
			Field:   "status",
			Message: "invalid status, must be one of: DRAFT, PENDING_REVIEW, PUBLISHED, SCHEDULED",
			Value:   *in.Status,
		})
	}
	if in.Slug != nil && !slugRegex.MatchString(*in.Slug) {
		errs = append(errs, FieldError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: *in.Slug})
	}

	return errs
}

// ValidateTaxonomyInput validates a category or tag payload
func ValidateTaxonomyInput(in *models.TaxonomyInput) Errors {
	var errs Errors

	if in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if in.Slug != "" && !slugRegex.MatchString(in.Slug) {
		errs = append(errs, FieldError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: in.Slug})
	}

	return errs
}

// ValidateTeamMemberInput validates a team member creation payload
func ValidateTeamMemberInput(in *models.TeamMemberInput) Errors {
	var errs Errors

	if in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if in.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if in.Bio == "" {
		errs = append(errs, FieldError{Field: "bio", Message: "bio is required"})
	}
	errs = append(errs, validateSocialLinks(in.SocialLinks)...)
	errs = append(errs, validateContactInfo(in.ContactInfo)...)

	return errs
}

// ValidateTeamMemberUpdate validates a team member update payload. Only
// supplied fields are checked.
func ValidateTeamMemberUpdate(in *models.TeamMemberUpdateInput) Errors {
	var errs Errors

	if in.Name != nil && *in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if in.Title != nil && *in.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if in.Bio != nil && *in.Bio == "" {
		errs = append(errs, FieldError{Field: "bio", Message: "bio is required"})
	}
	errs = append(errs, validateSocialLinks(in.SocialLinks)...)
	errs = append(errs, validateContactInfo(in.ContactInfo)...)

	return errs
}

// ValidateMediaInput validates a media metadata payload
func ValidateMediaInput(in *models.MediaInput) Errors {
	var errs Errors

	if in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if in.URL == "" {
		errs = append(errs, FieldError{Field: "url", Message: "url is required"})
	} else if !isValidURL(in.URL) {
		errs = append(errs, FieldError{Field: "url", Message: "invalid URL", Value: in.URL})
	}
	if in.Type == "" {
		errs = append(errs, FieldError{Field: "type", Message: "type is required"})
	}
	if in.Size <= 0 {
		errs = append(errs, FieldError{Field: "size", Message: "size must be a positive number of bytes", Value: in.Size})
	}

	return errs
}

func validateSocialLinks(links []models.SocialLink) Errors {
	var errs Errors
	for i, link := range links {
		if link.Platform == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("socialLinks[%d].platform", i),
				Message: "platform is required",
			})
		}
		if link.URL == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("socialLinks[%d].url", i),
				Message: "url is required",
			})
		} else if !isValidURL(link.URL) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("socialLinks[%d].url", i),
				Message: "invalid URL",
				Value:   link.URL,
			})
		}
	}
	return errs
}

func validateContactInfo(info *models.ContactInfo) Errors {
	var errs Errors
	if info == nil {
		return errs
	}
	if info.Email != "" && !emailRegex.MatchString(info.Email) {
		errs = append(errs, FieldError{Field: "contactInfo.email", Message: "invalid email format", Value: info.Email})
	}
	return errs
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
