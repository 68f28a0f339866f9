package validation

import (
	"testing"

	"github.com/carewell-health/cms-api/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Tips for Healthy Aging", "tips-for-healthy-aging"},
		{"The Benefits of Cognitive Behavioral Therapy (CBT)", "the-benefits-of-cognitive-behavioral-therapy-cbt"},
		{"Mental Wellness", "mental-wellness"},
		{"  Leading & trailing!  ", "leading-trailing"},
		{"Already-A-Slug", "already-a-slug"},
		{"Multiple---Hyphens___Here", "multiple-hyphens-here"},
		{"UPPER CASE 123", "upper-case-123"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.name); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSlugifyOutputIsValidSlug(t *testing.T) {
	inputs := []string{
		"Physical Therapy: More Than Just Exercise",
		"Understanding Art Therapy — Healing Through Creativity",
		"Q&A with Dr. Smith",
	}
	for _, in := range inputs {
		slug := Slugify(in)
		if !slugRegex.MatchString(slug) {
			t.Errorf("Slugify(%q) = %q does not match the slug pattern", in, slug)
		}
	}
}

func TestValidatePostInputCollectsAllErrors(t *testing.T) {
	errs := ValidatePostInput(&models.PostInput{
		Status: "LIVE",
		Slug:   "Not A Slug",
	})

	wantFields := map[string]bool{"title": true, "content": true, "status": true, "slug": true}
	if len(errs) != len(wantFields) {
		t.Fatalf("Expected %d errors, got %d: %v", len(wantFields), len(errs), errs)
	}
	for _, e := range errs {
		if !wantFields[e.Field] {
			t.Errorf("Unexpected error field %q", e.Field)
		}
	}
}

func TestValidatePostInputValid(t *testing.T) {
	errs := ValidatePostInput(&models.PostInput{
		Title:   "Tips for Healthy Aging",
		Content: "Stay active.",
		Status:  "PUBLISHED",
	})
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidatePostUpdateIgnoresOmittedFields(t *testing.T) {
	errs := ValidatePostUpdate(&models.PostUpdateInput{})
	if len(errs) != 0 {
		t.Errorf("Empty update should be valid, got %v", errs)
	}

	empty := ""
	errs = ValidatePostUpdate(&models.PostUpdateInput{Title: &empty})
	if len(errs) != 1 || errs[0].Field != "title" {
		t.Errorf("Expected a single title error, got %v", errs)
	}
}

func TestValidateTaxonomyInput(t *testing.T) {
	errs := ValidateTaxonomyInput(&models.TaxonomyInput{})
	if len(errs) != 1 || errs[0].Field != "name" {
		t.Errorf("Expected a single name error, got %v", errs)
	}

	errs = ValidateTaxonomyInput(&models.TaxonomyInput{Name: "Mental Wellness", Slug: "Bad Slug"})
	if len(errs) != 1 || errs[0].Field != "slug" {
		t.Errorf("Expected a single slug error, got %v", errs)
	}

	errs = ValidateTaxonomyInput(&models.TaxonomyInput{Name: "Mental Wellness"})
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidateTeamMemberInput(t *testing.T) {
	errs := ValidateTeamMemberInput(&models.TeamMemberInput{
		Name:  "Dr. Jane Smith",
		Title: "Physical Therapist",
		Bio:   "20 years of experience.",
		SocialLinks: []models.SocialLink{
			{Platform: "linkedin", URL: "https://linkedin.com/in/jane"},
			{Platform: "", URL: "not-a-url"},
		},
		ContactInfo: &models.ContactInfo{Email: "bad-email"},
	})

	wantFields := map[string]bool{
		"socialLinks[1].platform": true,
		"socialLinks[1].url":      true,
		"contactInfo.email":       true,
	}
	if len(errs) != len(wantFields) {
		t.Fatalf("Expected %d errors, got %d: %v", len(wantFields), len(errs), errs)
	}
	for _, e := range errs {
		if !wantFields[e.Field] {
			t.Errorf("Unexpected error field %q", e.Field)
		}
	}
}

func TestValidateMediaInput(t *testing.T) {
	errs := ValidateMediaInput(&models.MediaInput{})
	wantFields := map[string]bool{"name": true, "url": true, "type": true, "size": true}
	if len(errs) != len(wantFields) {
		t.Fatalf("Expected %d errors, got %d: %v", len(wantFields), len(errs), errs)
	}

	errs = ValidateMediaInput(&models.MediaInput{
		Name: "clinic.jpg",
		URL:  "https://cdn.example.com/clinic.jpg",
		Type: "image/jpeg",
		Size: 204800,
	})
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}
