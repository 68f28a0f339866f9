package models

import "time"

// SocialLink is a single external profile link for a team member
type SocialLink struct {
	ID       string `json:"id,omitempty"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ContactInfo holds the public contact details for a team member
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// TeamMember represents a staff profile shown on the public site
type TeamMember struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Title           string       `json:"title"`
	Bio             string       `json:"bio"`
	Photo           string       `json:"photo,omitempty"`
	Specializations string       `json:"specializations,omitempty"`
	DisplayOrder    int          `json:"displayOrder"`
	IsVisible       bool         `json:"isVisible"`
	SocialLinks     []SocialLink `json:"socialLinks"`
	ContactInfo     *ContactInfo `json:"contactInfo,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// TeamMemberInput is the creation payload for a team member
type TeamMemberInput struct {
	Name            string       `json:"name"`
	Title           string       `json:"title"`
	Bio             string       `json:"bio"`
	Photo           string       `json:"photo"`
	Specializations string       `json:"specializations"`
	DisplayOrder    *int         `json:"displayOrder"`
	IsVisible       *bool        `json:"isVisible"`
	SocialLinks     []SocialLink `json:"socialLinks"`
	ContactInfo     *ContactInfo `json:"contactInfo"`
}

// TeamMemberUpdateInput is the update payload for a team member. Nil
// fields are left untouched; a non-nil empty SocialLinks slice clears
// the relation.
type TeamMemberUpdateInput struct {
	Name            *string      `json:"name"`
	Title           *string      `json:"title"`
	Bio             *string      `json:"bio"`
	Photo           *string      `json:"photo"`
	Specializations *string      `json:"specializations"`
	DisplayOrder    *int         `json:"displayOrder"`
	IsVisible       *bool        `json:"isVisible"`
	SocialLinks     []SocialLink `json:"socialLinks"`
	ContactInfo     *ContactInfo `json:"contactInfo"`
}

// TeamFilter holds the query filters for the team collection
type TeamFilter struct {
	ListParams
	Search        string
	IncludeHidden bool
}
