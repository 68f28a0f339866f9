package models

import "time"

// PostStatus is the editorial state of a post
type PostStatus string

const (
	PostStatusDraft         PostStatus = "DRAFT"
	PostStatusPendingReview PostStatus = "PENDING_REVIEW"
	PostStatusPublished     PostStatus = "PUBLISHED"
	PostStatusScheduled     PostStatus = "SCHEDULED"
)

// ValidPostStatuses contains the allowed post statuses
var ValidPostStatuses = map[PostStatus]bool{
	PostStatusDraft:         true,
	PostStatusPendingReview: true,
	PostStatusPublished:     true,
	PostStatusScheduled:     true,
}

// Post represents a blog post with its attached relations
type Post struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Slug            string       `json:"slug"`
	Content         string       `json:"content"`
	Excerpt         string       `json:"excerpt,omitempty"`
	FeaturedImage   string       `json:"featuredImage,omitempty"`
	Status          PostStatus   `json:"status"`
	PublishedAt     *time.Time   `json:"publishedAt,omitempty"`
	MetaTitle       string       `json:"metaTitle,omitempty"`
	MetaDescription string       `json:"metaDescription,omitempty"`
	AuthorID        string       `json:"authorId"`
	Author          *UserSummary `json:"author,omitempty"`
	Categories      []Category   `json:"categories"`
	Tags            []Tag        `json:"tags"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// PostInput is the creation payload for a post
type PostInput struct {
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt"`
	FeaturedImage   string     `json:"featuredImage"`
	Status          string     `json:"status"`
	PublishedAt     *time.Time `json:"publishedAt"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	Slug            string     `json:"slug"`
	Categories      []string   `json:"categories"`
	Tags            []string   `json:"tags"`
}

// PostUpdateInput is the update payload for a post. Nil fields are left
// untouched; a non-nil empty Categories/Tags slice clears the relation.
type PostUpdateInput struct {
	Title           *string    `json:"title"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImage   *string    `json:"featuredImage"`
	Status          *string    `json:"status"`
	PublishedAt     *time.Time `json:"publishedAt"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	Slug            *string    `json:"slug"`
	Categories      []string   `json:"categories"`
	Tags            []string   `json:"tags"`
}

// PostFilter holds the query filters for the posts collection
type PostFilter struct {
	ListParams
	Search     string
	Status     string
	CategoryID string
	TagID      string
}
