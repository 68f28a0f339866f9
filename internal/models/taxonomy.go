package models

// Category groups posts by topic
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	PostCount   int    `json:"postCount"`
}

// Tag is a free-form label attached to posts
type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	PostCount   int    `json:"postCount"`
}

// TaxonomyInput is the shared creation/update payload for categories and tags
type TaxonomyInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// TaxonomyFilter holds the query filters for category and tag collections
type TaxonomyFilter struct {
	ListParams
	Search string
}
