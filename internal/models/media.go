package models

import "time"

// Media is the stored metadata for an uploaded asset
type Media struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	URL       string       `json:"url"`
	Type      string       `json:"type"`
	Size      int64        `json:"size"`
	UserID    string       `json:"userId"`
	Uploader  *UserSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// MediaInput is the creation payload for a media item. The file itself
// is stored by an external upload service; this API records metadata.
type MediaInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// MediaFilter holds the query filters for the media collection
type MediaFilter struct {
	ListParams
	Search string
	Type   string
}
