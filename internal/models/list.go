package models

// ListParams holds the common pagination inputs shared by every
// collection endpoint. Page and Limit are already normalized by the
// time they reach a repository (page >= 1, limit >= 1).
type ListParams struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the current page
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListMeta is the pagination block returned by every collection endpoint
type ListMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewListMeta derives the pagination block from a total row count
func NewListMeta(total, page, limit int) *ListMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &ListMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
