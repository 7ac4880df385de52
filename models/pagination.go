package models

// Pagination describes where a page sits within a filtered result set.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// NewPagination computes pagination metadata for page (1-indexed) of size
// limit over totalCount rows. limit must be positive.
func NewPagination(page, limit, totalCount int) Pagination {
	return Pagination{
		CurrentPage: page,
		TotalPages:  (totalCount + limit - 1) / limit,
		TotalCount:  totalCount,
		Limit:       limit,
		HasNext:     page*limit < totalCount,
		HasPrev:     page > 1,
	}
}
