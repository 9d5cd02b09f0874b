package domain

// Pagination describes one page of a listing, in the shape the backend API
// returns it.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// HasMore reports whether a page after the current one exists.
func (p Pagination) HasMore() bool {
	return p.CurrentPage < p.TotalPages
}

// NewPagination computes the page count for total items split into pages
// of size limit.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{CurrentPage: page, PageSize: limit, TotalItems: total, TotalPages: pages}
}
