package pipeline

import (
	"time"

	"adboard/internal/core/domain"
)

// Paginate returns page (1-based) of records split into pages of limit.
// Pages past the end are empty, never an error.
func Paginate(records []domain.AdRecord, page, limit int) ([]domain.AdRecord, domain.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	p := domain.NewPagination(page, limit, len(records))
	start := (page - 1) * limit
	if start >= len(records) {
		return []domain.AdRecord{}, p
	}
	end := min(start+limit, len(records))
	out := make([]domain.AdRecord, end-start)
	copy(out, records[start:end])
	return out, p
}

// Prefix returns at most n leading records. It is how the static dashboard
// caps its grid.
func Prefix(records []domain.AdRecord, n int) []domain.AdRecord {
	if n < 0 {
		n = 0
	}
	n = min(n, len(records))
	out := make([]domain.AdRecord, n)
	copy(out, records[:n])
	return out
}

// Run applies filter, sort and pagination in that order. records are
// expected to be display-eligible already.
func Run(records []domain.AdRecord, f domain.Filter, page, limit int, now time.Time) ([]domain.AdRecord, domain.Pagination) {
	return Paginate(Sort(Filter(records, f, now), f.Order), page, limit)
}
