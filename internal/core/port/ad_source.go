package port

import (
	"context"
	"errors"

	"adboard/internal/core/domain"
)

// ErrUnsupported is returned by a source that cannot serve an operation.
var ErrUnsupported = errors.New("operation not supported by source")

// AdSource supplies ad records to the dashboard. It is the outbound port in
// hexagonal architecture: the static data file, the database and the
// upstream backend API are its adapters. Implementations must be safe for
// concurrent use.
type AdSource interface {
	// ListAds returns one page of records matching the query, ordered as the
	// query's filter requests.
	ListAds(ctx context.Context, q ListQuery) (*AdPage, error)
	// GetAd returns a record by creative id, or nil when there is none.
	GetAd(ctx context.Context, creativeID string) (*domain.AdRecord, error)
	// GetStats returns aggregate counts over all display-eligible records.
	GetStats(ctx context.Context) (*domain.Stats, error)
	// ListCompanies returns the sorted distinct advertisers. Sources that
	// cannot enumerate them return ErrUnsupported.
	ListCompanies(ctx context.Context) ([]string, error)
}

// Reloader is implemented by sources that can rebuild their data on demand.
type Reloader interface {
	Reload(ctx context.Context) error
}

// ListQuery selects one page of records.
type ListQuery struct {
	Page   int
	Limit  int
	Filter domain.Filter
}

// AdPage is one page of a listing. Companies is derived from Items and is
// filled in by the use case.
type AdPage struct {
	Items      []domain.AdRecord `json:"items"`
	Pagination domain.Pagination `json:"pagination"`
	Companies  []string          `json:"companies"`
	HasMore    bool              `json:"has_more"`
}
