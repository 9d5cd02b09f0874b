package port

import (
	"context"

	"adboard/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the dashboard
// backend. This interface represents the primary port into the application
// domain. Mock implementations can be generated from this interface for
// testing.
type AdUseCase interface {
	// ListAds validates and normalises the query, then returns one page of
	// matching records together with the advertisers present on that page.
	ListAds(ctx context.Context, q ListQuery) (*AdPage, error)

	// GetAd returns the record with the given creative id, or nil when it
	// does not exist.
	GetAd(ctx context.Context, creativeID string) (*domain.AdRecord, error)

	// GetStats returns the totals shown in the dashboard header.
	GetStats(ctx context.Context) (*domain.Stats, error)

	// ListCompanies returns the values for the company selector.
	ListCompanies(ctx context.Context) ([]string, error)

	// Reload asks the source to rebuild its data. It returns ErrUnsupported
	// when the source is not reloadable.
	Reload(ctx context.Context) error
}
