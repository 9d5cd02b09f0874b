package usecase

import (
	"context"
	"errors"
	"fmt"

	"adboard/internal/core/domain"
	"adboard/internal/core/pipeline"
	"adboard/internal/core/port"
)

// ErrInvalidQuery is returned for listing requests with unknown filter
// values. Handlers map it to HTTP 400.
var ErrInvalidQuery = errors.New("invalid query")

// Limits applied when a listing request does not choose its own page size.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// AdUseCase provides the dashboard's read operations over an ad source. It
// normalises paging, validates filters and derives the company list.
type AdUseCase struct {
	src port.AdSource

	defaultLimit int
	maxLimit     int
}

var _ port.AdUseCase = (*AdUseCase)(nil)

// NewAdUseCase creates a new usecase over src. Non-positive limits fall back
// to DefaultLimit and MaxLimit.
func NewAdUseCase(src port.AdSource, defaultLimit, maxLimit int) *AdUseCase {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return &AdUseCase{src: src, defaultLimit: min(defaultLimit, maxLimit), maxLimit: maxLimit}
}

// ListAds returns one page of records matching the query. Page numbers below
// one select the first page; the limit is clamped to the configured maximum.
func (u *AdUseCase) ListAds(ctx context.Context, q port.ListQuery) (*port.AdPage, error) {
	if err := q.Filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	q = u.normalise(q)

	page, err := u.src.ListAds(ctx, q)
	if err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []domain.AdRecord{}
	}
	page.Companies = pipeline.Companies(page.Items)
	page.HasMore = page.Pagination.HasMore()
	return page, nil
}

func (u *AdUseCase) normalise(q port.ListQuery) port.ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = u.defaultLimit
	}
	q.Limit = min(q.Limit, u.maxLimit)
	return q
}

// GetAd returns nil when no record has the id.
func (u *AdUseCase) GetAd(ctx context.Context, creativeID string) (*domain.AdRecord, error) {
	if creativeID == "" {
		return nil, nil
	}
	return u.src.GetAd(ctx, creativeID)
}

// GetStats returns the totals over all display-eligible records.
func (u *AdUseCase) GetStats(ctx context.Context) (*domain.Stats, error) {
	return u.src.GetStats(ctx)
}

// ListCompanies returns the advertisers for the company selector. Sources
// that cannot enumerate them are asked for the first full page instead.
func (u *AdUseCase) ListCompanies(ctx context.Context) ([]string, error) {
	companies, err := u.src.ListCompanies(ctx)
	if !errors.Is(err, port.ErrUnsupported) {
		return companies, err
	}
	page, err := u.src.ListAds(ctx, port.ListQuery{Page: 1, Limit: u.maxLimit})
	if err != nil {
		return nil, err
	}
	return pipeline.Companies(page.Items), nil
}

// Reload rebuilds the source's data when the source supports it.
func (u *AdUseCase) Reload(ctx context.Context) error {
	r, ok := u.src.(port.Reloader)
	if !ok {
		return port.ErrUnsupported
	}
	return r.Reload(ctx)
}
