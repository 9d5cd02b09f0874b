// Package feed accumulates pages fetched from a paged ad source into a
// growing display list, the way the dashboard's infinite scroll does.
//
// Every filter change starts a new generation: the list is emptied and any
// page still in flight for an older generation is discarded on arrival.
package feed

import (
	"context"
	"slices"
	"sync"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/pipeline"
	"adboard/internal/core/port"
)

// DefaultPageSize matches the page size the dashboard requests.
const DefaultPageSize = 100

// Feed is the display list of the networked dashboard variant.
type Feed struct {
	src      port.AdSource
	pageSize int
	search   *Debouncer

	mu       sync.Mutex
	filter   domain.Filter
	version  uint64
	items    []domain.AdRecord
	nextPage int
	hasMore  bool
	loading  bool
	err      error
}

// View is a copy of the feed state for the presentation layer. Err is the
// last fetch failure; Retry re-issues the failed page.
type View struct {
	Items     []domain.AdRecord
	Companies []string
	HasMore   bool
	Loading   bool
	Err       error
	Version   uint64
}

// Option configures a Feed.
type Option func(*Feed)

// WithPageSize sets the number of records requested per page.
func WithPageSize(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.pageSize = n
		}
	}
}

// WithSearchDelay sets the debounce delay for SetSearch.
func WithSearchDelay(d time.Duration) Option {
	return func(f *Feed) { f.search = NewDebouncer(d) }
}

// New returns an empty feed over src.
func New(src port.AdSource, opts ...Option) *Feed {
	f := &Feed{
		src:      src,
		pageSize: DefaultPageSize,
		search:   NewDebouncer(DefaultDebounce),
		nextPage: 1,
		hasMore:  true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetFilter replaces the filter and resets the list. It returns the new
// generation.
func (f *Feed) SetFilter(flt domain.Filter) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resetLocked(flt)
}

func (f *Feed) resetLocked(flt domain.Filter) uint64 {
	f.version++
	f.filter = flt
	f.items = nil
	f.nextPage = 1
	f.hasMore = true
	f.loading = false
	f.err = nil
	return f.version
}

// SetSearch changes the advertiser search text once typing settles. Rapid
// calls collapse into a single reset.
func (f *Feed) SetSearch(text string) {
	f.search.Trigger(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		flt := f.filter
		flt.Search = text
		f.resetLocked(flt)
	})
}

// Filter returns the current filter.
func (f *Feed) Filter() domain.Filter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

// LoadMore fetches the next page and appends it. It is a no-op while a
// fetch of the current generation is running or when no pages are left. A
// page that arrives after a filter change is dropped silently.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.loading || !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	version, q := f.version, port.ListQuery{Page: f.nextPage, Limit: f.pageSize, Filter: f.filter}
	f.mu.Unlock()

	page, err := f.src.ListAds(ctx, q)

	f.mu.Lock()
	defer f.mu.Unlock()
	if version != f.version {
		return nil
	}
	f.loading = false
	if err != nil {
		f.err = err
		return err
	}
	f.err = nil
	f.items = append(f.items, page.Items...)
	f.nextPage = q.Page + 1
	f.hasMore = page.HasMore
	return nil
}

// Retry re-issues the page that failed last. Pages loaded before the
// failure stay in the list.
func (f *Feed) Retry(ctx context.Context) error {
	f.mu.Lock()
	failed := f.err != nil
	f.mu.Unlock()
	if !failed {
		return nil
	}
	return f.LoadMore(ctx)
}

// View returns a snapshot of the feed.
func (f *Feed) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return View{
		Items:     slices.Clone(f.items),
		Companies: pipeline.Companies(f.items),
		HasMore:   f.hasMore,
		Loading:   f.loading,
		Err:       f.err,
		Version:   f.version,
	}
}

// Close cancels a pending debounced search.
func (f *Feed) Close() {
	f.search.Stop()
}
