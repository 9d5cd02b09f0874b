package jsonfile

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/pipeline"
	"adboard/internal/core/port"
	"adboard/internal/observability"
)

var errNotLoaded = errors.New("jsonfile: store not loaded")

// Store implements port.AdSource over a snapshot of the data file. Reload
// swaps the snapshot atomically; readers never block.
type Store struct {
	path    string
	loc     *time.Location
	now     func() time.Time
	logger  *slog.Logger
	metrics observability.MetricsRegistry

	reloadMu sync.Mutex
	snap     atomic.Pointer[pipeline.Snapshot]
}

var (
	_ port.AdSource = (*Store)(nil)
	_ port.Reloader = (*Store)(nil)
)

// Option configures a Store.
type Option func(*Store)

// WithLocation sets the zone that decides calendar days for filtering.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithMetrics reports snapshot size and reloads to m.
func WithMetrics(m observability.MetricsRegistry) Option {
	return func(s *Store) { s.metrics = m }
}

// Open loads path and returns a store serving it.
func Open(ctx context.Context, path string, logger *slog.Logger, opts ...Option) (*Store, error) {
	s := &Store{
		path:    path,
		loc:     time.UTC,
		now:     time.Now,
		logger:  logger,
		metrics: observability.NewNoOpRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the data file. On failure the previous snapshot keeps
// being served.
func (s *Store) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	records, skipped, err := LoadFile(s.path)
	if err != nil {
		s.metrics.IncrementReloads(observability.ReloadFailed)
		return err
	}
	snap := pipeline.NewSnapshot(records)
	s.snap.Store(snap)

	s.metrics.IncrementReloads(observability.ReloadOK)
	s.metrics.SetSnapshotRecords(snap.Len())
	s.logger.Info("data file loaded",
		slog.String("path", s.path),
		slog.Int("records", snap.Len()),
		slog.Int("excluded", snap.Excluded()),
		slog.Int("malformed", skipped),
	)
	return nil
}

func (s *Store) snapshot() (*pipeline.Snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, errNotLoaded
	}
	return snap, nil
}

func (s *Store) ListAds(_ context.Context, q port.ListQuery) (*port.AdPage, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	items, p := snap.Query(q.Filter, q.Page, q.Limit, s.now().In(s.loc))
	return &port.AdPage{Items: items, Pagination: p, HasMore: p.HasMore()}, nil
}

func (s *Store) GetAd(_ context.Context, creativeID string) (*domain.AdRecord, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	rec, ok := snap.Get(creativeID)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *Store) GetStats(context.Context) (*domain.Stats, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	stats := snap.Stats()
	return &stats, nil
}

func (s *Store) ListCompanies(context.Context) ([]string, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Companies(), nil
}
