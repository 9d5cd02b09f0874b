package pipeline

import (
	"time"

	"adboard/internal/core/domain"
)

// Snapshot is an immutable, display-ready view of a record set. It is built
// once and handed to whoever serves queries; replacing the data means
// building a new Snapshot.
type Snapshot struct {
	records   []domain.AdRecord
	byID      map[string]int
	companies []string
	stats     domain.Stats
	total     int
}

// NewSnapshot keeps the eligible records of records. The input slice is
// copied and may be reused by the caller.
func NewSnapshot(records []domain.AdRecord) *Snapshot {
	eligible := Eligible(records)
	s := &Snapshot{
		records:   eligible,
		byID:      make(map[string]int, len(eligible)),
		companies: Companies(eligible),
		stats:     domain.ComputeStats(eligible),
		total:     len(records),
	}
	for i := range eligible {
		id := eligible[i].CreativeID()
		if id == "" {
			continue
		}
		if _, dup := s.byID[id]; !dup {
			s.byID[id] = i
		}
	}
	return s
}

// Len is the number of eligible records.
func (s *Snapshot) Len() int { return len(s.records) }

// Excluded is the number of input records dropped as not display-eligible.
func (s *Snapshot) Excluded() int { return s.total - len(s.records) }

// Query filters, orders and paginates the snapshot.
func (s *Snapshot) Query(f domain.Filter, page, limit int, now time.Time) ([]domain.AdRecord, domain.Pagination) {
	return Run(s.records, f, page, limit, now)
}

// Get returns the first record with the given creative id.
func (s *Snapshot) Get(creativeID string) (domain.AdRecord, bool) {
	i, ok := s.byID[creativeID]
	if !ok {
		return domain.AdRecord{}, false
	}
	return s.records[i], true
}

// Companies returns the sorted distinct advertisers of the snapshot.
func (s *Snapshot) Companies() []string {
	out := make([]string, len(s.companies))
	copy(out, s.companies)
	return out
}

// Stats returns the aggregate counts of the snapshot.
func (s *Snapshot) Stats() domain.Stats { return s.stats }
