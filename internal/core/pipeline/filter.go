// Package pipeline turns a record set and a set of display selections into
// the ordered page shown on the dashboard. Every function is pure: inputs are
// never modified and results depend only on the arguments.
package pipeline

import (
	"time"

	"adboard/internal/core/domain"
)

// Eligible keeps the records that can be displayed, in input order.
func Eligible(records []domain.AdRecord) []domain.AdRecord {
	out := make([]domain.AdRecord, 0, len(records))
	for i := range records {
		if records[i].Eligible() {
			out = append(out, records[i])
		}
	}
	return out
}

// Filter keeps the records matching f at time now, in input order.
func Filter(records []domain.AdRecord, f domain.Filter, now time.Time) []domain.AdRecord {
	out := make([]domain.AdRecord, 0, len(records))
	for i := range records {
		if Match(&records[i], f, now) {
			out = append(out, records[i])
		}
	}
	return out
}

// Match reports whether r passes every active dimension of f.
func Match(r *domain.AdRecord, f domain.Filter, now time.Time) bool {
	if domain.Active(f.Format) && string(r.Format) != f.Format {
		return false
	}
	if domain.Active(f.Company) && r.AdvertiserName != f.Company {
		return false
	}
	if domain.Active(f.Platform) && string(r.SourcePlatform()) != f.Platform {
		return false
	}
	if domain.Active(f.Region) && r.Region != f.Region {
		return false
	}
	if f.Search != "" && !domain.ContainsFold(r.AdvertiserName, f.Search) {
		return false
	}
	if !matchLastActive(r.LastSeenDate, f.LastActive, now) {
		return false
	}
	if domain.Active(string(f.RunningSince)) && !f.RunningSince.Contains(r.ActiveDays()) {
		return false
	}
	return true
}

// matchLastActive compares the last seen date against now. "today" is a
// calendar comparison in now's location; the other buckets compare elapsed
// time. A date that did not parse never matches an active bucket.
func matchLastActive(last domain.SeenDate, bucket domain.LastActive, now time.Time) bool {
	if !domain.Active(string(bucket)) {
		return true
	}
	if !last.Valid() {
		return false
	}
	y, m, d := last.Civil()
	seen := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if bucket == domain.LastActiveToday {
		ny, nm, nd := now.Date()
		return y == ny && m == nm && d == nd
	}
	cutoff := now.Add(-time.Duration(bucket.WindowDays()) * 24 * time.Hour)
	return !seen.Before(cutoff)
}
