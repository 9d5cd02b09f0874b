package pipeline

import (
	"slices"

	"adboard/internal/core/domain"
)

// Sort returns a copy of records ordered by last seen date. The sort is
// stable in both directions, so records with equal dates keep their input
// order.
func Sort(records []domain.AdRecord, order domain.SortOrder) []domain.AdRecord {
	out := slices.Clone(records)
	desc := order != domain.SortAsc
	slices.SortStableFunc(out, func(a, b domain.AdRecord) int {
		c := a.LastSeenDate.SortKey().Compare(b.LastSeenDate.SortKey())
		if desc {
			return -c
		}
		return c
	})
	return out
}

// Companies returns the distinct advertiser names in records, sorted
// ascending. It feeds the company selector.
func Companies(records []domain.AdRecord) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for i := range records {
		name := records[i].AdvertiserName
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
