package maintenance

import (
	"fmt"

	"adboard/internal/core/domain"
)

const (
	keyScrapedFrom     = "scraped_from"
	keyScrapedPlatform = "scraped_platform"
)

// BackfillReport summarises a backfill.
type BackfillReport struct {
	Updated    int `json:"updated"`
	Total      int `json:"total"`
	WithSource int `json:"withSource"`
}

// Backfill tags entries that predate source tagging. When scraped_from or
// scraped_platform is missing or null, both are set from the advertiser
// name; every other member of the entry is left as it was. An empty string
// is a value, not a missing tag. The input is not modified.
func Backfill(entries []Entry) ([]Entry, BackfillReport, error) {
	out := make([]Entry, len(entries))
	copy(out, entries)

	report := BackfillReport{Total: len(out)}
	for i := range out {
		e := &out[i]
		members, err := splitObject(e.Raw)
		if err != nil {
			return nil, BackfillReport{}, fmt.Errorf("entry %d: %w", i, err)
		}

		if isNull(members, keyScrapedFrom) || isNull(members, keyScrapedPlatform) {
			platform := string(domain.ClassifyAdvertiser(e.Record.AdvertiserName))
			value, err := encodeString(platform)
			if err != nil {
				return nil, BackfillReport{}, err
			}
			members = setMember(members, keyScrapedFrom, value)
			members = setMember(members, keyScrapedPlatform, value)
			if e.Raw, err = joinObject(members); err != nil {
				return nil, BackfillReport{}, fmt.Errorf("entry %d: %w", i, err)
			}
			e.Record.ScrapedFrom, e.Record.ScrapedPlatform = platform, platform
			report.Updated++
		}

		if !isNull(members, keyScrapedFrom) || !isNull(members, keyScrapedPlatform) {
			report.WithSource++
		}
	}
	return out, report, nil
}
