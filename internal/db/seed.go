package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"adboard/internal/core/domain"
)

// AdInserter stores ad records, skipping ones that already exist.
type AdInserter interface {
	InsertAds(ctx context.Context, records []domain.AdRecord) (int, error)
}

var (
	demoAdvertisers = []string{"Hungama Digital Media", "Zee5", "JioCinema", "SonyLIV", "Disney+ Hotstar"}
	demoRegions     = []string{"in", "us", "gb"}
)

// DemoRecords generates n display-eligible records seen during the 400
// days before now. Creative ids are stable for a given r seed.
func DemoRecords(r *rand.Rand, n int, now time.Time) []domain.AdRecord {
	records := make([]domain.AdRecord, 0, n)
	for i := 1; i <= n; i++ {
		name := demoAdvertisers[r.Intn(len(demoAdvertisers))]
		last := now.AddDate(0, 0, -r.Intn(120))
		first := last.AddDate(0, 0, -r.Intn(400))

		rec := domain.AdRecord{
			AdvertiserName: name,
			FirstSeenDate:  domain.DateOf(first),
			LastSeenDate:   domain.DateOf(last),
			Region:         demoRegions[r.Intn(len(demoRegions))],
			SearchRegion:   "India",
			APIData: domain.APIData{
				AdvertiserID: fmt.Sprintf("AR%08d", r.Intn(1e8)),
				CreativeID:   fmt.Sprintf("CR%08d", i),
			},
			ScrapedPlatform: string(domain.ClassifyAdvertiser(name)),
		}
		if r.Intn(2) == 0 {
			rec.Format = domain.FormatImage
			rec.Creative = domain.ImageCreative{
				ImageURL: fmt.Sprintf("https://example.com/image/%d.png", i),
				Text:     fmt.Sprintf("Creative %d for %s", i, name),
			}
		} else {
			rec.Format = domain.FormatVideo
			rec.Creative = domain.VideoCreative{
				VideoURL:     fmt.Sprintf("https://example.com/video/%d.mp4", i),
				ThumbnailURL: fmt.Sprintf("https://example.com/thumb/%d.jpg", i),
				Text:         fmt.Sprintf("Creative %d for %s", i, name),
			}
		}
		rec.FormatCode = rec.Format.Code()
		rec.APIData.FormatCode = rec.FormatCode
		records = append(records, rec)
	}
	return records
}

// Seed inserts n demo records into the ad store and returns how many were
// new.
func Seed(ctx context.Context, store AdInserter, n int) (int, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	inserted, err := store.InsertAds(ctx, DemoRecords(r, n, time.Now()))
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return inserted, nil
}
