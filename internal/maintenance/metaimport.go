package maintenance

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"adboard/internal/core/domain"
)

// Defaults for fields a Meta Ad Library export does not carry.
const (
	metaDefaultAdvertiser = "Hungama OTT"
	metaRegion            = "in"
	metaSearchRegion      = "India"
	unknown               = "Unknown"
	metaLibraryURL        = "https://www.facebook.com/ads/library/?id="
)

// MetaExport is the subset of a Meta Ad Library search export that the
// import reads.
type MetaExport struct {
	Ads []struct {
		Node struct {
			CollatedResults []MetaResult `json:"collated_results"`
		} `json:"node"`
	} `json:"ads"`
}

// MetaResult is one ad of an export. Dates are unix seconds.
type MetaResult struct {
	AdArchiveID       string   `json:"ad_archive_id"`
	PageID            string   `json:"page_id"`
	PageName          string   `json:"page_name"`
	StartDate         int64    `json:"start_date"`
	EndDate           int64    `json:"end_date"`
	PublisherPlatform []string `json:"publisher_platform"`
	Snapshot          struct {
		Cards []MetaCard `json:"cards"`
	} `json:"snapshot"`
}

// MetaCard is one creative of an ad; carousel ads have several.
type MetaCard struct {
	Body                 string `json:"body"`
	OriginalImageURL     string `json:"original_image_url"`
	ResizedImageURL      string `json:"resized_image_url"`
	VideoHDURL           string `json:"video_hd_url"`
	VideoSDURL           string `json:"video_sd_url"`
	VideoPreviewImageURL string `json:"video_preview_image_url"`
}

// ReadMetaExport reads and transforms an export file.
func ReadMetaExport(path string) ([]domain.AdRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var export MetaExport
	if err = json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("decode meta export %s: %w", path, err)
	}
	return TransformMetaExport(export), nil
}

// TransformMetaExport emits one record per card of every ad.
func TransformMetaExport(export MetaExport) []domain.AdRecord {
	var out []domain.AdRecord
	for _, ad := range export.Ads {
		for _, res := range ad.Node.CollatedResults {
			first, last := unixDate(res.StartDate), unixDate(res.EndDate)
			for _, card := range res.Snapshot.Cards {
				out = append(out, metaRecord(res, card, first, last))
			}
		}
	}
	return out
}

func metaRecord(res MetaResult, card MetaCard, first, last domain.SeenDate) domain.AdRecord {
	name := res.PageName
	if name == "" {
		name = metaDefaultAdvertiser
	}
	rec := domain.AdRecord{
		AdvertiserName:     name,
		FirstSeenDate:      first,
		LastSeenDate:       last,
		Region:             metaRegion,
		SearchRegion:       metaSearchRegion,
		GATCLink:           metaLibraryURL + res.AdArchiveID,
		CampaignDuration:   unknown,
		CreativeDimensions: unknown,
		PublisherPlatforms: res.PublisherPlatform,
		ScrapedFrom:        string(domain.PlatformMeta),
		ScrapedPlatform:    string(domain.PlatformMeta),
	}

	if videoURL := firstNonEmpty(card.VideoHDURL, card.VideoSDURL); videoURL != "" {
		rec.Format = domain.FormatVideo
		rec.Creative = domain.VideoCreative{
			VideoURL:       videoURL,
			ThumbnailURL:   card.VideoPreviewImageURL,
			YoutubeVideoID: "video_" + res.AdArchiveID,
			Text:           card.Body,
		}
	} else {
		rec.Format = domain.FormatImage
		rec.Creative = domain.ImageCreative{
			ImageURL: firstNonEmpty(card.OriginalImageURL, card.ResizedImageURL),
			Text:     card.Body,
		}
	}
	rec.FormatCode = rec.Format.Code()
	rec.APIData = domain.APIData{
		AdvertiserID: res.PageID,
		CreativeID:   res.AdArchiveID,
		FormatCode:   rec.FormatCode,
	}
	return rec
}

// unixDate renders unix seconds as M/D/YYYY in UTC. Zero means the export
// had no date.
func unixDate(sec int64) domain.SeenDate {
	if sec == 0 {
		return domain.ParseSeenDate(unknown)
	}
	return domain.DateOf(time.Unix(sec, 0))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
