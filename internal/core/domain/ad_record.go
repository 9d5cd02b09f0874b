package domain

import (
	"bytes"
	"encoding/json"
)

// APIData carries the identifiers assigned by the transparency center.
type APIData struct {
	AdvertiserID string `json:"advertiserId"`
	CreativeID   string `json:"creativeId"`
	FormatCode   int    `json:"formatCode"`
}

// AdRecord is one scraped advertisement. Records are produced by the
// import/merge tooling and are never mutated once loaded into a snapshot.
//
// Creative holds exactly one variant selected by Format; it is nil when the
// format is unknown.
type AdRecord struct {
	AdvertiserName string
	Format         Format
	Creative       Creative

	FirstSeenDate SeenDate
	LastSeenDate  SeenDate

	Region                string
	SearchRegion          string
	GATCLink              string
	FormatCode            int
	HasInteractiveContent bool
	CampaignDuration      string
	CreativeDimensions    string
	APIData               APIData

	// PublisherPlatforms is only set for Meta-sourced records.
	PublisherPlatforms []string
	// ScrapedFrom is the legacy spelling of ScrapedPlatform.
	ScrapedFrom     string
	ScrapedPlatform string
}

// CreativeID returns the identifier used for lookups and deduplication.
func (r AdRecord) CreativeID() string {
	return r.APIData.CreativeID
}

// SourcePlatform returns the tagged platform, preferring scraped_platform
// over the legacy scraped_from. It is empty for untagged records.
func (r AdRecord) SourcePlatform() SourcePlatform {
	if r.ScrapedPlatform != "" {
		return SourcePlatform(r.ScrapedPlatform)
	}
	return SourcePlatform(r.ScrapedFrom)
}

// Eligible reports whether the record can be displayed: it needs an
// advertiser, a known format and both seen dates. Dates only need to be
// present; unparseable dates are tolerated downstream.
func (r AdRecord) Eligible() bool {
	return r.AdvertiserName != "" &&
		r.Format.Valid() &&
		r.FirstSeenDate.Present() &&
		r.LastSeenDate.Present()
}

// ActiveDays is the running time of the ad in whole days.
func (r AdRecord) ActiveDays() int {
	return ActiveDays(r.FirstSeenDate, r.LastSeenDate)
}

// adRecordJSON is the on-disk shape shared with the scrapers and the
// dashboard front-end.
type adRecordJSON struct {
	AdvertiserName        string       `json:"advertiserName"`
	AdCreative            creativeJSON `json:"adCreative"`
	Format                Format       `json:"format"`
	Region                string       `json:"region"`
	SearchRegion          string       `json:"searchRegion"`
	FirstSeenDate         SeenDate     `json:"firstSeenDate"`
	LastSeenDate          SeenDate     `json:"lastSeenDate"`
	GATCLink              string       `json:"gatcLink"`
	FormatCode            int          `json:"formatCode"`
	AdType                Format       `json:"adType,omitempty"`
	HasInteractiveContent bool         `json:"hasInteractiveContent"`
	CampaignDuration      string       `json:"campaignDuration"`
	CreativeDimensions    string       `json:"creativeDimensions"`
	APIData               APIData      `json:"apiData"`
	ImageURL              *string      `json:"imageUrl"`
	VideoThumbnailURL     *string      `json:"videoThumbnailUrl"`
	YoutubeVideoID        string       `json:"youtubeVideoId,omitempty"`
	PublisherPlatforms    []string     `json:"publisher_platform,omitempty"`
	ScrapedFrom           string       `json:"scraped_from,omitempty"`
	ScrapedPlatform       string       `json:"scraped_platform,omitempty"`
}

type creativeJSON struct {
	ImageURL  *string `json:"imageUrl"`
	VideoURL  *string `json:"videoUrl"`
	Text      string  `json:"text"`
	HasIframe bool    `json:"hasIframe"`
}

func (r *AdRecord) UnmarshalJSON(b []byte) error {
	var w adRecordJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = AdRecord{
		AdvertiserName:        w.AdvertiserName,
		Format:                w.Format,
		FirstSeenDate:         w.FirstSeenDate,
		LastSeenDate:          w.LastSeenDate,
		Region:                w.Region,
		SearchRegion:          w.SearchRegion,
		GATCLink:              w.GATCLink,
		FormatCode:            w.FormatCode,
		HasInteractiveContent: w.HasInteractiveContent,
		CampaignDuration:      w.CampaignDuration,
		CreativeDimensions:    w.CreativeDimensions,
		APIData:               w.APIData,
		PublisherPlatforms:    w.PublisherPlatforms,
		ScrapedFrom:           w.ScrapedFrom,
		ScrapedPlatform:       w.ScrapedPlatform,
	}
	switch w.Format {
	case FormatImage:
		r.Creative = ImageCreative{
			ImageURL:  firstOf(w.AdCreative.ImageURL, w.ImageURL),
			Text:      w.AdCreative.Text,
			HasIframe: w.AdCreative.HasIframe,
		}
	case FormatVideo:
		r.Creative = VideoCreative{
			VideoURL:       firstOf(w.AdCreative.VideoURL),
			ThumbnailURL:   firstOf(w.VideoThumbnailURL),
			YoutubeVideoID: w.YoutubeVideoID,
			Text:           w.AdCreative.Text,
			HasIframe:      w.AdCreative.HasIframe,
		}
	}
	return nil
}

func (r AdRecord) MarshalJSON() ([]byte, error) {
	w := adRecordJSON{
		AdvertiserName:        r.AdvertiserName,
		Format:                r.Format,
		Region:                r.Region,
		SearchRegion:          r.SearchRegion,
		FirstSeenDate:         r.FirstSeenDate,
		LastSeenDate:          r.LastSeenDate,
		GATCLink:              r.GATCLink,
		FormatCode:            r.FormatCode,
		HasInteractiveContent: r.HasInteractiveContent,
		CampaignDuration:      r.CampaignDuration,
		CreativeDimensions:    r.CreativeDimensions,
		APIData:               r.APIData,
		PublisherPlatforms:    r.PublisherPlatforms,
		ScrapedFrom:           r.ScrapedFrom,
		ScrapedPlatform:       r.ScrapedPlatform,
	}
	if r.Format.Valid() {
		w.AdType = r.Format
	}
	switch c := r.Creative.(type) {
	case ImageCreative:
		w.AdCreative = creativeJSON{ImageURL: ptrOrNil(c.ImageURL), Text: c.Text, HasIframe: c.HasIframe}
		w.ImageURL = ptrOrNil(c.ImageURL)
		w.VideoThumbnailURL = ptrOrNil(c.ImageURL)
	case VideoCreative:
		w.AdCreative = creativeJSON{VideoURL: ptrOrNil(c.VideoURL), Text: c.Text, HasIframe: c.HasIframe}
		w.VideoThumbnailURL = ptrOrNil(c.ThumbnailURL)
		w.YoutubeVideoID = c.YoutubeVideoID
	}
	// the data files keep URLs and ad copy unescaped
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func firstOf(vals ...*string) string {
	for _, v := range vals {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
