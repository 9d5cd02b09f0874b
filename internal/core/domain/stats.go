package domain

// Stats summarises a record set for the dashboard header.
type Stats struct {
	TotalAds        int `json:"totalAds"`
	UniqueCompanies int `json:"uniqueCompanies"`
	ImageAds        int `json:"imageAds"`
	VideoAds        int `json:"videoAds"`
}

// ComputeStats counts eligible records only.
func ComputeStats(records []AdRecord) Stats {
	var s Stats
	companies := make(map[string]struct{})
	for i := range records {
		r := &records[i]
		if !r.Eligible() {
			continue
		}
		s.TotalAds++
		companies[r.AdvertiserName] = struct{}{}
		switch r.Format {
		case FormatImage:
			s.ImageAds++
		case FormatVideo:
			s.VideoAds++
		}
	}
	s.UniqueCompanies = len(companies)
	return s
}
