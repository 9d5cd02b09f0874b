package pipeline

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
)

var now = time.Date(2025, time.September, 22, 15, 0, 0, 0, time.UTC)

func rec(id, name string, format domain.Format, first, last string) domain.AdRecord {
	return domain.AdRecord{
		AdvertiserName: name,
		Format:         format,
		FirstSeenDate:  domain.ParseSeenDate(first),
		LastSeenDate:   domain.ParseSeenDate(last),
		APIData:        domain.APIData{CreativeID: id},
	}
}

func ids(records []domain.AdRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.CreativeID()
	}
	return out
}

func TestEligibleExcludesMalformed(t *testing.T) {
	records := []domain.AdRecord{
		rec("1", "A", domain.FormatImage, "1/1/2025", "1/2/2025"),
		rec("2", "", domain.FormatImage, "1/1/2025", "1/2/2025"),
		rec("3", "B", "", "1/1/2025", "1/2/2025"),
		rec("4", "C", domain.FormatVideo, "", "1/2/2025"),
		rec("5", "D", domain.FormatVideo, "1/1/2025", ""),
		rec("6", "E", domain.FormatVideo, "Unknown", "Unknown"),
	}
	got := Eligible(records)
	if diff := cmp.Diff([]string{"1", "6"}, ids(got)); diff != "" {
		t.Fatalf("eligible ids mismatch (-want +got):\n%s", diff)
	}
	for _, r := range got {
		assert.Contains(t, []domain.Format{domain.FormatImage, domain.FormatVideo}, r.Format)
	}
}

func TestFilterDimensions(t *testing.T) {
	meta := rec("m", "Hungama OTT", domain.FormatVideo, "9/1/2025", "9/22/2025")
	meta.ScrapedPlatform = string(domain.PlatformMeta)
	meta.Region = "in"
	google := rec("g", "Acme Corp", domain.FormatImage, "1/1/2025", "9/10/2025")
	google.ScrapedFrom = string(domain.PlatformGoogle)
	google.Region = "us"
	old := rec("o", "Acme Corp", domain.FormatImage, "1/1/2024", "3/1/2025")
	records := []domain.AdRecord{meta, google, old}

	tests := []struct {
		name   string
		filter domain.Filter
		want   []string
	}{
		{"all", domain.Filter{Format: "all", Company: "all", Platform: "all", LastActive: "all", RunningSince: "all"}, []string{"m", "g", "o"}},
		{"format video", domain.Filter{Format: "Video"}, []string{"m"}},
		{"company", domain.Filter{Company: "Acme Corp"}, []string{"g", "o"}},
		{"company is exact", domain.Filter{Company: "acme corp"}, []string{}},
		{"platform meta", domain.Filter{Platform: string(domain.PlatformMeta)}, []string{"m"}},
		{"platform via legacy field", domain.Filter{Platform: string(domain.PlatformGoogle)}, []string{"g"}},
		{"region", domain.Filter{Region: "us"}, []string{"g"}},
		{"search folds case", domain.Filter{Search: "HUNGAMA"}, []string{"m"}},
		{"today", domain.Filter{LastActive: domain.LastActiveToday}, []string{"m"}},
		{"week", domain.Filter{LastActive: domain.LastActiveWeek}, []string{"m"}},
		{"month", domain.Filter{LastActive: domain.LastActiveMonth}, []string{"m", "g"}},
		{"quarter", domain.Filter{LastActive: domain.LastActiveQuarter}, []string{"m", "g"}},
		{"running lt7", domain.Filter{RunningSince: domain.RunningLessThan7}, []string{}},
		{"running 7to29", domain.Filter{RunningSince: domain.Running7To29}, []string{"m"}},
		{"running gte365", domain.Filter{RunningSince: domain.RunningAtLeast365}, []string{"o"}},
		{"and combination", domain.Filter{Company: "Acme Corp", LastActive: domain.LastActiveMonth}, []string{"g"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(records, tt.filter, now))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	records := []domain.AdRecord{
		rec("1", "A", domain.FormatImage, "9/1/2025", "9/20/2025"),
		rec("2", "B", domain.FormatVideo, "1/1/2025", "9/21/2025"),
		rec("3", "A", domain.FormatVideo, "8/1/2025", "9/22/2025"),
	}
	f := domain.Filter{Format: "Video", LastActive: domain.LastActiveWeek}
	once := Filter(records, f, now)
	twice := Filter(once, f, now)
	assert.Equal(t, ids(once), ids(twice))
}

func TestLastActiveInvalidDateNeverMatches(t *testing.T) {
	r := rec("x", "A", domain.FormatImage, "1/1/2025", "Unknown")
	assert.True(t, Match(&r, domain.Filter{}, now))
	assert.False(t, Match(&r, domain.Filter{LastActive: domain.LastActiveQuarter}, now))
}

func TestLastActiveUsesNowLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 22 Sep 23:00 UTC is already 23 Sep in India
	late := time.Date(2025, time.September, 22, 23, 0, 0, 0, time.UTC).In(kolkata)
	r := rec("x", "A", domain.FormatImage, "9/1/2025", "9/23/2025")
	assert.True(t, Match(&r, domain.Filter{LastActive: domain.LastActiveToday}, late))
	assert.False(t, Match(&r, domain.Filter{LastActive: domain.LastActiveToday}, now))
}

func TestRunningSinceBoundaries(t *testing.T) {
	day := func(n int) domain.AdRecord {
		first := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		return domain.AdRecord{
			AdvertiserName: "A",
			Format:         domain.FormatImage,
			FirstSeenDate:  domain.DateOf(first),
			LastSeenDate:   domain.DateOf(first.AddDate(0, 0, n)),
		}
	}
	in := func(n int, bucket domain.RunningSince) bool {
		r := day(n)
		return Match(&r, domain.Filter{RunningSince: bucket}, now)
	}

	assert.True(t, in(6, domain.RunningLessThan7))
	assert.False(t, in(6, domain.Running7To29))
	assert.True(t, in(7, domain.Running7To29))
	assert.False(t, in(7, domain.RunningLessThan7))

	assert.True(t, in(29, domain.Running7To29))
	assert.False(t, in(29, domain.RunningAtLeast30))
	assert.True(t, in(30, domain.RunningAtLeast30))
	assert.False(t, in(30, domain.Running7To29))

	assert.True(t, in(364, domain.RunningAtLeast30))
	assert.True(t, in(364, domain.RunningAtLeast90))
	assert.False(t, in(364, domain.RunningAtLeast365))
	assert.True(t, in(365, domain.RunningAtLeast365))
}

func TestReversedDatesFallInShortestBucket(t *testing.T) {
	r := rec("r", "A", domain.FormatImage, "3/1/2025", "1/1/2025")
	assert.Equal(t, 0, r.ActiveDays())
	assert.True(t, Match(&r, domain.Filter{RunningSince: domain.RunningLessThan7}, now))
}

func TestSortIsStable(t *testing.T) {
	records := []domain.AdRecord{
		rec("a", "A", domain.FormatImage, "1/1/2025", "9/1/2025"),
		rec("b", "B", domain.FormatImage, "1/1/2025", "9/5/2025"),
		rec("c", "C", domain.FormatImage, "1/1/2025", "9/1/2025"),
		rec("d", "D", domain.FormatImage, "1/1/2025", "Unknown"),
		rec("e", "E", domain.FormatImage, "1/1/2025", "9/5/2025"),
	}

	asc := ids(Sort(records, domain.SortAsc))
	if diff := cmp.Diff([]string{"d", "a", "c", "b", "e"}, asc); diff != "" {
		t.Errorf("asc (-want +got):\n%s", diff)
	}
	desc := ids(Sort(records, domain.SortDesc))
	if diff := cmp.Diff([]string{"b", "e", "a", "c", "d"}, desc); diff != "" {
		t.Errorf("desc (-want +got):\n%s", diff)
	}
	// default is most recent first
	assert.Equal(t, desc, ids(Sort(records, "")))
	// input untouched
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(records))
}

func TestCompanies(t *testing.T) {
	records := []domain.AdRecord{
		rec("1", "Zeta", domain.FormatImage, "", ""),
		rec("2", "Alpha", domain.FormatImage, "", ""),
		rec("3", "Alpha", domain.FormatImage, "", ""),
	}
	assert.Equal(t, []string{"Alpha", "Zeta"}, Companies(records))
	assert.Empty(t, Companies(nil))
}

func TestPaginate(t *testing.T) {
	var records []domain.AdRecord
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		records = append(records, rec(id, "A", domain.FormatImage, "1/1/2025", "1/2/2025"))
	}

	page, p := Paginate(records, 2, 2)
	assert.Equal(t, []string{"3", "4"}, ids(page))
	assert.Equal(t, domain.Pagination{CurrentPage: 2, PageSize: 2, TotalItems: 5, TotalPages: 3}, p)
	assert.True(t, p.HasMore())

	page, p = Paginate(records, 3, 2)
	assert.Equal(t, []string{"5"}, ids(page))
	assert.False(t, p.HasMore())

	page, _ = Paginate(records, 9, 2)
	assert.Empty(t, page)
	assert.NotNil(t, page)

	assert.Equal(t, []string{"1", "2", "3"}, ids(Prefix(records, 3)))
	assert.Len(t, Prefix(records, 50), 5)
}

func TestSnapshotQuery(t *testing.T) {
	records := []domain.AdRecord{
		rec("1", "Zeta", domain.FormatVideo, "9/1/2025", "9/20/2025"),
		rec("2", "", domain.FormatImage, "9/1/2025", "9/21/2025"),
		rec("3", "Alpha", domain.FormatImage, "9/1/2025", "9/22/2025"),
	}
	s := NewSnapshot(records)
	records[0].AdvertiserName = "mutated"

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Excluded())
	assert.Equal(t, []string{"Alpha", "Zeta"}, s.Companies())
	assert.Equal(t, domain.Stats{TotalAds: 2, UniqueCompanies: 2, ImageAds: 1, VideoAds: 1}, s.Stats())

	items, p := s.Query(domain.Filter{}, 1, 10, now)
	assert.Equal(t, []string{"3", "1"}, ids(items))
	assert.Equal(t, 2, p.TotalItems)

	got, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Zeta", got.AdvertiserName)
	_, ok = s.Get("2")
	assert.False(t, ok, "ineligible records are not addressable")
}
