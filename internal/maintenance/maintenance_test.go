package maintenance

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
)

func ad(id, name string) domain.AdRecord {
	return domain.AdRecord{
		AdvertiserName: name,
		Format:         domain.FormatImage,
		Creative:       domain.ImageCreative{ImageURL: "https://cdn/" + id + ".png"},
		FirstSeenDate:  domain.ParseSeenDate("9/1/2025"),
		LastSeenDate:   domain.ParseSeenDate("9/2/2025"),
		APIData:        domain.APIData{CreativeID: id},
	}
}

func ids(records []domain.AdRecord) []string {
	out := make([]string, len(records))
	for i := range records {
		out[i] = records[i].CreativeID()
	}
	return out
}

func entries(t *testing.T, records ...domain.AdRecord) []Entry {
	t.Helper()
	out := make([]Entry, len(records))
	for i := range records {
		e, err := NewEntry(records[i])
		require.NoError(t, err)
		out[i] = e
	}
	return out
}

func TestMergeDropsDuplicatesAndSkipsMissingIDs(t *testing.T) {
	existing := entries(t, ad("1", "Acme"), ad("2", "Acme"))
	batchA := entries(t, ad("2", "Acme"), ad("3", "Moovi"), ad("", "NoID"))
	batchB := entries(t, ad("3", "Moovi"), ad("4", "Shemaroo"))

	merged, report := Merge(existing, batchA, batchB)

	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, ids(Records(merged))); diff != "" {
		t.Fatalf("merged ids mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, MergeReport{
		ExistingCount: 2,
		Candidates:    5,
		Added:         2,
		Duplicates:    2,
		Skipped:       1,
		MergedCount:   4,
	}, report)
	assert.Len(t, existing, 2, "input untouched")
}

func TestMergeKeepsExistingAsIs(t *testing.T) {
	existing := entries(t, ad("", "Legacy"), ad("1", "Acme"), ad("1", "Acme"))
	merged, report := Merge(existing)
	assert.Len(t, merged, 3)
	assert.Equal(t, 0, report.Added)
}

// legacyData has records the typed model does not fully describe: an
// unknown format, extra members, null dates and an image with a thumbnail.
const legacyData = `[
  {
    "advertiserName": "Hungama OTT",
    "format": "Text",
    "adCreative": {"imageUrl": "https://i/x.png", "text": "Buy now", "hasIframe": true},
    "extraField": "keep me",
    "firstSeenDate": null,
    "lastSeenDate": null,
    "apiData": {"creativeId": "CR1"}
  },
  {
    "advertiserName": "Acme & Sons",
    "format": "Image",
    "adCreative": {"imageUrl": "https://i/a.png"},
    "videoThumbnailUrl": "https://i/thumb.png",
    "firstSeenDate": "9/1/2025",
    "lastSeenDate": "9/2/2025",
    "apiData": {"creativeId": "CR2", "formatCode": 2},
    "scraped_from": null
  },
  {
    "advertiserName": "Moovi",
    "format": "Video",
    "firstSeenDate": "9/1/2025",
    "lastSeenDate": "9/2/2025",
    "apiData": {"creativeId": "CR3"},
    "scraped_from": "",
    "scraped_platform": ""
  }
]`

func decodeArray(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestBackfillOnlyAddsSourceTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped-data.json")
	require.NoError(t, os.WriteFile(path, []byte(legacyData), 0o644))

	in, err := ReadEntries(path)
	require.NoError(t, err)
	out, report, err := Backfill(in)
	require.NoError(t, err)
	assert.Equal(t, BackfillReport{Updated: 2, Total: 3, WithSource: 3}, report)
	require.NoError(t, WriteEntries(path, out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := decodeArray(t, data)
	want := decodeArray(t, []byte(legacyData))
	want[0]["scraped_from"] = "Meta Ad Library"
	want[0]["scraped_platform"] = "Meta Ad Library"
	want[1]["scraped_from"] = "Google Ad Transparency"
	want[1]["scraped_platform"] = "Google Ad Transparency"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("backfilled file mismatch (-want +got):\n%s", diff)
	}

	// existing members keep their place, new ones are appended
	assert.Less(t, strings.Index(string(data), `"extraField"`), strings.Index(string(data), `"scraped_from": "Meta Ad Library"`))
	assert.Contains(t, string(data), `"advertiserName": "Acme & Sons"`)
	assert.Equal(t, "Meta Ad Library", out[0].Record.ScrapedPlatform)
	assert.Empty(t, in[0].Record.ScrapedPlatform, "input untouched")

	_, again, err := Backfill(out)
	require.NoError(t, err)
	assert.Zero(t, again.Updated, "backfill is idempotent")
}

func TestBackfillKeepsEmptyTags(t *testing.T) {
	in := []Entry{{Raw: json.RawMessage(`{"advertiserName":"Moovi","scraped_from":"","scraped_platform":""}`)}}
	out, report, err := Backfill(in)
	require.NoError(t, err)
	assert.Zero(t, report.Updated)
	assert.Equal(t, 1, report.WithSource)
	assert.Equal(t, string(in[0].Raw), string(out[0].Raw))
}

func TestBackfillHalfTaggedRecord(t *testing.T) {
	in := []Entry{{
		Raw:    json.RawMessage(`{"advertiserName":"Acme","scraped_platform":"Meta Ad Library"}`),
		Record: domain.AdRecord{AdvertiserName: "Acme", ScrapedPlatform: "Meta Ad Library"},
	}}
	out, report, err := Backfill(in)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	// both tags are re-derived from the advertiser, in place
	assert.JSONEq(t, `{"advertiserName":"Acme","scraped_platform":"Google Ad Transparency","scraped_from":"Google Ad Transparency"}`, string(out[0].Raw))
	assert.Equal(t, "Google Ad Transparency", out[0].Record.ScrapedFrom)
}

func TestMergeWritesExistingEntriesUnchanged(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scraped-data.json")
	require.NoError(t, os.WriteFile(target, []byte(legacyData), 0o644))
	require.NoError(t, WriteRecords(filepath.Join(dir, "new.json"), []domain.AdRecord{ad("CR9", "Zee5")}))

	m := &Manifest{Target: target, Sources: []ManifestSource{{Path: filepath.Join(dir, "new.json"), Kind: KindRecords}}}
	report, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Added)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	got := decodeArray(t, data)
	require.Len(t, got, 4)
	if diff := cmp.Diff(decodeArray(t, []byte(legacyData)), got[:3]); diff != "" {
		t.Fatalf("existing records changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Zee5", got[3]["advertiserName"])
}

const metaExport = `{
  "ads": [
    {"node": {"collated_results": [
      {
        "ad_archive_id": "1122",
        "page_id": "77",
        "page_name": "Hungama Music",
        "start_date": 1727740800,
        "end_date": 1730419200,
        "publisher_platform": ["FACEBOOK", "INSTAGRAM"],
        "snapshot": {"cards": [
          {"body": "Listen now", "video_sd_url": "https://v/sd.mp4", "video_preview_image_url": "https://v/p.jpg"},
          {"body": "Poster", "resized_image_url": "https://i/r.jpg"}
        ]}
      },
      {
        "ad_archive_id": "3344",
        "snapshot": {"cards": [{"original_image_url": "https://i/o.jpg"}]}
      }
    ]}}
  ]
}`

func TestTransformMetaExport(t *testing.T) {
	var export MetaExport
	require.NoError(t, json.Unmarshal([]byte(metaExport), &export))

	records := TransformMetaExport(export)
	require.Len(t, records, 3)

	video := records[0]
	assert.Equal(t, domain.FormatVideo, video.Format)
	assert.Equal(t, 3, video.FormatCode)
	assert.Equal(t, "10/1/2024", video.FirstSeenDate.Raw())
	assert.Equal(t, "11/1/2024", video.LastSeenDate.Raw())
	assert.Equal(t, domain.VideoCreative{
		VideoURL:       "https://v/sd.mp4",
		ThumbnailURL:   "https://v/p.jpg",
		YoutubeVideoID: "video_1122",
		Text:           "Listen now",
	}, video.Creative)
	assert.Equal(t, domain.APIData{AdvertiserID: "77", CreativeID: "1122", FormatCode: 3}, video.APIData)
	assert.Equal(t, "https://www.facebook.com/ads/library/?id=1122", video.GATCLink)
	assert.Equal(t, []string{"FACEBOOK", "INSTAGRAM"}, video.PublisherPlatforms)
	assert.Equal(t, domain.PlatformMeta, video.SourcePlatform())

	image := records[1]
	assert.Equal(t, domain.FormatImage, image.Format)
	assert.Equal(t, 2, image.APIData.FormatCode)
	assert.Equal(t, "https://i/r.jpg", image.Creative.PreviewURL())

	undated := records[2]
	assert.Equal(t, "Hungama OTT", undated.AdvertiserName)
	assert.Equal(t, "Unknown", undated.FirstSeenDate.Raw())
	assert.False(t, undated.FirstSeenDate.Valid())
	assert.True(t, undated.Eligible(), "unknown dates are present, just unparseable")
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped-data.json")
	in := []domain.AdRecord{ad("1", "Acme & Sons")}

	require.NoError(t, WriteRecords(path, in))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"advertiserName\": \"Acme & Sons\""))

	out, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].CreativeID())
	assert.Equal(t, "https://cdn/1.png", out[0].Creative.PreviewURL())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestReadRecordsRejectsNonArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`null`), 0o644))
	_, err := ReadRecords(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"advertiserName": "Acme"}, null]`), 0o644))
	_, err = ReadEntries(path)
	assert.ErrorContains(t, err, "element 1 is not an object")
}

func TestManifestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteRecords(filepath.Join(dir, "scraped-data.json"), []domain.AdRecord{ad("1", "Acme")}))
	require.NoError(t, WriteRecords(filepath.Join(dir, "moovi.json"), []domain.AdRecord{ad("1", "Acme"), ad("2", "Moovi")}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hungama.json"), []byte(metaExport), 0o644))

	manifest := filepath.Join(dir, "merge.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`target: scraped-data.json
sources:
  - path: moovi.json
  - path: hungama.json
    kind: meta
`), 0o644))

	m, err := LoadManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scraped-data.json"), m.Target)
	assert.Equal(t, KindRecords, m.Sources[0].Kind)

	report, err := m.Run(context.Background())
	require.NoError(t, err)
	// the two cards of ad 1122 share a creative id, so only one is added
	assert.Equal(t, MergeReport{ExistingCount: 1, Candidates: 5, Added: 3, Duplicates: 2, MergedCount: 4}, report)

	merged, err := ReadRecords(m.Target)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "1122", "3344"}, ids(merged))
}

func TestLoadManifestRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: out.json\nsources:\n  - path: a.json\n    kind: csv\n"), 0o644))
	_, err := LoadManifest(path)
	assert.ErrorContains(t, err, `unknown kind "csv"`)
}

func TestManifestMissingSource(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{
		Target:  filepath.Join(dir, "out.json"),
		Sources: []ManifestSource{{Path: filepath.Join(dir, "missing.json"), Kind: KindRecords}},
	}
	_, err := m.Run(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
