package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
	"adboard/internal/maintenance"
)

const hungama = `{
  "advertiserName": "Hungama Digital",
  "format": "Video",
  "adCreative": {"videoUrl": "https://cdn/v.mp4", "text": "watch"},
  "firstSeenDate": "8/1/2025",
  "lastSeenDate": "9/20/2025",
  "apiData": {"creativeId": "CR1"}
}`

const acme = `{
  "advertiserName": "Acme",
  "format": "Image",
  "adCreative": {"imageUrl": "https://cdn/a.png"},
  "firstSeenDate": "9/1/2025",
  "lastSeenDate": "9/22/2025",
  "apiData": {"creativeId": "CR2"},
  "scraped_from": "Google Ad Transparency",
  "scraped_platform": "Google Ad Transparency"
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-format", "text"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeData(t *testing.T, name string, elems ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	body := "[" + strings.Join(elems, ",") + "]"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestView(t *testing.T) {
	path := writeData(t, "data.json", hungama, acme)

	out, err := execute(t, "view", path)
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "CR2"), strings.Index(out, "CR1"), "most recent first")
	assert.Contains(t, out, "ADVERTISER")
	assert.Contains(t, out, "Sep 22, 2025")
	assert.Contains(t, out, "3 weeks")
	assert.Contains(t, out, "1 month 2 weeks")
	assert.Contains(t, out, "page 1 of 1, 2 records")

	out, err = execute(t, "view", path, "--format", "Video", "--order", "asc")
	require.NoError(t, err)
	assert.Contains(t, out, "CR1")
	assert.NotContains(t, out, "CR2")

	_, err = execute(t, "view", path, "--last-active", "yesterday")
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestMergeWithTarget(t *testing.T) {
	target := writeData(t, "target.json", hungama)
	input := writeData(t, "new.json", hungama, acme)

	out, err := execute(t, "merge", "--target", target, input)
	require.NoError(t, err)

	var report maintenance.MergeReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, maintenance.MergeReport{
		ExistingCount: 1,
		Candidates:    2,
		Added:         1,
		Duplicates:    1,
		MergedCount:   2,
	}, report)

	records, err := maintenance.ReadRecords(target)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "CR2", records[1].CreativeID())

	_, err = execute(t, "merge")
	assert.Error(t, err)
	_, err = execute(t, "merge", "--manifest", "m.yaml", "--target", target)
	assert.Error(t, err)
}

func TestBackfillDryRun(t *testing.T) {
	path := writeData(t, "data.json", hungama, acme)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := execute(t, "backfill", "--dry-run", path)
	require.NoError(t, err)

	var report maintenance.BackfillReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, maintenance.BackfillReport{Updated: 1, Total: 2, WithSource: 2}, report)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = execute(t, "backfill", path)
	require.NoError(t, err)
	records, err := maintenance.ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, string(domain.PlatformMeta), records[0].ScrapedPlatform)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", writeData(t, "ok.json", hungama, acme))
	require.NoError(t, err)
	assert.JSONEq(t, `{"issues": []}`, out)

	out, err = execute(t, "validate", writeData(t, "bad.json", acme, `{"format": "Image"}`))
	assert.Error(t, err)
	assert.Contains(t, out, `"index": 1`)
}

func TestFetchPagesThroughBackend(t *testing.T) {
	pages := map[string]string{
		"1": `{"items": [` + hungama + `], "pagination": {"current_page": 1, "page_size": 1, "total_items": 2, "total_pages": 2}}`,
		"2": `{"items": [` + acme + `], "pagination": {"current_page": 2, "page_size": 1, "total_items": 2, "total_pages": 2}}`,
	}
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/frontend/ads", r.URL.Path)
		assert.Equal(t, "Video", r.URL.Query().Get("format_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, pages[r.URL.Query().Get("page")])
	}))
	defer srv.Close()

	outFile := filepath.Join(t.TempDir(), "fetched.json")
	out, err := execute(t, "fetch", "--base-url", srv.URL, "--limit", "1", "--pages", "5", "--format", "Video", "-o", outFile)
	require.NoError(t, err)

	var summary fetchSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.Pages)
	assert.False(t, summary.HasMore)
	// the Image record of page 2 is filtered out locally
	assert.Equal(t, 1, summary.Records)
	assert.Equal(t, []string{"Hungama Digital"}, summary.Companies)
	assert.Equal(t, int32(2), requests.Load())

	records, err := maintenance.ReadRecords(outFile)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CR1", records[0].CreativeID())
}

func TestLoadDBRequiresInput(t *testing.T) {
	_, err := execute(t, "load-db")
	assert.ErrorContains(t, err, "--demo")
}
