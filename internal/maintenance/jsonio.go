// Package maintenance holds the offline tooling that curates the ad data
// file: merging scraper output, importing Meta Ad Library exports and
// backfilling source tags.
//
// Files are rewritten entry by entry: an element that the tools do not
// change is written back with the same members and values it was read with.
package maintenance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"adboard/internal/core/domain"
)

// Entry is one element of a data file. Raw is the element as read; Record
// is the typed view used for creative ids and classification.
type Entry struct {
	Raw    json.RawMessage
	Record domain.AdRecord
}

// NewEntry encodes a record produced by the tools themselves.
func NewEntry(r domain.AdRecord) (Entry, error) {
	raw, err := r.MarshalJSON()
	if err != nil {
		return Entry{}, fmt.Errorf("encode record %q: %w", r.CreativeID(), err)
	}
	return Entry{Raw: raw, Record: r}, nil
}

// CreativeID returns the id used for deduplication.
func (e Entry) CreativeID() string {
	return e.Record.CreativeID()
}

// Records returns the typed views of entries.
func Records(entries []Entry) []domain.AdRecord {
	out := make([]domain.AdRecord, len(entries))
	for i := range entries {
		out[i] = entries[i].Record
	}
	return out
}

// ReadEntries reads a JSON array of ad records. Unlike the server loader it
// fails on any malformed element so a rewrite never drops data silently.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var elems []json.RawMessage
	if err = json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if elems == nil {
		return nil, fmt.Errorf("decode %s: expected a JSON array", path)
	}

	entries := make([]Entry, len(elems))
	for i, raw := range elems {
		if len(raw) == 0 || raw[0] != '{' {
			return nil, fmt.Errorf("decode %s: element %d is not an object", path, i)
		}
		entries[i].Raw = raw
		if err = json.Unmarshal(raw, &entries[i].Record); err != nil {
			return nil, fmt.Errorf("decode %s: element %d: %w", path, i, err)
		}
	}
	return entries, nil
}

// ReadRecords reads a data file into its typed records.
func ReadRecords(path string) ([]domain.AdRecord, error) {
	entries, err := ReadEntries(path)
	if err != nil {
		return nil, err
	}
	return Records(entries), nil
}

// WriteEntries writes entries as a JSON array indented by two spaces. Only
// whitespace of an entry's raw text changes. The file is replaced
// atomically via a temporary file in the same directory.
func WriteEntries(path string, entries []Entry) error {
	var buf bytes.Buffer
	if len(entries) == 0 {
		buf.WriteString("[]\n")
		return writeFileAtomic(path, buf.Bytes())
	}

	buf.WriteString("[\n")
	for i := range entries {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString("  ")
		if err := json.Indent(&buf, entries[i].Raw, "  ", "  "); err != nil {
			return fmt.Errorf("encode entry %d: %w", i, err)
		}
	}
	buf.WriteString("\n]\n")
	return writeFileAtomic(path, buf.Bytes())
}

// WriteRecords writes records created by the tools, such as imported Meta
// ads or pages fetched from a backend.
func WriteRecords(path string, records []domain.AdRecord) error {
	entries := make([]Entry, len(records))
	for i := range records {
		e, err := NewEntry(records[i])
		if err != nil {
			return err
		}
		entries[i] = e
	}
	return WriteEntries(path, entries)
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
