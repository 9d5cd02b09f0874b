package maintenance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// SourceKind tells how a manifest source is read.
type SourceKind string

const (
	// KindRecords is a JSON array of ad records, as written by the scrapers.
	KindRecords SourceKind = "records"
	// KindMeta is a Meta Ad Library export.
	KindMeta SourceKind = "meta"
)

// maxParallelReads bounds concurrent source reads.
const maxParallelReads = 4

// Manifest lists the files merged into a target data file.
//
//	target: data/scraped-data.json
//	sources:
//	  - path: scraped/Atrangii-Scrapped.json
//	  - path: exports/Hungama.json
//	    kind: meta
type Manifest struct {
	Target  string           `yaml:"target"`
	Sources []ManifestSource `yaml:"sources"`
}

// ManifestSource is one input of a manifest. Kind defaults to records.
type ManifestSource struct {
	Path string     `yaml:"path"`
	Kind SourceKind `yaml:"kind"`
}

// LoadManifest reads a manifest. Relative paths are resolved against the
// manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err = dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	if m.Target == "" {
		return nil, fmt.Errorf("manifest %s: target is required", path)
	}

	base := filepath.Dir(path)
	m.Target = resolve(base, m.Target)
	for i := range m.Sources {
		s := &m.Sources[i]
		if s.Path == "" {
			return nil, fmt.Errorf("manifest %s: source %d has no path", path, i)
		}
		s.Path = resolve(base, s.Path)
		switch s.Kind {
		case "":
			s.Kind = KindRecords
		case KindRecords, KindMeta:
		default:
			return nil, fmt.Errorf("manifest %s: source %s has unknown kind %q", path, s.Path, s.Kind)
		}
	}
	return &m, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// ReadSource reads one source according to its kind. Meta exports are
// converted to records first.
func ReadSource(s ManifestSource) ([]Entry, error) {
	if s.Kind != KindMeta {
		return ReadEntries(s.Path)
	}
	records, err := ReadMetaExport(s.Path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(records))
	for i := range records {
		if entries[i], err = NewEntry(records[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// ReadSources reads all sources concurrently. The result keeps manifest
// order.
func (m *Manifest) ReadSources(ctx context.Context) ([][]Entry, error) {
	batches := make([][]Entry, len(m.Sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, s := range m.Sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries, err := ReadSource(s)
			if err != nil {
				return fmt.Errorf("read %s: %w", s.Path, err)
			}
			batches[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batches, nil
}

// Run merges the manifest sources into its target and rewrites the target
// when anything was added. A missing target starts out empty.
func (m *Manifest) Run(ctx context.Context) (MergeReport, error) {
	existing, err := ReadEntries(m.Target)
	if errors.Is(err, fs.ErrNotExist) {
		existing, err = []Entry{}, nil
	}
	if err != nil {
		return MergeReport{}, err
	}

	batches, err := m.ReadSources(ctx)
	if err != nil {
		return MergeReport{}, err
	}

	merged, report := Merge(existing, batches...)
	if report.Added == 0 {
		return report, nil
	}
	if err = WriteEntries(m.Target, merged); err != nil {
		return report, fmt.Errorf("write %s: %w", m.Target, err)
	}
	return report, nil
}
