package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// SourcePlatform names the transparency system a record was scraped from.
type SourcePlatform string

const (
	PlatformMeta   SourcePlatform = "Meta Ad Library"
	PlatformGoogle SourcePlatform = "Google Ad Transparency"
)

// Valid reports whether p is a known platform.
func (p SourcePlatform) Valid() bool {
	return p == PlatformMeta || p == PlatformGoogle
}

// metaAdvertiserMarker identifies advertisers that were only ever scraped
// from the Meta Ad Library.
const metaAdvertiserMarker = "hungama"

// ClassifyAdvertiser guesses the source platform of a record that predates
// source tagging. Only Hungama was imported from Meta; everything else came
// from the Google Ad Transparency Center.
func ClassifyAdvertiser(name string) SourcePlatform {
	if ContainsFold(name, metaAdvertiserMarker) {
		return PlatformMeta
	}
	return PlatformGoogle
}

// ContainsFold reports whether substr is within s under Unicode case folding.
func ContainsFold(s, substr string) bool {
	// a Caser is stateful, so one is built per call
	return strings.Contains(cases.Fold().String(s), cases.Fold().String(substr))
}
