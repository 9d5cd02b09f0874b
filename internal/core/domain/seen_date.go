package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// seenDateLayouts are tried in order when parsing a first/last seen date.
// The scrapers emit US locale dates ("9/22/2025"); the rest cover ISO
// variants and already-formatted display dates.
var seenDateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"Jan 02, 2006",
}

// SeenDate is a first/last seen date as it arrived in the data file. The raw
// string is always kept; the parsed instant is only available when the raw
// value matched a known layout. Dates without a zone are read as UTC.
type SeenDate struct {
	raw   string
	t     time.Time
	valid bool
}

// ParseSeenDate never fails: unparseable input yields an invalid SeenDate
// that still remembers its raw text.
func ParseSeenDate(raw string) SeenDate {
	d := SeenDate{raw: raw}
	s := strings.TrimSpace(raw)
	if s == "" {
		return d
	}
	for _, layout := range seenDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.t, d.valid = t, true
			return d
		}
	}
	return d
}

// DateOf builds a valid SeenDate for t, rendered the way the scrapers do.
func DateOf(t time.Time) SeenDate {
	t = t.UTC()
	return SeenDate{raw: t.Format("1/2/2006"), t: t, valid: true}
}

// Raw returns the original text.
func (d SeenDate) Raw() string { return d.raw }

// String implements fmt.Stringer.
func (d SeenDate) String() string { return d.raw }

// Present reports whether any text was supplied.
func (d SeenDate) Present() bool { return d.raw != "" }

// Valid reports whether the raw text parsed.
func (d SeenDate) Valid() bool { return d.valid }

// Time returns the parsed instant and whether it is valid.
func (d SeenDate) Time() (time.Time, bool) { return d.t, d.valid }

// Civil returns the calendar date (year, month, day) of a valid date.
func (d SeenDate) Civil() (int, time.Month, int) { return d.t.Date() }

// SortKey is the instant used for ordering. Invalid dates sort as the
// earliest possible instant.
func (d SeenDate) SortKey() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return d.t
}

func (d SeenDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

func (d *SeenDate) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		// numbers and other shapes are kept verbatim as an invalid date
		*d = SeenDate{raw: string(b)}
		return nil
	}
	if s == nil {
		*d = SeenDate{}
		return nil
	}
	*d = ParseSeenDate(*s)
	return nil
}
