package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidFilter is returned by Filter.Validate for unknown option values.
var ErrInvalidFilter = errors.New("invalid filter")

// All is the option value that disables a filter dimension.
const All = "all"

// LastActive buckets records by how recently they were last seen.
type LastActive string

const (
	LastActiveAll     LastActive = All
	LastActiveToday   LastActive = "today"
	LastActiveWeek    LastActive = "week"
	LastActiveMonth   LastActive = "month"
	LastActiveQuarter LastActive = "quarter"
)

// WindowDays returns the look-back window of the bucket. Today and All have
// no window.
func (l LastActive) WindowDays() int {
	switch l {
	case LastActiveWeek:
		return 7
	case LastActiveMonth:
		return 30
	case LastActiveQuarter:
		return 90
	default:
		return 0
	}
}

func (l LastActive) valid() bool {
	switch l {
	case "", LastActiveAll, LastActiveToday, LastActiveWeek, LastActiveMonth, LastActiveQuarter:
		return true
	}
	return false
}

// RunningSince buckets records by their active duration in days.
type RunningSince string

const (
	RunningSinceAll   RunningSince = All
	RunningLessThan7  RunningSince = "lt7"
	Running7To29      RunningSince = "7to29"
	RunningAtLeast30  RunningSince = "gte30"
	RunningAtLeast90  RunningSince = "gte90"
	RunningAtLeast365 RunningSince = "gte365"
)

// Contains reports whether an active duration of days falls in the bucket.
// The bounded buckets are half-open; the gte buckets are open ended.
func (r RunningSince) Contains(days int) bool {
	switch r {
	case RunningLessThan7:
		return days < 7
	case Running7To29:
		return days >= 7 && days < 30
	case RunningAtLeast30:
		return days >= 30
	case RunningAtLeast90:
		return days >= 90
	case RunningAtLeast365:
		return days >= 365
	default:
		return true
	}
}

func (r RunningSince) valid() bool {
	switch r {
	case "", RunningSinceAll, RunningLessThan7, Running7To29, RunningAtLeast30, RunningAtLeast90, RunningAtLeast365:
		return true
	}
	return false
}

// SortOrder orders records by last seen date.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter is the set of display selections applied to a record set. Empty or
// "all" values disable a dimension; dimensions combine with logical AND.
type Filter struct {
	Format       string
	Company      string
	Platform     string
	Region       string
	Search       string
	LastActive   LastActive
	RunningSince RunningSince
	Order        SortOrder
}

// Active reports whether the option value v restricts anything.
func Active(v string) bool {
	return v != "" && v != All
}

// Descending reports whether the filter sorts most recent first. Descending
// is the default.
func (f Filter) Descending() bool {
	return f.Order != SortAsc
}

// Validate checks the enumerated dimensions.
func (f Filter) Validate() error {
	if Active(f.Format) && !Format(f.Format).Valid() {
		return fmt.Errorf("%w: format %q", ErrInvalidFilter, f.Format)
	}
	if Active(f.Platform) && !SourcePlatform(f.Platform).Valid() {
		return fmt.Errorf("%w: platform %q", ErrInvalidFilter, f.Platform)
	}
	if !f.LastActive.valid() {
		return fmt.Errorf("%w: last active %q", ErrInvalidFilter, f.LastActive)
	}
	if !f.RunningSince.valid() {
		return fmt.Errorf("%w: running since %q", ErrInvalidFilter, f.RunningSince)
	}
	if f.Order != "" && f.Order != SortAsc && f.Order != SortDesc {
		return fmt.Errorf("%w: order %q", ErrInvalidFilter, f.Order)
	}
	return nil
}
