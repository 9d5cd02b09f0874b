package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// ActiveDays returns the whole days elapsed between first and last seen.
// Invalid dates give 0 and a reversed range is clamped to 0.
func ActiveDays(first, last SeenDate) int {
	ft, ok1 := first.Time()
	lt, ok2 := last.Time()
	if !ok1 || !ok2 {
		return 0
	}
	diff := lt.Sub(ft)
	if diff < 0 {
		return 0
	}
	return int(diff / day)
}

// FormatActiveDuration renders the running time of an ad using fixed 7 day
// weeks and 30 day months: "3 days", "2 weeks", "2 months 1 week".
func FormatActiveDuration(first, last SeenDate) string {
	return FormatDays(ActiveDays(first, last))
}

// FormatDays renders a day count the way FormatActiveDuration does.
func FormatDays(days int) string {
	if days < 7 {
		return plural(days, "day")
	}
	if days < 30 {
		return plural(days/7, "week")
	}
	months := days / 30
	weeks := (days - months*30) / 7
	if weeks > 0 {
		return plural(months, "month") + " " + plural(weeks, "week")
	}
	return plural(months, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatDateDisplay renders d as "Sep 22, 2025", falling back to the raw
// text when the date did not parse.
func FormatDateDisplay(d SeenDate) string {
	t, ok := d.Time()
	if !ok {
		return d.Raw()
	}
	return t.Format("Jan 02, 2006")
}
