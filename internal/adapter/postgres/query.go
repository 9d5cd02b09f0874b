package postgres

import (
	"fmt"
	"strings"
	"time"

	"adboard/internal/core/domain"
)

// listQuery is a filtered, ordered page over ad_records. Building it is
// pure so the SQL can be tested without a database.
type listQuery struct {
	where  []string
	args   []any
	order  string
	limit  int
	offset int
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery translates f into SQL. now fixes the calendar for the
// last-active buckets, the same way the in-memory pipeline does.
func buildListQuery(f domain.Filter, page, limit int, now time.Time) listQuery {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	q := listQuery{limit: limit, offset: (page - 1) * limit}

	if domain.Active(f.Format) {
		q.add("format = $%d", f.Format)
	}
	if domain.Active(f.Company) {
		q.add("advertiser_name = $%d", f.Company)
	}
	if domain.Active(f.Platform) {
		q.add("source_platform = $%d", f.Platform)
	}
	if domain.Active(f.Region) {
		q.add("region = $%d", f.Region)
	}
	if f.Search != "" {
		q.add(`advertiser_name ILIKE '%%' || $%d || '%%'`, likeEscaper.Replace(f.Search))
	}

	switch la := f.LastActive; {
	case la == domain.LastActiveToday:
		q.add("last_seen = $%d::date", civil(now))
	case la.WindowDays() > 0:
		q.add("last_seen >= $%d::date", earliestDay(now, la.WindowDays()))
	}

	// active_days is computed from the full instants on insert
	const days = "active_days"
	switch f.RunningSince {
	case domain.RunningLessThan7:
		q.where = append(q.where, days+" < 7")
	case domain.Running7To29:
		q.where = append(q.where, days+" BETWEEN 7 AND 29")
	case domain.RunningAtLeast30:
		q.where = append(q.where, days+" >= 30")
	case domain.RunningAtLeast90:
		q.where = append(q.where, days+" >= 90")
	case domain.RunningAtLeast365:
		q.where = append(q.where, days+" >= 365")
	}

	if f.Descending() {
		q.order = "last_seen_at DESC NULLS LAST, seq ASC"
	} else {
		q.order = "last_seen_at ASC NULLS FIRST, seq ASC"
	}
	return q
}

func (q *listQuery) add(cond string, arg any) {
	q.args = append(q.args, arg)
	q.where = append(q.where, fmt.Sprintf(cond, len(q.args)))
}

func (q listQuery) whereClause() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

func (q listQuery) selectSQL() (string, []any) {
	n := len(q.args)
	sql := fmt.Sprintf("SELECT payload FROM ad_records%s ORDER BY %s LIMIT $%d OFFSET $%d",
		q.whereClause(), q.order, n+1, n+2)
	args := append(append(make([]any, 0, n+2), q.args...), q.limit, q.offset)
	return sql, args
}

func (q listQuery) countSQL() (string, []any) {
	return "SELECT count(*) FROM ad_records" + q.whereClause(), q.args
}

func civil(t time.Time) string {
	return t.Format(time.DateOnly)
}

// earliestDay is the first calendar day whose midnight, in now's location,
// is not before now minus the window.
func earliestDay(now time.Time, windowDays int) string {
	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)
	y, m, d := cutoff.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if day.Before(cutoff) {
		day = day.AddDate(0, 0, 1)
	}
	return civil(day)
}
