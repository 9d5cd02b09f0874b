package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// AdRepository implements port.AdSource over the ad_records table using
// pgxpool. Records are stored whole in payload; the other columns exist for
// filtering and ordering.
type AdRepository struct {
	pool *pgxpool.Pool
	loc  *time.Location
	now  func() time.Time
}

var _ port.AdSource = (*AdRepository)(nil)

// NewAdRepository returns a new repository instance. loc decides what
// "today" means for the last-active filter.
func NewAdRepository(pool *pgxpool.Pool, loc *time.Location) *AdRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &AdRepository{pool: pool, loc: loc, now: time.Now}
}

// ListAds returns one page of matching records and the total match count.
func (r *AdRepository) ListAds(ctx context.Context, q port.ListQuery) (*port.AdPage, error) {
	lq := buildListQuery(q.Filter, q.Page, q.Limit, r.now().In(r.loc))

	countSQL, countArgs := lq.countSQL()
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count ads: %w", err)
	}

	selectSQL, args := lq.selectSQL()
	rows, err := r.pool.Query(ctx, selectSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdRecord, error) {
		var payload []byte
		if err := row.Scan(&payload); err != nil {
			return domain.AdRecord{}, err
		}
		var rec domain.AdRecord
		err := json.Unmarshal(payload, &rec)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan ads: %w", err)
	}

	p := domain.NewPagination(lq.offset/lq.limit+1, lq.limit, total)
	return &port.AdPage{Items: items, Pagination: p, HasMore: p.HasMore()}, nil
}

// GetAd returns a record by creative id.
func (r *AdRepository) GetAd(ctx context.Context, creativeID string) (*domain.AdRecord, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM ad_records WHERE creative_id = $1`, creativeID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec domain.AdRecord
	if err = json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decode ad %s: %w", creativeID, err)
	}
	return &rec, nil
}

// GetStats returns aggregated counts over all stored records.
func (r *AdRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	var s domain.Stats
	err := r.pool.QueryRow(ctx, `
        SELECT
            count(*),
            count(DISTINCT advertiser_name),
            count(*) FILTER (WHERE format = 'Image'),
            count(*) FILTER (WHERE format = 'Video')
        FROM ad_records`).Scan(&s.TotalAds, &s.UniqueCompanies, &s.ImageAds, &s.VideoAds)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListCompanies returns the distinct advertisers in byte order, matching
// the in-memory sources.
func (r *AdRepository) ListCompanies(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT advertiser_name FROM ad_records ORDER BY advertiser_name COLLATE "C"`)
	if err != nil {
		return nil, err
	}
	companies, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []string{}
	}
	return companies, nil
}

const insertAdSQL = `
INSERT INTO ad_records
    (creative_id, advertiser_name, format, region, source_platform,
     first_seen, last_seen, last_seen_at, active_days, payload)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (creative_id) DO NOTHING`

// InsertAds stores display-eligible records that carry a creative id.
// Records whose id is already stored are left untouched. It returns the
// number of rows inserted.
func (r *AdRepository) InsertAds(ctx context.Context, records []domain.AdRecord) (int, error) {
	batch := &pgx.Batch{}
	for i := range records {
		rec := &records[i]
		if !rec.Eligible() || rec.CreativeID() == "" {
			continue
		}
		payload, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("encode ad %s: %w", rec.CreativeID(), err)
		}
		batch.Queue(insertAdSQL, insertArgs(rec, payload)...)
	}
	if batch.Len() == 0 {
		return 0, nil
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for range batch.Len() {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert ads: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// insertArgs are the column values of rec for insertAdSQL. The running
// time is the domain's day count, so a bucket matches here exactly when it
// matches in memory.
func insertArgs(rec *domain.AdRecord, payload []byte) []any {
	return []any{
		rec.CreativeID(),
		rec.AdvertiserName,
		string(rec.Format),
		rec.Region,
		string(rec.SourcePlatform()),
		dateArg(rec.FirstSeenDate),
		dateArg(rec.LastSeenDate),
		instantArg(rec.LastSeenDate),
		rec.ActiveDays(),
		payload,
	}
}

// instantArg keeps the time of day for ordering; NULL when unparseable.
func instantArg(d domain.SeenDate) any {
	t, ok := d.Time()
	if !ok {
		return nil
	}
	return t
}

// dateArg stores unparseable dates as NULL.
func dateArg(d domain.SeenDate) any {
	t, ok := d.Time()
	if !ok {
		return nil
	}
	return civil(t)
}
