// Package remote reads ad listings from an upstream backend that serves the
// dashboard's paged API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"adboard/internal/core/domain"
	"adboard/internal/core/pipeline"
	"adboard/internal/core/port"
)

// RequestIDHeader carries the per-request id to the upstream.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is kept in FetchError.
const maxErrorBody = 4 << 10

// FetchError is returned when the upstream answers with a non-2xx status.
// The caller may retry.
type FetchError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s: upstream returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Client implements port.AdSource against the upstream API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

var _ port.AdSource = (*Client)(nil)

// NewClient returns a client for baseURL, e.g. http://localhost:8000/api/v1.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// doRequest sends a GET and returns the body of a 2xx response. A 404 is
// reported as a nil body with a nil error.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")

	log := c.logger.With(slog.String("url", u), slog.String("request_id", reqID))
	log.Debug("sending upstream request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("upstream request error", slog.Any("error", err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		ferr := &FetchError{Method: req.Method, URL: u, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		log.Error("upstream error response", slog.Int("status_code", resp.StatusCode))
		return nil, ferr
	}
	return io.ReadAll(resp.Body)
}

// listResponse is the paged envelope. Older backends answer with a bare
// array instead.
type listResponse struct {
	Items      []domain.AdRecord  `json:"items"`
	Pagination *domain.Pagination `json:"pagination"`
}

// ListAds fetches one page. Dimensions the upstream may not understand are
// applied again to the page locally, together with the sort order.
func (c *Client) ListAds(ctx context.Context, q port.ListQuery) (*port.AdPage, error) {
	body, err := c.doRequest(ctx, "/frontend/ads", listParams(q))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, &FetchError{Method: http.MethodGet, URL: c.baseURL + "/frontend/ads", StatusCode: http.StatusNotFound}
	}

	items, p, err := decodeList(body, q)
	if err != nil {
		return nil, err
	}
	items = pipeline.Sort(pipeline.Filter(pipeline.Eligible(items), q.Filter, c.now()), q.Filter.Order)
	return &port.AdPage{Items: items, Pagination: p, HasMore: p.HasMore()}, nil
}

func decodeList(body []byte, q port.ListQuery) ([]domain.AdRecord, domain.Pagination, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []domain.AdRecord
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, domain.Pagination{}, fmt.Errorf("decode ads: %w", err)
		}
		return items, legacyPagination(q, len(items)), nil
	}

	var resp listResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("decode ads: %w", err)
	}
	if resp.Pagination == nil {
		return resp.Items, legacyPagination(q, len(resp.Items)), nil
	}
	return resp.Items, *resp.Pagination, nil
}

// legacyPagination guesses the shape of a response without pagination: a
// full page means there may be another one.
func legacyPagination(q port.ListQuery, n int) domain.Pagination {
	page := max(q.Page, 1)
	total := (page-1)*q.Limit + n
	p := domain.NewPagination(page, q.Limit, total)
	if q.Limit > 0 && n == q.Limit {
		p.TotalPages = page + 1
	}
	return p
}

func listParams(q port.ListQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(max(q.Page, 1)))
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	f := q.Filter
	switch {
	case domain.Active(f.Company):
		v.Set("advertiser_name", f.Company)
	case f.Search != "":
		v.Set("advertiser_name", f.Search)
	}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	setActive(v, "format_type", f.Format)
	setActive(v, "platform", f.Platform)
	setActive(v, "region", f.Region)
	setActive(v, "last_active", string(f.LastActive))
	setActive(v, "running_since", string(f.RunningSince))
	if f.Order != "" {
		v.Set("order", string(f.Order))
	}
	return v
}

func setActive(v url.Values, key, value string) {
	if domain.Active(value) {
		v.Set(key, value)
	}
}

// GetAd returns nil when the upstream answers 404.
func (c *Client) GetAd(ctx context.Context, creativeID string) (*domain.AdRecord, error) {
	body, err := c.doRequest(ctx, "/frontend/ads/"+url.PathEscape(creativeID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	var rec domain.AdRecord
	if err = json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decode ad: %w", err)
	}
	return &rec, nil
}

func (c *Client) GetStats(ctx context.Context) (*domain.Stats, error) {
	body, err := c.doRequest(ctx, "/frontend/stats", nil)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, &FetchError{Method: http.MethodGet, URL: c.baseURL + "/frontend/stats", StatusCode: http.StatusNotFound}
	}
	var stats domain.Stats
	if err = json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &stats, nil
}

// ListCompanies is not part of the upstream API.
func (c *Client) ListCompanies(context.Context) ([]string, error) {
	return nil, port.ErrUnsupported
}
