package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adboard/internal/adapter/remote"
	"adboard/internal/adapter/usecase"
	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// handleListAds returns one page of ads. It accepts `page`, `limit`,
// `advertiser_name` (exact company), `q` (advertiser search), `format_type`,
// `platform`, `region`, `last_active`, `running_since` and `order` query
// parameters. Non-numeric paging and unknown filter values result in HTTP
// 400. Upstream failures produce HTTP 502, anything else HTTP 500.
func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.svc.ListAds(r.Context(), q)
	if err != nil {
		h.writeError(w, r, "list ads error", err)
		return
	}
	h.writeJSON(w, r, page)
}

func parseListQuery(v url.Values) (port.ListQuery, error) {
	var q port.ListQuery
	var err error
	if q.Page, err = intParam(v, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = intParam(v, "limit"); err != nil {
		return q, err
	}
	q.Filter = domain.Filter{
		Format:       v.Get("format_type"),
		Company:      v.Get("advertiser_name"),
		Platform:     v.Get("platform"),
		Region:       v.Get("region"),
		Search:       v.Get("q"),
		LastActive:   domain.LastActive(v.Get("last_active")),
		RunningSince: domain.RunningSince(v.Get("running_since")),
		Order:        domain.SortOrder(v.Get("order")),
	}
	return q, nil
}

func intParam(v url.Values, key string) (int, error) {
	s := v.Get(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid '" + key + "' parameter")
	}
	return n, nil
}

// handleGetAd returns a single ad by creative id, or HTTP 404.
func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ad, err := h.svc.GetAd(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get ad error", err)
		return
	}
	if ad == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, r, ad)
}

// handleCompanies returns the sorted advertiser names for the company
// selector.
func (h *Handler) handleCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.ListCompanies(r.Context())
	if err != nil {
		h.writeError(w, r, "list companies error", err)
		return
	}
	h.writeJSON(w, r, companies)
}

// handleReload rebuilds the served data. Sources that cannot reload answer
// HTTP 501.
func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reload(r.Context()); err != nil {
		h.writeError(w, r, "reload error", err)
		return
	}
	h.log(r).Info("data reloaded")
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps use case errors to status codes. Only unexpected errors
// are logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var ferr *remote.FetchError
	switch {
	case errors.Is(err, usecase.ErrInvalidQuery):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrUnsupported):
		http.Error(w, "not supported by the configured source", http.StatusNotImplemented)
	case errors.As(err, &ferr):
		h.log(r).Warn(msg, slog.Any("error", err))
		http.Error(w, "upstream error", http.StatusBadGateway)
	default:
		h.log(r).Error(msg, slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
