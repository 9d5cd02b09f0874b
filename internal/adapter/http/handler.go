package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adboard/internal/core/port"
	"adboard/internal/observability"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a use case to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc     port.AdUseCase
	logger  *slog.Logger
	metrics observability.MetricsRegistry
	router  chi.Router

	corsOrigins    []string
	metricsHandler http.Handler
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics records request metrics to m and exposes h at /metrics.
func WithMetrics(m observability.MetricsRegistry, h http.Handler) Option {
	return func(hd *Handler) {
		hd.metrics = m
		hd.metricsHandler = h
	}
}

// WithCORSOrigins allows browser calls from the given origins.
func WithCORSOrigins(origins []string) Option {
	return func(h *Handler) { h.corsOrigins = origins }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AdUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger, metrics: observability.NewNoOpRegistry()}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(h.instrument)

	r.Get("/healthz", h.handleHealth)
	if h.metricsHandler != nil {
		r.Handle("/metrics", h.metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/frontend/ads", h.handleListAds)
		r.Get("/frontend/ads/{id}", h.handleGetAd)
		r.Get("/frontend/stats", h.handleStats)
		r.Get("/frontend/companies", h.handleCompanies)
		r.Post("/admin/reload", h.handleReload)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log(r).Error("encode response error", slog.Any("error", err))
	}
}
