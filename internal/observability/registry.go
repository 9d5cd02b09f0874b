// Package observability records dashboard metrics. Components take a
// MetricsRegistry so tests can swap in the no-op implementation.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Reload outcomes.
const (
	ReloadOK     = "ok"
	ReloadFailed = "failed"
)

// MetricsRegistry provides an interface for recording application metrics.
type MetricsRegistry interface {
	// HTTP request metrics
	IncrementRequests(endpoint, method, status string)
	RecordRequestLatency(endpoint, method string, duration time.Duration)

	// Snapshot metrics
	SetSnapshotRecords(n int)
	IncrementReloads(result string)

	// Cache metrics
	IncrementCacheLookups(kind, result string)
}

// PrometheusRegistry implements MetricsRegistry with Prometheus collectors.
type PrometheusRegistry struct {
	requests        *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	snapshotRecords prometheus.Gauge
	reloads         *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
}

// NewPrometheusRegistry creates the collectors and registers them with reg.
// It panics if a collector is already registered, like MustRegister.
func NewPrometheusRegistry(reg prometheus.Registerer) *PrometheusRegistry {
	r := &PrometheusRegistry{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adboard_requests_total",
			Help: "Total HTTP requests",
		}, []string{"endpoint", "method", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "adboard_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
		snapshotRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "adboard_snapshot_records",
			Help: "Display-eligible records in the served snapshot",
		}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adboard_snapshot_reloads_total",
			Help: "Snapshot reloads by result",
		}, []string{"result"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adboard_cache_lookups_total",
			Help: "Cache lookups by kind and result",
		}, []string{"kind", "result"}),
	}
	reg.MustRegister(r.requests, r.requestLatency, r.snapshotRecords, r.reloads, r.cacheLookups)
	return r
}

func (r *PrometheusRegistry) IncrementRequests(endpoint, method, status string) {
	r.requests.WithLabelValues(endpoint, method, status).Inc()
}

func (r *PrometheusRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
	r.requestLatency.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

func (r *PrometheusRegistry) SetSnapshotRecords(n int) {
	r.snapshotRecords.Set(float64(n))
}

func (r *PrometheusRegistry) IncrementReloads(result string) {
	r.reloads.WithLabelValues(result).Inc()
}

func (r *PrometheusRegistry) IncrementCacheLookups(kind, result string) {
	r.cacheLookups.WithLabelValues(kind, result).Inc()
}

// NoOpRegistry implements MetricsRegistry with no-op methods for testing.
type NoOpRegistry struct{}

// NewNoOpRegistry creates a new NoOpRegistry.
func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

func (r *NoOpRegistry) IncrementRequests(endpoint, method, status string)                    {}
func (r *NoOpRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {}
func (r *NoOpRegistry) SetSnapshotRecords(n int)                                              {}
func (r *NoOpRegistry) IncrementReloads(result string)                                        {}
func (r *NoOpRegistry) IncrementCacheLookups(kind, result string)                             {}
