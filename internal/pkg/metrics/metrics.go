package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for catalog requests.
const (
	OutcomeOK     = "ok"
	OutcomeError  = "error"
	OutcomeStatus = "bad_status"
	OutcomeDecode = "decode_error"
)

// Metrics holds the Prometheus collectors. A nil *Metrics is a no-op.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	catalogTotal    *prometheus.CounterVec
	catalogDuration prometheus.Observer
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	openSeats       prometheus.Gauge
	alertLines      prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	catalogTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_requests_total",
		Help: "Catalog search requests by outcome",
	}, []string{"outcome"})

	catalogDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_request_duration_seconds",
		Help:    "Latency of catalog search requests",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	openSeats := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "watched_sections_open",
		Help: "Whitelisted sections with an open seat at the last check",
	})

	alertLines := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "alert_check_lines",
		Help: "Status lines produced by the last alert check",
	})

	registry.MustRegister(requestDuration, requestTotal, catalogTotal, catalogDuration, cacheHits, cacheMisses, openSeats, alertLines)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		catalogTotal:    catalogTotal,
		catalogDuration: catalogDuration,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		openSeats:       openSeats,
		alertLines:      alertLines,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

func (m *Metrics) ObserveCatalogRequest(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.catalogTotal.WithLabelValues(outcome).Inc()
	m.catalogDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordCacheOperation(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
		return
	}
	m.cacheMisses.Inc()
}

// SetAlertSnapshot records the outcome of the most recent alert check.
func (m *Metrics) SetAlertSnapshot(lines, open int) {
	if m == nil {
		return
	}
	m.alertLines.Set(float64(lines))
	m.openSeats.Set(float64(open))
}
