package service

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Document kinds counted by RecordDocument.
const (
	DocumentReceipt = "recu"
	DocumentPayslip = "fiche_paie"
)

// MetricsService owns a private Prometheus registry. Every method is a no-op
// on a nil receiver so callers never branch on whether metrics are enabled.
type MetricsService struct {
	handler http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	documents       *prometheus.CounterVec

	cacheLookup *prometheus.HistogramVec
	cacheWrite  prometheus.Histogram

	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64
}

// NewMetricsService registers the HTTP, storage, cache and document collectors
// next to the Go runtime and process collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	m := &MetricsService{
		handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of multi-statement storage operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"query"}),
		documents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "documents_generated_total",
			Help: "Receipts and payslips generated, by kind",
		}, []string{"kind"}),
		cacheLookup: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cache_lookup_seconds",
			Help:    "Latency of cache lookups by outcome",
			Buckets: prometheus.DefBuckets,
		}, []string{"result"}),
		cacheWrite: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cache_write_seconds",
			Help:    "Latency of cache writes",
			Buckets: prometheus.DefBuckets,
		}),
	}

	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	}, func() float64 { return float64(m.cacheHits.Load()) })
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	}, func() float64 { return float64(m.cacheMisses.Load()) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	}, m.hitRatio)

	return m
}

// Handler serves the registry, or 503 when metrics are disabled.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
}

// RecordCacheOperation counts a lookup as a hit or a miss.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
		m.cacheHits.Add(1)
	} else {
		m.cacheMisses.Add(1)
	}
	m.cacheLookup.WithLabelValues(result).Observe(duration.Seconds())
}

func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveDBQuery times one labelled storage operation.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// RecordDocument counts one generated receipt or payslip.
func (m *MetricsService) RecordDocument(kind string) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(kind).Inc()
}

func (m *MetricsService) hitRatio() float64 {
	hits := m.cacheHits.Load()
	total := hits + m.cacheMisses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
