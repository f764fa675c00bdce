package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP layer,
// the timetable cache, and the composition engine itself.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	composeTotal    prometheus.Counter
	composeDuration prometheus.Observer
	conflictsFound  prometheus.Counter
	skippedPicks    prometheus.Counter
	unalignedBlocks prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
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

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
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

	composeTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_compose_total",
		Help: "Total timetable composition passes",
	})

	composeDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_compose_duration_seconds",
		Help:    "Duration of full composition passes",
		Buckets: prometheus.DefBuckets,
	})

	conflictsFound := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_conflict_pairs_total",
		Help: "Total conflicting block pairs detected",
	})

	skippedPicks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_skipped_picks_total",
		Help: "Total picks skipped because the catalog no longer offers them",
	})

	unalignedBlocks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_unaligned_blocks_total",
		Help: "Total blocks omitted from grid layout for starting off a slot boundary",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite,
		cacheHits, cacheMisses, composeTotal, composeDuration, conflictsFound,
		skippedPicks, unalignedBlocks, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		composeTotal:    composeTotal,
		composeDuration: composeDuration,
		conflictsFound:  conflictsFound,
		skippedPicks:    skippedPicks,
		unalignedBlocks: unalignedBlocks,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records cache hit/miss metrics.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.cacheLatency != nil {
		m.cacheLatency.Observe(duration.Seconds())
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// ObserveCacheWrite tracks the duration of cache set operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil || m.cacheWrite == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// RecordComposition tracks one full composition pass and its findings.
func (m *MetricsService) RecordComposition(duration time.Duration, conflicts, skipped int) {
	if m == nil {
		return
	}
	m.composeTotal.Inc()
	m.composeDuration.Observe(duration.Seconds())
	m.conflictsFound.Add(float64(conflicts))
	m.skippedPicks.Add(float64(skipped))
}

// RecordUnalignedBlocks tracks blocks a grid pass could not place.
func (m *MetricsService) RecordUnalignedBlocks(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.unalignedBlocks.Add(float64(count))
}
