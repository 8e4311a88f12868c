package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusHooks implements SearchHooks, CacheHooks and HTTPHooks by
// recording Prometheus metrics under the "autgroup" namespace.
type PrometheusHooks struct {
	searches       *prometheus.CounterVec
	searchDuration prometheus.Histogram
	searchNodes    prometheus.Histogram
	inflight       prometheus.Gauge

	cacheLookups *prometheus.CounterVec
	cacheBytes   *prometheus.CounterVec

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusHooks creates the metric collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	f := promauto.With(reg)
	return &PrometheusHooks{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autgroup",
			Name:      "searches_total",
			Help:      "Automorphism group computations by outcome (ok, degraded, cached, error).",
		}, []string{"outcome"}),
		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "autgroup",
			Name:      "search_duration_seconds",
			Help:      "Wall time of automorphism group computations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		searchNodes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "autgroup",
			Name:      "search_tree_nodes",
			Help:      "Search tree nodes visited per computation.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
		inflight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "autgroup",
			Name:      "searches_inflight",
			Help:      "Computations currently running.",
		}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autgroup",
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by key type and result.",
		}, []string{"key_type", "result"}),
		cacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autgroup",
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the result cache.",
		}, []string{"key_type"}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autgroup",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "autgroup",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (h *PrometheusHooks) OnSearchStart(context.Context, int, int) {
	h.inflight.Inc()
}

func (h *PrometheusHooks) OnSearchComplete(_ context.Context, out SearchOutcome) {
	h.inflight.Dec()
	h.searches.WithLabelValues(outcomeLabel(out)).Inc()
	if out.Cached || out.Err != nil {
		return
	}
	h.searchDuration.Observe(out.Duration.Seconds())
	h.searchNodes.Observe(float64(out.Nodes))
}

func outcomeLabel(out SearchOutcome) string {
	switch {
	case out.Err != nil && !out.Degraded:
		return "error"
	case out.Degraded:
		return "degraded"
	case out.Cached:
		return "cached"
	default:
		return "ok"
	}
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheLookups.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheLookups.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	h.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	h.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
