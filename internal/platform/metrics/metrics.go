package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide Prometheus collectors for HTTP traffic and
// upstream calls. All methods are safe on a nil receiver.
type Metrics struct {
	HTTPLatency      *prometheus.HistogramVec
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	CacheLookups     *prometheus.CounterVec
}

// New creates and registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freshgo_http_request_duration_seconds",
			Help:    "Duration of inbound HTTP requests by route, method and status",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status"}),

		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freshgo_upstream_requests_total",
			Help: "Upstream calls by service, operation and outcome",
		}, []string{"service", "op", "outcome"}), // outcome: "ok", "error", "cache"

		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freshgo_upstream_request_duration_seconds",
			Help:    "Duration of upstream network calls by service and operation",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"service", "op"}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freshgo_cache_lookups_total",
			Help: "Response cache lookups by namespace and result",
		}, []string{"namespace", "result"}), // result: "hit", "miss"
	}
}

// ObserveHTTP records one inbound request.
func (m *Metrics) ObserveHTTP(route, method, status string, d time.Duration) {
	if m != nil {
		m.HTTPLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

// ObserveUpstream records a network call to an upstream.
func (m *Metrics) ObserveUpstream(service, op string, ok bool, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.UpstreamRequests.WithLabelValues(service, op, outcome).Inc()
	m.UpstreamLatency.WithLabelValues(service, op).Observe(d.Seconds())
}

// IncrementCacheLookup records a cache hit or miss for a namespace.
func (m *Metrics) IncrementCacheLookup(namespace string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(namespace, result).Inc()
}

// WatchCache exposes the live cache key count as a gauge read on scrape.
func WatchCache(reg prometheus.Registerer, keys func() int) {
	promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Name: "freshgo_cache_keys",
		Help: "Live entries in the shared response cache",
	}, func() float64 { return float64(keys()) })
}
