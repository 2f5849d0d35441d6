package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for client detail aggregation.
type Metrics struct {
	// Full aggregation latency by outcome
	AggregateLatency *prometheus.HistogramVec

	// Per-item fetch failures absorbed into a degraded document
	DegradedFetches *prometheus.CounterVec

	// Size of returned documents
	DocumentVehicles prometheus.Histogram
}

// New creates the detail collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AggregateLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freshgo_detail_aggregate_duration_seconds",
			Help:    "Duration of client detail aggregation by outcome",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}), // outcome: "ok", "upstream_error", "schema_violation", "cancelled"

		DegradedFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freshgo_detail_degraded_fetches_total",
			Help: "Secondary fetch failures absorbed during aggregation by stage",
		}, []string{"stage"}), // stage: "orders", "sensors", "readings"

		DocumentVehicles: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "freshgo_detail_document_vehicles",
			Help:    "Number of vehicles in returned client detail documents",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}
}

// ObserveAggregate records one aggregation.
func (m *Metrics) ObserveAggregate(outcome string, d time.Duration) {
	if m != nil {
		m.AggregateLatency.WithLabelValues(outcome).Observe(d.Seconds())
	}
}

// IncrementDegraded records an absorbed fetch failure.
func (m *Metrics) IncrementDegraded(stage string) {
	if m != nil {
		m.DegradedFetches.WithLabelValues(stage).Inc()
	}
}

// ObserveVehicles records the vehicle count of a returned document.
func (m *Metrics) ObserveVehicles(n int) {
	if m != nil {
		m.DocumentVehicles.Observe(float64(n))
	}
}
