package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpstream("crm", "cliente", true, 10*time.Millisecond)
	m.ObserveUpstream("crm", "cliente", false, 10*time.Millisecond)
	m.ObserveUpstream("crm", "cliente", false, 10*time.Millisecond)
	m.IncrementCacheLookup("crm", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("crm", "cliente", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("crm", "cliente", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("crm", "hit")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("/health", "GET", "200", time.Millisecond)
		m.ObserveUpstream("iot", "vehiculos", true, time.Millisecond)
		m.IncrementCacheLookup("iot", false)
	})
}

func TestWatchCache(t *testing.T) {
	reg := prometheus.NewRegistry()
	keys := 3
	WatchCache(reg, func() int { return keys })

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "freshgo_cache_keys", families[0].GetName())
	assert.Equal(t, 3.0, families[0].GetMetric()[0].GetGauge().GetValue())
}
