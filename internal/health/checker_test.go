package health

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshgo/internal/upstream"
	"freshgo/pkg/testutil"
)

func newTarget(t *testing.T, name string) (Target, *testutil.Upstream) {
	t.Helper()
	srv := testutil.NewUpstream(t)
	client := upstream.New(upstream.Config{Service: name, Namespace: name, BaseURL: srv.URL, HealthTimeout: 200 * time.Millisecond}, nil)
	return Target{Name: name, URL: srv.URL, Prober: client}, srv
}

func TestCheck(t *testing.T) {
	t.Run("all up is healthy", func(t *testing.T) {
		crm, crmSrv := newTarget(t, "crm")
		iot, iotSrv := newTarget(t, "iot")
		crmSrv.JSON("/health", http.StatusOK, map[string]string{"status": "ok", "database": "connected"})
		iotSrv.JSON("/health", http.StatusOK, map[string]string{"status": "healthy"})

		report := NewChecker(nil, crm, iot).Check(context.Background())
		assert.Equal(t, StatusHealthy, report.Status)
		assert.Equal(t, http.StatusOK, report.HTTPStatus())
		require.Contains(t, report.Services, "crm")
		assert.Equal(t, "up", report.Services["crm"].Status)
		assert.Nil(t, report.Services["crm"].Error)
		assert.JSONEq(t, `{"status":"ok","database":"connected"}`, string(report.Services["crm"].Data))
		assert.Equal(t, crmSrv.URL, report.Services["crm"].URL)
	})

	t.Run("one down is degraded", func(t *testing.T) {
		crm, crmSrv := newTarget(t, "crm")
		iot, iotSrv := newTarget(t, "iot")
		crmSrv.JSON("/health", http.StatusOK, map[string]string{"status": "ok"})
		iotSrv.JSON("/health", http.StatusOK, map[string]string{"status": "unhealthy", "database": "disconnected"})

		report := NewChecker(nil, crm, iot).Check(context.Background())
		assert.Equal(t, StatusDegraded, report.Status)
		assert.Equal(t, http.StatusServiceUnavailable, report.HTTPStatus())
		assert.Equal(t, "down", report.Services["iot"].Status)
		require.NotNil(t, report.Services["iot"].Error)
	})

	t.Run("slow probe times out", func(t *testing.T) {
		crm, crmSrv := newTarget(t, "crm")
		crmSrv.Handle("/health", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})

		report := NewChecker(nil, crm).Check(context.Background())
		assert.Equal(t, StatusDegraded, report.Status)
		require.NotNil(t, report.Services["crm"].Error)
		assert.Contains(t, *report.Services["crm"].Error, "200ms")
		assert.JSONEq(t, "null", string(report.Services["crm"].Data))
	})
}
