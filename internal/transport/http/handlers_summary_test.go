package httptransport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"freshgo/internal/health"
	"freshgo/internal/summary"
	"freshgo/internal/transport/http/mocks"
)

//go:generate mockgen -source=handlers_summary.go -destination=mocks/status-mocks.go -package=mocks SummaryService,HealthChecker

func newStatusRouter(t *testing.T) (*mocks.MockSummaryService, *mocks.MockHealthChecker, chi.Router) {
	ctrl := gomock.NewController(t)
	sum := mocks.NewMockSummaryService(ctrl)
	hc := mocks.NewMockHealthChecker(ctrl)
	r := chi.NewRouter()
	NewStatusHandler(sum, hc).Register(r)
	return sum, hc, r
}

func getJSON(t *testing.T, r http.Handler, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestSummaryEndpoint(t *testing.T) {
	down := "IoT: connection refused"

	t.Run("partial summary is still 200", func(t *testing.T) {
		sum, _, r := newStatusRouter(t)
		sum.EXPECT().GetSummary(gomock.Any()).Return(&summary.Summary{
			CRM: summary.Section[summary.RegistryStats]{
				Disponible: true,
				Stats:      &summary.RegistryStats{TotalClientes: 3},
			},
			IoT: summary.Section[summary.TelemetryStats]{Error: &down},
			Integracion: summary.Integration{
				Estado:               summary.StatusPartial,
				ServiciosDisponibles: []string{"CRM"},
			},
		})

		status, body := getJSON(t, r, "/resumen")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, summary.StatusPartial, body["integracion"].(map[string]any)["estado"])
		assert.Equal(t, down, body["iot"].(map[string]any)["error"])
	})

	t.Run("nothing reachable is 503 on the english alias", func(t *testing.T) {
		sum, _, r := newStatusRouter(t)
		sum.EXPECT().GetSummary(gomock.Any()).Return(&summary.Summary{
			Integracion: summary.Integration{Estado: summary.StatusUnavailable, ServiciosDisponibles: []string{}},
		})

		status, _ := getJSON(t, r, "/summary")

		assert.Equal(t, http.StatusServiceUnavailable, status)
	})
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("all up - 200", func(t *testing.T) {
		_, hc, r := newStatusRouter(t)
		hc.EXPECT().Check(gomock.Any()).Return(&health.Report{
			Status: health.StatusHealthy,
			Services: map[string]health.ServiceReport{
				"crm": {Status: "up", Data: json.RawMessage(`{"status":"ok"}`)},
				"iot": {Status: "up", Data: json.RawMessage(`null`)},
			},
		})

		status, body := getJSON(t, r, "/health")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, health.StatusHealthy, body["status"])
	})

	t.Run("one down - 503", func(t *testing.T) {
		_, hc, r := newStatusRouter(t)
		hc.EXPECT().Check(gomock.Any()).Return(&health.Report{
			Status: health.StatusDegraded,
			Services: map[string]health.ServiceReport{
				"crm": {Status: "up", Data: json.RawMessage(`null`)},
				"iot": {Status: "down", Data: json.RawMessage(`null`)},
			},
		})

		status, body := getJSON(t, r, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "down", body["services"].(map[string]any)["iot"].(map[string]any)["status"])
	})
}
