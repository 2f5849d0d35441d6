// Package httptransport exposes the unified detail API over HTTP.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"freshgo/internal/platform/metrics"
	"freshgo/internal/platform/middleware"
	"freshgo/pkg/platform/httputil"
	"freshgo/pkg/requestcontext"
)

// Registrar mounts its routes on r.
type Registrar interface {
	Register(r chi.Router)
}

// RouterConfig carries the shared pieces every route needs.
type RouterConfig struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // nil disables /metrics
}

// NewRouter wires the middleware chain and every handler.
func NewRouter(cfg RouterConfig, handlers ...Registrar) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(cfg.Metrics))

	for _, h := range handlers {
		h.Register(r)
	}
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		logger.WarnContext(req.Context(), "route not found",
			"request_id", requestcontext.RequestID(req.Context()),
			"method", req.Method,
			"path", req.URL.Path,
		)
		httputil.WriteJSON(w, http.StatusNotFound, notFoundResponse{
			Error:     "Endpoint no encontrado",
			URL:       req.URL.RequestURI(),
			Method:    req.Method,
			Endpoints: endpoints,
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, notFoundResponse{
			Error:     "Método no permitido",
			URL:       req.URL.RequestURI(),
			Method:    req.Method,
			Endpoints: endpoints,
		})
	})
	return r
}

var endpoints = []string{
	"GET /health",
	"GET /cache/stats",
	"DELETE /cache",
	"GET /clientes/detalle/{clienteId}",
	"GET /resumen",
	"GET /vehiculos/{vehiculoId}/estado-cadena",
	"GET /metrics",
}

type notFoundResponse struct {
	Error     string   `json:"error"`
	URL       string   `json:"url"`
	Method    string   `json:"metodo"`
	Endpoints []string `json:"endpoints_disponibles"`
}
