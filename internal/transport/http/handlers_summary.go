package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"freshgo/internal/health"
	"freshgo/internal/summary"
	"freshgo/pkg/platform/httputil"
)

// SummaryService gathers top-line counts from both upstreams.
type SummaryService interface {
	GetSummary(ctx context.Context) *summary.Summary
}

// HealthChecker probes both upstreams.
type HealthChecker interface {
	Check(ctx context.Context) *health.Report
}

// StatusHandler serves the cross-system summary and health report.
type StatusHandler struct {
	summary SummaryService
	health  HealthChecker
}

func NewStatusHandler(summary SummaryService, health HealthChecker) *StatusHandler {
	return &StatusHandler{summary: summary, health: health}
}

func (h *StatusHandler) Register(r chi.Router) {
	r.Get("/resumen", h.handleSummary)
	r.Get("/summary", h.handleSummary)
	r.Get("/health", h.handleHealth)
}

func (h *StatusHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	res := h.summary.GetSummary(r.Context())
	httputil.WriteJSON(w, res.HTTPStatus(), res)
}

func (h *StatusHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := h.health.Check(r.Context())
	httputil.WriteJSON(w, report.HTTPStatus(), report)
}
