package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"freshgo/internal/detail"
	dErrors "freshgo/pkg/domain-errors"
	"freshgo/pkg/platform/httputil"
	"freshgo/pkg/requestcontext"
)

// DetailService builds the unified client document.
type DetailService interface {
	GetClientDetail(ctx context.Context, clientID string, f detail.Filters) (*detail.ClientDetail, error)
}

// DetailHandler serves the per-client unified detail.
type DetailHandler struct {
	detail DetailService
	logger *slog.Logger
}

func NewDetailHandler(svc DetailService, logger *slog.Logger) *DetailHandler {
	return &DetailHandler{detail: svc, logger: logger}
}

func (h *DetailHandler) Register(r chi.Router) {
	r.Get("/clientes/detalle/{clientID}", h.handleGetDetail)
	r.Get("/clients/detail/{clientID}", h.handleGetDetail)
}

func (h *DetailHandler) handleGetDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	clientID := strings.TrimSpace(chi.URLParam(r, "clientID"))
	if clientID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "client id is required"))
		return
	}

	filters, err := detail.ParseFilters(r.URL.Query())
	if err != nil {
		h.logger.WarnContext(ctx, "invalid detail filters",
			"request_id", requestID,
			"client_id", clientID,
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	doc, err := h.detail.GetClientDetail(ctx, clientID, filters)
	if err != nil {
		// the service already logged the failure with its filters
		writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, doc)
}
