package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"freshgo/internal/upstream"
	"freshgo/internal/upstream/telemetry"
	"freshgo/pkg/platform/httputil"
	"freshgo/pkg/requestcontext"
)

// ChainStatusReader reads the live cold-chain status of a vehicle.
type ChainStatusReader interface {
	VehicleChainStatus(ctx context.Context, vehicleID string) (upstream.Entity[telemetry.ChainStatusRecord], error)
}

// VehicleHandler proxies per-vehicle telemetry views.
type VehicleHandler struct {
	telemetry ChainStatusReader
	logger    *slog.Logger
}

func NewVehicleHandler(telemetry ChainStatusReader, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{telemetry: telemetry, logger: logger}
}

func (h *VehicleHandler) Register(r chi.Router) {
	r.Get("/vehiculos/{vehicleID}/estado-cadena", h.handleChainStatus)
	r.Get("/vehicles/{vehicleID}/chain-status", h.handleChainStatus)
}

func (h *VehicleHandler) handleChainStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vehicleID := chi.URLParam(r, "vehicleID")

	res, err := h.telemetry.VehicleChainStatus(ctx, vehicleID)
	if err != nil {
		h.logger.WarnContext(ctx, "chain status lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"vehicle_id", vehicleID,
			"error", err,
		)
		writeError(w, upstream.ToDomainError(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res.Data)
}
