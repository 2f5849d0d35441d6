package httptransport

import (
	"net/http"

	"freshgo/internal/detail"
	"freshgo/internal/upstream"
	"freshgo/pkg/platform/httputil"
)

// writeError extends the shared envelope with the failing upstream and any
// schema diagnostics found in err's chain.
func writeError(w http.ResponseWriter, err error) {
	status, resp := httputil.NewErrorResponse(err)
	if ue, ok := upstream.AsError(err); ok {
		resp.Service = ue.Service
		resp.UpstreamCode = string(ue.Code)
	}
	if sv, ok := detail.AsSchemaViolation(err); ok {
		resp.ValidationErrors = sv.Errors
	}
	httputil.WriteJSON(w, status, resp)
}
