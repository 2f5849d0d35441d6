// Package httputil holds the JSON response writers shared by all handlers.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "freshgo/pkg/domain-errors"
)

// ErrorResponse is the JSON error envelope. Service names the upstream that
// failed; ValidationErrors carries field-level schema diagnostics.
type ErrorResponse struct {
	Error            string `json:"error"`
	Description      string `json:"error_description,omitempty"`
	Service          string `json:"servicio,omitempty"`
	UpstreamCode     string `json:"code,omitempty"`
	ValidationErrors any    `json:"validationErrors,omitempty"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into a status and envelope. Descriptions of
// internal errors are never exposed.
func WriteError(w http.ResponseWriter, err error) {
	status, resp := NewErrorResponse(err)
	WriteJSON(w, status, resp)
}

// NewErrorResponse builds the status and base envelope for err so callers can
// enrich it before writing.
func NewErrorResponse(err error) (int, ErrorResponse) {
	status := dErrors.HTTPStatus(err)
	resp := ErrorResponse{Error: string(dErrors.CodeInternal)}
	if de, ok := dErrors.As(err); ok {
		resp.Error = string(de.Code)
		if de.Code != dErrors.CodeInternal && de.Code != dErrors.CodeValidationFailed {
			resp.Description = de.Message
		}
	}
	return status, resp
}
