package upstream

import (
	"errors"
	"fmt"
	"net/http"

	dErrors "freshgo/pkg/domain-errors"
)

// ErrorCode is the normalized failure taxonomy for upstream calls.
type ErrorCode string

const (
	// ErrorTimeout indicates the upstream took longer than the call budget
	ErrorTimeout ErrorCode = "timeout"

	// ErrorCancelled indicates the caller went away before the upstream answered
	ErrorCancelled ErrorCode = "cancelled"

	// ErrorUnreachable indicates no HTTP response at all (DNS, refused, reset)
	ErrorUnreachable ErrorCode = "unreachable"

	// ErrorNotFound indicates the upstream answered 404
	ErrorNotFound ErrorCode = "not_found"

	// ErrorRejected indicates any other 4xx from the upstream
	ErrorRejected ErrorCode = "rejected"

	// ErrorOutage indicates a 5xx from the upstream
	ErrorOutage ErrorCode = "upstream_outage"

	// ErrorBadData indicates a 2xx with a body that is not the documented JSON
	ErrorBadData ErrorCode = "bad_data"

	// ErrorUnhealthy indicates a health probe answered but reported itself down
	ErrorUnhealthy ErrorCode = "unhealthy"
)

// Error is the structured failure of one upstream call. Status is the
// upstream's HTTP status, or 500 when no response was received.
type Error struct {
	Service    string
	Op         string
	Status     int
	Code       ErrorCode
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("upstream %s %s [%s %d]: %s: %v", e.Service, e.Op, e.Code, e.Status, e.Message, e.Underlying)
	}
	return fmt.Sprintf("upstream %s %s [%s %d]: %s", e.Service, e.Op, e.Code, e.Status, e.Message)
}

// Unwrap supports error unwrapping
func (e *Error) Unwrap() error {
	return e.Underlying
}

func newError(service, op string, status int, code ErrorCode, message string, underlying error) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{
		Service:    service,
		Op:         op,
		Status:     status,
		Code:       code,
		Message:    message,
		Underlying: underlying,
	}
}

// codeForStatus classifies a non-2xx response.
func codeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return ErrorNotFound
	case status >= 500:
		return ErrorOutage
	default:
		return ErrorRejected
	}
}

// AsError extracts the *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// StatusOf returns the upstream status carried by err, defaulting to 500.
func StatusOf(err error) int {
	if ue, ok := AsError(err); ok && ue.Status != 0 {
		return ue.Status
	}
	return http.StatusInternalServerError
}

// ToDomainError surfaces an upstream failure to callers with the upstream's
// own status. A 404 maps to not_found, anything else to upstream_unavailable.
// The *Error stays in the chain so handlers can tag the failing service.
func ToDomainError(err error) error {
	ue, ok := AsError(err)
	if !ok {
		return dErrors.Wrap(err, dErrors.CodeUpstream, "upstream call failed")
	}
	code := dErrors.CodeUpstream
	if ue.Code == ErrorNotFound {
		code = dErrors.CodeNotFound
	}
	return dErrors.Wrap(err, code, fmt.Sprintf("%s: %s", ue.Service, ue.Message)).WithStatus(ue.Status)
}
