// Package domainerrors provides coded errors that services return and the
// transport layer translates into HTTP responses.
//
// Services create errors with New or Wrap and inspect them with HasCode:
//
//	return dErrors.Wrap(err, dErrors.CodeUpstream, "registry lookup failed")
//
//	if dErrors.HasCode(err, dErrors.CodeBadRequest) { ... }
package domainerrors

import (
	"errors"
	"net/http"
)

// Code is a stable, machine-readable error identifier.
type Code string

const (
	CodeBadRequest       Code = "bad_request"
	CodeInvalidInput     Code = "invalid_input"
	CodeNotFound         Code = "not_found"
	CodeTimeout          Code = "timeout"
	CodeUpstream         Code = "upstream_unavailable"
	CodeValidationFailed Code = "validation_failed"
	CodeUnavailable      Code = "service_unavailable"
	CodeInternal         Code = "internal_error"
)

// Error is a coded domain error. Status optionally overrides the HTTP status
// derived from Code; it is used to surface an upstream's own status.
type Error struct {
	Code    Code
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// WithStatus returns a copy of e that reports status instead of the default
// status for its code.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is an alias of HasCode kept for call sites that read better as a check.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// HTTPStatus resolves the status for err: an explicit Status wins, then the
// code mapping, and anything uncoded is a 500.
func HTTPStatus(err error) int {
	de, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	if de.Status >= 400 && de.Status <= 599 {
		return de.Status
	}
	return ToHTTPStatus(de.Code)
}

// ToHTTPStatus maps a code to its default HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeUpstream:
		return http.StatusBadGateway
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
