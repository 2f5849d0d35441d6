package detail

import (
	"errors"
	"fmt"

	"freshgo/internal/schema"
	"freshgo/internal/upstream"
	dErrors "freshgo/pkg/domain-errors"
)

// SchemaViolation is returned when the assembled document does not satisfy
// the client detail schema.
type SchemaViolation struct {
	Errors []schema.FieldError
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("client detail failed schema validation with %d error(s)", len(e.Errors))
}

// AsSchemaViolation extracts a *SchemaViolation from err's chain.
func AsSchemaViolation(err error) (*SchemaViolation, bool) {
	var sv *SchemaViolation
	if errors.As(err, &sv) {
		return sv, true
	}
	return nil, false
}

// upstreamUnavailable wraps a fatal upstream failure.
func upstreamUnavailable(err error) error {
	return upstream.ToDomainError(err)
}

func schemaViolation(errs []schema.FieldError) error {
	return dErrors.Wrap(&SchemaViolation{Errors: errs}, dErrors.CodeValidationFailed,
		"assembled client detail failed schema validation")
}
