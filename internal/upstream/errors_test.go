package upstream

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "freshgo/pkg/domain-errors"
)

func TestToDomainError(t *testing.T) {
	t.Run("404 keeps status and maps to not_found", func(t *testing.T) {
		err := ToDomainError(newError("CRM", "cliente", http.StatusNotFound, ErrorNotFound, "Cliente no encontrado", nil))

		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
		assert.Equal(t, http.StatusNotFound, dErrors.HTTPStatus(err))
		ue, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, "CRM", ue.Service)
	})

	t.Run("5xx maps to upstream_unavailable with upstream status", func(t *testing.T) {
		err := ToDomainError(newError("IoT", "vehiculos", http.StatusBadGateway, ErrorOutage, "boom", nil))

		assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstream))
		assert.Equal(t, http.StatusBadGateway, dErrors.HTTPStatus(err))
	})

	t.Run("foreign error is upstream_unavailable", func(t *testing.T) {
		err := ToDomainError(errors.New("dial tcp: refused"))

		assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstream))
		assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	})
}
