package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetail() map[string]any {
	return map[string]any{
		"cliente": map[string]any{"id": "C1", "nombre": "Supermercados Norte"},
		"pedidos": []any{
			map[string]any{"id": "P1", "clienteId": "C1", "proveedorId": "PR1", "estado": "pendiente",
				"productos": []any{map[string]any{"id": "X1", "nombre": "Helado", "cantidad": 2}}},
		},
		"vehiculos": []any{
			map[string]any{"vehiculoId": "V1", "matricula": "1234ABC", "capacidadKg": 3500, "gps": nil,
				"sensores": []any{map[string]any{"sensorId": "S1", "tipoAlimento": "frozen", "rangoMin": -25, "rangoMax": -18,
					"lecturas": []any{map[string]any{"timestamp": "2025-01-01T10:00:00", "temperatura": -20.5, "alertaActiva": false, "cadenRota": false}}}}},
		},
		"metadata": map[string]any{"timestamp": "2025-01-01T10:00:00Z", "totalPedidos": 1, "totalVehiculos": 1,
			"totalSensores": 1, "totalLecturas": 1, "pagina": 1, "tamanoPagina": 50},
	}
}

func findKeyword(errs []FieldError, keyword string) (FieldError, bool) {
	for _, e := range errs {
		if e.Keyword == keyword {
			return e, true
		}
	}
	return FieldError{}, false
}

func TestValidateClientDetail(t *testing.T) {
	v := New(nil)

	t.Run("valid document", func(t *testing.T) {
		res := v.Validate(validDetail(), ClientDetail)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("missing required field", func(t *testing.T) {
		doc := validDetail()
		delete(doc, "metadata")
		res := v.Validate(doc, ClientDetail)
		require.False(t, res.Valid)
		fe, ok := findKeyword(res.Errors, "required")
		require.True(t, ok)
		assert.Equal(t, "Missing required field: metadata", fe.Message)
		assert.Equal(t, "metadata", fe.Params["property"])
	})

	t.Run("wrong type", func(t *testing.T) {
		doc := validDetail()
		doc["pedidos"] = "nope"
		res := v.Validate(doc, ClientDetail)
		fe, ok := findKeyword(res.Errors, "type")
		require.True(t, ok)
		assert.Equal(t, "pedidos", fe.Field)
		assert.Contains(t, fe.Message, "should be array")
	})

	t.Run("enum violation lists allowed values", func(t *testing.T) {
		doc := validDetail()
		sensor := doc["vehiculos"].([]any)[0].(map[string]any)["sensores"].([]any)[0].(map[string]any)
		sensor["tipoAlimento"] = "congelado"
		res := v.Validate(doc, ClientDetail)
		fe, ok := findKeyword(res.Errors, "enum")
		require.True(t, ok)
		assert.Equal(t, "vehiculos.0.sensores.0.tipoAlimento", fe.Field)
		assert.Contains(t, fe.Message, "delicate, frozen, refrigerated")
	})

	t.Run("range violation", func(t *testing.T) {
		doc := validDetail()
		doc["metadata"].(map[string]any)["tamanoPagina"] = 500
		res := v.Validate(doc, ClientDetail)
		fe, ok := findKeyword(res.Errors, "maximum")
		require.True(t, ok)
		assert.Equal(t, "metadata.tamanoPagina", fe.Field)
		assert.Contains(t, fe.Message, "<= 100")
	})

	t.Run("format violation", func(t *testing.T) {
		doc := validDetail()
		doc["metadata"].(map[string]any)["timestamp"] = "ayer"
		res := v.Validate(doc, ClientDetail)
		_, ok := findKeyword(res.Errors, "format")
		assert.True(t, ok)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		doc := validDetail()
		before, err := json.Marshal(doc)
		require.NoError(t, err)
		_ = v.Validate(doc, ClientDetail)
		after, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.JSONEq(t, string(before), string(after))
	})

	t.Run("validates structs through their JSON form", func(t *testing.T) {
		type cliente struct {
			ID     string `json:"id"`
			Nombre string `json:"nombre"`
		}
		doc := validDetail()
		doc["cliente"] = cliente{ID: "C1", Nombre: ""}
		res := v.Validate(doc, ClientDetail)
		fe, ok := findKeyword(res.Errors, "minLength")
		require.True(t, ok)
		assert.Equal(t, "cliente.nombre", fe.Field)
	})
}

func TestValidateInternalFailures(t *testing.T) {
	v := NewFromSources(map[string][]byte{
		"broken": []byte(`{"type": 12}`),
		"ok":     []byte(`{"type": "object"}`),
	}, nil)

	t.Run("unknown ref", func(t *testing.T) {
		res := v.Validate(map[string]any{}, "missing")
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "internal", res.Errors[0].Keyword)
	})

	t.Run("malformed schema", func(t *testing.T) {
		res := v.Validate(map[string]any{}, "broken")
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "internal", res.Errors[0].Keyword)
	})

	t.Run("unmarshalable document", func(t *testing.T) {
		res := v.Validate(map[string]any{"c": make(chan int)}, "ok")
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "internal", res.Errors[0].Keyword)
	})
}
