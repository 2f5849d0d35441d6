package detail

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshgo/internal/upstream"
	"freshgo/internal/upstream/registry"
	"freshgo/internal/upstream/telemetry"
)

func TestClassifyFoodType(t *testing.T) {
	cases := map[string]FoodType{
		"frozen":               FoodFrozen,
		"Congelado":            FoodFrozen,
		"productos CONGELADOS": FoodFrozen,
		"refrigerated":         FoodRefrigerated,
		"Refrigerado":          FoodRefrigerated,
		"delicado":             FoodDelicate,
		"fruta":                FoodDelicate,
		"":                     FoodDelicate,
	}
	for label, want := range cases {
		assert.Equal(t, want, ClassifyFoodType(label), "label %q", label)
	}
}

func TestQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"null", 1},
		{"3", 3},
		{"2.9", 2},
		{`"7"`, 7},
		{`"12 cajas"`, 12},
		{`"abc"`, 1},
		{"0", 1},
		{"-4", 1},
		{`true`, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Quantity(json.RawMessage(tc.raw)), "raw %q", tc.raw)
	}
}

func TestNormalizeOrder(t *testing.T) {
	var rec registry.OrderRecord
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 15, "cliente_id": "C1", "proveedor_id": 4, "estado": "entregado",
		"fecha_pedido": "2025-01-10",
		"productos": [
			{"id": "A", "nombre": "Helado", "cantidad": "2"},
			{"productoId": "B", "nombre": "Leche"},
			{"nombre": "Queso", "cantidad": 0}
		]
	}`), &rec))

	o := NormalizeOrder(rec)
	assert.Equal(t, "15", o.ID)
	assert.Equal(t, "C1", o.ClienteID)
	assert.Equal(t, "4", o.ProveedorID)
	assert.Equal(t, "2025-01-10", o.FechaPedido)
	require.Len(t, o.Productos, 3)
	assert.Equal(t, LineItem{ID: "A", Nombre: "Helado", Cantidad: 2}, o.Productos[0])
	assert.Equal(t, "B", o.Productos[1].ID)
	assert.Equal(t, 1, o.Productos[1].Cantidad)

	derived := o.Productos[2].ID
	assert.Regexp(t, `^PROD-[0-9A-F]{8}$`, derived)
	assert.Equal(t, derived, NormalizeOrder(rec).Productos[2].ID, "derived ids are stable")

	camel := registry.OrderRecord{ID: "16", ClienteID: "C2", ClienteIDSnake: "ignored", ProveedorID: "P9"}
	got := NormalizeOrder(camel)
	assert.Equal(t, "C2", got.ClienteID)
	assert.Equal(t, "P9", got.ProveedorID)
	assert.NotNil(t, got.Productos)
}

func TestDerivedIDsDifferByPosition(t *testing.T) {
	rec := registry.OrderRecord{ID: "P1", Productos: []registry.LineItemRecord{{}, {}}}
	o := NormalizeOrder(rec)
	assert.NotEqual(t, o.Productos[0].ID, o.Productos[1].ID)
}

func TestSupplierSetAndFilter(t *testing.T) {
	orders := []Order{{ProveedorID: "S1"}, {ProveedorID: ""}, {ProveedorID: "S1"}, {ProveedorID: "S2"}}
	set := SupplierSet(orders)
	assert.Len(t, set, 2)

	vehicles := []telemetry.VehicleRecord{
		{ID: "V1", ProveedorIDSnake: "S1"},
		{ID: "V2", ProveedorID: "S2"},
		{ID: "V3", ProveedorIDSnake: "S3"},
		{ID: "V4"},
	}
	kept := FilterVehicles(vehicles, set)
	require.Len(t, kept, 2)
	assert.Equal(t, upstream.Text("V1"), kept[0].ID)
	assert.Equal(t, upstream.Text("V2"), kept[1].ID)

	assert.Len(t, FilterVehicles(vehicles, map[string]struct{}{}), 4)
}

func TestNormalizeVehicleGPS(t *testing.T) {
	cases := map[string]*string{
		`{"lat": 1, "lon": 2}`: ptr(`{"lat":1,"lon":2}`),
		`"40.4,-3.7"`:          ptr("40.4,-3.7"),
		`null`:                 nil,
		``:                     nil,
	}
	for raw, want := range cases {
		v := NormalizeVehicle(telemetry.VehicleRecord{ID: "V1", GPS: json.RawMessage(raw)})
		assert.Equal(t, want, v.GPS, "raw %q", raw)
	}
}

func TestNormalizeVehicleCapacity(t *testing.T) {
	v := NormalizeVehicle(telemetry.VehicleRecord{CapacidadKg: upstream.Number{Value: 1200, Valid: true}})
	require.NotNil(t, v.CapacidadKg)
	assert.Equal(t, 1200.0, *v.CapacidadKg)

	assert.Nil(t, NormalizeVehicle(telemetry.VehicleRecord{}).CapacidadKg)
}

func TestNormalizeSensor(t *testing.T) {
	var rec telemetry.SensorRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id": "S1", "nombre": "Zona A", "tipoAlimento": "Refrigerado", "rangoMin": 2, "rango_max": "8.00"}`), &rec))

	s := NormalizeSensor(rec)
	assert.Equal(t, FoodRefrigerated, s.TipoAlimento)
	assert.Equal(t, 2.0, *s.RangoMin)
	assert.Equal(t, 8.0, *s.RangoMax)
	assert.NotNil(t, s.Lecturas)
}

func TestNormalizeReadingFlags(t *testing.T) {
	cases := map[string][2]bool{
		`{}`: {false, false},
		`{"alertaActiva": true, "cadenRota": true}`:    {true, true},
		`{"alerta_activa": true, "caden_rota": true}`:  {true, true},
		`{"cadenaRota": true}`:                         {false, true},
		`{"cadena_rota": "true"}`:                      {false, true},
		`{"alertaActiva": false, "alerta_activa": true}`: {false, false},
	}
	for body, want := range cases {
		var rec telemetry.ReadingRecord
		require.NoError(t, json.Unmarshal([]byte(body), &rec))
		r := NormalizeReading(rec)
		assert.Equal(t, want[0], r.AlertaActiva, "alert for %s", body)
		assert.Equal(t, want[1], r.CadenRota, "chain for %s", body)
	}
}

func TestNormalizeReadingPassesGPSThrough(t *testing.T) {
	var rec telemetry.ReadingRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "timestamp": "2025-01-01T00:00:00", "temperatura": "-19.5", "gps": {"latitud": 40.1, "longitud": -3.2, "altitud": null}}`), &rec))

	r := NormalizeReading(rec)
	assert.Equal(t, "3", r.ID)
	assert.Equal(t, -19.5, *r.Temperatura)
	assert.JSONEq(t, `{"latitud": 40.1, "longitud": -3.2, "altitud": null}`, string(r.GPS))
}

func ptr(s string) *string { return &s }
