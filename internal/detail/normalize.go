package detail

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"freshgo/internal/upstream"
	"freshgo/internal/upstream/registry"
	"freshgo/internal/upstream/telemetry"
)

// ClassifyFoodType maps a free-form food label onto the canonical enum by
// case-insensitive substring. Unrecognized or empty labels are delicate.
func ClassifyFoodType(label string) FoodType {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "frozen"), strings.Contains(l, "congelado"):
		return FoodFrozen
	case strings.Contains(l, "refrigerated"), strings.Contains(l, "refrigerado"):
		return FoodRefrigerated
	default:
		return FoodDelicate
	}
}

// telemetryFoodLabel translates a canonical food type filter into the label
// telemetry stores. Any other value is passed through as given.
func telemetryFoodLabel(foodType string) string {
	switch FoodType(strings.ToLower(strings.TrimSpace(foodType))) {
	case FoodFrozen:
		return "congelado"
	case FoodRefrigerated:
		return "refrigerado"
	case FoodDelicate:
		return "delicado"
	}
	return foodType
}

// NormalizeClient projects a registry client.
func NormalizeClient(c registry.ClientRecord) Client {
	return Client{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Email:     c.Email,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
	}
}

// NormalizeOrder reconciles field spellings and line items into an Order.
func NormalizeOrder(r registry.OrderRecord) Order {
	id := r.ID.String()
	items := make([]LineItem, 0, len(r.Productos))
	for i, p := range r.Productos {
		items = append(items, LineItem{
			ID:       lineItemID(id, i, p),
			Nombre:   p.Nombre,
			Cantidad: Quantity(p.Cantidad),
		})
	}
	return Order{
		ID:           id,
		ClienteID:    firstText(r.ClienteID, r.ClienteIDSnake),
		ProveedorID:  firstText(r.ProveedorID, r.ProveedorIDSnake),
		Productos:    items,
		Estado:       r.Estado,
		FechaPedido:  firstText(r.FechaPedido, r.FechaPedidoSnake),
		FechaEntrega: firstText(r.FechaEntrega, r.FechaEntregaSnake),
	}
}

// NormalizeOrders normalizes every order, preserving registry order.
func NormalizeOrders(records []registry.OrderRecord) []Order {
	out := make([]Order, 0, len(records))
	for _, r := range records {
		out = append(out, NormalizeOrder(r))
	}
	return out
}

// lineItemID falls back from id to productoId to a value derived from the
// order id and position, so the same order always yields the same ids.
func lineItemID(orderID string, index int, p registry.LineItemRecord) string {
	if id := firstText(p.ID, p.ProductoID); id != "" {
		return id
	}
	sum := sha256.Sum256([]byte(orderID + ":" + strconv.Itoa(index)))
	return "PROD-" + strings.ToUpper(hex.EncodeToString(sum[:])[:8])
}

// Quantity coerces a raw quantity to a positive integer. Numbers are
// truncated, strings parsed by their leading integer; anything missing,
// unparseable or below 1 becomes 1.
func Quantity(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 1
	}

	var n int
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 1
		}
		v, ok := leadingInt(s)
		if !ok {
			return 1
		}
		n = v
	} else {
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return 1
		}
		n = int(f)
	}
	if n < 1 {
		return 1
	}
	return n
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	return v, err == nil
}

// SupplierSet collects the distinct non-empty supplier ids of orders.
func SupplierSet(orders []Order) map[string]struct{} {
	set := make(map[string]struct{})
	for _, o := range orders {
		if o.ProveedorID != "" {
			set[o.ProveedorID] = struct{}{}
		}
	}
	return set
}

// FilterVehicles keeps vehicles owned by a supplier in set. An empty set
// keeps every vehicle.
func FilterVehicles(vehicles []telemetry.VehicleRecord, set map[string]struct{}) []telemetry.VehicleRecord {
	if len(set) == 0 {
		return vehicles
	}
	out := make([]telemetry.VehicleRecord, 0, len(vehicles))
	for _, v := range vehicles {
		if _, ok := set[firstText(v.ProveedorIDSnake, v.ProveedorID)]; ok {
			out = append(out, v)
		}
	}
	return out
}

// NormalizeVehicle maps a telemetry vehicle without sensors.
func NormalizeVehicle(v telemetry.VehicleRecord) Vehicle {
	return Vehicle{
		VehiculoID:  v.ID.String(),
		Matricula:   v.Matricula,
		CapacidadKg: firstNumber(v.CapacidadKgSnake, v.CapacidadKg),
		GPS:         gpsString(v.GPS),
		Sensores:    []Sensor{},
	}
}

// NormalizeSensor maps a telemetry sensor without readings.
func NormalizeSensor(s telemetry.SensorRecord) Sensor {
	label := s.TipoAlimentoSnake
	if label == "" {
		label = s.TipoAlimento
	}
	return Sensor{
		SensorID:     s.ID.String(),
		Nombre:       s.Nombre,
		TipoAlimento: ClassifyFoodType(label),
		RangoMin:     firstNumber(s.RangoMinSnake, s.RangoMin),
		RangoMax:     firstNumber(s.RangoMaxSnake, s.RangoMax),
		Lecturas:     []Reading{},
	}
}

// NormalizeReading reconciles the alert and chain-broken flag spellings.
// Absent flags are false.
func NormalizeReading(r telemetry.ReadingRecord) Reading {
	var gps json.RawMessage
	if trimmed := bytes.TrimSpace(r.GPS); len(trimmed) > 0 {
		gps = trimmed
	}
	return Reading{
		ID:           r.ID.String(),
		Timestamp:    r.Timestamp,
		Temperatura:  firstNumber(r.Temperatura),
		GPS:          gps,
		Estado:       r.Estado,
		AlertaActiva: firstFlag(r.AlertaActiva, r.AlertaActivaSnake),
		CadenRota:    firstFlag(r.CadenRota, r.CadenRotaSnake, r.CadenaRota, r.CadenaRotaSnake),
	}
}

// gpsString renders a vehicle position as text. Strings pass through,
// objects become compact JSON, null or absent becomes nil.
func gpsString(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return &s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		s := string(raw)
		return &s
	}
	s := buf.String()
	return &s
}

func firstText(values ...upstream.Text) string {
	for _, v := range values {
		if v != "" {
			return v.String()
		}
	}
	return ""
}

func firstNumber(values ...upstream.Number) *float64 {
	for _, v := range values {
		if v.Valid {
			f := v.Value
			return &f
		}
	}
	return nil
}

func firstFlag(values ...upstream.Flag) bool {
	for _, v := range values {
		if v.Valid {
			return v.Value
		}
	}
	return false
}
