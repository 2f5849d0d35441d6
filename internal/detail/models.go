package detail

import (
	"encoding/json"
)

// FoodType is the canonical three-way food classification of a sensor.
type FoodType string

const (
	FoodFrozen       FoodType = "frozen"
	FoodRefrigerated FoodType = "refrigerated"
	FoodDelicate     FoodType = "delicate"
)

// Client is the registry client projected onto the public fields.
type Client struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

// LineItem is one product line of a normalized order.
type LineItem struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// Order is the canonical order shape.
type Order struct {
	ID           string     `json:"id"`
	ClienteID    string     `json:"clienteId"`
	ProveedorID  string     `json:"proveedorId"`
	Productos    []LineItem `json:"productos"`
	Estado       string     `json:"estado"`
	FechaPedido  string     `json:"fechaPedido,omitempty"`
	FechaEntrega string     `json:"fechaEntrega,omitempty"`
}

// Reading is one normalized telemetry sample.
type Reading struct {
	ID           string          `json:"id,omitempty"`
	Timestamp    string          `json:"timestamp"`
	Temperatura  *float64        `json:"temperatura"`
	GPS          json.RawMessage `json:"gps,omitempty"`
	Estado       string          `json:"estado,omitempty"`
	AlertaActiva bool            `json:"alertaActiva"`
	CadenRota    bool            `json:"cadenRota"`
}

// Sensor is a sensor enriched with its readings.
type Sensor struct {
	SensorID     string    `json:"sensorId"`
	Nombre       string    `json:"nombre"`
	TipoAlimento FoodType  `json:"tipoAlimento"`
	RangoMin     *float64  `json:"rangoMin"`
	RangoMax     *float64  `json:"rangoMax"`
	Lecturas     []Reading `json:"lecturas"`
}

// Vehicle is a vehicle enriched with its sensors.
type Vehicle struct {
	VehiculoID  string   `json:"vehiculoId"`
	Matricula   string   `json:"matricula"`
	CapacidadKg *float64 `json:"capacidadKg"`
	GPS         *string  `json:"gps"`
	Sensores    []Sensor `json:"sensores"`
}

// Metadata carries the totals of the assembled document. TotalPedidos counts
// orders before pagination; the other totals count what was returned.
type Metadata struct {
	Timestamp      string `json:"timestamp"`
	TotalPedidos   int    `json:"totalPedidos"`
	TotalVehiculos int    `json:"totalVehiculos"`
	TotalSensores  int    `json:"totalSensores"`
	TotalLecturas  int    `json:"totalLecturas"`
	Pagina         int    `json:"pagina"`
	TamanoPagina   int    `json:"tamanoPagina"`
}

// ClientDetail is the unified per-client document.
type ClientDetail struct {
	Cliente   Client    `json:"cliente"`
	Pedidos   []Order   `json:"pedidos"`
	Vehiculos []Vehicle `json:"vehiculos"`
	Metadata  Metadata  `json:"metadata"`
}
