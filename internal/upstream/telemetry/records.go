package telemetry

import (
	"encoding/json"

	"freshgo/internal/upstream"
)

// VehicleRecord is a telemetry vehicle. GPS may be an object or a string.
type VehicleRecord struct {
	ID               upstream.Text   `json:"id"`
	Matricula        string          `json:"matricula"`
	CapacidadKgSnake upstream.Number `json:"capacidad_kg"`
	CapacidadKg      upstream.Number `json:"capacidadKg"`
	GPS              json.RawMessage `json:"gps"`
	ProveedorIDSnake upstream.Text   `json:"proveedor_id"`
	ProveedorID      upstream.Text   `json:"proveedorId"`
}

// SensorRecord is a telemetry sensor. UbicacionID is the vehicle or
// warehouse the sensor is mounted in.
type SensorRecord struct {
	ID                upstream.Text   `json:"id"`
	Nombre            string          `json:"nombre"`
	TipoAlimentoSnake string          `json:"tipo_alimento"`
	TipoAlimento      string          `json:"tipoAlimento"`
	RangoMinSnake     upstream.Number `json:"rango_min"`
	RangoMin          upstream.Number `json:"rangoMin"`
	RangoMaxSnake     upstream.Number `json:"rango_max"`
	RangoMax          upstream.Number `json:"rangoMax"`
	UbicacionIDSnake  upstream.Text   `json:"ubicacion_id"`
	UbicacionID       upstream.Text   `json:"ubicacionId"`
}

// ReadingRecord is one temperature/position sample. The chain-broken flag
// has been published under four spellings over time.
type ReadingRecord struct {
	ID                upstream.Text   `json:"id"`
	SensorID          upstream.Text   `json:"sensorId"`
	UbicacionID       upstream.Text   `json:"ubicacionId"`
	Timestamp         string          `json:"timestamp"`
	Temperatura       upstream.Number `json:"temperatura"`
	GPS               json.RawMessage `json:"gps"`
	Estado            string          `json:"estado"`
	AlertaActiva      upstream.Flag   `json:"alertaActiva"`
	AlertaActivaSnake upstream.Flag   `json:"alerta_activa"`
	TiempoFueraRango  upstream.Number `json:"tiempoFueraRango"`
	CadenRota         upstream.Flag   `json:"cadenRota"`
	CadenRotaSnake    upstream.Flag   `json:"caden_rota"`
	CadenaRota        upstream.Flag   `json:"cadenaRota"`
	CadenaRotaSnake   upstream.Flag   `json:"cadena_rota"`
}

// ChainStatusRecord is the per-zone cold-chain status of one vehicle.
type ChainStatusRecord struct {
	VehiculoID    upstream.Text `json:"vehiculoId"`
	Matricula     string        `json:"matricula"`
	EstadoGeneral string        `json:"estado_general"`
	TotalZonas    int           `json:"total_zonas"`
	ZonasNormal   int           `json:"zonas_normal"`
	ZonasAlerta   int           `json:"zonas_alerta"`
	ZonasCriticas int           `json:"zonas_criticas"`
	CadenasRotas  int           `json:"cadenas_rotas"`
	Zonas         []ZoneRecord  `json:"zonas"`
}

// ZoneRecord is one refrigerated zone (one sensor) of a vehicle.
type ZoneRecord struct {
	SensorID            upstream.Text   `json:"sensorId"`
	Nombre              string          `json:"nombre"`
	TipoAlimento        string          `json:"tipoAlimento"`
	RangoOptimo         json.RawMessage `json:"rangoOptimo"`
	TemperaturaActual   upstream.Number `json:"temperaturaActual"`
	Estado              string          `json:"estado"`
	AlertaActiva        upstream.Flag   `json:"alertaActiva"`
	TiempoFueraRango    upstream.Number `json:"tiempoFueraRango"`
	CadenRota           upstream.Flag   `json:"cadenRota"`
	UltimaActualizacion string          `json:"ultimaActualizacion"`
}
