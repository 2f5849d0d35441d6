// Package telemetry is the client for the IoT telemetry registry. Sensor and
// vehicle metadata is cached; readings, alerts and chain status are
// real-time and always fetched.
package telemetry

import (
	"context"
	"net/url"
	"strconv"

	"freshgo/internal/cache"
	"freshgo/internal/upstream"
)

const (
	// ServiceName tags errors raised by this client.
	ServiceName = "IoT"
	namespace   = "iot"
)

// SensorFilters narrows ListSensors.
type SensorFilters struct {
	LocationID string
	FoodType   string
}

// ReadingFilters narrows ListReadings. Zero values are omitted.
type ReadingFilters struct {
	SensorID    string
	LocationID  string
	Status      string
	From        string
	To          string
	Limit       int
	ChainBroken *bool
}

// Client reads from the telemetry registry.
type Client struct {
	core *upstream.Client
}

// New creates a telemetry client.
func New(cfg upstream.Config, store cache.Store, opts ...upstream.Option) *Client {
	cfg.Service = ServiceName
	cfg.Namespace = namespace
	return &Client{core: upstream.New(cfg, store, opts...)}
}

// ListSensors fetches active sensors.
func (c *Client) ListSensors(ctx context.Context, f SensorFilters) (upstream.Page[SensorRecord], error) {
	q := url.Values{}
	q.Set("ubicacionId", f.LocationID)
	q.Set("tipoAlimento", f.FoodType)
	return upstream.FetchPage[SensorRecord](ctx, c.core, "sensores", "/sensores", q, true)
}

// GetSensor fetches one sensor by id.
func (c *Client) GetSensor(ctx context.Context, id string) (upstream.Entity[SensorRecord], error) {
	return upstream.FetchEntity[SensorRecord](ctx, c.core, "sensor:"+id, "/sensores/"+url.PathEscape(id), true)
}

// ListVehicles fetches every vehicle.
func (c *Client) ListVehicles(ctx context.Context) (upstream.Page[VehicleRecord], error) {
	return upstream.FetchPage[VehicleRecord](ctx, c.core, "vehiculos", "/vehiculos", nil, true)
}

// GetVehicle fetches one vehicle by id.
func (c *Client) GetVehicle(ctx context.Context, id string) (upstream.Entity[VehicleRecord], error) {
	return upstream.FetchEntity[VehicleRecord](ctx, c.core, "vehiculo:"+id, "/vehiculos/"+url.PathEscape(id), true)
}

// ListReadings fetches readings.
func (c *Client) ListReadings(ctx context.Context, f ReadingFilters) (upstream.Page[ReadingRecord], error) {
	q := url.Values{}
	q.Set("sensorId", f.SensorID)
	q.Set("ubicacionId", f.LocationID)
	q.Set("estado", f.Status)
	q.Set("from", f.From)
	q.Set("to", f.To)
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.ChainBroken != nil {
		q.Set("cadenaRota", strconv.FormatBool(*f.ChainBroken))
	}
	return upstream.FetchPage[ReadingRecord](ctx, c.core, "lecturas", "/lecturas", q, false)
}

// ListAlerts fetches readings with an active alert.
func (c *Client) ListAlerts(ctx context.Context) (upstream.Page[ReadingRecord], error) {
	return upstream.FetchPage[ReadingRecord](ctx, c.core, "alertas", "/lecturas/alertas", nil, false)
}

// ListBrokenChains fetches readings where the cold chain was broken.
func (c *Client) ListBrokenChains(ctx context.Context) (upstream.Page[ReadingRecord], error) {
	return upstream.FetchPage[ReadingRecord](ctx, c.core, "cadena-rota", "/lecturas/cadena-rota", nil, false)
}

// VehicleChainStatus fetches the per-zone chain status of one vehicle.
func (c *Client) VehicleChainStatus(ctx context.Context, vehicleID string) (upstream.Entity[ChainStatusRecord], error) {
	return upstream.FetchEntity[ChainStatusRecord](ctx, c.core, "estado-cadena:"+vehicleID,
		"/vehiculos/"+url.PathEscape(vehicleID)+"/estado-cadena", false)
}

// Health probes the telemetry registry.
func (c *Client) Health(ctx context.Context) (upstream.HealthStatus, error) {
	return c.core.Health(ctx)
}

// Invalidate drops cached telemetry entries whose key starts with
// "iot:<prefix>".
func (c *Client) Invalidate(ctx context.Context, prefix string) (int, error) {
	return c.core.Invalidate(ctx, prefix)
}

// Namespace returns the cache key namespace of this client.
func (c *Client) Namespace() string {
	return c.core.Namespace()
}

// Service returns "IoT".
func (c *Client) Service() string {
	return ServiceName
}
