package ports

import (
	"context"

	"freshgo/internal/schema"
	"freshgo/internal/upstream"
	"freshgo/internal/upstream/registry"
	"freshgo/internal/upstream/telemetry"
)

// RegistryPort is the slice of the registry client the aggregation needs.
type RegistryPort interface {
	// GetClient fetches the client; failure is fatal to the aggregation
	GetClient(ctx context.Context, id string) (upstream.Entity[registry.ClientRecord], error)

	// ListAllOrders fetches every order of the client across registry pages
	ListAllOrders(ctx context.Context, clientID string) (upstream.Page[registry.OrderRecord], error)
}

// TelemetryPort is the slice of the telemetry client the aggregation needs.
type TelemetryPort interface {
	ListVehicles(ctx context.Context) (upstream.Page[telemetry.VehicleRecord], error)
	ListSensors(ctx context.Context, f telemetry.SensorFilters) (upstream.Page[telemetry.SensorRecord], error)
	ListReadings(ctx context.Context, f telemetry.ReadingFilters) (upstream.Page[telemetry.ReadingRecord], error)
}

// ValidatorPort checks the assembled document before it leaves the service.
type ValidatorPort interface {
	Validate(doc any, ref string) schema.Result
}
