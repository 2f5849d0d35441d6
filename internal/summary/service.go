// Package summary reports top-line counts from both upstreams. An
// unreachable upstream marks its section unavailable instead of failing the
// whole summary.
package summary

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"freshgo/internal/upstream"
	"freshgo/internal/upstream/registry"
	"freshgo/internal/upstream/telemetry"
)

// Integration status values.
const (
	StatusComplete    = "completo"
	StatusPartial     = "parcial"
	StatusUnavailable = "no_disponible"
)

// pendingStatus is the registry order status counted as pending.
const pendingStatus = "pendiente"

// Registry is the registry surface the summary reads.
type Registry interface {
	ListClients(ctx context.Context, f registry.ClientFilters) (upstream.Page[registry.ClientRecord], error)
	ListOrders(ctx context.Context, f registry.OrderFilters) (upstream.Page[registry.OrderRecord], error)
	ListSuppliers(ctx context.Context) (upstream.Page[registry.SupplierRecord], error)
}

// Telemetry is the telemetry surface the summary reads.
type Telemetry interface {
	ListSensors(ctx context.Context, f telemetry.SensorFilters) (upstream.Page[telemetry.SensorRecord], error)
	ListVehicles(ctx context.Context) (upstream.Page[telemetry.VehicleRecord], error)
	ListAlerts(ctx context.Context) (upstream.Page[telemetry.ReadingRecord], error)
	ListBrokenChains(ctx context.Context) (upstream.Page[telemetry.ReadingRecord], error)
}

// RegistryStats are the registry counts.
type RegistryStats struct {
	TotalClientes     int `json:"totalClientes"`
	TotalPedidos      int `json:"totalPedidos"`
	PedidosPendientes int `json:"pedidosPendientes"`
	TotalProveedores  int `json:"totalProveedores"`
}

// TelemetryStats are the telemetry counts.
type TelemetryStats struct {
	TotalSensores  int `json:"totalSensores"`
	TotalVehiculos int `json:"totalVehiculos"`
	AlertasActivas int `json:"alertasActivas"`
	CadenasRotas   int `json:"cadenasRotas"`
}

// Section is one upstream's part of the summary.
type Section[T any] struct {
	Disponible bool    `json:"disponible"`
	Error      *string `json:"error"`
	Stats      *T      `json:"stats,omitempty"`
}

// Integration is the overall availability.
type Integration struct {
	Estado               string   `json:"estado"`
	ServiciosDisponibles []string `json:"serviciosDisponibles"`
}

// Summary is the cross-system summary document.
type Summary struct {
	Timestamp   string                  `json:"timestamp"`
	CRM         Section[RegistryStats]  `json:"crm"`
	IoT         Section[TelemetryStats] `json:"iot"`
	Integracion Integration             `json:"integracion"`
}

// HTTPStatus is 503 when neither upstream answered and 200 otherwise.
func (s *Summary) HTTPStatus() int {
	if s.Integracion.Estado == StatusUnavailable {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// Service builds summaries.
type Service struct {
	registry  Registry
	telemetry Telemetry
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a summary service.
func NewService(registry Registry, telemetry Telemetry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{registry: registry, telemetry: telemetry, logger: logger, now: time.Now}
}

// GetSummary gathers both sections concurrently.
func (s *Service) GetSummary(ctx context.Context) *Summary {
	out := &Summary{Timestamp: s.now().UTC().Format(time.RFC3339Nano)}

	var g errgroup.Group
	g.Go(func() error {
		out.CRM = s.registrySection(ctx)
		return nil
	})
	g.Go(func() error {
		out.IoT = s.telemetrySection(ctx)
		return nil
	})
	_ = g.Wait()

	out.Integracion = Integration{ServiciosDisponibles: []string{}}
	if out.CRM.Disponible {
		out.Integracion.ServiciosDisponibles = append(out.Integracion.ServiciosDisponibles, registry.ServiceName)
	}
	if out.IoT.Disponible {
		out.Integracion.ServiciosDisponibles = append(out.Integracion.ServiciosDisponibles, telemetry.ServiceName)
	}
	switch len(out.Integracion.ServiciosDisponibles) {
	case 2:
		out.Integracion.Estado = StatusComplete
	case 1:
		out.Integracion.Estado = StatusPartial
	default:
		out.Integracion.Estado = StatusUnavailable
	}

	s.logger.InfoContext(ctx, "summary generated", "estado", out.Integracion.Estado)
	return out
}

// registrySection uses the client listing as the availability probe; the
// remaining counts degrade to zero on failure.
func (s *Service) registrySection(ctx context.Context) Section[RegistryStats] {
	clients, err := s.registry.ListClients(ctx, registry.ClientFilters{})
	if err != nil {
		s.logger.ErrorContext(ctx, "registry unavailable for summary", "error", err)
		return unavailable[RegistryStats](err)
	}

	stats := &RegistryStats{TotalClientes: clients.Total}
	var g errgroup.Group
	g.Go(func() error {
		if orders, err := s.registry.ListOrders(ctx, registry.OrderFilters{}); err != nil {
			s.logger.WarnContext(ctx, "order count unavailable", "error", err)
		} else {
			stats.TotalPedidos = orders.Total
		}
		return nil
	})
	g.Go(func() error {
		if pending, err := s.registry.ListOrders(ctx, registry.OrderFilters{Status: pendingStatus}); err != nil {
			s.logger.WarnContext(ctx, "pending order count unavailable", "error", err)
		} else {
			stats.PedidosPendientes = pending.Total
		}
		return nil
	})
	g.Go(func() error {
		if suppliers, err := s.registry.ListSuppliers(ctx); err != nil {
			s.logger.WarnContext(ctx, "supplier count unavailable", "error", err)
		} else {
			stats.TotalProveedores = suppliers.Total
		}
		return nil
	})
	_ = g.Wait()
	return Section[RegistryStats]{Disponible: true, Stats: stats}
}

// telemetrySection uses the sensor listing as the availability probe.
func (s *Service) telemetrySection(ctx context.Context) Section[TelemetryStats] {
	sensors, err := s.telemetry.ListSensors(ctx, telemetry.SensorFilters{})
	if err != nil {
		s.logger.ErrorContext(ctx, "telemetry unavailable for summary", "error", err)
		return unavailable[TelemetryStats](err)
	}

	stats := &TelemetryStats{TotalSensores: sensors.Total}
	var g errgroup.Group
	g.Go(func() error {
		if vehicles, err := s.telemetry.ListVehicles(ctx); err != nil {
			s.logger.WarnContext(ctx, "vehicle count unavailable", "error", err)
		} else {
			stats.TotalVehiculos = vehicles.Total
		}
		return nil
	})
	g.Go(func() error {
		if alerts, err := s.telemetry.ListAlerts(ctx); err != nil {
			s.logger.WarnContext(ctx, "alert count unavailable", "error", err)
		} else {
			stats.AlertasActivas = alerts.Total
		}
		return nil
	})
	g.Go(func() error {
		if broken, err := s.telemetry.ListBrokenChains(ctx); err != nil {
			s.logger.WarnContext(ctx, "broken chain count unavailable", "error", err)
		} else {
			stats.CadenasRotas = broken.Total
		}
		return nil
	})
	_ = g.Wait()
	return Section[TelemetryStats]{Disponible: true, Stats: stats}
}

func unavailable[T any](err error) Section[T] {
	msg := err.Error()
	if ue, ok := upstream.AsError(err); ok {
		msg = ue.Message
	}
	return Section[T]{Disponible: false, Error: &msg}
}
