// Package detail assembles the unified client detail: the client, its
// paginated orders and the vehicles of its suppliers enriched with sensors
// and readings, validated against the client detail schema.
package detail

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"freshgo/internal/detail/metrics"
	"freshgo/internal/detail/ports"
	"freshgo/internal/schema"
	"freshgo/internal/upstream/telemetry"
	dErrors "freshgo/pkg/domain-errors"
)

// DefaultConcurrency bounds parallel sensor and reading fetches per request.
const DefaultConcurrency = 8

// Service aggregates registry and telemetry data into a ClientDetail.
type Service struct {
	registry    ports.RegistryPort
	telemetry   ports.TelemetryPort
	validator   ports.ValidatorPort
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	concurrency int
	now         func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithConcurrency bounds parallel per-vehicle and per-sensor fetches.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithClock overrides the metadata timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the aggregation to its upstream ports.
func NewService(registry ports.RegistryPort, telemetry ports.TelemetryPort, validator ports.ValidatorPort, opts ...Option) *Service {
	s := &Service{
		registry:    registry,
		telemetry:   telemetry,
		validator:   validator,
		logger:      slog.Default(),
		tracer:      otel.Tracer("freshgo/detail"),
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetClientDetail builds the unified detail of clientID.
//
// The client lookup and the vehicle list are required: their failure aborts
// with the upstream's status. Orders, sensors and readings are secondary:
// their failure is logged and the document is returned without them.
func (s *Service) GetClientDetail(ctx context.Context, clientID string, f Filters) (*ClientDetail, error) {
	f = f.Normalized()
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "detail.GetClientDetail", trace.WithAttributes(
		attribute.String("client.id", clientID),
		attribute.Int("filters.limit", f.Limit),
		attribute.Int("filters.page", f.Page),
	))
	defer span.End()

	// clipped so concurrent appends in the fan-out never share a backing array
	logAttrs := slices.Clip(append([]any{"client_id", clientID}, f.LogAttrs()...))
	s.logger.InfoContext(ctx, "client detail requested", logAttrs...)

	doc, err := s.assemble(ctx, clientID, f, logAttrs)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.ObserveAggregate(outcomeOf(err), elapsed)
		s.logger.ErrorContext(ctx, "client detail failed",
			append(logAttrs, "elapsed_ms", elapsed.Milliseconds(), "error", err)...)
		return nil, err
	}

	s.metrics.ObserveAggregate("ok", elapsed)
	s.metrics.ObserveVehicles(doc.Metadata.TotalVehiculos)
	s.logger.InfoContext(ctx, "client detail assembled",
		append(logAttrs,
			"elapsed_ms", elapsed.Milliseconds(),
			"total_orders", doc.Metadata.TotalPedidos,
			"total_vehicles", doc.Metadata.TotalVehiculos,
			"total_sensors", doc.Metadata.TotalSensores,
			"total_readings", doc.Metadata.TotalLecturas,
		)...)
	return doc, nil
}

func (s *Service) assemble(ctx context.Context, clientID string, f Filters, logAttrs []any) (*ClientDetail, error) {
	client, err := s.registry.GetClient(ctx, clientID)
	if err != nil {
		return nil, upstreamUnavailable(err)
	}

	var orders []Order
	allOrders, err := s.registry.ListAllOrders(ctx, clientID)
	if err != nil {
		s.metrics.IncrementDegraded("orders")
		s.logger.WarnContext(ctx, "orders unavailable, continuing without them",
			append(logAttrs, "error", err)...)
	} else {
		orders = NormalizeOrders(allOrders.Data)
	}

	totalOrders := len(orders)
	suppliers := SupplierSet(orders)
	paged := paginate(orders, f.Page, f.Limit)

	vehicles, err := s.telemetry.ListVehicles(ctx)
	if err != nil {
		return nil, upstreamUnavailable(err)
	}
	candidates := FilterVehicles(vehicles.Data, suppliers)

	enriched, err := s.enrich(ctx, candidates, f, logAttrs)
	if err != nil {
		return nil, err
	}

	doc := &ClientDetail{
		Cliente:   NormalizeClient(client.Data),
		Pedidos:   paged,
		Vehiculos: enriched,
		Metadata: Metadata{
			Timestamp:      s.now().UTC().Format(time.RFC3339Nano),
			TotalPedidos:   totalOrders,
			TotalVehiculos: len(enriched),
			Pagina:         f.Page,
			TamanoPagina:   f.Limit,
		},
	}
	for _, v := range enriched {
		doc.Metadata.TotalSensores += len(v.Sensores)
		for _, sn := range v.Sensores {
			doc.Metadata.TotalLecturas += len(sn.Lecturas)
		}
	}

	if res := s.validator.Validate(doc, schema.ClientDetail); !res.Valid {
		return nil, schemaViolation(res.Errors)
	}
	return doc, nil
}

// enrich fetches sensors for every vehicle, then readings for every sensor,
// each stage in parallel under the concurrency bound. Output keeps upstream
// order. Sensors without readings are dropped, then vehicles left without sensors.
func (s *Service) enrich(ctx context.Context, records []telemetry.VehicleRecord, f Filters, logAttrs []any) ([]Vehicle, error) {
	vehicles := make([]*Vehicle, len(records))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, rec := range records {
		v := NormalizeVehicle(rec)
		if v.VehiculoID == "" {
			s.logger.WarnContext(ctx, "vehicle without id skipped", logAttrs...)
			continue
		}
		g.Go(func() error {
			sensors, err := s.telemetry.ListSensors(ctx, telemetry.SensorFilters{
				LocationID: v.VehiculoID,
				FoodType:   telemetryFoodLabel(f.FoodType),
			})
			if err != nil {
				s.metrics.IncrementDegraded("sensors")
				s.logger.WarnContext(ctx, "sensors unavailable, skipping vehicle",
					append(logAttrs, "vehicle_id", v.VehiculoID, "error", err)...)
				return nil
			}
			for _, sr := range sensors.Data {
				if f.SensorID != "" && sr.ID.String() != f.SensorID {
					continue
				}
				v.Sensores = append(v.Sensores, NormalizeSensor(sr))
			}
			vehicles[i] = &v
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, cancelled(err)
	}

	var rg errgroup.Group
	rg.SetLimit(s.concurrency)
	for _, v := range vehicles {
		if v == nil {
			continue
		}
		for j := range v.Sensores {
			sensor := &v.Sensores[j]
			rg.Go(func() error {
				readings, err := s.telemetry.ListReadings(ctx, telemetry.ReadingFilters{
					SensorID: sensor.SensorID,
					Limit:    f.Limit,
					From:     f.From,
					To:       f.To,
					Status:   f.Status,
				})
				if err != nil {
					s.metrics.IncrementDegraded("readings")
					s.logger.WarnContext(ctx, "readings unavailable, sensor left empty",
						append(logAttrs, "vehicle_id", v.VehiculoID, "sensor_id", sensor.SensorID, "error", err)...)
					return nil
				}
				data := readings.Data
				if len(data) > f.Limit {
					data = data[:f.Limit]
				}
				for _, r := range data {
					sensor.Lecturas = append(sensor.Lecturas, NormalizeReading(r))
				}
				return nil
			})
		}
	}
	_ = rg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, cancelled(err)
	}

	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v == nil {
			continue
		}
		v.Sensores = withReadings(v.Sensores)
		if len(v.Sensores) > 0 {
			out = append(out, *v)
		}
	}
	return out, nil
}

// withReadings keeps the sensors that yielded at least one reading.
func withReadings(sensors []Sensor) []Sensor {
	kept := make([]Sensor, 0, len(sensors))
	for _, sn := range sensors {
		if len(sn.Lecturas) > 0 {
			kept = append(kept, sn)
		}
	}
	return kept
}

// paginate returns the 1-based page of size items; out of range is empty.
func paginate(orders []Order, page, size int) []Order {
	start := (page - 1) * size
	if start >= len(orders) {
		return []Order{}
	}
	end := min(start+size, len(orders))
	return orders[start:end]
}

func cancelled(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "client detail timed out")
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "client detail cancelled")
}

func outcomeOf(err error) string {
	switch {
	case dErrors.HasCode(err, dErrors.CodeValidationFailed):
		return "schema_violation"
	case dErrors.HasCode(err, dErrors.CodeTimeout), dErrors.HasCode(err, dErrors.CodeUnavailable):
		return "cancelled"
	default:
		return "upstream_error"
	}
}
