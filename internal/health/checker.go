// Package health probes both upstreams and reports the aggregate status.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"freshgo/internal/upstream"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	serviceUp      = "up"
	serviceDown    = "down"
)

// Prober is an upstream with a health endpoint.
type Prober interface {
	Health(ctx context.Context) (upstream.HealthStatus, error)
}

// Target names one upstream to probe.
type Target struct {
	Name   string // key in the report, "crm" or "iot"
	URL    string
	Prober Prober
}

// ServiceReport is the probe result of one upstream.
type ServiceReport struct {
	URL       string          `json:"url"`
	Status    string          `json:"status"`
	Error     *string         `json:"error"`
	Data      json.RawMessage `json:"data"`
	LatencyMs int64           `json:"latencyMs"`
}

// Report is the aggregate health document.
type Report struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Services  map[string]ServiceReport `json:"services"`
}

// HTTPStatus is 200 when every upstream is up and 503 otherwise.
func (r *Report) HTTPStatus() int {
	if r.Status == StatusHealthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Checker probes targets concurrently.
type Checker struct {
	targets []Target
	logger  *slog.Logger
	now     func() time.Time
}

// NewChecker creates a checker over targets.
func NewChecker(logger *slog.Logger, targets ...Target) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{targets: targets, logger: logger, now: time.Now}
}

// Check probes every target. Each probe carries its own timeout.
func (c *Checker) Check(ctx context.Context) *Report {
	reports := make([]ServiceReport, len(c.targets))

	var g errgroup.Group
	for i, t := range c.targets {
		g.Go(func() error {
			reports[i] = c.probe(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	out := &Report{
		Status:    StatusHealthy,
		Timestamp: c.now().UTC().Format(time.RFC3339Nano),
		Services:  make(map[string]ServiceReport, len(c.targets)),
	}
	for i, t := range c.targets {
		out.Services[t.Name] = reports[i]
		if reports[i].Status != serviceUp {
			out.Status = StatusDegraded
		}
	}
	return out
}

func (c *Checker) probe(ctx context.Context, t Target) ServiceReport {
	status, err := t.Prober.Health(ctx)
	report := ServiceReport{
		URL:       t.URL,
		Status:    serviceUp,
		LatencyMs: status.Latency.Milliseconds(),
		Data:      status.Payload,
	}
	if len(report.Data) == 0 {
		report.Data = json.RawMessage("null")
	}
	if err != nil {
		msg := err.Error()
		if ue, ok := upstream.AsError(err); ok {
			msg = ue.Message
		}
		report.Status = serviceDown
		report.Error = &msg
		c.logger.WarnContext(ctx, "upstream health probe failed", "service", t.Name, "error", err)
	}
	return report
}
