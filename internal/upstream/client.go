// Package upstream is the shared plumbing behind the registry and telemetry
// clients: a cached JSON GET with a fixed per-call timeout, a health probe
// and namespace-scoped cache invalidation.
//
// Every failure leaving this package is an *Error carrying the service tag
// and the upstream's HTTP status (500 when no response was received).
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"freshgo/internal/cache"
	"freshgo/internal/platform/metrics"
	"freshgo/pkg/platform/sentinel"
)

const maxBodyBytes = 16 << 20

// Result is a successful upstream response body.
type Result struct {
	Body      []byte
	FromCache bool
}

// HealthStatus is the outcome of one health probe.
type HealthStatus struct {
	Service string
	Up      bool
	Latency time.Duration
	Payload json.RawMessage
}

// Config describes one upstream.
type Config struct {
	Service       string // "CRM" or "IoT"
	Namespace     string // cache key namespace, "crm" or "iot"
	BaseURL       string
	Timeout       time.Duration
	HealthTimeout time.Duration
}

// Client performs cached GETs against one upstream.
type Client struct {
	cfg     Config
	http    *http.Client
	cache   cache.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a Client. A nil store disables caching.
func New(cfg Config, store cache.Store, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = 2 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{},
		cache:  store,
		logger: slog.Default(),
		tracer: otel.Tracer("freshgo/upstream"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the service tag used in errors ("CRM" or "IoT").
func (c *Client) Service() string {
	return c.cfg.Service
}

// Namespace returns the cache namespace.
func (c *Client) Namespace() string {
	return c.cfg.Namespace
}

// CacheKey builds "<namespace>:<op>" with a canonical JSON suffix when query
// has non-empty values, so equal filter sets always share one key.
func (c *Client) CacheKey(op string, query url.Values) string {
	key := c.cfg.Namespace + ":" + op
	if suffix := canonicalQuery(query); suffix != "" {
		key += ":" + suffix
	}
	return key
}

// Get fetches path with query. Cacheable responses are served from and
// stored into the cache under CacheKey(op, query).
func (c *Client) Get(ctx context.Context, op, path string, query url.Values, cacheable bool) (Result, error) {
	ctx, span := c.tracer.Start(ctx, c.cfg.Namespace+"."+op, trace.WithAttributes(
		attribute.String("upstream.service", c.cfg.Service),
		attribute.String("upstream.path", path),
		attribute.Bool("upstream.cacheable", cacheable),
	))
	defer span.End()

	var key string
	if cacheable && c.cache != nil {
		key = c.CacheKey(op, query)
		if body, ok := c.lookup(ctx, key); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return Result{Body: body, FromCache: true}, nil
		}
	}

	body, err := c.fetch(ctx, op, path, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	if key != "" {
		if err := c.cache.Set(ctx, key, body); err != nil {
			c.logger.WarnContext(ctx, "cache store failed", "key", key, "error", err)
		}
	}
	return Result{Body: body}, nil
}

func (c *Client) lookup(ctx context.Context, key string) ([]byte, bool) {
	body, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		c.metrics.IncrementCacheLookup(c.cfg.Namespace, true)
		return body, true
	case !errors.Is(err, sentinel.ErrNotFound):
		c.logger.WarnContext(ctx, "cache lookup failed, treating as miss", "key", key, "error", err)
	}
	c.metrics.IncrementCacheLookup(c.cfg.Namespace, false)
	return nil, false
}

func (c *Client) fetch(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	body, err := c.do(ctx, op, path, query)
	c.metrics.ObserveUpstream(c.cfg.Service, op, err == nil, time.Since(start))
	if err != nil {
		c.logger.WarnContext(ctx, "upstream call failed",
			"service", c.cfg.Service,
			"op", op,
			"path", path,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
	}
	return body, err
}

func (c *Client) do(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	target := c.cfg.BaseURL + path
	if encoded := encodeQuery(query); encoded != "" {
		target += "?" + encoded
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, newError(c.cfg.Service, op, 0, ErrorBadData, "invalid request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.transportError(ctx, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(c.cfg.Service, op, resp.StatusCode, codeForStatus(resp.StatusCode),
			errorMessage(body, resp.Status), nil)
	}
	if !json.Valid(body) {
		return nil, newError(c.cfg.Service, op, resp.StatusCode, ErrorBadData, "response is not valid JSON", nil)
	}
	return body, nil
}

func (c *Client) transportError(ctx context.Context, op string, err error) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return newError(c.cfg.Service, op, 0, ErrorTimeout,
			fmt.Sprintf("no response within %s", c.cfg.Timeout), err)
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return newError(c.cfg.Service, op, 0, ErrorCancelled, "request cancelled", err)
	default:
		return newError(c.cfg.Service, op, 0, ErrorUnreachable, "upstream unreachable", errors.Join(sentinel.ErrUnavailable, err))
	}
}

// Health probes GET /health with the health timeout. An upstream that
// answers 2xx but reports {"status":"unhealthy"} is down.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.HealthTimeout)
	defer cancel()

	start := time.Now()
	body, err := c.do(ctx, "health", "/health", nil)
	status := HealthStatus{Service: c.cfg.Service, Latency: time.Since(start), Payload: body}
	if err != nil {
		if ue, ok := AsError(err); ok && ue.Code == ErrorTimeout {
			ue.Message = fmt.Sprintf("no response within %s", c.cfg.HealthTimeout)
		}
		return status, err
	}

	var probe struct {
		Status string `json:"status"`
	}
	if json.Unmarshal(body, &probe) == nil && strings.EqualFold(probe.Status, "unhealthy") {
		return status, newError(c.cfg.Service, "health", http.StatusServiceUnavailable, ErrorUnhealthy,
			"upstream reports unhealthy", nil)
	}
	status.Up = true
	return status, nil
}

// Invalidate deletes cached entries of this namespace whose key starts with
// "<namespace>:<prefix>". An empty prefix clears the whole namespace.
func (c *Client) Invalidate(ctx context.Context, prefix string) (int, error) {
	if c.cache == nil {
		return 0, nil
	}
	n, err := c.cache.DeleteByPrefix(ctx, c.cfg.Namespace+":"+prefix)
	if err != nil {
		return 0, fmt.Errorf("invalidating %s cache: %w", c.cfg.Namespace, err)
	}
	c.logger.InfoContext(ctx, "cache invalidated", "namespace", c.cfg.Namespace, "prefix", prefix, "deleted", n)
	return n, nil
}

// FetchPage decodes a list envelope into Page[T].
func FetchPage[T any](ctx context.Context, c *Client, op, path string, query url.Values, cacheable bool) (Page[T], error) {
	res, err := c.Get(ctx, op, path, query, cacheable)
	if err != nil {
		return Page[T]{}, err
	}
	var page Page[T]
	if err := json.Unmarshal(res.Body, &page); err != nil {
		return Page[T]{}, newError(c.cfg.Service, op, http.StatusOK, ErrorBadData, "unexpected list payload", err)
	}
	if page.Data == nil {
		page.Data = []T{}
	}
	if page.Total == 0 {
		page.Total = len(page.Data)
	}
	page.FromCache = res.FromCache
	return page, nil
}

// FetchEntity decodes a single-record payload into T.
func FetchEntity[T any](ctx context.Context, c *Client, op, path string, cacheable bool) (Entity[T], error) {
	res, err := c.Get(ctx, op, path, nil, cacheable)
	if err != nil {
		return Entity[T]{}, err
	}
	var v T
	if err := json.Unmarshal(res.Body, &v); err != nil {
		return Entity[T]{}, newError(c.cfg.Service, op, http.StatusOK, ErrorBadData, "unexpected record payload", err)
	}
	return Entity[T]{Data: v, FromCache: res.FromCache}, nil
}

// errorMessage prefers the upstream's own error text: {"error": ...} from
// the registry, {"detail": ...} from telemetry.
func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Error   any    `json:"error"`
		Detail  any    `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		for _, v := range []any{payload.Error, payload.Detail} {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}

// canonicalQuery renders non-empty query values as JSON with sorted keys.
func canonicalQuery(query url.Values) string {
	filtered := make(map[string]string, len(query))
	for k, vs := range query {
		if len(vs) > 0 && vs[0] != "" {
			filtered[k] = vs[0]
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	b, err := json.Marshal(filtered) // map keys are sorted by encoding/json
	if err != nil {
		return ""
	}
	return string(b)
}

// encodeQuery drops empty values; Encode sorts by key.
func encodeQuery(query url.Values) string {
	q := url.Values{}
	for k, vs := range query {
		if len(vs) > 0 && vs[0] != "" {
			q.Set(k, vs[0])
		}
	}
	return q.Encode()
}
