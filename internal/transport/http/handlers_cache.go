package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"freshgo/internal/cache"
	dErrors "freshgo/pkg/domain-errors"
	"freshgo/pkg/platform/httputil"
	"freshgo/pkg/requestcontext"
)

// Invalidator is an upstream client that can drop its own cache entries.
type Invalidator interface {
	Namespace() string
	Invalidate(ctx context.Context, prefix string) (int, error)
}

// CacheHandler exposes the shared response cache for inspection and purge.
type CacheHandler struct {
	store   cache.Store
	ttl     time.Duration
	clients map[string]Invalidator
	logger  *slog.Logger
}

func NewCacheHandler(store cache.Store, ttl time.Duration, logger *slog.Logger, clients ...Invalidator) *CacheHandler {
	byNamespace := make(map[string]Invalidator, len(clients))
	for _, c := range clients {
		byNamespace[c.Namespace()] = c
	}
	return &CacheHandler{store: store, ttl: ttl, clients: byNamespace, logger: logger}
}

func (h *CacheHandler) Register(r chi.Router) {
	r.Get("/cache/stats", h.handleStats)
	r.Delete("/cache", h.handleClear)
}

type cacheStatsResponse struct {
	Stats     cache.Stats `json:"stats"`
	TotalKeys int         `json:"totalKeys"`
	Keys      []string    `json:"keys"`
	TTL       int         `json:"ttl"` // seconds
}

type cacheClearResponse struct {
	Message string `json:"message"`
	Removed *int   `json:"removed,omitempty"`
}

func (h *CacheHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.store.Stats(ctx)
	if err == nil {
		var keys []string
		if keys, err = h.store.Keys(ctx); err == nil {
			if keys == nil {
				keys = []string{}
			}
			httputil.WriteJSON(w, http.StatusOK, cacheStatsResponse{
				Stats:     stats,
				TotalKeys: len(keys),
				Keys:      keys,
				TTL:       int(h.ttl.Seconds()),
			})
			return
		}
	}
	h.logger.ErrorContext(ctx, "failed to read cache stats",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "cache unavailable"))
}

// handleClear purges by pattern. "crm:..." and "iot:..." go through the
// owning client; any other pattern is a raw key prefix; no pattern flushes
// everything.
func (h *CacheHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	pattern := strings.TrimSpace(r.URL.Query().Get("pattern"))

	if pattern == "" {
		if err := h.store.FlushAll(ctx); err != nil {
			h.logger.ErrorContext(ctx, "failed to flush cache", "request_id", requestID, "error", err)
			httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "cache unavailable"))
			return
		}
		h.logger.InfoContext(ctx, "cache flushed", "request_id", requestID)
		httputil.WriteJSON(w, http.StatusOK, cacheClearResponse{Message: "Todo el cache ha sido limpiado"})
		return
	}

	removed, err := h.invalidate(ctx, pattern)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to invalidate cache",
			"request_id", requestID,
			"pattern", pattern,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "cache unavailable"))
		return
	}
	h.logger.InfoContext(ctx, "cache invalidated",
		"request_id", requestID,
		"pattern", pattern,
		"removed", removed,
	)
	httputil.WriteJSON(w, http.StatusOK, cacheClearResponse{
		Message: "Cache invalidado con patrón: " + pattern,
		Removed: &removed,
	})
}

func (h *CacheHandler) invalidate(ctx context.Context, pattern string) (int, error) {
	ns, prefix, _ := strings.Cut(pattern, ":")
	if c, ok := h.clients[ns]; ok {
		return c.Invalidate(ctx, prefix)
	}
	return h.store.DeleteByPrefix(ctx, pattern)
}
