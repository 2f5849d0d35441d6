// Package cache is the process-wide response cache shared by both upstream
// clients. Entries are raw upstream response bodies keyed by
// "<namespace>:<operation>:<filters>", all with one uniform TTL.
//
// Two backends satisfy Store: Memory (the default, process-local) and Redis
// (shared between replicas). Misses and expired entries both surface as
// sentinel.ErrNotFound.
package cache

import (
	"context"
)

// Store is the cache contract used by upstream clients and the admin
// endpoints. Values are immutable once set and replaced wholesale.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	FlushAll(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (Stats, error)
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Keys   int   `json:"keys"`
}
