package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"freshgo/pkg/platform/sentinel"
)

const scanBatch = 200

// Redis is a Store over a shared Redis instance. Keys are namespaced with a
// fixed prefix so FlushAll never touches foreign data. Hit and miss counters
// are per process.
type Redis struct {
	client    redis.UniversalClient
	ttl       time.Duration
	namespace string

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedis creates a Redis store. namespace defaults to "freshgo".
func NewRedis(client redis.UniversalClient, ttl time.Duration, namespace string) *Redis {
	if namespace == "" {
		namespace = "freshgo"
	}
	return &Redis{client: client, ttl: ttl, namespace: namespace + ":"}
}

func (r *Redis) key(k string) string {
	return r.namespace + k
}

// globEscaper quotes the SCAN MATCH metacharacters.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// matchPrefix builds a MATCH pattern selecting keys that literally start
// with prefix.
func matchPrefix(prefix string) string {
	return globEscaper.Replace(prefix) + "*"
}

// Get returns the value for key or sentinel.ErrNotFound.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.misses.Add(1)
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		r.misses.Add(1)
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	r.hits.Add(1)
	return val, nil
}

// Set stores value under key with the store TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// DeleteByPrefix scans for prefix* and deletes matches in batches.
func (r *Redis) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	keys, err := r.scan(ctx, matchPrefix(r.key(prefix)))
	if err != nil {
		return 0, err
	}
	deleted := 0
	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		n, err := r.client.Del(ctx, keys[start:end]...).Result()
		if err != nil {
			return deleted, fmt.Errorf("redis del batch: %w", err)
		}
		deleted += int(n)
	}
	return deleted, nil
}

// FlushAll removes every key in this store's namespace.
func (r *Redis) FlushAll(ctx context.Context) error {
	_, err := r.DeleteByPrefix(ctx, "")
	return err
}

// Keys lists keys in this namespace with the namespace stripped, sorted.
func (r *Redis) Keys(ctx context.Context) ([]string, error) {
	raw, err := r.scan(ctx, matchPrefix(r.namespace))
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, strings.TrimPrefix(k, r.namespace))
	}
	sort.Strings(keys)
	return keys, nil
}

// Stats reports process-local hits and misses plus the shared key count.
func (r *Redis) Stats(ctx context.Context) (Stats, error) {
	keys, err := r.Keys(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load(), Keys: len(keys)}, nil
}

func (r *Redis) scan(ctx context.Context, match string) ([]string, error) {
	var (
		cursor uint64
		out    []string
	)
	// SCAN may return a key more than once.
	seen := make(map[string]struct{})
	for {
		keys, next, err := r.client.Scan(ctx, cursor, match, scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan %s: %w", match, err)
		}
		for _, k := range keys {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				out = append(out, k)
			}
		}
		if next == 0 {
			return out, nil
		}
		cursor = next
	}
}
