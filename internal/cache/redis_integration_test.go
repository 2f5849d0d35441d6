//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"freshgo/internal/cache"
	"freshgo/pkg/platform/sentinel"
	"freshgo/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *cache.Redis
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.store = cache.NewRedis(s.redis.Client, time.Minute, "test")
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()

	_, err := s.store.Get(ctx, "crm:cliente:C1")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Set(ctx, "crm:cliente:C1", []byte(`{"id":"C1"}`)))
	val, err := s.store.Get(ctx, "crm:cliente:C1")
	s.Require().NoError(err)
	s.Equal(`{"id":"C1"}`, string(val))

	ttl, err := s.redis.Client.TTL(ctx, "test:crm:cliente:C1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))

	stats, err := s.store.Stats(ctx)
	s.Require().NoError(err)
	s.Equal(cache.Stats{Hits: 1, Misses: 1, Keys: 1}, stats)
}

func (s *RedisStoreSuite) TestPrefixDeleteStaysInNamespace() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.Set(ctx, "foreign:crm:x", "keep", 0).Err())
	for _, k := range []string{"crm:cliente:C1", "crm:pedidos:{}", "iot:vehiculos:{}"} {
		s.Require().NoError(s.store.Set(ctx, k, []byte("x")))
	}

	n, err := s.store.DeleteByPrefix(ctx, "crm:")
	s.Require().NoError(err)
	s.Equal(2, n)

	keys, err := s.store.Keys(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"iot:vehiculos:{}"}, keys)

	s.Require().NoError(s.store.FlushAll(ctx))
	keys, err = s.store.Keys(ctx)
	s.Require().NoError(err)
	s.Empty(keys)

	foreign, err := s.redis.Client.Get(ctx, "foreign:crm:x").Result()
	s.Require().NoError(err)
	s.Equal("keep", foreign)
}

func (s *RedisStoreSuite) TestPrefixDeleteIsLiteral() {
	ctx := context.Background()
	for _, k := range []string{
		`iot:sensores:{"tipoAlimento":"[x]"}`,
		`iot:sensores:{"tipoAlimento":"x"}`,
		"crm:cliente:C1",
		"crm:cliente:C2",
	} {
		s.Require().NoError(s.store.Set(ctx, k, []byte("x")))
	}

	n, err := s.store.DeleteByPrefix(ctx, "crm:*")
	s.Require().NoError(err)
	s.Equal(0, n)

	n, err = s.store.DeleteByPrefix(ctx, `iot:sensores:{"tipoAlimento":"[x]`)
	s.Require().NoError(err)
	s.Equal(1, n)

	keys, err := s.store.Keys(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"crm:cliente:C1", "crm:cliente:C2", `iot:sensores:{"tipoAlimento":"x"}`}, keys)
}
