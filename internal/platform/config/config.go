package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr        string
	LogLevel    string
	Concurrency int

	Registry  Upstream
	Telemetry Upstream
	Cache     Cache
	Redis     RedisConfig
}

// Upstream points at one black-box data provider.
type Upstream struct {
	BaseURL       string
	Timeout       time.Duration
	HealthTimeout time.Duration
}

// Cache configures the shared response cache.
type Cache struct {
	Backend     string // "memory" or "redis"
	TTL         time.Duration
	CheckPeriod time.Duration
}

// RedisConfig configures the optional Redis cache backend.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const (
	DefaultDataTimeout   = 5 * time.Second
	DefaultHealthTimeout = 2 * time.Second
	DefaultCacheTTL      = 60 * time.Second
	DefaultCheckPeriod   = 120 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:        envString("ADDR", ":4000"),
		LogLevel:    envString("LOG_LEVEL", "info"),
		Concurrency: envInt("DETAIL_CONCURRENCY", 8),
		Registry: Upstream{
			BaseURL:       strings.TrimRight(envString("CRM_URL", "http://localhost:3001"), "/"),
			Timeout:       DefaultDataTimeout,
			HealthTimeout: DefaultHealthTimeout,
		},
		Telemetry: Upstream{
			BaseURL:       strings.TrimRight(envString("IOT_URL", "http://localhost:8001"), "/"),
			Timeout:       DefaultDataTimeout,
			HealthTimeout: DefaultHealthTimeout,
		},
		Cache: Cache{
			Backend:     strings.ToLower(envString("CACHE_BACKEND", "memory")),
			TTL:         envSeconds("CACHE_TTL", DefaultCacheTTL),
			CheckPeriod: envSeconds("CACHE_CHECK_PERIOD", DefaultCheckPeriod),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// envSeconds reads a whole number of seconds.
func envSeconds(key string, def time.Duration) time.Duration {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
