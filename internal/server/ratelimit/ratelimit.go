// Package ratelimit provides per-client request rate limiting using token
// buckets. Extraction is CPU-bound per upload, so the upload endpoints get
// much tighter limits than the read endpoints.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// EndpointConfig is the rate limit for one endpoint. Paths ending in "/"
// are prefix-matched.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	EndpointConfigs []EndpointConfig
}

// DefaultEndpointConfigs returns the per-endpoint limits: extraction uploads
// are expensive, record reads are cheap.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/extract", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/extract/text", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/extractions", Method: "GET", Limit: 300, Window: time.Minute},
		{Path: "/extractions/", Method: "GET", Limit: 300, Window: time.Minute},
	}
}

// DefaultConfig returns the limiter configuration used by the server.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    120,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// bucket is a token bucket: tokens refill at a steady rate up to capacity.
type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func (b *bucket) allow(now time.Time) bool {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(b.capacity, b.tokens+elapsed*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// Limiter manages token buckets keyed by client and endpoint.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
}

// NewLimiter creates a rate limiter with the given configuration.
// A nil configuration selects DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}
}

// Allow reports whether a request from clientID to the given path/method is
// within its limit. The health endpoint is never limited.
func (l *Limiter) Allow(clientID, path, method string) bool {
	if !l.config.Enabled {
		return true
	}
	if path == "/health" {
		return true
	}

	limit, window, burst := l.limitsFor(path, method)
	if limit <= 0 {
		return true
	}
	if burst <= 0 {
		burst = limit
	}

	key := clientID + " " + method + " " + path
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			capacity:   float64(burst),
			refillRate: float64(limit) / window.Seconds(),
			tokens:     float64(burst),
			lastRefill: now,
		}
		l.buckets[key] = b
	}
	return b.allow(now)
}

// limitsFor resolves the endpoint configuration for a request, with exact
// matches taking precedence over prefix matches, then the default.
func (l *Limiter) limitsFor(path, method string) (limit int, window time.Duration, burst int) {
	for i := range l.config.EndpointConfigs {
		cfg := &l.config.EndpointConfigs[i]
		if cfg.Method == method && cfg.Path == path {
			return cfg.Limit, cfg.Window, cfg.Burst
		}
	}
	for i := range l.config.EndpointConfigs {
		cfg := &l.config.EndpointConfigs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg.Limit, cfg.Window, cfg.Burst
		}
	}
	return l.config.DefaultLimit, l.config.DefaultWindow, 0
}
