// Package ratelimit provides per-client, per-endpoint token-bucket rate limiting.
package ratelimit

import (
	"log"
	"math"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// DefaultMaxClients bounds the number of tracked client buckets.
const DefaultMaxClients = 10000

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	MaxClients      int // Least recently used buckets are evicted beyond this
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// bucket pairs a token bucket with the parameters it was built from.
type bucket struct {
	limiter *rate.Limiter
	burst   int
}

// Limiter manages rate limiting for multiple clients using token buckets.
type Limiter struct {
	config  *Config
	mu      sync.Mutex // serializes get-or-create on buckets
	buckets *lru.Cache[string, *bucket]
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:       true,
			DefaultLimit:  1000,
			DefaultWindow: time.Minute,
			Whitelist:     make(map[string]bool),
			Blacklist:     make(map[string]bool),
		}
	}

	size := config.MaxClients
	if size <= 0 {
		size = DefaultMaxClients
	}
	buckets, err := lru.New[string, *bucket](size)
	if err != nil {
		// Only reachable with a non-positive size.
		log.Fatalf("[rate-limit] failed to create bucket cache: %v", err)
	}

	return &Limiter{
		config:  config,
		buckets: buckets,
	}
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	// Find matching endpoint configuration
	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	pattern := endpoint
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit, // Use limit as burst for default
		}
	} else if endpointConfig.Path != "" {
		// Prefix-matched paths share one bucket per client.
		pattern = endpointConfig.Path
	}

	// Unlimited endpoint (e.g., health check)
	if endpointConfig.Limit <= 0 || endpointConfig.Window <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.getBucket(clientID+":"+pattern+":"+method, *endpointConfig)

	now := time.Now()
	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     endpointConfig.Limit,
		Remaining: max(int(math.Floor(tokens)), 0),
		ResetTime: now.Add(refillTime(b.limiter.Limit(), float64(b.burst)-tokens)),
	}
	if !allowed {
		info.RetryAfter = refillTime(b.limiter.Limit(), 1-tokens)
	}
	return allowed, info
}

// refillTime returns how long it takes to accumulate n tokens at limit.
func refillTime(limit rate.Limit, n float64) time.Duration {
	if n <= 0 || limit <= 0 {
		return 0
	}
	return time.Duration(n / float64(limit) * float64(time.Second))
}

// getBucket gets or creates a token bucket for the given key.
func (l *Limiter) getBucket(key string, cfg EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets.Get(key); ok {
		return b
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Limit
	}
	// Refill rate = limit / window
	b := &bucket{
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.Limit)/cfg.Window.Seconds()), burst),
		burst:   burst,
	}
	l.buckets.Add(key, b)
	return b
}

// Len returns the number of tracked buckets.
func (l *Limiter) Len() int {
	return l.buckets.Len()
}

// Stop releases all tracked buckets.
func (l *Limiter) Stop() {
	l.buckets.Purge()
}
