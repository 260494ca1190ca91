package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/test"
	method := "GET"

	// Should allow requests up to limit
	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
		if rateInfo.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, rateInfo.Remaining)
		}
	}

	// 11th request should be denied
	allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if rateInfo.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", rateInfo.Remaining)
	}
	if rateInfo.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
	if !rateInfo.ResetTime.After(time.Now()) {
		t.Error("Expected reset time in the future")
	}
}

func TestLimiter_Refill(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Second, // 10 tokens per second
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.Allow("127.0.0.1", "/test", "GET")
	}
	if allowed, _ := limiter.Allow("127.0.0.1", "/test", "GET"); allowed {
		t.Fatal("Expected bucket to be exhausted")
	}

	time.Sleep(150 * time.Millisecond)

	if allowed, _ := limiter.Allow("127.0.0.1", "/test", "GET"); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Whitelisted IP should always be allowed
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/test", "GET")
		if !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 for whitelisted, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Blacklisted IP should always be denied
	allowed, _ := limiter.Allow("192.168.1.1", "/test", "GET")
	if allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	// When disabled, all requests should be allowed
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/test", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 when disabled, got %d", rateInfo.Limit)
		}
	}
	if limiter.Len() != 0 {
		t.Errorf("Expected no buckets when disabled, got %d", limiter.Len())
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/analyze/resume", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"

	for i := 0; i < 5; i++ {
		allowed, rateInfo := limiter.Allow(clientID, "/analyze/resume", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 5 {
			t.Errorf("Expected limit 5, got %d", rateInfo.Limit)
		}
	}

	// 6th request should be denied (limit reached)
	allowed, rateInfo := limiter.Allow(clientID, "/analyze/resume", "POST")
	if allowed {
		t.Error("Expected 6th request to be denied")
	}
	if rateInfo.Limit != 5 {
		t.Errorf("Expected limit 5, got %d", rateInfo.Limit)
	}

	// Different endpoint should use default limit
	allowed, rateInfo = limiter.Allow(clientID, "/other", "GET")
	if !allowed {
		t.Error("Expected different endpoint to be allowed")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestLimiter_PrefixSharesBucket(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/users/", Method: "GET", Limit: 2, Window: time.Hour},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	limiter.Allow("10.0.0.1", "/users/a/resume-report", "GET")
	limiter.Allow("10.0.0.1", "/users/b/resume-report", "GET")
	if allowed, _ := limiter.Allow("10.0.0.1", "/users/c/resume-report", "GET"); allowed {
		t.Error("Expected prefix-matched paths to share one bucket")
	}
	if allowed, _ := limiter.Allow("10.0.0.2", "/users/c/resume-report", "GET"); !allowed {
		t.Error("Expected a different client to have its own bucket")
	}
}

func TestLimiter_UnlimitedPaths(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for _, path := range []string{"/health", "/metrics"} {
		for i := 0; i < 10; i++ {
			if allowed, _ := limiter.Allow("127.0.0.1", path, "GET"); !allowed {
				t.Errorf("Expected %s to be unlimited", path)
			}
		}
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	var wg sync.WaitGroup
	allowedCount := 0
	var mu sync.Mutex

	// Make 200 concurrent requests (should only allow 100)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.Allow("127.0.0.1", "/test", "GET")
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_MaxClients(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		MaxClients:    3,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		if allowed, _ := limiter.Allow(clientID, "/test", "GET"); !allowed {
			t.Errorf("Expected request from %s to be allowed", clientID)
		}
	}

	if limiter.Len() != 3 {
		t.Errorf("Expected 3 tracked buckets, got %d", limiter.Len())
	}

	limiter.Stop()
	if limiter.Len() != 0 {
		t.Errorf("Expected buckets to be released on Stop, got %d", limiter.Len())
	}
}

func TestLimiter_Burst(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/burst", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Should allow burst of 5 requests immediately
	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/burst", "POST")
		if !allowed {
			t.Errorf("Expected burst request %d to be allowed", i+1)
		}
	}

	// 6th request should be denied (burst exhausted, no refill yet)
	allowed, _ := limiter.Allow("127.0.0.1", "/burst", "POST")
	if allowed {
		t.Error("Expected request after burst to be denied")
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, rateInfo := limiter.Allow("127.0.0.1", "/test", "GET")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path, method string
		wantPath     string
		wantNil      bool
	}{
		{path: "/analyze/resume", method: "POST", wantPath: "/analyze/resume"},
		{path: "/analyze/resume/upload", method: "POST", wantPath: "/analyze/resume/upload"},
		{path: "/jobs/search", method: "GET", wantPath: "/jobs/search"},
		{path: "/users/42/resume-report", method: "GET", wantPath: "/users/"},
		{path: "/users/42/resume-report", method: "DELETE", wantNil: true},
		{path: "/health", method: "GET", wantPath: "/health"},
		{path: "/unknown", method: "GET", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Expected no match, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Expected a match")
			}
			if got.Path != tt.wantPath {
				t.Errorf("Expected path %s, got %s", tt.wantPath, got.Path)
			}
		})
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_MAX_CLIENTS", "12")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")
	t.Setenv("RATE_LIMIT_BLACKLIST", "")

	cfg := LoadConfig()
	if cfg.DefaultLimit != 50 || cfg.DefaultWindow != 30*time.Second || cfg.MaxClients != 12 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if !cfg.Whitelist["10.0.0.2"] || len(cfg.Blacklist) != 0 {
		t.Errorf("Unexpected IP lists: %v %v", cfg.Whitelist, cfg.Blacklist)
	}

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	if LoadConfig().Enabled {
		t.Error("Expected rate limiting to be disabled")
	}
}
