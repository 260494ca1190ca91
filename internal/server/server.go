package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/jonathan/career-insights/internal/config"
	"github.com/jonathan/career-insights/internal/interview"
	"github.com/jonathan/career-insights/internal/jobsearch"
	"github.com/jonathan/career-insights/internal/metrics"
	"github.com/jonathan/career-insights/internal/reports"
	"github.com/jonathan/career-insights/internal/resume"
	"github.com/jonathan/career-insights/internal/server/middleware"
	"github.com/jonathan/career-insights/internal/server/ratelimit"
	"github.com/jonathan/career-insights/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// Defaults for Config fields left at zero.
const (
	DefaultMaxInputBytes  = config.DefaultMaxInputBytes
	DefaultRequestTimeout = 30 * time.Second
)

// JobSearcher looks up job postings.
type JobSearcher interface {
	Search(ctx context.Context, query, location string, page int) ([]jobsearch.Posting, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	store       store.Store
	reports     *reports.Repository
	resume      *resume.Analyzer
	interview   *interview.Analyzer
	jobs        JobSearcher
	metrics     *metrics.Metrics
	gatherer    prometheus.Gatherer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	cfg         Config
}

// Config holds server configuration
type Config struct {
	Port           int
	StoreURL       string
	MaxInputBytes  int64
	RequestTimeout time.Duration
	AllowedOrigins []string
	Seed           *int64 // Fixes resume scoring when requests carry no seed

	// Optional collaborators; nil disables the feature.
	JobSearch *jobsearch.Config
	JWT       *config.JWTConfig
	RateLimit *ratelimit.Config
	Registry  *prometheus.Registry
}

// New creates a new server instance, opening the store named by cfg.StoreURL.
func New(cfg Config) (*Server, error) {
	st, err := store.Open(context.Background(), cfg.StoreURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	s, err := NewWithStore(cfg, st)
	if err != nil {
		st.Close() //nolint:errcheck // already failing
		return nil, err
	}
	return s, nil
}

// NewWithStore creates a server over an already opened store. The server
// owns st and closes it on shutdown.
func NewWithStore(cfg Config, st store.Store) (*Server, error) {
	if cfg.MaxInputBytes <= 0 {
		cfg.MaxInputBytes = DefaultMaxInputBytes
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		store:     st,
		reports:   reports.NewRepository(st),
		resume:    resume.NewAnalyzer(resume.Options{Seed: cfg.Seed}),
		interview: interview.NewAnalyzer(interview.Options{}),
		metrics:   metrics.MustNewMetrics(registry),
		gatherer:  registry,
		cfg:       cfg,
	}

	// Initialize rate limiter
	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rateConfig)

	if cfg.JobSearch != nil {
		client, err := jobsearch.NewClient(*cfg.JobSearch)
		if err != nil {
			return nil, fmt.Errorf("failed to create job search client: %w", err)
		}
		s.jobs = client
	}

	if cfg.JWT != nil {
		s.jwtService = NewJWTService(cfg.JWT)
	} else {
		log.Println("[server] JWT_SECRET not set; user routes are unauthenticated")
	}

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(s.routes())))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes registers every endpoint on a fresh mux.
func (s *Server) routes() *http.ServeMux {
	analysis := func(h http.HandlerFunc) http.Handler {
		return s.withAuth(false, s.withTimeout(s.withBodyLimit(h)))
	}
	owned := func(h http.HandlerFunc) http.Handler {
		return s.withAuth(true, s.withTimeout(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler(s.gatherer))

	// Analysis
	mux.Handle("POST /analyze/resume", analysis(s.handleAnalyzeResume))
	mux.Handle("POST /analyze/resume/upload", analysis(s.handleAnalyzeResumeUpload))
	mux.Handle("POST /analyze/interview", analysis(s.handleAnalyzeInterview))

	// Stored reports
	mux.Handle("GET /users/{id}/resume-report", owned(s.handleGetResumeReport))
	mux.Handle("GET /users/{id}/interviews/{session_id}", owned(s.handleGetInterviewReport))

	// Job search
	mux.Handle("GET /jobs/search", s.withTimeout(http.HandlerFunc(s.handleSearchJobs)))

	return mux
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.Close(); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}

// Close releases the rate limiter and the store.
func (s *Server) Close() error {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
	}
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "*"
		if len(s.cfg.AllowedOrigins) > 0 {
			origin = ""
			if o := r.Header.Get("Origin"); slices.Contains(s.cfg.AllowedOrigins, o) {
				origin = o
			}
			w.Header().Add("Vary", "Origin")
		}
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s completed %d in %v", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// withBodyLimit caps the request body at MaxInputBytes.
func (s *Server) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxInputBytes)
		next.ServeHTTP(w, r)
	})
}

// withTimeout bounds handler execution by RequestTimeout.
func (s *Server) withTimeout(next http.Handler) http.Handler {
	return http.TimeoutHandler(next, s.cfg.RequestTimeout, `{"error":"request timed out"}`)
}

// withAuth applies bearer authentication when JWT is configured. Required
// routes reject anonymous requests; the others only authenticate tokens
// that are present.
func (s *Server) withAuth(required bool, next http.Handler) http.Handler {
	if s.jwtService == nil {
		return next
	}
	if required {
		return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(next)
	}
	return middleware.OptionalAuth(s.jwtService.AsTokenValidator())(next)
}

// authorize checks that the caller may act on userID. It always passes
// when authentication is disabled or no user is named.
func (s *Server) authorize(r *http.Request, userID string) error {
	if s.jwtService == nil || userID == "" {
		return nil
	}
	subject, err := middleware.GetUserID(r)
	if err != nil {
		return &ErrUnauthorized{}
	}
	if subject != userID {
		return &ErrForbidden{UserID: userID}
	}
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status code and writes it. Server errors are
// logged and their details withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable && status != http.StatusBadGateway {
		log.Printf("[server] Error: %v", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		retryAfter := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = retryAfter
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
