// Package jobsearch queries a JSearch-compatible job postings API.
package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/career-insights/internal/fetch"
	"golang.org/x/time/rate"
)

// Defaults for the outbound limiter.
const (
	DefaultRequestsPerSecond = 2
	DefaultBurst             = 4
)

// Posting is a single job posting.
type Posting struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location,omitempty"`
	Description    string     `json:"description,omitempty"`
	ApplyURL       string     `json:"applyUrl,omitempty"`
	EmploymentType string     `json:"employmentType,omitempty"`
	Remote         bool       `json:"remote"`
	PostedAt       *time.Time `json:"postedAt,omitempty"`
}

// Error is returned when the job API answers with a non-2xx status or an
// unreadable body.
type Error struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	msg := "job search failed"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("job search failed with status %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Config configures a Client.
type Config struct {
	BaseURL           string
	APIKey            string
	Host              string
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
	HTTPClient        *http.Client
}

// Client searches postings. It is safe for concurrent use.
type Client struct {
	cfg     Config
	limiter *rate.Limiter
}

// NewClient creates a client. BaseURL is required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("job search base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid job search base URL: %w", err)
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst < 1 {
		cfg.Burst = DefaultBurst
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = fetch.DefaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}, nil
}

// SearchURL builds the request URL for a query. The location, when given,
// is folded into the query text.
func (c *Client) SearchURL(query, location string, page int) string {
	q := strings.TrimSpace(query)
	if loc := strings.TrimSpace(location); loc != "" {
		q += " in " + loc
	}
	if page < 1 {
		page = 1
	}

	values := url.Values{}
	values.Set("query", q)
	values.Set("page", strconv.Itoa(page))
	values.Set("num_pages", "1")
	return c.cfg.BaseURL + "/search?" + values.Encode()
}

// Search returns the postings matching query and location. It waits for the
// outbound limiter before each call.
func (c *Client) Search(ctx context.Context, query, location string, page int) ([]Posting, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("job search query is required")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("job search rate limit wait: %w", err)
	}

	headers := map[string]string{"Accept": "application/json"}
	if c.cfg.APIKey != "" {
		headers["X-RapidAPI-Key"] = c.cfg.APIKey
	}
	if c.cfg.Host != "" {
		headers["X-RapidAPI-Host"] = c.cfg.Host
	}

	result, err := fetch.URL(ctx, c.SearchURL(query, location, page), &fetch.Options{
		Timeout: c.cfg.Timeout,
		Headers: headers,
		Client:  c.cfg.HTTPClient,
	})
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
			return nil, &Error{StatusCode: fetchErr.StatusCode, Message: apiMessage(result), Cause: err}
		}
		return nil, &Error{Message: "request failed", Cause: err}
	}

	var resp searchResponse
	if err := json.Unmarshal(result.Body, &resp); err != nil {
		return nil, &Error{StatusCode: result.StatusCode, Message: "malformed response body", Cause: err}
	}

	postings := make([]Posting, 0, len(resp.Data))
	for _, job := range resp.Data {
		postings = append(postings, job.toPosting())
	}
	return postings, nil
}

// apiMessage extracts the error message of a failed response, if any.
func apiMessage(result *fetch.Result) string {
	if result == nil || len(result.Body) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(result.Body, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
