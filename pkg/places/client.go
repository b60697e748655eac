// Package places provides a client for the Google Places Web Service API.
// Request types validate and flatten themselves into ordered query
// parameters; the client owns the API key, rate limiting, and transport.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the base URL for the Places Web Service API.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10
)

// Client is a Places API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient creates a new Places API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// baseParams returns the parameters every request carries. They always
// precede the request's own parameters in the query string.
func (c *Client) baseParams() []Param {
	return []Param{{Key: "key", Value: c.apiKey}}
}

// get flattens the request, performs a GET against path, and decodes the
// JSON response into result. Validation failures surface before any rate
// limiting or network I/O.
func (c *Client) get(ctx context.Context, path string, request queryRequest, result apiResponse) error {
	params, err := request.QueryParams()
	if err != nil {
		return err
	}

	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return &RateLimitError{RetryAfter: time.Second}
	}

	reqURL := c.baseURL + path + "?" + EncodeParams(append(c.baseParams(), params...))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Redact API key in logs
	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.baseURL+path+"?key=***REDACTED***&"+EncodeParams(params)).
			Msg("Places API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	meta := result.meta()
	if meta.Status != "OK" && meta.Status != "ZERO_RESULTS" {
		return &StatusError{
			Status:   meta.Status,
			Message:  meta.ErrorMessage,
			Endpoint: path,
		}
	}

	return nil
}
