package strava

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTokenURL   = "https://www.strava.com/oauth/token"
	DefaultAPIBaseURL = "https://www.strava.com/api/v3"
	DefaultTimeout    = 10 * time.Second

	// MaxPerPage is the largest page the activities endpoint accepts.
	MaxPerPage = 200

	HeaderRateLimit      = "X-RateLimit-Limit"
	HeaderRateLimitUsage = "X-RateLimit-Usage"
)

// Client talks to the Strava token and activities endpoints.
// It holds no token state; every call starts from the refresh credential.
type Client struct {
	creds      Credentials
	httpClient *http.Client
	tokenURL   string
	apiBaseURL string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Transport: c.httpClient.Transport, Timeout: d}
	}
}

// WithTokenURL points the client at a different token endpoint.
func WithTokenURL(u string) Option {
	return func(c *Client) { c.tokenURL = u }
}

// WithAPIBaseURL points the client at a different API root.
func WithAPIBaseURL(u string) Option {
	return func(c *Client) { c.apiBaseURL = strings.TrimRight(u, "/") }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Client for the given credentials.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:      creds,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokenURL:   DefaultTokenURL,
		apiBaseURL: DefaultAPIBaseURL,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
