package client

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at a different API host (used by tests and mirrors)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client is copied so
// later options never change the caller's value.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		hc := *httpClient
		c.httpClient = &hc
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRateLimit caps outbound requests per second. Zero or less means unlimited.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}
