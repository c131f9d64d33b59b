package transport

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures an HTTPConnector.
type Option func(*HTTPConnector)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPConnector) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the HTTP client timeout. A client passed to
// WithHTTPClient is copied, never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPConnector) {
		if timeout > 0 {
			client := *c.httpClient
			client.Timeout = timeout
			c.httpClient = &client
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *HTTPConnector) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *HTTPConnector) {
		c.logger = logger
	}
}
