package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "itunesapi/1.0 (+https://github.com/s0up4200/itunesapi)"
	maxErrorBody     = 512
)

// Connector fetches the body behind a fully formed URL
type Connector interface {
	Get(ctx context.Context, rawURL string) (string, error)
}

// ConnectorFunc adapts a function to the Connector interface
type ConnectorFunc func(ctx context.Context, rawURL string) (string, error)

// Get calls f
func (f ConnectorFunc) Get(ctx context.Context, rawURL string) (string, error) {
	return f(ctx, rawURL)
}

// Default is the connector used when callers have no preference. It holds no
// mutable state and is safe for concurrent use.
var Default Connector = NewHTTPConnector()

// HTTPConnector is a Connector backed by net/http
type HTTPConnector struct {
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewHTTPConnector creates a connector with a 30 second timeout
func NewHTTPConnector(opts ...Option) *HTTPConnector {
	c := &HTTPConnector{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get performs one GET request and returns the response body
func (c *HTTPConnector) Get(ctx context.Context, rawURL string) (string, error) {
	u, err := parseURL(rawURL)
	if err != nil {
		return "", &Error{Op: "parse", URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &Error{Op: "create request", URL: rawURL, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", rawURL).
		Msg("Making catalog API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Op: "get", URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Op: "read body", URL: rawURL, Err: err}
	}

	c.logger.Trace().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Catalog API response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), maxErrorBody),
		}
	}

	return strings.TrimRight(string(body), "\r\n"), nil
}

// parseURL accepts absolute http(s) URLs only
func parseURL(rawURL string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: scheme and host are required", ErrMalformedURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrMalformedURL, u.Scheme)
	}
	return u, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
