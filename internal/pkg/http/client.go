package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/piresc/maproute/internal/pkg/logger"
	nrpkg "github.com/piresc/maproute/internal/pkg/newrelic"
)

// RedactedQueryParams are replaced before a URL is written to the logs
var RedactedQueryParams = []string{"key"}

// Config configures the outbound HTTP client
type Config struct {
	// Timeout of zero means requests are bounded only by their context
	Timeout     time.Duration
	ServiceName string
}

// Client is a thin HTTP client for third-party APIs
type Client struct {
	httpClient  *nethttp.Client
	serviceName string
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	return &Client{
		httpClient:  &nethttp.Client{Timeout: config.Timeout},
		serviceName: config.ServiceName,
	}
}

// Get issues a GET request for an already-built URL. Status codes are not
// interpreted here; the caller owns the response body.
func (c *Client) Get(ctx context.Context, rawURL string) (*nethttp.Response, error) {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if requestID, ok := ctx.Value(RequestIDKey{}).(string); ok && requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", req.Method),
		logger.String("url", RedactURL(rawURL)),
		logger.String("service", c.serviceName))

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("url", RedactURL(rawURL)),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("url", RedactURL(rawURL)),
		logger.String("service", c.serviceName),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}

// Timeout returns the configured client timeout
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// RequestIDKey is the context key under which the inbound request ID travels
type RequestIDKey struct{}

// RedactURL masks sensitive query parameters so the URL can be logged
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	changed := false
	for _, p := range RedactedQueryParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
