package httpclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sufield/sessionify/internal/domain"
)

// Client is an HTTP client that authenticates with a client certificate over mTLS.
type Client struct {
	client *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets an overall request timeout. By default requests are bounded
// only by their context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// New creates an mTLS HTTP client from a client TLS configuration
// (see identitytls.NewClientTLSConfig).
func New(tlsConfig *tls.Config, opts ...Option) (*Client, error) {
	if tlsConfig == nil {
		return nil, fmt.Errorf("%w: tls config is required", domain.ErrTransportSetup)
	}

	// Create HTTP transport with mTLS
	transport := &http.Transport{
		TLSClientConfig:     tlsConfig,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &Client{
		client: &http.Client{Transport: transport},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Post performs an HTTP POST request.
func (c *Client) Post(ctx context.Context, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.client.Do(req)
}

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	if c.client != nil {
		c.client.CloseIdleConnections()
	}
	return nil
}
