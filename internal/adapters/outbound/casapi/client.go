package casapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/sufield/sessionify/internal/adapters/outbound/httpclient"
	"github.com/sufield/sessionify/internal/config"
	"github.com/sufield/sessionify/internal/debug"
	"github.com/sufield/sessionify/internal/domain"
	"github.com/sufield/sessionify/internal/ports"
	"github.com/sufield/sessionify/pkg/identitytls"
)

// ContentType is the media type of submitted policy documents.
const ContentType = "application/yaml"

// Client submits policy documents to the session API of one trust anchor.
type Client struct {
	http        *httpclient.Client
	sessionsURL string
	logger      *slog.Logger
	httpOpts    []httpclient.Option
	closed      atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request/reply tracing.
// By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPOptions passes options to the HTTP client built by NewFromConfig.
func WithHTTPOptions(opts ...httpclient.Option) Option {
	return func(c *Client) {
		c.httpOpts = append(c.httpOpts, opts...)
	}
}

// New creates a client posting to sessionsURL through httpClient.
func New(sessionsURL string, httpClient *httpclient.Client, opts ...Option) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("%w: http client is required", domain.ErrTransportSetup)
	}
	if sessionsURL == "" {
		return nil, fmt.Errorf("%w: sessions url is required", domain.ErrConfiguration)
	}

	c := newClient(opts)
	c.http = httpClient
	c.sessionsURL = sessionsURL
	return c, nil
}

func newClient(opts []Option) *Client {
	c := &Client{
		logger: debug.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig resolves the default trust anchor, splits the identity and
// builds the mTLS channel. The channel trusts only the anchor's chain.
func NewFromConfig(cfg *config.TrustConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", domain.ErrConfiguration)
	}

	anchor, err := cfg.ResolveTrustAnchor()
	if err != nil {
		return nil, err
	}
	certPEM, keyPEM, err := cfg.IdentityKeyPair()
	if err != nil {
		return nil, err
	}
	tlsCfg, err := identitytls.NewClientTLSConfig(anchor.Bundle, certPEM, keyPEM)
	if err != nil {
		return nil, err
	}

	c := newClient(opts)
	c.http, err = httpclient.New(tlsCfg, c.httpOpts...)
	if err != nil {
		return nil, err
	}
	c.sessionsURL = anchor.SessionsURL
	return c, nil
}

// Factory returns a ports.SubmitterFactory building clients with NewFromConfig.
func Factory(opts ...Option) ports.SubmitterFactory {
	return func(cfg *config.TrustConfig) (ports.SessionSubmitter, error) {
		c, err := NewFromConfig(cfg, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// SessionsURL returns the submission endpoint.
func (c *Client) SessionsURL() string {
	return c.sessionsURL
}

// PostSession submits one policy document.
//
// A 2xx reply is success. Any other status yields a *domain.SubmissionError
// whose text is the full reply body.
func (c *Client) PostSession(ctx context.Context, document []byte) error {
	if c.closed.Load() {
		return ports.ErrSubmitterClosed
	}

	c.logger.DebugContext(ctx, "submitting policy", "url", c.sessionsURL, "document", string(document))

	resp, err := c.http.Post(ctx, c.sessionsURL, ContentType, bytes.NewReader(document))
	if err != nil {
		return fmt.Errorf("post %s: %w", c.sessionsURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read reply from %s: %w", c.sessionsURL, err)
	}

	c.logger.DebugContext(ctx, "policy service replied", "status", resp.StatusCode, "body", string(body))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.SubmissionError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// Close releases the underlying connections. Further submissions fail with
// ports.ErrSubmitterClosed.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.http.Close()
}

var _ ports.SessionSubmitter = (*Client)(nil)
