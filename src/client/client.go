// Package client implements the transport layer shared by every endpoint
// group: credential resolution, authenticated request building, retrying
// execution, and typed response decoding. A Client is long-lived, owns no
// per-request state, and is safe for concurrent use.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Client executes logical API calls against one host (broker or data). Two
// instances typically exist per process, constructed once at startup and
// shared read-only by all endpoint groups.
type Client struct {
	config     Config
	httpClient *http.Client
	retry      RetryOpts
	sleep      sleepFunc
	now        func() time.Time
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (and with it the
// connection pool and per-attempt timeout).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryOpts replaces the retry policy bounds.
func WithRetryOpts(retry RetryOpts) Option {
	return func(c *Client) {
		c.retry = retry
	}
}

// WithBaseURL overrides host routing with an explicit base URL (scheme and
// host, without the version segment). Intended for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.config.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// New creates a Client for the given credentials and host subdomain.
// Invalid inputs fail here with a ConfigurationError, not at first call.
func New(credentials Credentials, hostSubdomain string, opts ...Option) (*Client, error) {
	config, err := newConfig(credentials, hostSubdomain)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retry:      DefaultRetryOpts(),
		sleep:      defaultSleep,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Config returns the client's immutable configuration.
func (c *Client) Config() Config {
	return c.config
}

// Do executes one logical call: it builds the authenticated request, runs it
// through the retry policy, and decodes the outcome into out (which may be
// nil when no payload is expected). It returns exactly one of nil or a typed
// error from the taxonomy in errors.go.
func (c *Client) Do(ctx context.Context, method, relativePath string, query url.Values, body interface{}, out interface{}) error {
	if c == nil {
		return &ConfigurationError{Reason: "client is not constructed (market data is unavailable under OAuth authentication)"}
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("Do: failed to marshal request body: %w", err)
		}
	}

	res, attempts, err := c.execute(ctx, func(ctx context.Context) (*http.Request, error) {
		return c.newRequest(ctx, method, relativePath, query, payload)
	})
	if err != nil {
		return err
	}

	if attempts > 1 {
		log.WithFields(log.Fields{
			"method":   method,
			"path":     relativePath,
			"attempts": attempts,
		}).Debug("request succeeded after retries")
	}

	return decodeResponse(res, out)
}

// Get issues a GET request for relativePath.
func (c *Client) Get(ctx context.Context, relativePath string, query url.Values, out interface{}) error {
	return c.Do(ctx, http.MethodGet, relativePath, query, nil, out)
}

// Post issues a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, relativePath string, body interface{}, out interface{}) error {
	return c.Do(ctx, http.MethodPost, relativePath, nil, body, out)
}

// Put issues a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, relativePath string, body interface{}, out interface{}) error {
	return c.Do(ctx, http.MethodPut, relativePath, nil, body, out)
}

// Patch issues a PATCH request with a JSON-encoded body.
func (c *Client) Patch(ctx context.Context, relativePath string, body interface{}, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, relativePath, nil, body, out)
}

// Delete issues a DELETE request for relativePath.
func (c *Client) Delete(ctx context.Context, relativePath string, query url.Values, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, relativePath, query, nil, out)
}

// newRequest builds one physical request. It is invoked once per attempt so
// the body reader is always fresh and the request is never shared between
// attempts.
func (c *Client) newRequest(ctx context.Context, method, relativePath string, query url.Values, payload []byte) (*http.Request, error) {
	fullURL := c.config.BaseURL() + "/" + strings.TrimPrefix(relativePath, "/")
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("newRequest: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.config.credentials.apply(req)

	return req, nil
}
