package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTransport plays back a fixed sequence of outcomes, one per
// attempt, and records every request it saw.
type scriptedTransport struct {
	mu       sync.Mutex
	steps    []scriptedStep
	calls    int
	requests []*http.Request
}

type scriptedStep struct {
	status int
	header http.Header
	body   string
	err    error
}

func (t *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, req)

	step := t.steps[len(t.steps)-1]
	if t.calls < len(t.steps) {
		step = t.steps[t.calls]
	}
	t.calls++

	if step.err != nil {
		return nil, step.err
	}

	header := step.header
	if header == nil {
		header = http.Header{}
	}

	return &http.Response{
		StatusCode: step.status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(step.body)),
		Request:    req,
	}, nil
}

type timeoutError struct{}

func (timeoutError) Error() string { return "dial tcp: i/o timeout" }
func (timeoutError) Timeout() bool { return true }

func fastRetryOpts() RetryOpts {
	return RetryOpts{
		MaxAttempts:         5,
		InitialInterval:     time.Millisecond,
		MaxInterval:         10 * time.Millisecond,
		MaxElapsedTime:      time.Minute,
		Multiplier:          2.0,
		RandomizationFactor: 0,
	}
}

func newTestClient(t *testing.T, transport *scriptedTransport, retry RetryOpts) (*Client, *[]time.Duration) {
	t.Helper()

	c, err := New(
		KeyPair{KeyID: "key-id", Secret: "secret"},
		"paper-api",
		WithHTTPClient(&http.Client{Transport: transport}),
		WithRetryOpts(retry),
	)
	require.NoError(t, err)

	sleeps := &[]time.Duration{}
	c.sleep = func(ctx context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		return nil
	}

	return c, sleeps
}

func buildGet(c *Client) func(ctx context.Context) (*http.Request, error) {
	return func(ctx context.Context) (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, "/clock", nil, nil)
	}
}

func TestExecuteRetriesTransientFailures(t *testing.T) {
	t.Run("succeeds after three connection failures", func(t *testing.T) {
		transport := &scriptedTransport{steps: []scriptedStep{
			{err: errors.New("connection refused")},
			{err: errors.New("connection refused")},
			{err: errors.New("connection refused")},
			{status: http.StatusOK, body: `{}`},
		}}
		c, sleeps := newTestClient(t, transport, fastRetryOpts())

		res, attempts, err := c.execute(context.Background(), buildGet(c))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, 4, attempts)
		assert.Equal(t, 4, transport.calls)
		assert.Len(t, *sleeps, 3)
	})

	t.Run("retries transient 5xx statuses", func(t *testing.T) {
		transport := &scriptedTransport{steps: []scriptedStep{
			{status: http.StatusServiceUnavailable, body: "unavailable"},
			{status: http.StatusBadGateway, body: "bad gateway"},
			{status: http.StatusOK, body: `{}`},
		}}
		c, _ := newTestClient(t, transport, fastRetryOpts())

		res, attempts, err := c.execute(context.Background(), buildGet(c))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, 3, attempts)
	})

	t.Run("non-transient status is returned on the first attempt", func(t *testing.T) {
		transport := &scriptedTransport{steps: []scriptedStep{
			{status: http.StatusUnprocessableEntity, body: `{"code":42210000,"message":"invalid qty"}`},
		}}
		c, sleeps := newTestClient(t, transport, fastRetryOpts())

		res, attempts, err := c.execute(context.Background(), buildGet(c))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, transport.calls)
		assert.Empty(t, *sleeps)
	})
}

func TestExecuteExhaustion(t *testing.T) {
	t.Run("connection failures exhaust into ConnectionFailed", func(t *testing.T) {
		transport := &scriptedTransport{steps: []scriptedStep{
			{err: errors.New("connection refused")},
		}}
		c, _ := newTestClient(t, transport, fastRetryOpts())

		_, attempts, err := c.execute(context.Background(), buildGet(c))

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, ConnectionFailed, transportErr.Kind)
		assert.Equal(t, 5, transportErr.Attempts)
		assert.Equal(t, 5, attempts)
		assert.Zero(t, transportErr.LastStatus)
	})

	t.Run("timeouts exhaust into Timeout", func(t *testing.T) {
		transport := &scriptedTransport{steps: []scriptedStep{
			{err: timeoutError{}},
		}}
		c, _ := newTestClient(t, transport, fastRetryOpts())

		_, _, err := c.execute(context.Background(), buildGet(c))

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, Timeout, transportErr.Kind)
	})

	t.Run("rate limiting exhausts into RateLimitExceeded", func(t *testing.T) {
		transport := &scriptedTransport{steps: []scriptedStep{
			{status: http.StatusTooManyRequests, body: "slow down"},
		}}
		c, _ := newTestClient(t, transport, fastRetryOpts())

		_, _, err := c.execute(context.Background(), buildGet(c))

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, RateLimitExceeded, transportErr.Kind)
		assert.Equal(t, http.StatusTooManyRequests, transportErr.LastStatus)
	})
}

func TestExecuteHonorsRetryAfter(t *testing.T) {
	t.Run("Retry-After seconds override the computed backoff", func(t *testing.T) {
		header := http.Header{}
		header.Set("Retry-After", "2")

		transport := &scriptedTransport{steps: []scriptedStep{
			{status: http.StatusTooManyRequests, header: header},
			{status: http.StatusOK, body: `{}`},
		}}
		c, sleeps := newTestClient(t, transport, fastRetryOpts())

		res, attempts, err := c.execute(context.Background(), buildGet(c))
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, 2, attempts)
		require.Len(t, *sleeps, 1)

		// the next attempt must not start before now + hint
		assert.GreaterOrEqual(t, (*sleeps)[0], 2*time.Second)
	})

	t.Run("X-RateLimit-Reset is accepted as a hint", func(t *testing.T) {
		header := http.Header{}
		header.Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(3*time.Second).Unix()))

		transport := &scriptedTransport{steps: []scriptedStep{
			{status: http.StatusTooManyRequests, header: header},
			{status: http.StatusOK, body: `{}`},
		}}
		c, sleeps := newTestClient(t, transport, fastRetryOpts())

		res, _, err := c.execute(context.Background(), buildGet(c))
		require.NoError(t, err)
		defer res.Body.Close()

		require.Len(t, *sleeps, 1)
		assert.Greater(t, (*sleeps)[0], time.Second)
	})

	t.Run("a hint beyond the elapsed budget gives up immediately", func(t *testing.T) {
		header := http.Header{}
		header.Set("Retry-After", "30")

		transport := &scriptedTransport{steps: []scriptedStep{
			{status: http.StatusTooManyRequests, header: header},
		}}

		opts := fastRetryOpts()
		opts.MaxElapsedTime = time.Second
		c, sleeps := newTestClient(t, transport, opts)

		_, attempts, err := c.execute(context.Background(), buildGet(c))

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, RateLimitExceeded, transportErr.Kind)
		assert.Equal(t, 1, attempts)
		assert.Empty(t, *sleeps)
	})
}

func TestExecuteCancellation(t *testing.T) {
	t.Run("already-cancelled context never dials", func(t *testing.T) {
		transport := &scriptedTransport{steps: []scriptedStep{
			{status: http.StatusOK, body: `{}`},
		}}
		c, _ := newTestClient(t, transport, fastRetryOpts())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := c.execute(ctx, buildGet(c))

		var cancelledErr *CancelledError
		require.ErrorAs(t, err, &cancelledErr)
		assert.Zero(t, transport.calls)
	})

	t.Run("cancellation during backoff aborts the pending sleep", func(t *testing.T) {
		transport := &scriptedTransport{steps: []scriptedStep{
			{err: errors.New("connection refused")},
		}}
		c, _ := newTestClient(t, transport, fastRetryOpts())

		ctx, cancel := context.WithCancel(context.Background())
		c.sleep = func(ctx context.Context, d time.Duration) error {
			cancel()
			return context.Canceled
		}

		_, _, err := c.execute(ctx, buildGet(c))

		var cancelledErr *CancelledError
		require.ErrorAs(t, err, &cancelledErr)
		assert.Equal(t, 1, transport.calls)
	})
}

func TestRetryAfterHint(t *testing.T) {
	now := time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)

	t.Run("delta seconds", func(t *testing.T) {
		header := http.Header{}
		header.Set("Retry-After", "7")
		assert.Equal(t, 7*time.Second, retryAfterHint(header, now))
	})

	t.Run("http date", func(t *testing.T) {
		header := http.Header{}
		header.Set("Retry-After", now.Add(90*time.Second).Format(http.TimeFormat))
		assert.Equal(t, 90*time.Second, retryAfterHint(header, now))
	})

	t.Run("unix reset timestamp", func(t *testing.T) {
		header := http.Header{}
		header.Set("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(42*time.Second).Unix()))
		assert.Equal(t, 42*time.Second, retryAfterHint(header, now))
	})

	t.Run("absent headers yield no hint", func(t *testing.T) {
		assert.Zero(t, retryAfterHint(http.Header{}, now))
	})

	t.Run("hints in the past yield no hint", func(t *testing.T) {
		header := http.Header{}
		header.Set("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(-time.Minute).Unix()))
		assert.Zero(t, retryAfterHint(header, now))
	})
}
