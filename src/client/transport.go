package client

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// RetryOpts bounds the retry policy applied to transient failures. A fresh
// backoff state is derived from it for every logical call, so concurrent
// calls never share retry counters.
type RetryOpts struct {
	MaxAttempts         int
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	MaxElapsedTime      time.Duration
	Multiplier          float64
	RandomizationFactor float64
}

// DefaultRetryOpts returns the conservative defaults: at most 5 attempts of
// capped exponential backoff with jitter, bounded to one minute overall.
func DefaultRetryOpts() RetryOpts {
	return RetryOpts{
		MaxAttempts:         5,
		InitialInterval:     500 * time.Millisecond,
		MaxInterval:         10 * time.Second,
		MaxElapsedTime:      60 * time.Second,
		Multiplier:          2.0,
		RandomizationFactor: 0.5,
	}
}

func (o RetryOpts) newBackOff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = o.InitialInterval
	bo.MaxInterval = o.MaxInterval
	bo.MaxElapsedTime = o.MaxElapsedTime
	bo.Multiplier = o.Multiplier
	bo.RandomizationFactor = o.RandomizationFactor
	bo.Reset()

	return bo
}

// isTransientStatus reports whether a status code is classified as likely to
// succeed on retry. Non-transient 4xx codes (400, 401, 403, 404, 422, ...)
// are never retried.
func isTransientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

type sleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// execute performs one logical call: up to MaxAttempts physical HTTP
// exchanges, each built fresh via build so the request body can be replayed.
// It returns the first response that is not classified transient (the
// decoder decides success vs API error from its status), the number of
// attempts made, and a terminal error when the policy is exhausted or the
// caller cancels.
func (c *Client) execute(ctx context.Context, build func(context.Context) (*http.Request, error)) (*http.Response, int, error) {
	bo := c.retry.newBackOff()
	start := c.now()

	var (
		lastStatus int
		lastErr    error
	)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, attempt - 1, &CancelledError{Err: err}
		}

		req, err := build(ctx)
		if err != nil {
			return nil, attempt - 1, err
		}

		var hint time.Duration

		res, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, attempt, &CancelledError{Err: ctx.Err()}
			}

			lastErr = err
			lastStatus = 0
		} else if !isTransientStatus(res.StatusCode) {
			return res, attempt, nil
		} else {
			lastErr = nil
			lastStatus = res.StatusCode
			if lastStatus == http.StatusTooManyRequests {
				hint = retryAfterHint(res.Header, c.now())
			}
			drainBody(res)
		}

		if attempt >= c.retry.MaxAttempts {
			return nil, attempt, &TransportError{
				Kind:       transportErrorKind(lastStatus, lastErr),
				Attempts:   attempt,
				LastStatus: lastStatus,
				Err:        lastErr,
			}
		}

		delay := bo.NextBackOff()
		if delay == backoff.Stop {
			return nil, attempt, &TransportError{
				Kind:       transportErrorKind(lastStatus, lastErr),
				Attempts:   attempt,
				LastStatus: lastStatus,
				Err:        lastErr,
			}
		}

		if hint > 0 {
			// A rate limit hint that outlives the elapsed-time budget means
			// waiting cannot help; give up now instead of sleeping through it.
			if c.retry.MaxElapsedTime > 0 && c.now().Sub(start)+hint > c.retry.MaxElapsedTime {
				return nil, attempt, &TransportError{
					Kind:       RateLimitExceeded,
					Attempts:   attempt,
					LastStatus: lastStatus,
				}
			}
			delay = hint
		}

		log.WithFields(log.Fields{
			"attempt":    attempt,
			"delay":      delay,
			"lastStatus": lastStatus,
			"lastErr":    lastErr,
		}).Debug("retrying request after transient failure")

		if err := c.sleep(ctx, delay); err != nil {
			return nil, attempt, &CancelledError{Err: err}
		}
	}
}

func transportErrorKind(lastStatus int, lastErr error) TransportErrorKind {
	if lastStatus == http.StatusTooManyRequests {
		return RateLimitExceeded
	}

	if timeoutErr, ok := lastErr.(interface{ Timeout() bool }); ok && timeoutErr.Timeout() {
		return Timeout
	}

	if lastStatus == http.StatusGatewayTimeout {
		return Timeout
	}

	return ConnectionFailed
}

// retryAfterHint extracts the server-supplied rate limit hint, if any.
// Retry-After is accepted both as delta-seconds and as an HTTP date;
// X-RateLimit-Reset is accepted as a unix timestamp.
func retryAfterHint(header http.Header, now time.Time) time.Duration {
	if v := header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
		if at, err := http.ParseTime(v); err == nil {
			if d := at.Sub(now); d > 0 {
				return d
			}
		}
	}

	if v := header.Get("X-RateLimit-Reset"); v != "" {
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
			if d := time.Unix(epoch, 0).Sub(now); d > 0 {
				return d
			}
		}
	}

	return 0
}

// drainBody fully consumes and closes a response body that will not be
// decoded, so the underlying connection can be reused by the pool.
func drainBody(res *http.Response) {
	if res.Body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}
