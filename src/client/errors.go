package client

import (
	"fmt"
	"time"
)

// ConfigurationError reports invalid construction inputs. It is surfaced at
// construction time (or as a precondition failure), never retried, and never
// the result of a network exchange.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// TransportErrorKind classifies why the transport gave up.
type TransportErrorKind string

const (
	Timeout           TransportErrorKind = "timeout"
	ConnectionFailed  TransportErrorKind = "connection_failed"
	RateLimitExceeded TransportErrorKind = "rate_limit_exceeded"
)

// TransportError is the terminal outcome of a call whose transient failures
// exhausted the retry policy.
type TransportError struct {
	Kind       TransportErrorKind
	Attempts   int
	LastStatus int // zero when the last attempt never produced a response
	Err        error
}

func (e *TransportError) Error() string {
	if e.LastStatus != 0 {
		return fmt.Sprintf("transport error (%s): gave up after %d attempts, last status %d", e.Kind, e.Attempts, e.LastStatus)
	}

	return fmt.Sprintf("transport error (%s): gave up after %d attempts: %v", e.Kind, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodingError reports a 2xx response whose body did not match the expected
// shape. It is never retried: the exchange succeeded, the contract did not.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding error: %v", e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// APIError is a structured error reported by the remote service, decoded
// from the API's error schema. The remote code and message are preserved
// intact. RetryAfter carries the server's rate limit hint when one was sent.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (HTTP %d, code %d): %s", e.StatusCode, e.Code, e.Message)
}

// UnclassifiedAPIError wraps a non-2xx response whose body did not match the
// API's error schema.
type UnclassifiedAPIError struct {
	StatusCode int
	Body       string
}

func (e *UnclassifiedAPIError) Error() string {
	return fmt.Sprintf("unclassified api error (HTTP %d): %s", e.StatusCode, e.Body)
}

// CancelledError reports that the caller's context was cancelled or its
// deadline expired, aborting an in-flight attempt or a pending backoff
// sleep. It is distinct from TransportError so callers can tell abandonment
// apart from failure.
type CancelledError struct {
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("call cancelled: %v", e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}
