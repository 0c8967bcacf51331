package client

import (
	"net/http"
)

const (
	keyIDHeader     = "APCA-API-KEY-ID"
	secretKeyHeader = "APCA-API-SECRET-KEY"
	authHeader      = "Authorization"
)

// Credentials is the authentication mode of a Client. Exactly two
// implementations exist: KeyPair and OAuth. The interface is sealed so the
// mutual exclusivity of the two modes is enforced by the type system rather
// than checked at call time.
type Credentials interface {
	// apply stamps the auth headers for this mode onto the request.
	apply(req *http.Request)

	validate() error
}

// KeyPair authenticates with an API key ID and secret key, sent as two
// separate headers on every request.
type KeyPair struct {
	KeyID  string
	Secret string
}

func (k KeyPair) apply(req *http.Request) {
	req.Header.Set(keyIDHeader, k.KeyID)
	req.Header.Set(secretKeyHeader, k.Secret)
}

func (k KeyPair) validate() error {
	if k.KeyID == "" || k.Secret == "" {
		return &ConfigurationError{Reason: "key pair credentials require both a key ID and a secret key"}
	}

	return nil
}

// OAuth authenticates with a single bearer token. The market data API does
// not accept OAuth tokens, so a Client built with OAuth credentials may only
// serve the broker host.
type OAuth struct {
	Token string
}

func (o OAuth) apply(req *http.Request) {
	req.Header.Set(authHeader, "Bearer "+o.Token)
}

func (o OAuth) validate() error {
	if o.Token == "" {
		return &ConfigurationError{Reason: "OAuth credentials require a non-empty token"}
	}

	return nil
}
