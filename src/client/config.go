package client

import (
	"fmt"
)

const (
	apiDomain          = "alpaca.markets"
	apiVersionSegment  = "v2"
	liveHostSubdomain  = "live"
	paperHostSubdomain = "paper-api"
)

// DataHostSubdomain is the host subdomain the data client always routes to,
// regardless of the endpoint API type.
const DataHostSubdomain = "data"

// EndpointAPIType selects the trading deployment target the broker client
// routes to. The zero value is invalid so that an unset type is caught at
// construction time.
type EndpointAPIType int

const (
	endpointAPITypeUnset EndpointAPIType = iota
	Live
	Paper
)

// Subdomain returns the host subdomain for the endpoint type. The mapping is
// a total enumeration: adding a deployment target without extending it is a
// compile-visible change here, not a scattered string.
func (t EndpointAPIType) Subdomain() (string, error) {
	switch t {
	case Live:
		return liveHostSubdomain, nil
	case Paper:
		return paperHostSubdomain, nil
	case endpointAPITypeUnset:
		return "", &ConfigurationError{Reason: "endpoint API type is not set"}
	default:
		return "", &ConfigurationError{Reason: fmt.Sprintf("unknown endpoint API type: %d", t)}
	}
}

func (t EndpointAPIType) String() string {
	switch t {
	case Live:
		return "live"
	case Paper:
		return "paper"
	default:
		return fmt.Sprintf("EndpointAPIType(%d)", t)
	}
}

// ParseEndpointAPIType converts a configuration string ("live" or "paper")
// into an EndpointAPIType.
func ParseEndpointAPIType(s string) (EndpointAPIType, error) {
	switch s {
	case "live":
		return Live, nil
	case "paper":
		return Paper, nil
	default:
		return endpointAPITypeUnset, &ConfigurationError{Reason: fmt.Sprintf("invalid endpoint API type: %q", s)}
	}
}

// DataAPIType selects the market data feed ("iex" or "sip") used as the
// default feed parameter on market data requests. Regardless of the feed,
// the data client always routes to the data host.
type DataAPIType int

const (
	dataAPITypeUnset DataAPIType = iota
	IEX
	SIP
)

// Feed returns the feed query parameter value for the data API type.
func (t DataAPIType) Feed() (string, error) {
	switch t {
	case IEX:
		return "iex", nil
	case SIP:
		return "sip", nil
	case dataAPITypeUnset:
		return "", &ConfigurationError{Reason: "data API type is not set"}
	default:
		return "", &ConfigurationError{Reason: fmt.Sprintf("unknown data API type: %d", t)}
	}
}

func (t DataAPIType) String() string {
	feed, err := t.Feed()
	if err != nil {
		return fmt.Sprintf("DataAPIType(%d)", int(t))
	}

	return feed
}

// ParseDataAPIType converts a configuration string ("iex" or "sip") into a
// DataAPIType.
func ParseDataAPIType(s string) (DataAPIType, error) {
	switch s {
	case "iex":
		return IEX, nil
	case "sip":
		return SIP, nil
	default:
		return dataAPITypeUnset, &ConfigurationError{Reason: fmt.Sprintf("invalid data API type: %q", s)}
	}
}

// Config is the immutable per-client configuration. It is fixed at
// construction and never mutated afterwards, so concurrent calls may read it
// without locking.
type Config struct {
	credentials   Credentials
	hostSubdomain string
	version       string
	baseURL       string // overrides host routing when non-empty (tests, proxies)
}

func newConfig(credentials Credentials, hostSubdomain string) (Config, error) {
	if credentials == nil {
		return Config{}, &ConfigurationError{Reason: "credentials are required: provide either a key pair or an OAuth token"}
	}
	if err := credentials.validate(); err != nil {
		return Config{}, err
	}
	if hostSubdomain == "" {
		return Config{}, &ConfigurationError{Reason: "host subdomain is required"}
	}

	return Config{
		credentials:   credentials,
		hostSubdomain: hostSubdomain,
		version:       apiVersionSegment,
	}, nil
}

// BaseURL returns the fully qualified, versioned base URL all request paths
// are resolved against.
func (c Config) BaseURL() string {
	if c.baseURL != "" {
		return fmt.Sprintf("%s/%s", c.baseURL, c.version)
	}

	return fmt.Sprintf("https://%s.%s/%s", c.hostSubdomain, apiDomain, c.version)
}

// HostSubdomain returns the subdomain the client routes to.
func (c Config) HostSubdomain() string {
	return c.hostSubdomain
}
