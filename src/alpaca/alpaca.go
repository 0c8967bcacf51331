// Package alpaca composes the endpoint groups behind a single API facade.
// One API value is typically constructed at application startup and shared
// for the process lifetime; it owns the two long-lived clients (broker and
// data) that every endpoint group delegates its transport to.
package alpaca

import (
	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/endpoints"
)

// API is the composed facade over every endpoint group. All accessors return
// singletons bound at construction time; the market data accessor returns
// nil when the API was constructed with OAuth credentials, since the data
// API does not accept OAuth tokens.
type API struct {
	brokerClient *client.Client
	dataClient   *client.Client

	account              *endpoints.AccountEndpoint
	marketData           *endpoints.MarketDataEndpoint
	orders               *endpoints.OrdersEndpoint
	positions            *endpoints.PositionsEndpoint
	assets               *endpoints.AssetsEndpoint
	watchlists           *endpoints.WatchlistsEndpoint
	calendar             *endpoints.CalendarEndpoint
	clock                *endpoints.ClockEndpoint
	accountConfiguration *endpoints.AccountConfigurationEndpoint
	accountActivities    *endpoints.AccountActivitiesEndpoint
	portfolioHistory     *endpoints.PortfolioHistoryEndpoint
}

// New creates an API authenticated with a key pair. Both the broker client
// and the data client are constructed; dataType selects the default market
// data feed.
func New(keyID, secretKey string, endpointType client.EndpointAPIType, dataType client.DataAPIType, opts ...client.Option) (*API, error) {
	return newAPI(client.KeyPair{KeyID: keyID, Secret: secretKey}, endpointType, dataType, opts...)
}

// NewWithOAuth creates an API authenticated with an OAuth bearer token. The
// data client is not constructed: market data operations are unavailable in
// this mode and MarketData returns nil.
func NewWithOAuth(oauthToken string, endpointType client.EndpointAPIType, opts ...client.Option) (*API, error) {
	return newAPI(client.OAuth{Token: oauthToken}, endpointType, 0, opts...)
}

func newAPI(credentials client.Credentials, endpointType client.EndpointAPIType, dataType client.DataAPIType, opts ...client.Option) (*API, error) {
	brokerSubdomain, err := endpointType.Subdomain()
	if err != nil {
		return nil, err
	}

	brokerClient, err := client.New(credentials, brokerSubdomain, opts...)
	if err != nil {
		return nil, err
	}

	api := &API{brokerClient: brokerClient}

	if _, isOAuth := credentials.(client.OAuth); !isOAuth {
		dataClient, err := client.New(credentials, client.DataHostSubdomain, opts...)
		if err != nil {
			return nil, err
		}

		marketData, err := endpoints.NewMarketDataEndpoint(dataClient, dataType)
		if err != nil {
			return nil, err
		}

		api.dataClient = dataClient
		api.marketData = marketData
	}

	api.account = endpoints.NewAccountEndpoint(brokerClient)
	api.orders = endpoints.NewOrdersEndpoint(brokerClient)
	api.positions = endpoints.NewPositionsEndpoint(brokerClient)
	api.assets = endpoints.NewAssetsEndpoint(brokerClient)
	api.watchlists = endpoints.NewWatchlistsEndpoint(brokerClient)
	api.calendar = endpoints.NewCalendarEndpoint(brokerClient)
	api.clock = endpoints.NewClockEndpoint(brokerClient)
	api.accountConfiguration = endpoints.NewAccountConfigurationEndpoint(brokerClient)
	api.accountActivities = endpoints.NewAccountActivitiesEndpoint(brokerClient)
	api.portfolioHistory = endpoints.NewPortfolioHistoryEndpoint(brokerClient)

	return api, nil
}

func (a *API) Account() *endpoints.AccountEndpoint { return a.account }

// MarketData returns nil when the API was constructed with OAuth
// credentials. Calls on the nil endpoint fail fast with a precondition
// error rather than attempting a network call.
func (a *API) MarketData() *endpoints.MarketDataEndpoint { return a.marketData }

func (a *API) Orders() *endpoints.OrdersEndpoint { return a.orders }

func (a *API) Positions() *endpoints.PositionsEndpoint { return a.positions }

func (a *API) Assets() *endpoints.AssetsEndpoint { return a.assets }

func (a *API) Watchlists() *endpoints.WatchlistsEndpoint { return a.watchlists }

func (a *API) Calendar() *endpoints.CalendarEndpoint { return a.calendar }

func (a *API) Clock() *endpoints.ClockEndpoint { return a.clock }

func (a *API) AccountConfiguration() *endpoints.AccountConfigurationEndpoint {
	return a.accountConfiguration
}

func (a *API) AccountActivities() *endpoints.AccountActivitiesEndpoint {
	return a.accountActivities
}

func (a *API) PortfolioHistory() *endpoints.PortfolioHistoryEndpoint {
	return a.portfolioHistory
}

// BrokerClient returns the underlying broker client.
func (a *API) BrokerClient() *client.Client { return a.brokerClient }

// DataClient returns the underlying data client, or nil under OAuth.
func (a *API) DataClient() *client.Client { return a.dataClient }
