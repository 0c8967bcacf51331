package alpaca

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/alpaca-go/src/client"
)

func TestNewWithKeyPair(t *testing.T) {
	api, err := New("key-id", "secret", client.Paper, client.IEX)
	require.NoError(t, err)

	assert.Equal(t, "paper-api", api.BrokerClient().Config().HostSubdomain())
	require.NotNil(t, api.DataClient())
	assert.Equal(t, "data", api.DataClient().Config().HostSubdomain())

	assert.NotNil(t, api.Account())
	assert.NotNil(t, api.MarketData())
	assert.NotNil(t, api.Orders())
	assert.NotNil(t, api.Positions())
	assert.NotNil(t, api.Assets())
	assert.NotNil(t, api.Watchlists())
	assert.NotNil(t, api.Calendar())
	assert.NotNil(t, api.Clock())
	assert.NotNil(t, api.AccountConfiguration())
	assert.NotNil(t, api.AccountActivities())
	assert.NotNil(t, api.PortfolioHistory())
}

func TestNewRoutesLiveTrading(t *testing.T) {
	api, err := New("key-id", "secret", client.Live, client.SIP)
	require.NoError(t, err)

	assert.Equal(t, "live", api.BrokerClient().Config().HostSubdomain())
}

func TestNewRejectsIncompleteCredentials(t *testing.T) {
	_, err := New("key-id", "", client.Paper, client.IEX)

	var configErr *client.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

func TestNewWithOAuth(t *testing.T) {
	api, err := NewWithOAuth("token", client.Paper)
	require.NoError(t, err)

	assert.NotNil(t, api.Orders())
	assert.Nil(t, api.DataClient())
	assert.Nil(t, api.MarketData())
}

func TestOAuthMarketDataFailsFast(t *testing.T) {
	api, err := NewWithOAuth("token", client.Paper)
	require.NoError(t, err)

	// no server is listening anywhere; the call must fail on the
	// precondition before ever dialing
	_, callErr := api.MarketData().Snapshot(context.Background(), "AAPL")

	var configErr *client.ConfigurationError
	require.ErrorAs(t, callErr, &configErr)
}
