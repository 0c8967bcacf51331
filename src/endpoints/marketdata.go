package endpoints

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// MarketDataEndpoint serves the /stocks resources on the data host. Under
// OAuth authentication no data client exists; the facade then exposes a nil
// endpoint, and every method fails fast with a precondition error instead of
// attempting a network call.
type MarketDataEndpoint struct {
	client      *client.Client
	defaultFeed string
}

func NewMarketDataEndpoint(c *client.Client, dataType client.DataAPIType) (*MarketDataEndpoint, error) {
	feed, err := dataType.Feed()
	if err != nil {
		return nil, err
	}

	return &MarketDataEndpoint{client: c, defaultFeed: feed}, nil
}

func (e *MarketDataEndpoint) guard() error {
	if e == nil || e.client == nil {
		return &client.ConfigurationError{Reason: "market data is unavailable: the data client is not constructed under OAuth authentication"}
	}

	return nil
}

// BarsRequest pages through aggregate bars. TimeFrame values follow the API
// ("1Min", "1Hour", "1Day", ...). An empty Feed falls back to the endpoint's
// configured data API type.
type BarsRequest struct {
	TimeFrame  string    `schema:"timeframe,omitempty"`
	Start      time.Time `schema:"start,omitempty"`
	End        time.Time `schema:"end,omitempty"`
	Limit      int       `schema:"limit,omitempty"`
	Adjustment string    `schema:"adjustment,omitempty"`
	Feed       string    `schema:"feed,omitempty"`
	PageToken  string    `schema:"page_token,omitempty"`
}

// TradesRequest and QuotesRequest page through raw ticks.
type TradesRequest struct {
	Start     time.Time `schema:"start,omitempty"`
	End       time.Time `schema:"end,omitempty"`
	Limit     int       `schema:"limit,omitempty"`
	Feed      string    `schema:"feed,omitempty"`
	PageToken string    `schema:"page_token,omitempty"`
}

type QuotesRequest = TradesRequest

func (e *MarketDataEndpoint) query(req interface{}) (url.Values, error) {
	query, err := encodeQuery(req)
	if err != nil {
		return nil, err
	}
	if query.Get("feed") == "" && e.defaultFeed != "" {
		query.Set("feed", e.defaultFeed)
	}

	return query, nil
}

// Bars returns one page of aggregate bars for a symbol.
func (e *MarketDataEndpoint) Bars(ctx context.Context, symbol string, req BarsRequest) (*models.BarsResponse, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}

	query, err := e.query(req)
	if err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.Bars: failed to encode query: %w", err)
	}

	var bars models.BarsResponse
	if err := e.client.Get(ctx, "/stocks/"+symbol+"/bars", query, &bars); err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.Bars: failed to fetch bars for %s: %w", symbol, err)
	}

	return &bars, nil
}

// MultiBars returns one page of aggregate bars for several symbols at once.
func (e *MarketDataEndpoint) MultiBars(ctx context.Context, symbols []string, req BarsRequest) (*models.MultiBarsResponse, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}

	query, err := e.query(req)
	if err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.MultiBars: failed to encode query: %w", err)
	}
	query.Set("symbols", strings.Join(symbols, ","))

	var bars models.MultiBarsResponse
	if err := e.client.Get(ctx, "/stocks/bars", query, &bars); err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.MultiBars: failed to fetch bars: %w", err)
	}

	return &bars, nil
}

// Trades returns one page of historical trades for a symbol.
func (e *MarketDataEndpoint) Trades(ctx context.Context, symbol string, req TradesRequest) (*models.TradesResponse, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}

	query, err := e.query(req)
	if err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.Trades: failed to encode query: %w", err)
	}

	var trades models.TradesResponse
	if err := e.client.Get(ctx, "/stocks/"+symbol+"/trades", query, &trades); err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.Trades: failed to fetch trades for %s: %w", symbol, err)
	}

	return &trades, nil
}

// Quotes returns one page of historical quotes for a symbol.
func (e *MarketDataEndpoint) Quotes(ctx context.Context, symbol string, req QuotesRequest) (*models.QuotesResponse, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}

	query, err := e.query(req)
	if err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.Quotes: failed to encode query: %w", err)
	}

	var quotes models.QuotesResponse
	if err := e.client.Get(ctx, "/stocks/"+symbol+"/quotes", query, &quotes); err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.Quotes: failed to fetch quotes for %s: %w", symbol, err)
	}

	return &quotes, nil
}

// LatestTrade returns the most recent trade for a symbol.
func (e *MarketDataEndpoint) LatestTrade(ctx context.Context, symbol string) (*models.Trade, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}

	var res models.LatestTradeResponse
	if err := e.client.Get(ctx, "/stocks/"+symbol+"/trades/latest", nil, &res); err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.LatestTrade: failed to fetch latest trade for %s: %w", symbol, err)
	}

	return &res.Trade, nil
}

// LatestQuote returns the most recent quote for a symbol.
func (e *MarketDataEndpoint) LatestQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}

	var res models.LatestQuoteResponse
	if err := e.client.Get(ctx, "/stocks/"+symbol+"/quotes/latest", nil, &res); err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.LatestQuote: failed to fetch latest quote for %s: %w", symbol, err)
	}

	return &res.Quote, nil
}

// Snapshot returns the current market snapshot for a symbol.
func (e *MarketDataEndpoint) Snapshot(ctx context.Context, symbol string) (*models.Snapshot, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}

	var snapshot models.Snapshot
	if err := e.client.Get(ctx, "/stocks/"+symbol+"/snapshot", nil, &snapshot); err != nil {
		return nil, fmt.Errorf("MarketDataEndpoint.Snapshot: failed to fetch snapshot for %s: %w", symbol, err)
	}

	return &snapshot, nil
}
