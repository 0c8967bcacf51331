package endpoints

import (
	"context"
	"fmt"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// PortfolioHistoryEndpoint serves GET /account/portfolio/history.
type PortfolioHistoryEndpoint struct {
	client *client.Client
}

func NewPortfolioHistoryEndpoint(c *client.Client) *PortfolioHistoryEndpoint {
	return &PortfolioHistoryEndpoint{client: c}
}

// PortfolioHistoryRequest selects the period and resolution of the series.
type PortfolioHistoryRequest struct {
	Period        string `schema:"period,omitempty"`
	Timeframe     string `schema:"timeframe,omitempty"`
	DateEnd       string `schema:"date_end,omitempty"`
	ExtendedHours bool   `schema:"extended_hours,omitempty"`
}

// Get returns the account's equity/profit-loss time series.
func (e *PortfolioHistoryEndpoint) Get(ctx context.Context, req PortfolioHistoryRequest) (*models.PortfolioHistory, error) {
	query, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("PortfolioHistoryEndpoint.Get: failed to encode query: %w", err)
	}

	var history models.PortfolioHistory
	if err := e.client.Get(ctx, "/account/portfolio/history", query, &history); err != nil {
		return nil, fmt.Errorf("PortfolioHistoryEndpoint.Get: failed to fetch portfolio history: %w", err)
	}

	return &history, nil
}
