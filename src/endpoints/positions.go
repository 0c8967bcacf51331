package endpoints

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// PositionsEndpoint serves the /positions resource.
type PositionsEndpoint struct {
	client *client.Client
}

func NewPositionsEndpoint(c *client.Client) *PositionsEndpoint {
	return &PositionsEndpoint{client: c}
}

// List returns all open positions.
func (e *PositionsEndpoint) List(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	if err := e.client.Get(ctx, "/positions", nil, &positions); err != nil {
		return nil, fmt.Errorf("PositionsEndpoint.List: failed to fetch positions: %w", err)
	}

	return positions, nil
}

// Get returns the open position for one symbol.
func (e *PositionsEndpoint) Get(ctx context.Context, symbol string) (*models.Position, error) {
	var position models.Position
	if err := e.client.Get(ctx, "/positions/"+symbol, nil, &position); err != nil {
		return nil, fmt.Errorf("PositionsEndpoint.Get: failed to fetch position %s: %w", symbol, err)
	}

	return &position, nil
}

// ClosePositionRequest liquidates part of a position; at most one of Qty and
// Percentage may be set, both nil closes the whole position.
type ClosePositionRequest struct {
	Qty        *decimal.Decimal
	Percentage *decimal.Decimal
}

// Close liquidates the position for one symbol and returns the closing order.
func (e *PositionsEndpoint) Close(ctx context.Context, symbol string, req ClosePositionRequest) (*models.Order, error) {
	query := url.Values{}
	if req.Qty != nil {
		query.Set("qty", req.Qty.String())
	}
	if req.Percentage != nil {
		query.Set("percentage", req.Percentage.String())
	}

	var order models.Order
	if err := e.client.Delete(ctx, "/positions/"+symbol, query, &order); err != nil {
		return nil, fmt.Errorf("PositionsEndpoint.Close: failed to close position %s: %w", symbol, err)
	}

	return &order, nil
}

// CloseAll liquidates every open position. With cancelOrders, open orders
// are cancelled before liquidation.
func (e *PositionsEndpoint) CloseAll(ctx context.Context, cancelOrders bool) error {
	query := url.Values{}
	if cancelOrders {
		query.Set("cancel_orders", "true")
	}

	if err := e.client.Delete(ctx, "/positions", query, nil); err != nil {
		return fmt.Errorf("PositionsEndpoint.CloseAll: failed to close positions: %w", err)
	}

	return nil
}
