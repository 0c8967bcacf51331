package endpoints

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// OrdersEndpoint serves the /orders resource.
type OrdersEndpoint struct {
	client *client.Client
}

func NewOrdersEndpoint(c *client.Client) *OrdersEndpoint {
	return &OrdersEndpoint{client: c}
}

// ListOrdersRequest filters GET /orders. Zero-valued fields are omitted.
type ListOrdersRequest struct {
	Status    string    `schema:"status,omitempty"`
	Limit     int       `schema:"limit,omitempty"`
	After     time.Time `schema:"after,omitempty"`
	Until     time.Time `schema:"until,omitempty"`
	Direction string    `schema:"direction,omitempty"`
	Nested    bool      `schema:"nested,omitempty"`
	Symbols   []string  `schema:"-"`
}

// List returns the orders matching the filter.
func (e *OrdersEndpoint) List(ctx context.Context, req ListOrdersRequest) ([]models.Order, error) {
	query, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("OrdersEndpoint.List: failed to encode query: %w", err)
	}
	if len(req.Symbols) > 0 {
		query.Set("symbols", strings.Join(req.Symbols, ","))
	}

	var orders []models.Order
	if err := e.client.Get(ctx, "/orders", query, &orders); err != nil {
		return nil, fmt.Errorf("OrdersEndpoint.List: failed to fetch orders: %w", err)
	}

	return orders, nil
}

// Get returns one order by its ID.
func (e *OrdersEndpoint) Get(ctx context.Context, orderID string, nested bool) (*models.Order, error) {
	query := url.Values{}
	if nested {
		query.Set("nested", "true")
	}

	var order models.Order
	if err := e.client.Get(ctx, "/orders/"+orderID, query, &order); err != nil {
		return nil, fmt.Errorf("OrdersEndpoint.Get: failed to fetch order %s: %w", orderID, err)
	}

	return &order, nil
}

// GetByClientOrderID returns one order by the caller-assigned client order ID.
func (e *OrdersEndpoint) GetByClientOrderID(ctx context.Context, clientOrderID string) (*models.Order, error) {
	query := url.Values{}
	query.Set("client_order_id", clientOrderID)

	var order models.Order
	if err := e.client.Get(ctx, "/orders:by_client_order_id", query, &order); err != nil {
		return nil, fmt.Errorf("OrdersEndpoint.GetByClientOrderID: failed to fetch order %s: %w", clientOrderID, err)
	}

	return &order, nil
}

// Place submits a new order. When the caller did not assign a client order
// ID one is generated, so the order can always be re-queried via
// GetByClientOrderID even if the response is lost.
func (e *OrdersEndpoint) Place(ctx context.Context, req models.PlaceOrderRequest) (*models.Order, error) {
	if req.ClientOrderID == "" {
		req.ClientOrderID = uuid.NewString()
	}

	var order models.Order
	if err := e.client.Post(ctx, "/orders", req, &order); err != nil {
		return nil, fmt.Errorf("OrdersEndpoint.Place: failed to place order for %s: %w", req.Symbol, err)
	}

	return &order, nil
}

// Replace atomically replaces an open order's updatable parameters.
func (e *OrdersEndpoint) Replace(ctx context.Context, orderID string, req models.ReplaceOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := e.client.Patch(ctx, "/orders/"+orderID, req, &order); err != nil {
		return nil, fmt.Errorf("OrdersEndpoint.Replace: failed to replace order %s: %w", orderID, err)
	}

	return &order, nil
}

// Cancel requests cancellation of one open order.
func (e *OrdersEndpoint) Cancel(ctx context.Context, orderID string) error {
	if err := e.client.Delete(ctx, "/orders/"+orderID, nil, nil); err != nil {
		return fmt.Errorf("OrdersEndpoint.Cancel: failed to cancel order %s: %w", orderID, err)
	}

	return nil
}

// CancelAll requests cancellation of every open order.
func (e *OrdersEndpoint) CancelAll(ctx context.Context) error {
	if err := e.client.Delete(ctx, "/orders", nil, nil); err != nil {
		return fmt.Errorf("OrdersEndpoint.CancelAll: failed to cancel orders: %w", err)
	}

	return nil
}
