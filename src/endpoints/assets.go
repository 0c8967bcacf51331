package endpoints

import (
	"context"
	"fmt"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// AssetsEndpoint serves the /assets resource.
type AssetsEndpoint struct {
	client *client.Client
}

func NewAssetsEndpoint(c *client.Client) *AssetsEndpoint {
	return &AssetsEndpoint{client: c}
}

// ListAssetsRequest filters GET /assets.
type ListAssetsRequest struct {
	Status     string `schema:"status,omitempty"`
	AssetClass string `schema:"asset_class,omitempty"`
}

// List returns the assets matching the filter.
func (e *AssetsEndpoint) List(ctx context.Context, req ListAssetsRequest) ([]models.Asset, error) {
	query, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("AssetsEndpoint.List: failed to encode query: %w", err)
	}

	var assets []models.Asset
	if err := e.client.Get(ctx, "/assets", query, &assets); err != nil {
		return nil, fmt.Errorf("AssetsEndpoint.List: failed to fetch assets: %w", err)
	}

	return assets, nil
}

// Get returns one asset by symbol or asset ID.
func (e *AssetsEndpoint) Get(ctx context.Context, symbolOrID string) (*models.Asset, error) {
	var asset models.Asset
	if err := e.client.Get(ctx, "/assets/"+symbolOrID, nil, &asset); err != nil {
		return nil, fmt.Errorf("AssetsEndpoint.Get: failed to fetch asset %s: %w", symbolOrID, err)
	}

	return &asset, nil
}
