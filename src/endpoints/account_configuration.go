package endpoints

import (
	"context"
	"fmt"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// AccountConfigurationEndpoint serves /account/configurations.
type AccountConfigurationEndpoint struct {
	client *client.Client
}

func NewAccountConfigurationEndpoint(c *client.Client) *AccountConfigurationEndpoint {
	return &AccountConfigurationEndpoint{client: c}
}

// Get returns the current account configuration.
func (e *AccountConfigurationEndpoint) Get(ctx context.Context) (*models.AccountConfigurations, error) {
	var configurations models.AccountConfigurations
	if err := e.client.Get(ctx, "/account/configurations", nil, &configurations); err != nil {
		return nil, fmt.Errorf("AccountConfigurationEndpoint.Get: failed to fetch configurations: %w", err)
	}

	return &configurations, nil
}

// Update applies a partial configuration change and returns the resulting
// configuration.
func (e *AccountConfigurationEndpoint) Update(ctx context.Context, req models.UpdateAccountConfigurationsRequest) (*models.AccountConfigurations, error) {
	var configurations models.AccountConfigurations
	if err := e.client.Patch(ctx, "/account/configurations", req, &configurations); err != nil {
		return nil, fmt.Errorf("AccountConfigurationEndpoint.Update: failed to update configurations: %w", err)
	}

	return &configurations, nil
}
