package endpoints

import (
	"context"
	"fmt"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// AccountEndpoint serves GET /account.
type AccountEndpoint struct {
	client *client.Client
}

func NewAccountEndpoint(c *client.Client) *AccountEndpoint {
	return &AccountEndpoint{client: c}
}

// Get returns the account the credentials belong to.
func (e *AccountEndpoint) Get(ctx context.Context) (*models.Account, error) {
	var account models.Account
	if err := e.client.Get(ctx, "/account", nil, &account); err != nil {
		return nil, fmt.Errorf("AccountEndpoint.Get: failed to fetch account: %w", err)
	}

	return &account, nil
}
