package endpoints

import (
	"context"
	"fmt"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// ClockEndpoint serves GET /clock.
type ClockEndpoint struct {
	client *client.Client
}

func NewClockEndpoint(c *client.Client) *ClockEndpoint {
	return &ClockEndpoint{client: c}
}

// Get returns the market clock.
func (e *ClockEndpoint) Get(ctx context.Context) (*models.Clock, error) {
	var clock models.Clock
	if err := e.client.Get(ctx, "/clock", nil, &clock); err != nil {
		return nil, fmt.Errorf("ClockEndpoint.Get: failed to fetch clock: %w", err)
	}

	return &clock, nil
}
