package endpoints

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// AccountActivitiesEndpoint serves /account/activities.
type AccountActivitiesEndpoint struct {
	client *client.Client
}

func NewAccountActivitiesEndpoint(c *client.Client) *AccountActivitiesEndpoint {
	return &AccountActivitiesEndpoint{client: c}
}

// AccountActivitiesRequest filters and pages the activities listing.
type AccountActivitiesRequest struct {
	ActivityTypes []string  `schema:"-"`
	Date          string    `schema:"date,omitempty"`
	Until         time.Time `schema:"until,omitempty"`
	After         time.Time `schema:"after,omitempty"`
	Direction     string    `schema:"direction,omitempty"`
	PageSize      int       `schema:"page_size,omitempty"`
	PageToken     string    `schema:"page_token,omitempty"`
}

// List returns account activities across all (or the requested) types.
func (e *AccountActivitiesEndpoint) List(ctx context.Context, req AccountActivitiesRequest) ([]models.AccountActivity, error) {
	query, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("AccountActivitiesEndpoint.List: failed to encode query: %w", err)
	}
	if len(req.ActivityTypes) > 0 {
		query.Set("activity_types", strings.Join(req.ActivityTypes, ","))
	}

	var activities []models.AccountActivity
	if err := e.client.Get(ctx, "/account/activities", query, &activities); err != nil {
		return nil, fmt.Errorf("AccountActivitiesEndpoint.List: failed to fetch activities: %w", err)
	}

	return activities, nil
}

// ListByType returns account activities of one type (e.g. "FILL", "DIV").
func (e *AccountActivitiesEndpoint) ListByType(ctx context.Context, activityType string, req AccountActivitiesRequest) ([]models.AccountActivity, error) {
	query, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("AccountActivitiesEndpoint.ListByType: failed to encode query: %w", err)
	}

	var activities []models.AccountActivity
	if err := e.client.Get(ctx, "/account/activities/"+activityType, query, &activities); err != nil {
		return nil, fmt.Errorf("AccountActivitiesEndpoint.ListByType: failed to fetch %s activities: %w", activityType, err)
	}

	return activities, nil
}
