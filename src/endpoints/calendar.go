package endpoints

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// CalendarEndpoint serves GET /calendar.
type CalendarEndpoint struct {
	client *client.Client
}

func NewCalendarEndpoint(c *client.Client) *CalendarEndpoint {
	return &CalendarEndpoint{client: c}
}

// Get returns the trading sessions between start and end (inclusive). Zero
// times are omitted, in which case the API applies its own defaults.
func (e *CalendarEndpoint) Get(ctx context.Context, start, end time.Time) ([]models.CalendarDay, error) {
	query := url.Values{}
	if !start.IsZero() {
		query.Set("start", start.Format("2006-01-02"))
	}
	if !end.IsZero() {
		query.Set("end", end.Format("2006-01-02"))
	}

	var days []models.CalendarDay
	if err := e.client.Get(ctx, "/calendar", query, &days); err != nil {
		return nil, fmt.Errorf("CalendarEndpoint.Get: failed to fetch calendar: %w", err)
	}

	return days, nil
}
