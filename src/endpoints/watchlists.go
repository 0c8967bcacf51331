package endpoints

import (
	"context"
	"fmt"

	"github.com/tradekit/alpaca-go/src/client"
	"github.com/tradekit/alpaca-go/src/models"
)

// WatchlistsEndpoint serves the /watchlists resource.
type WatchlistsEndpoint struct {
	client *client.Client
}

func NewWatchlistsEndpoint(c *client.Client) *WatchlistsEndpoint {
	return &WatchlistsEndpoint{client: c}
}

type watchlistBody struct {
	Name    string   `json:"name,omitempty"`
	Symbols []string `json:"symbols,omitempty"`
}

type addSymbolBody struct {
	Symbol string `json:"symbol"`
}

// List returns all of the account's watchlists (without their assets).
func (e *WatchlistsEndpoint) List(ctx context.Context) ([]models.Watchlist, error) {
	var watchlists []models.Watchlist
	if err := e.client.Get(ctx, "/watchlists", nil, &watchlists); err != nil {
		return nil, fmt.Errorf("WatchlistsEndpoint.List: failed to fetch watchlists: %w", err)
	}

	return watchlists, nil
}

// Create creates a watchlist with an initial set of symbols.
func (e *WatchlistsEndpoint) Create(ctx context.Context, name string, symbols []string) (*models.Watchlist, error) {
	var watchlist models.Watchlist
	if err := e.client.Post(ctx, "/watchlists", watchlistBody{Name: name, Symbols: symbols}, &watchlist); err != nil {
		return nil, fmt.Errorf("WatchlistsEndpoint.Create: failed to create watchlist %q: %w", name, err)
	}

	return &watchlist, nil
}

// Get returns one watchlist, including its assets.
func (e *WatchlistsEndpoint) Get(ctx context.Context, watchlistID string) (*models.Watchlist, error) {
	var watchlist models.Watchlist
	if err := e.client.Get(ctx, "/watchlists/"+watchlistID, nil, &watchlist); err != nil {
		return nil, fmt.Errorf("WatchlistsEndpoint.Get: failed to fetch watchlist %s: %w", watchlistID, err)
	}

	return &watchlist, nil
}

// Update replaces a watchlist's name and/or symbol set.
func (e *WatchlistsEndpoint) Update(ctx context.Context, watchlistID, name string, symbols []string) (*models.Watchlist, error) {
	var watchlist models.Watchlist
	if err := e.client.Put(ctx, "/watchlists/"+watchlistID, watchlistBody{Name: name, Symbols: symbols}, &watchlist); err != nil {
		return nil, fmt.Errorf("WatchlistsEndpoint.Update: failed to update watchlist %s: %w", watchlistID, err)
	}

	return &watchlist, nil
}

// AddSymbol appends one symbol to a watchlist.
func (e *WatchlistsEndpoint) AddSymbol(ctx context.Context, watchlistID, symbol string) (*models.Watchlist, error) {
	var watchlist models.Watchlist
	if err := e.client.Post(ctx, "/watchlists/"+watchlistID, addSymbolBody{Symbol: symbol}, &watchlist); err != nil {
		return nil, fmt.Errorf("WatchlistsEndpoint.AddSymbol: failed to add %s to watchlist %s: %w", symbol, watchlistID, err)
	}

	return &watchlist, nil
}

// RemoveSymbol removes one symbol from a watchlist.
func (e *WatchlistsEndpoint) RemoveSymbol(ctx context.Context, watchlistID, symbol string) error {
	if err := e.client.Delete(ctx, "/watchlists/"+watchlistID+"/"+symbol, nil, nil); err != nil {
		return fmt.Errorf("WatchlistsEndpoint.RemoveSymbol: failed to remove %s from watchlist %s: %w", symbol, watchlistID, err)
	}

	return nil
}

// Delete removes the whole watchlist.
func (e *WatchlistsEndpoint) Delete(ctx context.Context, watchlistID string) error {
	if err := e.client.Delete(ctx, "/watchlists/"+watchlistID, nil, nil); err != nil {
		return fmt.Errorf("WatchlistsEndpoint.Delete: failed to delete watchlist %s: %w", watchlistID, err)
	}

	return nil
}
