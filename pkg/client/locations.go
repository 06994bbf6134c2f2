package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListLocations retrieves all locations in the remote's order.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := c.do(ctx, http.MethodGet, "/locations", nil, nil, &locations); err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return locations, nil
}

// GetLocation retrieves a specific location by ID.
func (c *Client) GetLocation(ctx context.Context, locationID string) (*Location, error) {
	var location Location
	if err := c.do(ctx, http.MethodGet, "/locations/"+url.PathEscape(locationID), nil, nil, &location); err != nil {
		return nil, fmt.Errorf("getting location %q: %w", locationID, err)
	}
	return &location, nil
}

// CreateLocation creates a new location. Optional fields left empty are
// omitted from the request body.
func (c *Client) CreateLocation(ctx context.Context, create LocationCreate) (*Location, error) {
	var location Location
	if err := c.do(ctx, http.MethodPost, "/locations", nil, create, &location); err != nil {
		return nil, fmt.Errorf("creating location: %w", err)
	}
	return &location, nil
}

// UpdateLocation applies a partial update to a location.
func (c *Client) UpdateLocation(ctx context.Context, locationID string, update LocationUpdate) (*Location, error) {
	var location Location
	if err := c.do(ctx, http.MethodPut, "/locations/"+url.PathEscape(locationID), nil, update, &location); err != nil {
		return nil, fmt.Errorf("updating location %q: %w", locationID, err)
	}
	return &location, nil
}

// DeleteLocation deletes a location. The remote rejects locations that
// still hold items or child locations.
func (c *Client) DeleteLocation(ctx context.Context, locationID string) error {
	if err := c.do(ctx, http.MethodDelete, "/locations/"+url.PathEscape(locationID), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting location %q: %w", locationID, err)
	}
	return nil
}
