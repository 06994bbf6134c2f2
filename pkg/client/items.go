package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListItems retrieves items with optional filters. The remote wraps list
// results in an {"items": [...]} envelope, which is unwrapped here so
// callers always receive a plain slice; a bare array response is also
// accepted. Zero matches yield an empty slice, not an error.
func (c *Client) ListItems(ctx context.Context, opts *ListItemsOptions) ([]Item, error) {
	var query url.Values
	if opts != nil {
		query = make(url.Values)
		if opts.LocationID != "" {
			query.Set("locations", opts.LocationID)
		}
		if opts.LabelID != "" {
			query.Set("labels", opts.LabelID)
		}
		if opts.Search != "" {
			query.Set("q", opts.Search)
		}
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/items", query, nil, &raw); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	var env itemsEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Items != nil {
		return env.Items, nil
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("listing items: decoding response: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// GetItem retrieves a specific item with its full details.
func (c *Client) GetItem(ctx context.Context, itemID string) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, "/items/"+url.PathEscape(itemID), nil, nil, &item); err != nil {
		return nil, fmt.Errorf("getting item %q: %w", itemID, err)
	}
	return &item, nil
}

// CreateItem creates a new item in the given location.
func (c *Client) CreateItem(ctx context.Context, create ItemCreate) (*Item, error) {
	if create.Quantity <= 0 {
		create.Quantity = 1
	}
	var item Item
	if err := c.do(ctx, http.MethodPost, "/items", nil, create, &item); err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies a partial update to an item. The remote's update
// endpoint expects a full record, so the current item is fetched first
// and merged with the patch: unsupplied core fields carry over, labels
// are replaced only when supplied, and extended fields are sent only
// when explicitly set. If the fetch fails, the whole update fails and
// the write is never attempted.
func (c *Client) UpdateItem(ctx context.Context, itemID string, patch ItemPatch) (*Item, error) {
	current, err := c.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("updating item %q: %w", itemID, err)
	}

	update := mergeItemPatch(current, patch)
	update.ID = itemID

	var item Item
	if err := c.do(ctx, http.MethodPut, "/items/"+url.PathEscape(itemID), nil, update, &item); err != nil {
		return nil, fmt.Errorf("updating item %q: %w", itemID, err)
	}
	return &item, nil
}

// MoveItem moves an item to a different location. It is an item update
// with only the location set.
func (c *Client) MoveItem(ctx context.Context, itemID, locationID string) (*Item, error) {
	return c.UpdateItem(ctx, itemID, ItemPatch{LocationID: &locationID})
}

// DeleteItem deletes an item permanently.
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	if err := c.do(ctx, http.MethodDelete, "/items/"+url.PathEscape(itemID), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting item %q: %w", itemID, err)
	}
	return nil
}
