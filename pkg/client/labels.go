package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListLabels retrieves all labels in the remote's order.
func (c *Client) ListLabels(ctx context.Context) ([]Label, error) {
	var labels []Label
	if err := c.do(ctx, http.MethodGet, "/labels", nil, nil, &labels); err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	return labels, nil
}

// GetLabel retrieves a specific label by ID.
func (c *Client) GetLabel(ctx context.Context, labelID string) (*Label, error) {
	var label Label
	if err := c.do(ctx, http.MethodGet, "/labels/"+url.PathEscape(labelID), nil, nil, &label); err != nil {
		return nil, fmt.Errorf("getting label %q: %w", labelID, err)
	}
	return &label, nil
}

// CreateLabel creates a new label.
func (c *Client) CreateLabel(ctx context.Context, create LabelCreate) (*Label, error) {
	var label Label
	if err := c.do(ctx, http.MethodPost, "/labels", nil, create, &label); err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}
	return &label, nil
}

// UpdateLabel applies a partial update to a label.
func (c *Client) UpdateLabel(ctx context.Context, labelID string, update LabelUpdate) (*Label, error) {
	var label Label
	if err := c.do(ctx, http.MethodPut, "/labels/"+url.PathEscape(labelID), nil, update, &label); err != nil {
		return nil, fmt.Errorf("updating label %q: %w", labelID, err)
	}
	return &label, nil
}

// DeleteLabel deletes a label. Items carrying it keep existing and just
// lose the label.
func (c *Client) DeleteLabel(ctx context.Context, labelID string) error {
	if err := c.do(ctx, http.MethodDelete, "/labels/"+url.PathEscape(labelID), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting label %q: %w", labelID, err)
	}
	return nil
}
