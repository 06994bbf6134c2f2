package client

import (
	"context"
	"fmt"
	"net/http"
)

// GetStatistics retrieves the aggregate inventory statistics. The result
// is returned verbatim; its fields are not interpreted here.
func (c *Client) GetStatistics(ctx context.Context) (map[string]any, error) {
	var stats map[string]any
	if err := c.do(ctx, http.MethodGet, "/groups/statistics", nil, nil, &stats); err != nil {
		return nil, fmt.Errorf("getting statistics: %w", err)
	}
	return stats, nil
}
