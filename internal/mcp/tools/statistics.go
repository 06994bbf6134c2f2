package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetStatisticsInput is the input for homebox_get_statistics.
type GetStatisticsInput struct{}

// ToolGetStatistics returns the remote's aggregate inventory statistics
// verbatim; the fields are whatever the Homebox instance reports.
func ToolGetStatistics(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetStatisticsInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetStatisticsInput) (*sdkmcp.CallToolResult, any, error) {
		stats, err := d.Client.GetStatistics(ctx)
		if err != nil {
			return nil, nil, WrapHomeboxError(err)
		}
		return nil, stats, nil
	}
}
