package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// infoURI is the static resource describing this server and its tools.
const infoURI = "homebox://info"

// registerResources registers the server info resource.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         infoURI,
		Name:        "Server Info",
		Description: "Overview of the Homebox MCP server and its available tools.",
		MIMEType:    "text/markdown",
	}, s.handleResourceInfo)
}

func (s *Server) handleResourceInfo(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	text := fmt.Sprintf(`# Homebox MCP Server

MCP server connected to the Homebox instance at: %s

## Available Tools

### Locations
- homebox_list_locations - List all locations
- homebox_get_location - Get details of a location
- homebox_create_location - Create a new location
- homebox_update_location - Update a location
- homebox_delete_location - Delete a location

### Items
- homebox_list_items - List items (with filters)
- homebox_get_item - Get full details of an item
- homebox_search - Free-text search over items
- homebox_create_item - Create a new item
- homebox_update_item - Update an item
- homebox_move_item - Move an item to another location
- homebox_delete_item - Delete an item

### Labels
- homebox_list_labels - List all labels
- homebox_get_label - Get details of a label
- homebox_create_label - Create a new label
- homebox_update_label - Update a label
- homebox_delete_label - Delete a label

### Statistics
- homebox_get_statistics - Aggregate inventory statistics
`, s.deps.Config.HomeboxURL)

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      infoURI,
				MIMEType: "text/markdown",
				Text:     text,
			},
		},
	}, nil
}
