package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Locations
	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_list_locations",
		Description: "List all inventory locations, including hierarchy via parent_id and per-location item counts.",
	}, ToolListLocations(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_get_location",
		Description: "Get details of a specific location.",
	}, ToolGetLocation(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_create_location",
		Description: "Create a new location where items can be stored, such as a room, cabinet, or drawer. Pass parent_id to nest it under an existing location.",
	}, ToolCreateLocation(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_update_location",
		Description: "Update an existing location. Only the supplied fields change.",
	}, ToolUpdateLocation(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_delete_location",
		Description: "Delete a location. Fails if the location still holds items or child locations.",
	}, ToolDeleteLocation(d))

	// Items
	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_list_items",
		Description: "List inventory items, optionally filtered by location, label, or a free-text search over names and descriptions.",
	}, ToolListItems(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_get_item",
		Description: "Get the full details of a specific item, including serial number, manufacturer, purchase price, and notes.",
	}, ToolGetItem(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_search",
		Description: "Search items by free text across names and descriptions.",
	}, ToolSearch(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_create_item",
		Description: "Create a new inventory item in a location, optionally with a description, quantity, and labels.",
	}, ToolCreateItem(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_update_item",
		Description: "Update fields of an existing item. Only the supplied fields change; omitted fields keep their current values.",
	}, ToolUpdateItem(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_move_item",
		Description: "Move an item to a different location.",
	}, ToolMoveItem(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_delete_item",
		Description: "Delete an item from the inventory. This is permanent.",
	}, ToolDeleteItem(d))

	// Labels
	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_list_labels",
		Description: "List all labels used to categorize items.",
	}, ToolListLabels(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_get_label",
		Description: "Get details of a specific label.",
	}, ToolGetLabel(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_create_label",
		Description: "Create a new label for categorizing items, e.g. Electronics, Tools, Documents.",
	}, ToolCreateLabel(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_update_label",
		Description: "Update an existing label. Only the supplied fields change.",
	}, ToolUpdateLabel(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_delete_label",
		Description: "Delete a label. Items carrying it are kept and just lose the label.",
	}, ToolDeleteLabel(d))

	// Statistics
	AddTool(srv, &sdkmcp.Tool{
		Name:        "homebox_get_statistics",
		Description: "Get aggregate inventory statistics: counts and totals reported by the Homebox instance.",
	}, ToolGetStatistics(d))
}
