package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oangelo/homebox-mcp/pkg/client"
)

// LocationInfo is the simplified location shape returned by tools: the
// nested parent reference is flattened to parent_id.
type LocationInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id,omitempty"`
	ItemCount   int    `json:"item_count"`
}

func locationInfoFrom(loc *client.Location) LocationInfo {
	info := LocationInfo{
		ID:          loc.ID,
		Name:        loc.Name,
		Description: loc.Description,
		ItemCount:   loc.ItemCount,
	}
	if loc.Parent != nil {
		info.ParentID = loc.Parent.ID
	}
	return info
}

// ListLocationsInput is the input for homebox_list_locations.
type ListLocationsInput struct{}

// ListLocationsOutput is the output for homebox_list_locations.
type ListLocationsOutput struct {
	Locations []LocationInfo `json:"locations,omitzero"`
}

// ToolListLocations lists all inventory locations.
func ToolListLocations(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListLocationsInput) (*sdkmcp.CallToolResult, ListLocationsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListLocationsInput) (*sdkmcp.CallToolResult, ListLocationsOutput, error) {
		locations, err := d.Client.ListLocations(ctx)
		if err != nil {
			return nil, ListLocationsOutput{}, WrapHomeboxError(err)
		}

		output := ListLocationsOutput{Locations: make([]LocationInfo, len(locations))}
		for i := range locations {
			output.Locations[i] = locationInfoFrom(&locations[i])
		}
		return nil, output, nil
	}
}

// GetLocationInput is the input for homebox_get_location.
type GetLocationInput struct {
	LocationID string `json:"location_id" jsonschema:"Location ID (UUID)"`
}

// ToolGetLocation gets details of a specific location.
func ToolGetLocation(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetLocationInput) (*sdkmcp.CallToolResult, LocationInfo, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetLocationInput) (*sdkmcp.CallToolResult, LocationInfo, error) {
		if input.LocationID == "" {
			return nil, LocationInfo{}, ErrInvalidInput("location_id is required")
		}
		location, err := d.Client.GetLocation(ctx, input.LocationID)
		if err != nil {
			return nil, LocationInfo{}, WrapHomeboxError(err)
		}
		return nil, locationInfoFrom(location), nil
	}
}

// CreateLocationInput is the input for homebox_create_location.
type CreateLocationInput struct {
	Name        string `json:"name" jsonschema:"Location name"`
	Description string `json:"description,omitempty" jsonschema:"Optional description"`
	ParentID    string `json:"parent_id,omitempty" jsonschema:"Parent location ID to build a hierarchy, e.g. a drawer inside a dresser"`
}

// ToolCreateLocation creates a new location.
func ToolCreateLocation(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateLocationInput) (*sdkmcp.CallToolResult, LocationInfo, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateLocationInput) (*sdkmcp.CallToolResult, LocationInfo, error) {
		if input.Name == "" {
			return nil, LocationInfo{}, ErrInvalidInput("name is required")
		}
		location, err := d.Client.CreateLocation(ctx, client.LocationCreate{
			Name:        input.Name,
			Description: input.Description,
			ParentID:    input.ParentID,
		})
		if err != nil {
			return nil, LocationInfo{}, WrapHomeboxError(err)
		}
		return nil, locationInfoFrom(location), nil
	}
}

// UpdateLocationInput is the input for homebox_update_location. Only the
// supplied fields are changed.
type UpdateLocationInput struct {
	LocationID  string  `json:"location_id" jsonschema:"Location ID (UUID)"`
	Name        *string `json:"name,omitempty" jsonschema:"New name"`
	Description *string `json:"description,omitempty" jsonschema:"New description"`
	ParentID    *string `json:"parent_id,omitempty" jsonschema:"New parent location ID"`
}

// ToolUpdateLocation updates an existing location.
func ToolUpdateLocation(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input UpdateLocationInput) (*sdkmcp.CallToolResult, LocationInfo, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input UpdateLocationInput) (*sdkmcp.CallToolResult, LocationInfo, error) {
		if input.LocationID == "" {
			return nil, LocationInfo{}, ErrInvalidInput("location_id is required")
		}
		location, err := d.Client.UpdateLocation(ctx, input.LocationID, client.LocationUpdate{
			Name:        input.Name,
			Description: input.Description,
			ParentID:    input.ParentID,
		})
		if err != nil {
			return nil, LocationInfo{}, WrapHomeboxError(err)
		}
		return nil, locationInfoFrom(location), nil
	}
}

// DeleteLocationInput is the input for homebox_delete_location.
type DeleteLocationInput struct {
	LocationID string `json:"location_id" jsonschema:"Location ID (UUID). The location must not hold items or child locations."`
}

// DeleteOutput is the confirmation returned by all delete tools.
type DeleteOutput struct {
	Message string `json:"message"`
}

// ToolDeleteLocation removes a location.
func ToolDeleteLocation(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteLocationInput) (*sdkmcp.CallToolResult, DeleteOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteLocationInput) (*sdkmcp.CallToolResult, DeleteOutput, error) {
		if input.LocationID == "" {
			return nil, DeleteOutput{}, ErrInvalidInput("location_id is required")
		}
		if err := d.Client.DeleteLocation(ctx, input.LocationID); err != nil {
			return nil, DeleteOutput{}, WrapHomeboxError(err)
		}
		return nil, DeleteOutput{Message: "location " + input.LocationID + " deleted"}, nil
	}
}
