package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oangelo/homebox-mcp/pkg/client"
)

// LocationRef is a flattened {id, name} location reference.
type LocationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LabelRef is a flattened {id, name} label reference.
type LabelRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemInfo is the simplified item shape returned by list and search:
// location and labels flattened, absent quantity defaulted to 1, absent
// booleans to false.
type ItemInfo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	Location    *LocationRef `json:"location,omitempty"`
	Labels      []LabelRef   `json:"labels,omitzero"`
	Insured     bool         `json:"insured"`
	Archived    bool         `json:"archived"`
}

// ItemDetail is the full item shape returned by homebox_get_item,
// including the extended attributes.
type ItemDetail struct {
	ItemInfo
	AssetID       string  `json:"asset_id"`
	SerialNumber  string  `json:"serial_number"`
	ModelNumber   string  `json:"model_number"`
	Manufacturer  string  `json:"manufacturer"`
	PurchasePrice float64 `json:"purchase_price"`
	Notes         string  `json:"notes"`
}

func itemInfoFrom(item *client.Item) ItemInfo {
	info := ItemInfo{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    1,
		Insured:     item.Insured,
		Archived:    item.Archived,
	}
	if item.Quantity != nil {
		info.Quantity = *item.Quantity
	}
	if item.Location != nil {
		info.Location = &LocationRef{ID: item.Location.ID, Name: item.Location.Name}
	}
	info.Labels = make([]LabelRef, len(item.Labels))
	for i, label := range item.Labels {
		info.Labels[i] = LabelRef{ID: label.ID, Name: label.Name}
	}
	return info
}

func itemDetailFrom(item *client.Item) ItemDetail {
	return ItemDetail{
		ItemInfo:      itemInfoFrom(item),
		AssetID:       item.AssetID,
		SerialNumber:  item.SerialNumber,
		ModelNumber:   item.ModelNumber,
		Manufacturer:  item.Manufacturer,
		PurchasePrice: item.PurchasePrice,
		Notes:         item.Notes,
	}
}

// ListItemsInput is the input for homebox_list_items.
type ListItemsInput struct {
	LocationID string `json:"location_id,omitempty" jsonschema:"Filter by location ID (UUID)"`
	LabelID    string `json:"label_id,omitempty" jsonschema:"Filter by label ID (UUID)"`
	Search     string `json:"search,omitempty" jsonschema:"Free-text search over item names and descriptions"`
}

// ListItemsOutput is the output for homebox_list_items and
// homebox_search.
type ListItemsOutput struct {
	Items []ItemInfo `json:"items,omitzero"`
}

// ToolListItems lists items with optional filters.
func ToolListItems(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListItemsInput) (*sdkmcp.CallToolResult, ListItemsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListItemsInput) (*sdkmcp.CallToolResult, ListItemsOutput, error) {
		items, err := d.Client.ListItems(ctx, &client.ListItemsOptions{
			LocationID: input.LocationID,
			LabelID:    input.LabelID,
			Search:     input.Search,
		})
		if err != nil {
			return nil, ListItemsOutput{}, WrapHomeboxError(err)
		}
		return nil, itemListOutput(items), nil
	}
}

// SearchInput is the input for homebox_search.
type SearchInput struct {
	Query string `json:"query" jsonschema:"Search term matched against item names and descriptions"`
}

// ToolSearch is a free-text search over items; a convenience alias for
// listing with only the search filter set.
func ToolSearch(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, ListItemsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, ListItemsOutput, error) {
		if input.Query == "" {
			return nil, ListItemsOutput{}, ErrInvalidInput("query is required")
		}
		items, err := d.Client.ListItems(ctx, &client.ListItemsOptions{Search: input.Query})
		if err != nil {
			return nil, ListItemsOutput{}, WrapHomeboxError(err)
		}
		return nil, itemListOutput(items), nil
	}
}

func itemListOutput(items []client.Item) ListItemsOutput {
	output := ListItemsOutput{Items: make([]ItemInfo, len(items))}
	for i := range items {
		output.Items[i] = itemInfoFrom(&items[i])
	}
	return output
}

// GetItemInput is the input for homebox_get_item.
type GetItemInput struct {
	ItemID string `json:"item_id" jsonschema:"Item ID (UUID)"`
}

// ToolGetItem gets the full details of a specific item.
func ToolGetItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetItemInput) (*sdkmcp.CallToolResult, ItemDetail, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetItemInput) (*sdkmcp.CallToolResult, ItemDetail, error) {
		if input.ItemID == "" {
			return nil, ItemDetail{}, ErrInvalidInput("item_id is required")
		}
		item, err := d.Client.GetItem(ctx, input.ItemID)
		if err != nil {
			return nil, ItemDetail{}, WrapHomeboxError(err)
		}
		return nil, itemDetailFrom(item), nil
	}
}

// CreateItemInput is the input for homebox_create_item.
type CreateItemInput struct {
	Name        string   `json:"name" jsonschema:"Item name"`
	LocationID  string   `json:"location_id" jsonschema:"Location ID (UUID) where the item is stored"`
	Description string   `json:"description,omitempty" jsonschema:"Optional description"`
	Quantity    *int     `json:"quantity,omitempty" jsonschema:"Quantity (default: 1)"`
	LabelIDs    []string `json:"label_ids,omitempty" jsonschema:"Label IDs (UUIDs) to attach"`
}

// ToolCreateItem creates a new inventory item.
func ToolCreateItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateItemInput) (*sdkmcp.CallToolResult, ItemDetail, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateItemInput) (*sdkmcp.CallToolResult, ItemDetail, error) {
		if input.Name == "" {
			return nil, ItemDetail{}, ErrInvalidInput("name is required")
		}
		if input.LocationID == "" {
			return nil, ItemDetail{}, ErrInvalidInput("location_id is required")
		}

		create := client.ItemCreate{
			Name:        input.Name,
			LocationID:  input.LocationID,
			Description: input.Description,
			Quantity:    1,
			LabelIDs:    input.LabelIDs,
		}
		if input.Quantity != nil {
			create.Quantity = *input.Quantity
		}

		item, err := d.Client.CreateItem(ctx, create)
		if err != nil {
			return nil, ItemDetail{}, WrapHomeboxError(err)
		}
		return nil, itemDetailFrom(item), nil
	}
}

// UpdateItemInput is the input for homebox_update_item. Only the
// supplied fields change; everything else keeps its current value.
type UpdateItemInput struct {
	ItemID        string   `json:"item_id" jsonschema:"Item ID (UUID)"`
	Name          *string  `json:"name,omitempty" jsonschema:"New name"`
	Description   *string  `json:"description,omitempty" jsonschema:"New description"`
	Quantity      *int     `json:"quantity,omitempty" jsonschema:"New quantity"`
	LocationID    *string  `json:"location_id,omitempty" jsonschema:"New location ID (moves the item)"`
	LabelIDs      []string `json:"label_ids,omitempty" jsonschema:"Replacement label IDs; omit to keep current labels"`
	Insured       *bool    `json:"insured,omitempty" jsonschema:"Insurance status"`
	Archived      *bool    `json:"archived,omitempty" jsonschema:"Archive status"`
	AssetID       *string  `json:"asset_id,omitempty" jsonschema:"Asset ID"`
	SerialNumber  *string  `json:"serial_number,omitempty" jsonschema:"Serial number"`
	ModelNumber   *string  `json:"model_number,omitempty" jsonschema:"Model number"`
	Manufacturer  *string  `json:"manufacturer,omitempty" jsonschema:"Manufacturer"`
	PurchasePrice *float64 `json:"purchase_price,omitempty" jsonschema:"Purchase price"`
	Notes         *string  `json:"notes,omitempty" jsonschema:"Notes"`
}

// ToolUpdateItem updates fields of an existing item.
func ToolUpdateItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input UpdateItemInput) (*sdkmcp.CallToolResult, ItemDetail, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input UpdateItemInput) (*sdkmcp.CallToolResult, ItemDetail, error) {
		if input.ItemID == "" {
			return nil, ItemDetail{}, ErrInvalidInput("item_id is required")
		}
		item, err := d.Client.UpdateItem(ctx, input.ItemID, client.ItemPatch{
			Name:          input.Name,
			Description:   input.Description,
			Quantity:      input.Quantity,
			LocationID:    input.LocationID,
			LabelIDs:      input.LabelIDs,
			Insured:       input.Insured,
			Archived:      input.Archived,
			AssetID:       input.AssetID,
			SerialNumber:  input.SerialNumber,
			ModelNumber:   input.ModelNumber,
			Manufacturer:  input.Manufacturer,
			PurchasePrice: input.PurchasePrice,
			Notes:         input.Notes,
		})
		if err != nil {
			return nil, ItemDetail{}, WrapHomeboxError(err)
		}
		return nil, itemDetailFrom(item), nil
	}
}

// MoveItemInput is the input for homebox_move_item.
type MoveItemInput struct {
	ItemID     string `json:"item_id" jsonschema:"Item ID (UUID)"`
	LocationID string `json:"location_id" jsonschema:"New location ID (UUID)"`
}

// ToolMoveItem moves an item to a different location.
func ToolMoveItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MoveItemInput) (*sdkmcp.CallToolResult, ItemDetail, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MoveItemInput) (*sdkmcp.CallToolResult, ItemDetail, error) {
		if input.ItemID == "" {
			return nil, ItemDetail{}, ErrInvalidInput("item_id is required")
		}
		if input.LocationID == "" {
			return nil, ItemDetail{}, ErrInvalidInput("location_id is required")
		}
		item, err := d.Client.MoveItem(ctx, input.ItemID, input.LocationID)
		if err != nil {
			return nil, ItemDetail{}, WrapHomeboxError(err)
		}
		return nil, itemDetailFrom(item), nil
	}
}

// DeleteItemInput is the input for homebox_delete_item.
type DeleteItemInput struct {
	ItemID string `json:"item_id" jsonschema:"Item ID (UUID). Deletion is permanent."`
}

// ToolDeleteItem removes an item permanently.
func ToolDeleteItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteItemInput) (*sdkmcp.CallToolResult, DeleteOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteItemInput) (*sdkmcp.CallToolResult, DeleteOutput, error) {
		if input.ItemID == "" {
			return nil, DeleteOutput{}, ErrInvalidInput("item_id is required")
		}
		if err := d.Client.DeleteItem(ctx, input.ItemID); err != nil {
			return nil, DeleteOutput{}, WrapHomeboxError(err)
		}
		return nil, DeleteOutput{Message: "item " + input.ItemID + " deleted"}, nil
	}
}
