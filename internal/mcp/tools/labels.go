package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oangelo/homebox-mcp/pkg/client"
)

// LabelInfo is the simplified label shape returned by tools.
type LabelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	ItemCount   int    `json:"item_count"`
}

func labelInfoFrom(label *client.Label) LabelInfo {
	return LabelInfo{
		ID:          label.ID,
		Name:        label.Name,
		Description: label.Description,
		Color:       label.Color,
		ItemCount:   label.ItemCount,
	}
}

// ListLabelsInput is the input for homebox_list_labels.
type ListLabelsInput struct{}

// ListLabelsOutput is the output for homebox_list_labels.
type ListLabelsOutput struct {
	Labels []LabelInfo `json:"labels,omitzero"`
}

// ToolListLabels lists all labels.
func ToolListLabels(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListLabelsInput) (*sdkmcp.CallToolResult, ListLabelsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListLabelsInput) (*sdkmcp.CallToolResult, ListLabelsOutput, error) {
		labels, err := d.Client.ListLabels(ctx)
		if err != nil {
			return nil, ListLabelsOutput{}, WrapHomeboxError(err)
		}

		output := ListLabelsOutput{Labels: make([]LabelInfo, len(labels))}
		for i := range labels {
			output.Labels[i] = labelInfoFrom(&labels[i])
		}
		return nil, output, nil
	}
}

// GetLabelInput is the input for homebox_get_label.
type GetLabelInput struct {
	LabelID string `json:"label_id" jsonschema:"Label ID (UUID)"`
}

// ToolGetLabel gets details of a specific label.
func ToolGetLabel(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetLabelInput) (*sdkmcp.CallToolResult, LabelInfo, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetLabelInput) (*sdkmcp.CallToolResult, LabelInfo, error) {
		if input.LabelID == "" {
			return nil, LabelInfo{}, ErrInvalidInput("label_id is required")
		}
		label, err := d.Client.GetLabel(ctx, input.LabelID)
		if err != nil {
			return nil, LabelInfo{}, WrapHomeboxError(err)
		}
		return nil, labelInfoFrom(label), nil
	}
}

// CreateLabelInput is the input for homebox_create_label.
type CreateLabelInput struct {
	Name        string `json:"name" jsonschema:"Label name"`
	Description string `json:"description,omitempty" jsonschema:"Optional description"`
	Color       string `json:"color,omitempty" jsonschema:"Color as a hex code, e.g. #FF5733"`
}

// ToolCreateLabel creates a new label.
func ToolCreateLabel(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateLabelInput) (*sdkmcp.CallToolResult, LabelInfo, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateLabelInput) (*sdkmcp.CallToolResult, LabelInfo, error) {
		if input.Name == "" {
			return nil, LabelInfo{}, ErrInvalidInput("name is required")
		}
		label, err := d.Client.CreateLabel(ctx, client.LabelCreate{
			Name:        input.Name,
			Description: input.Description,
			Color:       input.Color,
		})
		if err != nil {
			return nil, LabelInfo{}, WrapHomeboxError(err)
		}
		return nil, labelInfoFrom(label), nil
	}
}

// UpdateLabelInput is the input for homebox_update_label.
type UpdateLabelInput struct {
	LabelID     string  `json:"label_id" jsonschema:"Label ID (UUID)"`
	Name        *string `json:"name,omitempty" jsonschema:"New name"`
	Description *string `json:"description,omitempty" jsonschema:"New description"`
	Color       *string `json:"color,omitempty" jsonschema:"New hex color"`
}

// ToolUpdateLabel updates an existing label.
func ToolUpdateLabel(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input UpdateLabelInput) (*sdkmcp.CallToolResult, LabelInfo, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input UpdateLabelInput) (*sdkmcp.CallToolResult, LabelInfo, error) {
		if input.LabelID == "" {
			return nil, LabelInfo{}, ErrInvalidInput("label_id is required")
		}
		label, err := d.Client.UpdateLabel(ctx, input.LabelID, client.LabelUpdate{
			Name:        input.Name,
			Description: input.Description,
			Color:       input.Color,
		})
		if err != nil {
			return nil, LabelInfo{}, WrapHomeboxError(err)
		}
		return nil, labelInfoFrom(label), nil
	}
}

// DeleteLabelInput is the input for homebox_delete_label.
type DeleteLabelInput struct {
	LabelID string `json:"label_id" jsonschema:"Label ID (UUID). Items keep existing and just lose the label."`
}

// ToolDeleteLabel removes a label.
func ToolDeleteLabel(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteLabelInput) (*sdkmcp.CallToolResult, DeleteOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteLabelInput) (*sdkmcp.CallToolResult, DeleteOutput, error) {
		if input.LabelID == "" {
			return nil, DeleteOutput{}, ErrInvalidInput("label_id is required")
		}
		if err := d.Client.DeleteLabel(ctx, input.LabelID); err != nil {
			return nil, DeleteOutput{}, WrapHomeboxError(err)
		}
		return nil, DeleteOutput{Message: "label " + input.LabelID + " deleted"}, nil
	}
}
