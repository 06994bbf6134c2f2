package client

import "fmt"

// LocationRef is a shallow reference to a location, as embedded in items
// and in a location's parent field.
type LocationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Location is a hierarchical storage place (room, shelf, drawer).
type Location struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Parent      *LocationRef `json:"parent,omitempty"`
	ItemCount   int          `json:"itemCount"`
}

// LabelRef is a shallow reference to a label, as embedded in items.
type LabelRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label is a user-defined tag for categorizing items.
type Label struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	ItemCount   int    `json:"itemCount"`
}

// Item is a tracked inventory object belonging to exactly one location.
//
// Quantity is a pointer so an absent field is distinguishable from an
// explicit zero; callers should treat nil as the conventional default
// of one.
type Item struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Quantity      *int         `json:"quantity,omitempty"`
	Location      *LocationRef `json:"location,omitempty"`
	Labels        []LabelRef   `json:"labels,omitempty"`
	Insured       bool         `json:"insured"`
	Archived      bool         `json:"archived"`
	AssetID       string       `json:"assetId"`
	SerialNumber  string       `json:"serialNumber"`
	ModelNumber   string       `json:"modelNumber"`
	Manufacturer  string       `json:"manufacturer"`
	PurchasePrice float64      `json:"purchasePrice"`
	Notes         string       `json:"notes"`
}

// LocationCreate is the request body for creating a location. Optional
// fields are omitted from the wire entirely when empty, never sent as
// null.
type LocationCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

// LocationUpdate is a partial update for a location; nil fields are left
// untouched by the remote.
type LocationUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

// LabelCreate is the request body for creating a label.
type LabelCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// LabelUpdate is a partial update for a label.
type LabelUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// ItemCreate is the request body for creating an item.
type ItemCreate struct {
	Name        string   `json:"name"`
	LocationID  string   `json:"locationId"`
	Quantity    int      `json:"quantity"`
	Description string   `json:"description,omitempty"`
	LabelIDs    []string `json:"labelIds,omitempty"`
}

// ItemPatch holds the caller-supplied overrides for an item update. Nil
// fields keep their current value (for name, description, quantity, and
// location) or are not sent at all (for the extended fields). A nil
// LabelIDs carries the current labels over; a non-nil slice, including an
// empty one, replaces them wholesale.
type ItemPatch struct {
	Name          *string
	Description   *string
	Quantity      *int
	LocationID    *string
	LabelIDs      []string
	Insured       *bool
	Archived      *bool
	AssetID       *string
	SerialNumber  *string
	ModelNumber   *string
	Manufacturer  *string
	PurchasePrice *float64
	Notes         *string
}

// itemUpdate is the full PUT body sent to the remote. Name, description,
// quantity, and location are always sent; the extended fields only when
// explicitly supplied.
type itemUpdate struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Quantity      int      `json:"quantity"`
	LocationID    string   `json:"locationId"`
	LabelIDs      []string `json:"labelIds,omitzero"`
	Insured       *bool    `json:"insured,omitempty"`
	Archived      *bool    `json:"archived,omitempty"`
	AssetID       *string  `json:"assetId,omitempty"`
	SerialNumber  *string  `json:"serialNumber,omitempty"`
	ModelNumber   *string  `json:"modelNumber,omitempty"`
	Manufacturer  *string  `json:"manufacturer,omitempty"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// ListItemsOptions contains optional filters for listing items.
type ListItemsOptions struct {
	// LocationID filters to items stored in the given location.
	LocationID string
	// LabelID filters to items carrying the given label.
	LabelID string
	// Search is a free-text query over item names and descriptions.
	Search string
}

// itemsEnvelope is the paged wrapper the items list endpoint returns.
type itemsEnvelope struct {
	Items []Item `json:"items"`
}

// loginResponse is the body returned by the login endpoint.
type loginResponse struct {
	Token string `json:"token"`
}

// APIError represents an error response from the Homebox API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("homebox API error %d on %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// errorResponse is the JSON structure for API errors.
type errorResponse struct {
	Error string `json:"error"`
}
