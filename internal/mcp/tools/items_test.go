package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oangelo/homebox-mcp/pkg/client"
)

func TestItemInfoFrom_reshapes(t *testing.T) {
	qty := 4
	item := &client.Item{
		ID:          "item-1",
		Name:        "Drill",
		Description: "Cordless",
		Quantity:    &qty,
		Location:    &client.LocationRef{ID: "loc-1", Name: "Garage"},
		Labels: []client.LabelRef{
			{ID: "label-1", Name: "Tools"},
			{ID: "label-2", Name: "Electric"},
		},
		Insured: true,
	}

	info := itemInfoFrom(item)
	assert.Equal(t, 4, info.Quantity)
	require.NotNil(t, info.Location)
	assert.Equal(t, "Garage", info.Location.Name)
	assert.Equal(t, []LabelRef{{ID: "label-1", Name: "Tools"}, {ID: "label-2", Name: "Electric"}}, info.Labels)
	assert.True(t, info.Insured)
	assert.False(t, info.Archived)
}

func TestItemInfoFrom_defaultsMissingQuantityToOne(t *testing.T) {
	info := itemInfoFrom(&client.Item{ID: "item-1", Name: "Drill"})
	assert.Equal(t, 1, info.Quantity)
	assert.Nil(t, info.Location)
	assert.Empty(t, info.Labels)
}

func TestToolListItems_passesFilters(t *testing.T) {
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "loc-1", r.URL.Query().Get("locations"))
		assert.Equal(t, "label-1", r.URL.Query().Get("labels"))
		assert.Equal(t, "drill", r.URL.Query().Get("q"))
		json.NewEncoder(w).Encode(map[string]any{"items": []client.Item{{ID: "item-1", Name: "Drill"}}})
	}))

	_, output, err := ToolListItems(d)(context.Background(), nil, ListItemsInput{
		LocationID: "loc-1",
		LabelID:    "label-1",
		Search:     "drill",
	})
	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, "Drill", output.Items[0].Name)
}

func TestToolListItems_emptyResultIsNotAnError(t *testing.T) {
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"items": []client.Item{}})
	}))

	_, output, err := ToolListItems(d)(context.Background(), nil, ListItemsInput{})
	require.NoError(t, err)
	assert.NotNil(t, output.Items)
	assert.Empty(t, output.Items)
}

func TestToolSearch_requiresQuery(t *testing.T) {
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for invalid input")
	}))

	_, _, err := ToolSearch(d)(context.Background(), nil, SearchInput{})
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
}

func TestToolGetItem_fullDetail(t *testing.T) {
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.Item{
			ID:            "item-1",
			Name:          "Drill",
			SerialNumber:  "SN-1",
			Manufacturer:  "Bosch",
			PurchasePrice: 129.90,
			Notes:         "spare battery in drawer",
		})
	}))

	_, detail, err := ToolGetItem(d)(context.Background(), nil, GetItemInput{ItemID: "item-1"})
	require.NoError(t, err)
	assert.Equal(t, "SN-1", detail.SerialNumber)
	assert.Equal(t, "Bosch", detail.Manufacturer)
	assert.InDelta(t, 129.90, detail.PurchasePrice, 0.001)
	assert.Equal(t, 1, detail.Quantity)
}

func TestToolMoveItem_updatesLocationOnly(t *testing.T) {
	var putBody map[string]any
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(client.Item{
				ID:       "item-1",
				Name:     "Drill",
				Location: &client.LocationRef{ID: "loc-1", Name: "Garage"},
			})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
			json.NewEncoder(w).Encode(client.Item{
				ID:       "item-1",
				Name:     "Drill",
				Location: &client.LocationRef{ID: "loc-2", Name: "Attic"},
			})
		}
	}))

	_, detail, err := ToolMoveItem(d)(context.Background(), nil, MoveItemInput{ItemID: "item-1", LocationID: "loc-2"})
	require.NoError(t, err)

	assert.Equal(t, "loc-2", putBody["locationId"])
	assert.Equal(t, "Drill", putBody["name"])
	require.NotNil(t, detail.Location)
	assert.Equal(t, "loc-2", detail.Location.ID)
}
