package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOutputSchema_panicsOnNilSlice(t *testing.T) {
	type BadOutput struct {
		Items []string `json:"items"` // nil → null → schema expects array
	}
	assert.Panics(t, func() {
		CheckOutputSchema[BadOutput]("test_bad_tool")
	})
}

func TestCheckOutputSchema_okWithOmitzero(t *testing.T) {
	type GoodOutput struct {
		Items []string `json:"items,omitzero"`
	}
	assert.NotPanics(t, func() {
		CheckOutputSchema[GoodOutput]("test_good_tool")
	})
}

func TestCheckOutputSchema_okWithNoSlices(t *testing.T) {
	type SimpleOutput struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	assert.NotPanics(t, func() {
		CheckOutputSchema[SimpleOutput]("test_simple_tool")
	})
}

func TestCheckOutputSchema_okWithAny(t *testing.T) {
	assert.NotPanics(t, func() {
		CheckOutputSchema[any]("test_any_tool")
	})
}

func TestCheckOutputSchema_toolOutputs(t *testing.T) {
	// Every registered tool output must survive the startup check.
	assert.NotPanics(t, func() {
		CheckOutputSchema[ListLocationsOutput]("homebox_list_locations")
		CheckOutputSchema[LocationInfo]("homebox_get_location")
		CheckOutputSchema[ListItemsOutput]("homebox_list_items")
		CheckOutputSchema[ItemDetail]("homebox_get_item")
		CheckOutputSchema[ListLabelsOutput]("homebox_list_labels")
		CheckOutputSchema[DeleteOutput]("homebox_delete_item")
	})
}
