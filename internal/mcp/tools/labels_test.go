package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oangelo/homebox-mcp/pkg/client"
)

func TestToolListLabels_reshapesLabels(t *testing.T) {
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/labels", r.URL.Path)
		json.NewEncoder(w).Encode([]client.Label{
			{ID: "lbl-1", Name: "Electronics", Color: "#3366FF", ItemCount: 12},
			{ID: "lbl-2", Name: "Tools", Description: "hand and power tools"},
		})
	}))

	_, output, err := ToolListLabels(d)(context.Background(), nil, ListLabelsInput{})
	require.NoError(t, err)
	require.Len(t, output.Labels, 2)

	assert.Equal(t, "#3366FF", output.Labels[0].Color)
	assert.Equal(t, 12, output.Labels[0].ItemCount)
	assert.Equal(t, "hand and power tools", output.Labels[1].Description)
}

func TestToolCreateLabel_requiresName(t *testing.T) {
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for invalid input")
	}))

	_, _, err := ToolCreateLabel(d)(context.Background(), nil, CreateLabelInput{Color: "#FF5733"})
	require.Error(t, err)

	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
}

func TestToolUpdateLabel_sendsOnlySuppliedFields(t *testing.T) {
	name := "Power Tools"
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Power Tools"}`, string(body))
		json.NewEncoder(w).Encode(client.Label{ID: "lbl-1", Name: name})
	}))

	_, output, err := ToolUpdateLabel(d)(context.Background(), nil, UpdateLabelInput{
		LabelID: "lbl-1",
		Name:    &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Power Tools", output.Name)
}

func TestToolDeleteLabel_confirmationMessage(t *testing.T) {
	d := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	_, output, err := ToolDeleteLabel(d)(context.Background(), nil, DeleteLabelInput{LabelID: "lbl-1"})
	require.NoError(t, err)
	assert.Contains(t, output.Message, "lbl-1")
}
