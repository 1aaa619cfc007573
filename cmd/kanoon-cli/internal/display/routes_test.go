package display_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kanoonai/kanoon-web/cmd/kanoon-cli/internal/display"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.RoutesTable(&buf, routes.Sidebar()))

	out := buf.String()
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "/dashboard/chatbot")
	assert.Contains(t, out, "Law Student Hub")
	assert.NotContains(t, out, "/login")
}

func TestRoutesTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.RoutesTable(&buf, nil))
	assert.Contains(t, buf.String(), "No routes found")
}

func TestRoutesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.RoutesJSON(&buf, routes.All()))

	var out struct {
		Routes []display.RouteDisplay `json:"routes"`
		Count  int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, len(routes.All()), out.Count)

	var index *display.RouteDisplay
	for i := range out.Routes {
		if out.Routes[i].Path == routes.DashboardRoot {
			index = &out.Routes[i]
		}
	}
	require.NotNil(t, index)
	assert.True(t, index.IsIndex)
	assert.Equal(t, "dashboard", index.Group)
}
