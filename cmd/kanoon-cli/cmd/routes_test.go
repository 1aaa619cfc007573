package cmd

import (
	"testing"

	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRoutes(t *testing.T) {
	all := routes.All()

	got, err := filterRoutes(all, "")
	require.NoError(t, err)
	assert.Len(t, got, len(all))

	got, err = filterRoutes(all, "public")
	require.NoError(t, err)
	for _, r := range got {
		assert.Equal(t, routes.Public, r.Group)
	}
	assert.NotEmpty(t, got)

	_, err = filterRoutes(all, "admin")
	assert.Error(t, err)
}
