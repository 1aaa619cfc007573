package app_test

import (
	"testing"

	"github.com/kanoonai/kanoon-web/internal/app"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/stretchr/testify/assert"
)

func TestEveryModuleHasADashboardRoute(t *testing.T) {
	mods := app.NewModules(app.Dependencies{})

	names := make(map[string]bool, len(mods))
	for _, m := range mods {
		assert.False(t, names[m.Name()], "duplicate module %q", m.Name())
		names[m.Name()] = true

		r, ok := routes.Lookup(routes.DashboardRoot + "/" + m.Name())
		if assert.True(t, ok, "module %q has no route", m.Name()) {
			assert.Equal(t, routes.Dashboard, r.Group)
		}
	}

	for _, r := range routes.Sidebar() {
		assert.True(t, names[r.Slug()], "sidebar entry %q has no module", r.Path)
	}
	assert.True(t, names["settings"])
}
