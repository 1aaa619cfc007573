package layouts_test

import (
	"context"
	"strings"
	"testing"

	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	"github.com/kanoonai/kanoon-web/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "About - KanoonAI", layouts.CalculateTitle("About"))
	assert.Equal(t, "KanoonAI", layouts.CalculateTitle(""))
}

func TestBaseCarriesScrollResetScript(t *testing.T) {
	var sb strings.Builder
	content := view.AdaptGomponentToTempl(g.Text("hello"))
	err := layouts.Base("About", view.FlashData{Error: []string{"oops"}}, content).Render(context.Background(), &sb)
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "<title>About - KanoonAI</title>")
	assert.Contains(t, out, `src="/static/kanoon.js"`)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "oops")
	assert.Contains(t, out, "© 2025 KanoonAI. All rights reserved.")
}

func TestDashboard(t *testing.T) {
	content := view.AdaptGomponentToTempl(g.Text("tool"))

	t.Run("signed in", func(t *testing.T) {
		var sb strings.Builder
		user := &domain.Session{Name: "A", Email: "a@x.com"}
		err := layouts.Dashboard(layouts.Shell{Path: routes.FAQBuilder, User: user}, content).Render(context.Background(), &sb)
		require.NoError(t, err)

		out := sb.String()
		assert.Contains(t, out, "<h1>FAQ Builder</h1>")
		assert.Contains(t, out, `<a href="/dashboard/faq-builder" data-icon="help" class="active">FAQ Builder</a>`)
		assert.Contains(t, out, "a@x.com")
		assert.Contains(t, out, `src="/static/kanoon.js"`)
	})

	t.Run("anonymous on unknown path", func(t *testing.T) {
		var sb strings.Builder
		err := layouts.Dashboard(layouts.Shell{Path: "/dashboard/unknown"}, content).Render(context.Background(), &sb)
		require.NoError(t, err)

		out := sb.String()
		assert.Contains(t, out, "<h1>Dashboard</h1>")
		assert.Contains(t, out, "user@example.com")
		assert.NotContains(t, out, `class="active"`)
	})
}
