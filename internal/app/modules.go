package app

import (
	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/analyzer"
	"github.com/kanoonai/kanoon-web/internal/modules/chatbot"
	"github.com/kanoonai/kanoon-web/internal/modules/documents"
	"github.com/kanoonai/kanoon-web/internal/modules/faq"
	"github.com/kanoonai/kanoon-web/internal/modules/learning"
	"github.com/kanoonai/kanoon-web/internal/modules/notices"
	"github.com/kanoonai/kanoon-web/internal/modules/settings"
	"github.com/kanoonai/kanoon-web/internal/modules/summarizer"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which dashboard tools are enabled.
func NewModules(deps Dependencies) []module.Module {
	shared := featureDeps(deps)

	return []module.Module{
		// Add new dashboard tools here; the name is the route slug.
		chatbot.New(shared),
		documents.New(shared),
		summarizer.New(summarizerDeps(deps)),
		analyzer.New(analyzerDeps(deps)),
		notices.New(shared),
		learning.New(shared),
		faq.New(shared),
		settings.New(shared),
	}
}
