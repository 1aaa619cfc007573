package app

import (
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/modules/analyzer"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/modules/summarizer"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/session"
	"github.com/kanoonai/kanoon-web/internal/storage"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the server to wire up the modules.
type Dependencies struct {
	Backend  *backend.Client
	Renderer rendering.Renderer
	Sessions session.Store
	Stager   *storage.Stager
	// UploadMaxBytes bounds files sent to the summarizer and analyzer.
	UploadMaxBytes int64
}

// featureDeps creates the dependency struct shared by every dashboard module.
func featureDeps(deps Dependencies) feature.Deps {
	return feature.Deps{
		Backend:  deps.Backend,
		Renderer: deps.Renderer,
		Sessions: deps.Sessions,
	}
}

// summarizerDeps creates the dependency struct for the case summarizer.
func summarizerDeps(deps Dependencies) summarizer.Deps {
	return summarizer.Deps{
		Deps:     featureDeps(deps),
		Stager:   deps.Stager,
		MaxBytes: deps.UploadMaxBytes,
	}
}

// analyzerDeps creates the dependency struct for the FIR analyzer.
func analyzerDeps(deps Dependencies) analyzer.Deps {
	return analyzer.Deps{
		Deps:     featureDeps(deps),
		Stager:   deps.Stager,
		MaxBytes: deps.UploadMaxBytes,
	}
}
