package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/app"
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/config"
	"github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/pubsub"
	"github.com/kanoonai/kanoon-web/internal/registry"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/session"
	"github.com/kanoonai/kanoon-web/internal/storage"
	"github.com/kanoonai/kanoon-web/internal/tracing"
)

// Kernel holds the process-wide services shared by the server and the
// dashboard modules.
type Kernel struct {
	Config   *config.Config
	Backend  *backend.Client
	Bus      *pubsub.WatermillBridge
	Tally    *activity.Tally
	Recorder *activity.Recorder
	Sessions session.Store
	Guard    *middleware.InflightGuard
	Stager   *storage.Stager
	Registry *registry.Registry

	stopTally       context.CancelFunc
	shutdownTracing tracing.Shutdown
}

// NewKernel builds the core services from cfg and registers the shared ones
// in a fresh registry.
func NewKernel(ctx context.Context, cfg *config.Config) (*Kernel, error) {
	tracer, shutdownTracing, err := tracing.Setup(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}

	stager, err := storage.NewUploadStager(cfg)
	if err != nil {
		return nil, fmt.Errorf("setup upload staging: %w", err)
	}

	bus := pubsub.NewWatermillBridge(tracer)
	tally := activity.NewTally()
	tallyCtx, stopTally := context.WithCancel(context.WithoutCancel(ctx))
	if err := tally.Subscribe(tallyCtx, bus); err != nil {
		stopTally()
		_ = bus.Close()
		return nil, fmt.Errorf("subscribe activity tally: %w", err)
	}
	recorder := activity.NewRecorder(bus)
	sessions := session.NewStore()

	k := &Kernel{
		Config:          cfg,
		Backend:         backend.New(cfg.APIBaseURL, backend.WithTimeout(cfg.BackendTimeout), backend.WithTracer(tracer)),
		Bus:             bus,
		Tally:           tally,
		Recorder:        recorder,
		Sessions:        sessions,
		Guard:           middleware.NewInflightGuard(sessions, recorder),
		Stager:          stager,
		Registry:        registry.New(cfg),
		stopTally:       stopTally,
		shutdownTracing: shutdownTracing,
	}

	registry.Set(k.Registry, registry.RecorderKey, k.Recorder)
	registry.Set(k.Registry, registry.TallyKey, k.Tally)
	registry.Set(k.Registry, registry.InflightGuardKey, k.Guard)
	return k, nil
}

// ModuleDeps returns the dependencies handed to app.NewModules.
func (k *Kernel) ModuleDeps(renderer rendering.Renderer) app.Dependencies {
	return app.Dependencies{
		Backend:        k.Backend,
		Renderer:       renderer,
		Sessions:       k.Sessions,
		Stager:         k.Stager,
		UploadMaxBytes: k.Config.UploadMaxBytes,
	}
}

// Close stops the activity bus and flushes pending spans.
func (k *Kernel) Close(ctx context.Context) error {
	k.stopTally()
	return errors.Join(k.Bus.Close(), k.shutdownTracing(ctx))
}
