package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/session"
	"github.com/labstack/echo/v4"
)

// InflightGuard allows at most one running submission per visitor and
// feature. A second submission is rejected, never queued.
type InflightGuard struct {
	store    session.Store
	recorder *activity.Recorder
	held     sync.Map
}

func NewInflightGuard(store session.Store, recorder *activity.Recorder) *InflightGuard {
	return &InflightGuard{store: store, recorder: recorder}
}

// TryAcquire claims key and reports whether it was free. The returned
// release func must be called exactly once when acquired is true.
func (g *InflightGuard) TryAcquire(key string) (release func(), acquired bool) {
	if _, loaded := g.held.LoadOrStore(key, struct{}{}); loaded {
		return nil, false
	}
	return func() { g.held.Delete(key) }, true
}

// Held reports whether key is currently claimed.
func (g *InflightGuard) Held(key string) bool {
	_, ok := g.held.Load(key)
	return ok
}

// Inflight wraps the submission handler of one feature.
func (g *InflightGuard) Inflight(feature string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			visitorID := g.store.VisitorID(c)
			key := visitorID + ":" + feature

			release, ok := g.TryAcquire(key)
			if !ok {
				ctx := c.Request().Context()
				FromContext(ctx).Info("Rejected concurrent submission", slog.String("feature", feature))
				g.recorder.Record(ctx, visitorID, feature, activity.Rejected)
				return echo.NewHTTPError(http.StatusConflict, "A request is already in progress. Please wait for it to finish.").
					SetInternal(domain.ErrSubmissionInFlight)
			}
			defer release()

			return next(c)
		}
	}
}
