package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/kanoonai/kanoon-web/internal/config"
)

const maxAge = 86400 * 7 // 7 days

// NewBackingStore builds the gorilla store behind the session middleware.
// A filesystem store is used when SESSION_DIR is set because profile
// pictures stored as data URIs do not fit in a cookie.
func NewBackingStore(cfg *config.Config) sessions.Store {
	opts := &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	if cfg.SessionDir != "" {
		fs := sessions.NewFilesystemStore(cfg.SessionDir, []byte(cfg.SessionSecret))
		// File-backed values have no practical size limit.
		fs.MaxLength(0)
		fs.Options = opts
		return fs
	}

	cs := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cs.Options = opts
	return cs
}
