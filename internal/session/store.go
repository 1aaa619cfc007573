package session

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// Name is the gorilla session that carries the visitor's state.
	Name = "kanoon-session"

	userKey    = "user"
	visitorKey = "visitor_id"
)

// Store is the typed session contract handed to handlers.
type Store interface {
	// Load returns the signed-in user, or false for an anonymous visitor.
	// It never fails: unreadable stored data is logged and treated as absent.
	Load(c echo.Context) (*domain.Session, bool)
	// Save replaces the whole stored record.
	Save(c echo.Context, s *domain.Session) error
	// Clear removes the stored record.
	Clear(c echo.Context) error
	// VisitorID returns a stable random id for the visitor, creating it on first use.
	VisitorID(c echo.Context) string
}

// GorillaStore keeps the session as one JSON document inside a gorilla
// session. The echo-contrib session middleware must run before it.
type GorillaStore struct{}

// NewStore creates a GorillaStore.
func NewStore() *GorillaStore {
	return &GorillaStore{}
}

// Load implements Store.
func (s *GorillaStore) Load(c echo.Context) (*domain.Session, bool) {
	ctx := c.Request().Context()

	sess, err := session.Get(Name, c)
	if err != nil {
		slog.WarnContext(ctx, "Session unavailable, rendering anonymously", "error", err)
		return nil, false
	}

	raw, ok := sess.Values[userKey]
	if !ok {
		return nil, false
	}

	data, ok := raw.(string)
	if !ok {
		slog.WarnContext(ctx, "Stored session has unexpected type", "type", fmt.Sprintf("%T", raw))
		return nil, false
	}

	var user domain.Session
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		slog.WarnContext(ctx, "Stored session is not valid JSON", "error", err)
		return nil, false
	}
	return &user, true
}

// Save implements Store.
func (s *GorillaStore) Save(c echo.Context, user *domain.Session) error {
	if user == nil {
		return s.Clear(c)
	}

	sess, err := session.Get(Name, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	sess.Values[userKey] = string(data)
	// Signing in keys the in-flight guard from the first submission on.
	ensureVisitor(sess.Values)

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear implements Store.
func (s *GorillaStore) Clear(c echo.Context) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	delete(sess.Values, userKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// VisitorID implements Store.
func (s *GorillaStore) VisitorID(c echo.Context) string {
	sess, err := session.Get(Name, c)
	if err != nil {
		// Without a session every request is its own visitor.
		return uuid.NewString()
	}

	id, created := ensureVisitor(sess.Values)
	if created {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			slog.WarnContext(c.Request().Context(), "Failed to persist visitor id", "error", err)
		}
	}
	return id
}

func ensureVisitor(values map[interface{}]interface{}) (id string, created bool) {
	if id, ok := values[visitorKey].(string); ok && id != "" {
		return id, false
	}
	id = uuid.NewString()
	values[visitorKey] = id
	return id, true
}
