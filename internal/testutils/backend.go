package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kanoonai/kanoon-web/internal/backend"
)

// Backend is a fake KanoonAI API backed by httptest.
type Backend struct {
	Server *httptest.Server
	Client *backend.Client
	calls  atomic.Int32
}

// NewBackend serves handler and counts every request it receives.
func NewBackend(t *testing.T, handler http.HandlerFunc) *Backend {
	t.Helper()
	b := &Backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(b.Server.Close)
	b.Client = backend.New(b.Server.URL)
	return b
}

// Calls returns the number of requests served so far.
func (b *Backend) Calls() int {
	return int(b.calls.Load())
}

// JSON writes body with status as an application/json response.
func JSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
