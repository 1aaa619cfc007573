// Package registry holds the shared services the kernel hands to dashboard
// modules: the in-flight guard, the activity recorder and the tally.
package registry

import (
	"fmt"
	"sync"

	"github.com/kanoonai/kanoon-web/internal/config"
)

// Key names a service and fixes its type. Keys are namespaced, for example
// "core.activity_tally".
type Key[T any] string

type Registry struct {
	services sync.Map
	cfg      *config.Config
}

func New(cfg *config.Config) *Registry {
	return &Registry{cfg: cfg}
}

func (r *Registry) Config() *config.Config {
	return r.cfg
}

// Set stores value under key, replacing any previous service.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get reports false when key is unset or holds a value of another type.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	var zero T
	v, found := r.services.Load(string(key))
	if !found {
		return zero, false
	}
	svc, ok := v.(T)
	if !ok {
		return zero, false
	}
	return svc, true
}

// MustGet is for module Boot, where a missing core service is a wiring bug.
func MustGet[T any](r *Registry, key Key[T]) T {
	svc, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("registry: no service under %q", string(key)))
	}
	return svc
}
