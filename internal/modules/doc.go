// Package modules contains the dashboard features.
//
// Each subdirectory is a module implementing `module.Module`. Modules are
// listed in `internal/app/modules.go` and mounted by the server under
// /dashboard/<name>.
package modules
