// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes a module route mount. Handlers receive the full request
// path, so route patterns register complete paths rather than suffixes.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is implemented by modules whose availability depends on a
// backing service.
type HealthReporter interface {
	Healthy() bool
}
