// Package employees serves the employee directory table, record dialog, and
// delete prompt. Each browser owns one directory session, named by a cookie.
package employees

import (
	"net/http"
	"time"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/services/web/module"
	"github.com/louisbranch/staffbook/internal/services/web/platform/httpx"
	"github.com/louisbranch/staffbook/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/staffbook/internal/services/web/routepath"
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 256
)

// Config carries the session behaviour flags and workspace limits.
type Config struct {
	Session     directory.Options
	SessionTTL  time.Duration
	MaxSessions int
	// NewSessionID names new workspaces; defaults to a random id.
	NewSessionID func() (string, error)
}

// Module provides the employee directory routes.
type Module struct {
	gateway directory.Gateway
	cfg     Config
	base    modulehandler.Base
}

// New returns an employees module with no users service (degraded mode).
func New() Module {
	return Module{base: modulehandler.NewTestBase()}
}

// NewWithGateway returns an employees module backed by gateway.
func NewWithGateway(gateway directory.Gateway, cfg Config, base modulehandler.Base) Module {
	return Module{gateway: gateway, cfg: cfg, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "employees" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the employees route handlers.
func (m Module) Mount() (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	ws, err := newWorkspaces(gateway, m.cfg, m.base.SchemePolicy())
	if err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	h := newHandlers(newService(), ws, m.base)
	registerRoutes(mux, h)
	return module.Mount{
		Prefix:  routepath.Employees,
		Handler: httpx.RejectCrossOrigin(m.base.SchemePolicy())(mux),
	}, nil
}
