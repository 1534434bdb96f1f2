// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// UpstreamRequest caps one call from the web service or dirctl to the users
// service.
const UpstreamRequest = 10 * time.Second

// SQLiteBusy is the busy_timeout applied to sqlite connections.
const SQLiteBusy = 5 * time.Second
