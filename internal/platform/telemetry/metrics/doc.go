// Package metrics provides operational metrics collection.
//
// # Metric Categories
//
//   - Inbound HTTP: request count and latency by route, method, and status
//   - Users client: call count and latency by operation and outcome
//
// Collectors register against a caller-supplied prometheus.Registerer so
// tests can use isolated registries. Handler exposes a Gatherer in the
// Prometheus text format for scraping.
package metrics
