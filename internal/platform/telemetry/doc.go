// Package telemetry provides observability helpers shared by staffbook's HTTP
// services.
//
// # Logging (platform/logging)
//
// Structured zap loggers, one per binary, plus a request logger middleware.
//
// # Operational Metrics (telemetry/metrics)
//
// Prometheus collectors for inbound HTTP traffic and outbound users-service
// calls, exposed on /metrics.
//
// # Tracing (platform/otel)
//
// Opt-in OpenTelemetry spans exported over OTLP/HTTP.
package telemetry
