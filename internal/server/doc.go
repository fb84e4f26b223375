// Package server provides the MCP server context, health endpoints,
// and the dedicated metrics server for the daybrief assistant.
//
// # Key Components
//
// ServerContext manages the shared task engine, the weather client, and
// per-account Google API clients with lazy initialization and caching.
// Gmail and Calendar clients are created on first use when a token file
// exists for the requested account.
//
// HealthChecker exposes Kubernetes-style probe endpoints:
//   - /healthz for liveness
//   - /readyz for readiness (reflects shutdown state)
//   - /healthz/detailed for uptime information
//
// MetricsServer serves Prometheus metrics on a dedicated port (default
// :9090), isolating operational metrics from the main MCP traffic.
package server
