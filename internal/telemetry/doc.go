// Package telemetry обеспечивает наблюдаемость коллектора.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики
//
// Метрики экспортируются на /metrics endpoint.
package telemetry
