// Package observability wires structured logging and Prometheus metrics for
// the intervaltree demo CLI. The core tree package (pkg/intervaltree) never
// imports this package: instrumentation is a collaborator of the driver, not
// a property of the data structure.
package observability

import "log/slog"

const (
	// defaultServiceName is the default OTel resource service name attached
	// to every log record emitted through a [TracingHandler].
	defaultServiceName = "intervaltree"
)

// Config holds observability settings for the demo CLI.
type Config struct {
	// ServiceName is attached to every log record as the "service" attribute.
	ServiceName string

	// Environment is attached as the "env" attribute when non-empty.
	Environment string

	// LogLevel controls the minimum slog severity.
	LogLevel slog.Level

	// LogJSON selects JSON log output over the default text handler.
	LogJSON bool
}

// DefaultConfig returns a Config with sensible defaults for zero-config startup.
func DefaultConfig() Config {
	return Config{
		ServiceName: defaultServiceName,
		LogLevel:    slog.LevelInfo,
	}
}

// LevelFromString maps the level names accepted by [pkg/config.LoggingConfig]
// to an [slog.Level], defaulting to Info for any unrecognized value.
func LevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
