package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// PrometheusExporter bundles the /metrics scrape [http.Handler] with the
// [metric.Meter] that feeds it, so a caller can create instruments (see
// [NewTreeMetrics]) against the same MeterProvider the exporter reads from.
type PrometheusExporter struct {
	Handler http.Handler
	Meter   metric.Meter
}

// NewPrometheusExporter creates a Prometheus exporter backed by an OTel
// MeterProvider. Each call creates an independent registry to avoid
// collector conflicts across trees instrumented in the same process.
func NewPrometheusExporter() (*PrometheusExporter, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	return &PrometheusExporter{
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Meter:   provider.Meter(defaultServiceName),
	}, nil
}
