package observability

import (
	"github.com/hotaeshwar/crm-sub000/internal/observability/logger"
	"github.com/hotaeshwar/crm-sub000/internal/observability/metrics"
	"github.com/hotaeshwar/crm-sub000/internal/observability/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires logging, metrics and tracing into the fx application.
var Module = fx.Module("observability",
	fx.Provide(
		LoadConfig,
		newLogger,
		newRegistry,
		newHTTPMetrics,
	),
	fx.Invoke(setupTracing),
)

func newLogger(lc fx.Lifecycle, cfg Config) (*zap.Logger, error) {
	return logger.New(lc, logger.Config{
		ServiceName:         cfg.ServiceName,
		Environment:         cfg.Environment,
		Version:             cfg.Version,
		Level:               cfg.LogLevel,
		Format:              cfg.LogFormat,
		IncludeCaller:       true,
		IncludeStackOnError: true,
	})
}

func newRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

func newHTTPMetrics(registry *prometheus.Registry) *metrics.HTTPMetrics {
	return metrics.NewHTTPMetrics(registry)
}

func setupTracing(lc fx.Lifecycle, cfg Config, log *zap.Logger) error {
	return tracing.Setup(lc, tracing.Config{
		Enabled:       cfg.OtelEnabled,
		ServiceName:   cfg.ServiceName,
		Environment:   cfg.Environment,
		Version:       cfg.Version,
		Endpoint:      cfg.OtelExporterEndpoint,
		SamplingRatio: cfg.OtelSamplingRatio,
	}, log)
}
