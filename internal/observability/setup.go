package observability

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/honeynil/minivenmo/internal/config"
	"github.com/honeynil/minivenmo/internal/infrastructure/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures logging, metrics and tracing. The returned handler serves
// the metrics registry.
func Setup(ctx context.Context, serviceName string, cfg *config.Config) (*observability.Metrics, http.Handler, func(context.Context) error) {
	observability.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	shutdown, err := observability.InitTracing(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		slog.Warn("tracing disabled", "error", err)
		shutdown = func(context.Context) error { return nil }
	}

	return metrics, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), shutdown
}
