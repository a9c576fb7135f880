package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/honeynil/minivenmo/internal/config"
	"github.com/honeynil/minivenmo/internal/infrastructure/card"
	"github.com/honeynil/minivenmo/internal/observability"
	service "github.com/honeynil/minivenmo/internal/services"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	// Инициализируем логи, метрики, трейсы
	metrics, metricsHandler, shutdown := observability.Setup(ctx, "minivenmo", cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			slog.Error("tracer shutdown failed", "error", err)
		}
	}()

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsHandler)
		server := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
		defer server.Close()
	}

	processor := card.NewStubProcessor(cfg.AcceptedCards)
	svc := service.NewVenmoService(processor, metrics)

	if err := svc.Run(ctx, os.Stdout); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}
