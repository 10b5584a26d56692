package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"webmetrics/internal/platform"
	"webmetrics/ui"

	"github.com/google/uuid"
)

func main() {
	appCfg, err := platform.LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	if err := appCfg.Validate(); err != nil {
		slog.Error("Invalid config", "err", err)
		os.Exit(1)
	}

	instanceID := uuid.NewString()
	platform.InitLogger(appCfg.LogLevel, "instance", instanceID)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	metrics := platform.NewMetrics(platform.MetricsConfig{
		RuntimeCollectors: appCfg.Flags.RuntimeMetrics,
	})
	router := platform.NewRouter(platform.RouterDeps{
		Metrics: metrics,
		Home:    ui.Index(ui.PageData{Title: "webmetrics", InstanceID: instanceID}),
		Delay:   platform.UniformDelay(appCfg.DelayCfg.Min, appCfg.DelayCfg.Max),
	})

	httpErrCh := platform.RunHTTPServer(ctx, router, *appCfg.HTTPSrvCfg)

	if err := <-httpErrCh; err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("HTTP server error", "err", err)
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}
