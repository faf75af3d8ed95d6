// Package main is the entry point for the tracker CLI. It wires all
// dependencies using samber/do v2, runs the command loop on stdin/stdout,
// and flushes telemetry on exit. State is in-memory only and lost when the
// process exits.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/mwachs/todolist/internal/adapters/cli"
	"github.com/mwachs/todolist/internal/app"
	"github.com/mwachs/todolist/internal/platform/config"
	"github.com/mwachs/todolist/internal/platform/logging"
	"github.com/mwachs/todolist/internal/platform/telemetry"
	"github.com/mwachs/todolist/internal/ports"
	"github.com/mwachs/todolist/internal/store"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mp, metrics, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(_ do.Injector) (*store.Memory, error) {
		return store.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TrackerService, error) {
		st := do.MustInvoke[*store.Memory](i)
		limits := app.Limits{
			MaxProjects: cfg.Limits.MaxProjects,
			MaxTasks:    cfg.Limits.MaxTasks,
		}
		return app.NewTrackerService(st, limits, logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*cli.Runner, error) {
		svc := do.MustInvoke[ports.TrackerService](i)
		return cli.NewRunner(svc, os.Stdin, os.Stdout, logger, metrics), nil
	})

	runner, err := do.Invoke[*cli.Runner](injector)
	if err != nil {
		return fmt.Errorf("resolving runner: %w", err)
	}

	runErr := runner.Run(ctx)

	// Flush telemetry even when the loop failed.
	if mp != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := mp.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}

	return runErr
}

// initTelemetry builds the metric provider and instrument bundle. When
// telemetry is disabled the provider is nil and the instruments are no-ops,
// and metric output stays off the interactive stream.
func initTelemetry(ctx context.Context, cfg *config.Config) (*sdkmetric.MeterProvider, *telemetry.Metrics, error) {
	if !cfg.Telemetry.Enabled {
		return nil, telemetry.Noop(), nil
	}

	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		return nil, nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		_ = mp.Shutdown(shutdownCtx)
		return nil, nil, fmt.Errorf("creating metrics: %w", err)
	}

	return mp, metrics, nil
}
