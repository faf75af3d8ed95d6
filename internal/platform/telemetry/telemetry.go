// Package telemetry provides OpenTelemetry meter initialization and the
// pre-registered metric instruments used by the tracker. Metrics are
// exported to stdout via a periodic reader; when telemetry is disabled the
// instruments are backed by a no-op provider so callers never branch.
//
// Meter initialization:
//
//	mp, err := telemetry.InitMeter(ctx, "todolist")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp)
//	metrics.OperationTotal.Add(ctx, 1, ...)
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Attribute keys for metric labels.
var (
	AttrCommand   = attribute.Key("command")
	AttrOperation = attribute.Key("operation")
	AttrResult    = attribute.Key("result")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	CommandTotal    metric.Int64Counter
	CommandDuration metric.Float64Histogram
	OperationTotal  metric.Int64Counter
}

// InitMeter creates and registers a global MeterProvider backed by a stdout
// exporter. The returned MeterProvider must be shut down when the
// application exits so the final collection is flushed.
func InitMeter(ctx context.Context, serviceName string) (*sdkmetric.MeterProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	exporter, err := stdoutmetric.New()
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates and registers all metric instruments using the given
// MeterProvider. The meter is scoped to the service's module path.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("github.com/mwachs/todolist")

	commandTotal, err := meter.Int64Counter(
		"cli.command.total",
		metric.WithDescription("Total number of processed CLI commands"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cli.command.total: %w", err)
	}

	commandDuration, err := meter.Float64Histogram(
		"cli.command.duration",
		metric.WithDescription("Duration of CLI command handling"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cli.command.duration: %w", err)
	}

	operationTotal, err := meter.Int64Counter(
		"tracker.operation.total",
		metric.WithDescription("Total number of tracker service operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tracker.operation.total: %w", err)
	}

	return &Metrics{
		CommandTotal:    commandTotal,
		CommandDuration: commandDuration,
		OperationTotal:  operationTotal,
	}, nil
}

// Noop returns a Metrics bundle backed by a no-op provider, for use when
// telemetry is disabled and in tests.
func Noop() *Metrics {
	m, err := NewMetrics(noop.NewMeterProvider())
	if err != nil {
		// The no-op meter never fails to create instruments.
		panic(err)
	}
	return m
}
