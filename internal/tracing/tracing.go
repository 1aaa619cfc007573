// Package tracing configures OpenTelemetry for outbound backend calls and
// the activity bus.
package tracing

import (
	"context"
	"fmt"

	"github.com/kanoonai/kanoon-web/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "kanoon-web"

// Shutdown flushes pending spans.
type Shutdown func(context.Context) error

// Setup returns the tracer for the application. When tracing is disabled it
// returns a no-op tracer and leaves the global provider untouched.
func Setup(ctx context.Context, cfg *config.Config) (trace.Tracer, Shutdown, error) {
	if !cfg.TracingEnabled {
		return noop.NewTracerProvider().Tracer(instrumentationName), func(context.Context) error { return nil }, nil
	}

	exporter, err := zipkin.New(cfg.TracingZipkinURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create zipkin exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.TracingServiceName),
			semconv.DeploymentEnvironmentKey.String(cfg.Env),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Tracer(instrumentationName), tp.Shutdown, nil
}
