// Package otel configures OpenTelemetry tracing for the command line tools.
package otel

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config selects where and how much to trace.
type Config struct {
	// Endpoint is an OTLP/HTTP URL. Tracing is off when it is empty.
	Endpoint string `env:"GOL_OTEL_ENDPOINT"`
	Enabled  bool   `env:"GOL_OTEL_ENABLED" envDefault:"true"`
	// SampleRatio is the fraction of root simulations traced.
	SampleRatio float64 `env:"GOL_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadConfig reads Config from GOL_OTEL_* variables.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse otel env: %w", err)
	}
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		return Config{}, fmt.Errorf("otel sample ratio %v not in [0,1]", c.SampleRatio)
	}
	return c, nil
}

// Active reports whether c asks for an exporter.
func (c Config) Active() bool { return c.Enabled && c.Endpoint != "" }

// Sampler samples SampleRatio of root spans and follows the parent otherwise.
func (c Config) Sampler() sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
}

// Setup installs a global tracer provider for service when cfg is active
// and returns its shutdown, which flushes pending spans. An inactive cfg
// leaves the global provider alone and returns a no-op shutdown.
func Setup(ctx context.Context, service string, cfg Config) (func(context.Context) error, error) {
	if !cfg.Active() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.Merge(resource.Default(),
		resource.NewSchemaless(semconv.ServiceName(service)))
	if err != nil {
		_ = exporter.Shutdown(ctx)
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(cfg.Sampler()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}
