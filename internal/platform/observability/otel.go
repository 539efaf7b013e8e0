package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Options selects how a storefront process reports logs, spans and metrics.
type Options struct {
	ServiceName string
	Environment string
	LogLevel    string
	// OTLPEndpoint is host:port of an OTLP/HTTP collector. Empty means the
	// exporter default (localhost:4318).
	OTLPEndpoint string
	OTLPInsecure bool
}

func (o Options) environment() string {
	if o.Environment == "" {
		return "local"
	}
	return o.Environment
}

// Instruments bundles the process-wide logger and providers handed to the
// service decorators.
type Instruments struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	// Metrics collects on demand; nothing is pushed.
	Metrics *sdkmetric.ManualReader
}

// Init installs the global logger, tracer provider and meter provider. The
// returned shutdown flushes pending spans.
func Init(ctx context.Context, opts Options) (*Instruments, func(context.Context) error, error) {
	logger := NewLogger(nil, opts)
	slog.SetDefault(logger)

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithAttributes(
			attribute.String("service.name", opts.ServiceName),
			attribute.String("deployment.environment", opts.environment()),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("build otel resource: %w", err)
	}

	exporter, err := newSpanExporter(ctx, opts, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build span exporter: %w", err)
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(meterProvider)

	shutdown := func(ctx context.Context) error {
		return errors.Join(
			meterProvider.Shutdown(ctx),
			tracerProvider.Shutdown(ctx),
		)
	}
	return &Instruments{
		Logger:         logger,
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		Metrics:        reader,
	}, shutdown, nil
}

func (i *Instruments) Tracer(name string) trace.Tracer {
	if i == nil || i.TracerProvider == nil {
		return otel.Tracer(name)
	}
	return i.TracerProvider.Tracer(name)
}

func (i *Instruments) Meter(name string) metric.Meter {
	if i == nil || i.MeterProvider == nil {
		return metricnoop.NewMeterProvider().Meter(name)
	}
	return i.MeterProvider.Meter(name)
}

// newSpanExporter prefers OTLP/HTTP and falls back to pretty stdout.
func newSpanExporter(ctx context.Context, opts Options, logger *slog.Logger) (sdktrace.SpanExporter, error) {
	var httpOpts []otlptracehttp.Option
	if opts.OTLPEndpoint != "" {
		httpOpts = append(httpOpts, otlptracehttp.WithEndpoint(opts.OTLPEndpoint))
	}
	if opts.OTLPInsecure {
		httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, httpOpts...)
	if err == nil {
		return exporter, nil
	}
	logger.Warn("failed to initialize OTLP trace exporter, falling back to stdout", slog.String("error", err.Error()))
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}
