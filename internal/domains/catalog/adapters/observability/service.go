package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-storefront/internal/domains/catalog/ports"
)

const tracerName = "github.com/Apurer/go-storefront/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list catalog")
	}
	span.SetAttributes(attribute.Int("catalog.size", len(result)))
	s.logger.LogAttrs(ctx, slog.LevelDebug, "catalog listed", slog.Int("catalog.size", len(result)))
	return result, nil
}

func (s *Service) Find(ctx context.Context, id int64) (catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Find", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	result, err := s.inner.Find(ctx, id)
	if err != nil {
		s.metrics.recordLookup(ctx, false)
		if errors.Is(err, catalogports.ErrNotFound) {
			// misses are expected and not worth an error log line
			span.SetAttributes(attribute.Bool("product.found", false))
			return result, err
		}
		return result, s.handleError(ctx, span, err, "failed to find product", slog.Int64("product.id", id))
	}
	s.metrics.recordLookup(ctx, true)
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	lookups metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	lookups, _ := m.Int64Counter("catalog.service.lookups", metric.WithDescription("Number of product lookups by outcome"))
	return serviceMetrics{lookups: lookups}
}

func (m serviceMetrics) recordLookup(ctx context.Context, found bool) {
	if m.lookups != nil {
		m.lookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("product.found", found)))
	}
}

var _ catalogports.Service = (*Service)(nil)
