package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	cartapp "github.com/Apurer/go-storefront/internal/domains/cart/application"
	cartdomain "github.com/Apurer/go-storefront/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-storefront/internal/domains/cart/ports"
)

const tracerName = "github.com/Apurer/go-storefront/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing, logging, and metrics.
type Service struct {
	inner   cartports.Service
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

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
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

func (s *Service) Add(ctx context.Context, productID int64) (cartdomain.Line, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Add", trace.WithAttributes(attribute.Int64("product.id", productID)))
	defer span.End()

	line, err := s.inner.Add(ctx, productID)
	if errors.Is(err, cartapp.ErrUnknownProduct) {
		span.SetAttributes(attribute.Bool("product.found", false))
		s.logInfo(ctx, "add ignored for unknown product", slog.Int64("product.id", productID))
		return line, err
	}
	if err != nil {
		return line, s.handleError(ctx, span, err, "failed to add product to cart", slog.Int64("product.id", productID))
	}
	s.metrics.recordAdded(ctx)
	span.SetAttributes(attribute.Int("line.qty", line.Qty))
	s.logInfo(ctx, "product added to cart", slog.Int64("product.id", productID), slog.Int("line.qty", line.Qty))
	return line, nil
}

func (s *Service) ChangeQty(ctx context.Context, productID int64, delta int) error {
	ctx, span := s.tracer.Start(ctx, "CartService.ChangeQty",
		trace.WithAttributes(attribute.Int64("product.id", productID), attribute.Int("qty.delta", delta)))
	defer span.End()

	if err := s.inner.ChangeQty(ctx, productID, delta); err != nil {
		return s.handleError(ctx, span, err, "failed to change quantity", slog.Int64("product.id", productID))
	}
	s.logInfo(ctx, "cart quantity changed", slog.Int64("product.id", productID), slog.Int("qty.delta", delta))
	return nil
}

func (s *Service) Remove(ctx context.Context, productID int64) error {
	ctx, span := s.tracer.Start(ctx, "CartService.Remove", trace.WithAttributes(attribute.Int64("product.id", productID)))
	defer span.End()

	if err := s.inner.Remove(ctx, productID); err != nil {
		return s.handleError(ctx, span, err, "failed to remove cart line", slog.Int64("product.id", productID))
	}
	s.metrics.recordRemoved(ctx)
	s.logInfo(ctx, "cart line removed", slog.Int64("product.id", productID))
	return nil
}

func (s *Service) Clear(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "CartService.Clear")
	defer span.End()

	if err := s.inner.Clear(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to clear cart")
	}
	s.logInfo(ctx, "cart cleared")
	return nil
}

func (s *Service) Total(ctx context.Context) (decimal.Decimal, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Total")
	defer span.End()

	total, err := s.inner.Total(ctx)
	if err != nil {
		return total, s.handleError(ctx, span, err, "failed to compute cart total")
	}
	span.SetAttributes(attribute.String("cart.total", total.String()))
	return total, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	count, err := s.inner.Count(ctx)
	if err != nil {
		s.logError(ctx, "failed to count cart units", err)
	}
	return count, err
}

func (s *Service) Snapshot(ctx context.Context) (*cartdomain.Cart, error) {
	cart, err := s.inner.Snapshot(ctx)
	if err != nil {
		s.logError(ctx, "failed to load cart", err)
	}
	return cart, err
}

func (s *Service) Subscribe(listener cartports.Listener) {
	s.inner.Subscribe(listener)
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	linesAdded   metric.Int64Counter
	linesRemoved metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	linesAdded, _ := m.Int64Counter("cart.service.lines_added", metric.WithDescription("Number of add-to-cart actions"))
	linesRemoved, _ := m.Int64Counter("cart.service.lines_removed", metric.WithDescription("Number of explicit line removals"))
	return serviceMetrics{linesAdded: linesAdded, linesRemoved: linesRemoved}
}

func (m serviceMetrics) recordAdded(ctx context.Context) {
	if m.linesAdded != nil {
		m.linesAdded.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRemoved(ctx context.Context) {
	if m.linesRemoved != nil {
		m.linesRemoved.Add(ctx, 1)
	}
}

var _ cartports.Service = (*Service)(nil)
