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

	checkoutapp "github.com/Apurer/go-storefront/internal/domains/checkout/application"
	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
)

const tracerName = "github.com/Apurer/go-storefront/internal/domains/checkout/adapters/observability/service"

// Service decorates the checkout service with tracing, logging, and metrics.
type Service struct {
	inner   checkoutports.Service
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

// New wraps the core checkout service.
func New(inner checkoutports.Service, opts ...Option) checkoutports.Service {
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

func (s *Service) SelectPaymentMethod(ctx context.Context, method string) (checkoutdomain.PaymentMethod, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.SelectPaymentMethod")
	defer span.End()

	selected, err := s.inner.SelectPaymentMethod(ctx, method)
	if err != nil {
		return selected, s.handleError(ctx, span, err, "failed to select payment method", slog.String("payment.method", method))
	}
	span.SetAttributes(attribute.String("payment.method", string(selected)))
	return selected, nil
}

func (s *Service) SelectedPaymentMethod(ctx context.Context) checkoutdomain.PaymentMethod {
	return s.inner.SelectedPaymentMethod(ctx)
}

func (s *Service) PlaceOrder(ctx context.Context, input checkoutports.PlaceOrderInput) (*checkoutdomain.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.PlaceOrder", trace.WithAttributes(attribute.String("payment.method", input.Method)))
	defer span.End()

	receipt, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		if errors.Is(err, checkoutapp.ErrInvalidInput) {
			s.metrics.recordValidationFailure(ctx, input.Method)
			span.SetAttributes(attribute.Bool("checkout.rejected", true))
			s.logger.LogAttrs(ctx, slog.LevelInfo, "checkout rejected", slog.String("payment.method", input.Method), slog.String("reason", err.Error()))
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.String("payment.method", input.Method))
	}
	s.metrics.recordOrderPlaced(ctx, receipt.Method)
	span.SetAttributes(
		attribute.String("order.id", receipt.OrderID),
		attribute.Int("order.items", receipt.ItemCount),
		attribute.String("order.total", receipt.Total.String()),
	)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order placed",
		slog.String("order.id", receipt.OrderID),
		slog.String("payment.method", string(receipt.Method)),
		slog.Int("order.items", receipt.ItemCount),
		slog.String("order.total", receipt.Total.StringFixed(2)),
	)
	return receipt, nil
}

func (s *Service) LastReceipt(ctx context.Context) (*checkoutdomain.Receipt, bool) {
	return s.inner.LastReceipt(ctx)
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
	ordersPlaced       metric.Int64Counter
	validationFailures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placed, _ := m.Int64Counter("checkout.service.orders_placed", metric.WithDescription("Number of orders acknowledged"))
	failures, _ := m.Int64Counter("checkout.service.validation_failures", metric.WithDescription("Number of rejected checkout submissions"))
	return serviceMetrics{ordersPlaced: placed, validationFailures: failures}
}

func (m serviceMetrics) recordOrderPlaced(ctx context.Context, method checkoutdomain.PaymentMethod) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1, metric.WithAttributes(attribute.String("payment.method", string(method))))
	}
}

func (m serviceMetrics) recordValidationFailure(ctx context.Context, method string) {
	if m.validationFailures != nil {
		m.validationFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("payment.method", method)))
	}
}

var _ checkoutports.Service = (*Service)(nil)
