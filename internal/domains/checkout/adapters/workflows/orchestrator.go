package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	"github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	checkoutworkflows "github.com/Apurer/go-storefront/internal/durable/temporal/workflows/checkout"
)

var (
	_ ports.ReceiptIssuer = (*TemporalReceipts)(nil)
	_ ports.ReceiptIssuer = (*InlineReceipts)(nil)
)

// InlineReceipts issues receipts in-process. It is the default issuer and
// the implementation the Temporal activity delegates to.
type InlineReceipts struct {
	newID func() string
	now   func() time.Time
}

// NewInlineReceipts builds an issuer with uuid order ids and wall-clock time.
func NewInlineReceipts() *InlineReceipts {
	return &InlineReceipts{newID: uuid.NewString, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (o *InlineReceipts) WithClock(now func() time.Time) *InlineReceipts {
	if now != nil {
		o.now = now
	}
	return o
}

// WithIDGenerator overrides the order id source for deterministic testing.
func (o *InlineReceipts) WithIDGenerator(newID func() string) *InlineReceipts {
	if newID != nil {
		o.newID = newID
	}
	return o
}

func (o *InlineReceipts) Issue(_ context.Context, req ports.ReceiptRequest) (*domain.Receipt, error) {
	if o == nil {
		return nil, errors.New("inline receipts not configured")
	}
	if err := req.Payment.Validate(); err != nil {
		return nil, err
	}
	return &domain.Receipt{
		OrderID:   o.newID(),
		Method:    req.Payment.Method,
		Reference: req.Payment.Reference,
		Total:     req.Total,
		ItemCount: req.ItemCount,
		PlacedAt:  o.now().UTC(),
	}, nil
}

// TemporalReceipts runs the order confirmation workflow on a Temporal cluster.
type TemporalReceipts struct {
	client    client.Client
	taskQueue string
}

// NewTemporalReceipts wires a Temporal client into the issuer.
func NewTemporalReceipts(c client.Client) *TemporalReceipts {
	return &TemporalReceipts{client: c, taskQueue: checkoutworkflows.OrderConfirmationTaskQueue}
}

func (o *TemporalReceipts) Issue(ctx context.Context, req ports.ReceiptRequest) (*domain.Receipt, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal receipts not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	req.TraceID = traceComponent
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("order-confirmation-%s", traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(ctx, options, checkoutworkflows.OrderConfirmationWorkflowName, req)
	if err != nil {
		return nil, err
	}
	var receipt domain.Receipt
	if err := run.Get(ctx, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func workflowTraceComponent(ctx context.Context) string {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if spanCtx.IsValid() && spanCtx.TraceID().IsValid() {
		return spanCtx.TraceID().String()
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
