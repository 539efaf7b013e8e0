package checkout

import (
	"go.temporal.io/sdk/workflow"

	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	"github.com/Apurer/go-storefront/internal/durable/temporal/sequences"
)

const (
	// OrderConfirmationWorkflowName is the public identifier for registering the workflow.
	OrderConfirmationWorkflowName = "checkout.workflows.OrderConfirmation"
	// OrderConfirmationTaskQueue is the queue consumed by the checkout worker.
	OrderConfirmationTaskQueue = "ORDER_CONFIRMATION"
)

// OrderConfirmationWorkflow acknowledges a validated checkout and returns its receipt.
func OrderConfirmationWorkflow(ctx workflow.Context, req checkoutports.ReceiptRequest) (*checkoutdomain.Receipt, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderConfirmationWorkflow started", withTraceID(req.TraceID, "items", req.ItemCount)...)
	receipt, err := sequences.RunReceiptSequence(ctx, req)
	if err != nil {
		logger.Error("OrderConfirmationWorkflow failed", withTraceID(req.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("OrderConfirmationWorkflow completed", withTraceID(req.TraceID, "orderId", receipt.OrderID)...)
	return receipt, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
