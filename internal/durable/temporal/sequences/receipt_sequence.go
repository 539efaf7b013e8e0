package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	checkoutactivities "github.com/Apurer/go-storefront/internal/durable/temporal/activities/checkout"
)

// RunReceiptSequence executes the activities that acknowledge an order.
// Validation failures are not retried.
func RunReceiptSequence(ctx workflow.Context, req checkoutports.ReceiptRequest) (*checkoutdomain.Receipt, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("receipt sequence started", "paymentMethod", string(req.Payment.Method))
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var receipt checkoutdomain.Receipt
	err := workflow.ExecuteActivity(ctx, checkoutactivities.IssueReceiptActivityName, req).Get(ctx, &receipt)
	if err != nil {
		logger.Error("receipt sequence failed", "error", err)
		return nil, err
	}
	logger.Info("receipt sequence completed", "orderId", receipt.OrderID)
	return &receipt, nil
}
