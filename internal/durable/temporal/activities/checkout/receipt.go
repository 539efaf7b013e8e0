package checkout

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
)

// IssueReceiptActivityName assigns an order id and timestamp to a validated payment.
const IssueReceiptActivityName = "checkout.activities.IssueReceipt"

const invalidPaymentErrorType = "InvalidPayment"

// Activities groups activities that operate on the checkout bounded context.
type Activities struct {
	issuer checkoutports.ReceiptIssuer
}

// NewActivities wires an in-process receipt issuer into the activities bundle.
// Passing a Temporal-backed issuer here would start a workflow per attempt.
func NewActivities(issuer checkoutports.ReceiptIssuer) *Activities {
	return &Activities{issuer: issuer}
}

func (a *Activities) IssueReceipt(ctx context.Context, req checkoutports.ReceiptRequest) (*checkoutdomain.Receipt, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.issuer == nil {
		logger.Error("receipt activity not initialized", "traceId", req.TraceID)
		return nil, errors.New("receipt activity not initialized")
	}
	logger.Info("IssueReceipt activity started", "paymentMethod", string(req.Payment.Method), "items", req.ItemCount)
	receipt, err := a.issuer.Issue(ctx, req)
	if err != nil {
		logger.Error("IssueReceipt activity failed", "paymentMethod", string(req.Payment.Method), "error", err)
		if errors.Is(err, checkoutdomain.ErrInvalidPaymentMethod) || errors.Is(err, checkoutdomain.ErrReferenceRequired) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), invalidPaymentErrorType, err)
		}
		return nil, err
	}
	logger.Info("IssueReceipt activity completed", "orderId", receipt.OrderID)
	return receipt, nil
}
