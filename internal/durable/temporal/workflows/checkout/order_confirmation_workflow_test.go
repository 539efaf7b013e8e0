package checkout_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	"github.com/Apurer/go-storefront/internal/domains/checkout/adapters/workflows"
	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	checkoutactivities "github.com/Apurer/go-storefront/internal/durable/temporal/activities/checkout"
	checkoutworkflows "github.com/Apurer/go-storefront/internal/durable/temporal/workflows/checkout"
)

func newEnv(t *testing.T) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	placedAt := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	issuer := workflows.NewInlineReceipts().
		WithClock(func() time.Time { return placedAt }).
		WithIDGenerator(func() string { return "wf-order" })
	acts := checkoutactivities.NewActivities(issuer)
	env.RegisterActivityWithOptions(acts.IssueReceipt, activity.RegisterOptions{Name: checkoutactivities.IssueReceiptActivityName})
	return env
}

func TestOrderConfirmationWorkflow_IssuesReceipt(t *testing.T) {
	env := newEnv(t)
	req := checkoutports.ReceiptRequest{
		Payment:   checkoutdomain.Payment{Method: checkoutdomain.PaymentUPI, Reference: "TXN-9"},
		Total:     decimal.RequireFromString("115.00"),
		ItemCount: 3,
		TraceID:   "abc",
	}

	env.ExecuteWorkflow(checkoutworkflows.OrderConfirmationWorkflow, req)
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var receipt checkoutdomain.Receipt
	require.NoError(t, env.GetWorkflowResult(&receipt))
	require.Equal(t, "wf-order", receipt.OrderID)
	require.Equal(t, checkoutdomain.PaymentUPI, receipt.Method)
	require.Equal(t, "TXN-9", receipt.Reference)
	require.True(t, receipt.Total.Equal(decimal.RequireFromString("115")))
	require.Equal(t, 3, receipt.ItemCount)
}

func TestOrderConfirmationWorkflow_RejectsMissingReference(t *testing.T) {
	env := newEnv(t)
	req := checkoutports.ReceiptRequest{
		Payment: checkoutdomain.Payment{Method: checkoutdomain.PaymentUPI},
	}

	env.ExecuteWorkflow(checkoutworkflows.OrderConfirmationWorkflow, req)
	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
}
