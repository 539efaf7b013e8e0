package workflows

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	"github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	checkoutworkflows "github.com/Apurer/go-storefront/internal/durable/temporal/workflows/checkout"
)

func TestInlineReceipts_Issue(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("IST", 19800))
	issuer := NewInlineReceipts().
		WithClock(func() time.Time { return at }).
		WithIDGenerator(func() string { return "fixed" })

	receipt, err := issuer.Issue(context.Background(), ports.ReceiptRequest{
		Payment:   domain.Payment{Method: domain.PaymentCash},
		Total:     decimal.RequireFromString("25.00"),
		ItemCount: 1,
	})
	require.NoError(t, err)
	require.Equal(t, "fixed", receipt.OrderID)
	require.Equal(t, at.UTC(), receipt.PlacedAt)
	require.Equal(t, "25.00", receipt.Total.StringFixed(2))
}

func TestInlineReceipts_DefaultIDsAreUnique(t *testing.T) {
	issuer := NewInlineReceipts()
	req := ports.ReceiptRequest{Payment: domain.Payment{Method: domain.PaymentCash}}
	a, err := issuer.Issue(context.Background(), req)
	require.NoError(t, err)
	b, err := issuer.Issue(context.Background(), req)
	require.NoError(t, err)
	require.NotEqual(t, a.OrderID, b.OrderID)
}

func TestInlineReceipts_RejectsInvalidPayment(t *testing.T) {
	_, err := NewInlineReceipts().Issue(context.Background(), ports.ReceiptRequest{
		Payment: domain.Payment{Method: domain.PaymentUPI},
	})
	require.ErrorIs(t, err, domain.ErrReferenceRequired)
}

func TestTemporalReceipts_ExecutesOrderConfirmation(t *testing.T) {
	c := &mocks.Client{}
	run := &mocks.WorkflowRun{}
	req := ports.ReceiptRequest{
		Payment:   domain.Payment{Method: domain.PaymentUPI, Reference: "TXN"},
		Total:     decimal.RequireFromString("75.00"),
		ItemCount: 1,
	}

	c.On("ExecuteWorkflow", mock.Anything,
		mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
			return o.TaskQueue == checkoutworkflows.OrderConfirmationTaskQueue
		}),
		checkoutworkflows.OrderConfirmationWorkflowName,
		mock.MatchedBy(func(r ports.ReceiptRequest) bool {
			return r.Payment == req.Payment && r.TraceID != ""
		}),
	).Return(run, nil).Once()
	run.On("Get", mock.Anything, mock.AnythingOfType("*domain.Receipt")).
		Run(func(args mock.Arguments) {
			out := args.Get(1).(*domain.Receipt)
			*out = domain.Receipt{OrderID: "from-worker", Method: domain.PaymentUPI, Reference: "TXN"}
		}).
		Return(nil).Once()

	receipt, err := NewTemporalReceipts(c).Issue(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "from-worker", receipt.OrderID)
	c.AssertExpectations(t)
	run.AssertExpectations(t)
}
