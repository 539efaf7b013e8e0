package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cartcatalog "github.com/Apurer/go-storefront/internal/domains/cart/adapters/catalog"
	cartmemory "github.com/Apurer/go-storefront/internal/domains/cart/adapters/memory"
	cartapp "github.com/Apurer/go-storefront/internal/domains/cart/application"
	catalogmemory "github.com/Apurer/go-storefront/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/Apurer/go-storefront/internal/domains/catalog/application"
	"github.com/Apurer/go-storefront/internal/domains/checkout/adapters/workflows"
	"github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	"github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	navapp "github.com/Apurer/go-storefront/internal/domains/navigation/application"
	navdomain "github.com/Apurer/go-storefront/internal/domains/navigation/domain"
)

type fixture struct {
	cart *cartapp.Service
	nav  *navapp.Service
	svc  *Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	catalog := catalogapp.NewService(catalogmemory.NewRepository())
	cart := cartapp.NewService(cartmemory.NewRepository(), cartcatalog.NewLookup(catalog))
	nav := navapp.NewService(nil)
	placedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := workflows.NewInlineReceipts().
		WithClock(func() time.Time { return placedAt }).
		WithIDGenerator(func() string { return "order-1" })
	return fixture{cart: cart, nav: nav, svc: NewService(cart, nav, issuer)}
}

func TestPlaceOrder_UPIWithoutReferenceKeepsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.cart.Add(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, f.nav.Go(ctx, navdomain.SectionCheckout))

	_, err = f.svc.PlaceOrder(ctx, ports.PlaceOrderInput{Method: "upi", Reference: ""})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrReferenceRequired)
	require.Equal(t, domain.MessageReferenceRequired, domain.ShopperMessage(err))

	count, err := f.cart.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, navdomain.SectionCheckout, f.nav.State().Current)
	_, ok := f.svc.LastReceipt(ctx)
	require.False(t, ok)
}

func TestPlaceOrder_CashClearsCartAndShowsSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _ = f.cart.Add(ctx, 1)
	_, _ = f.cart.Add(ctx, 3)
	_, _ = f.cart.Add(ctx, 3)

	receipt, err := f.svc.PlaceOrder(ctx, ports.PlaceOrderInput{Method: "cash", Reference: "ignored"})
	require.NoError(t, err)
	require.Equal(t, "order-1", receipt.OrderID)
	require.Equal(t, domain.PaymentCash, receipt.Method)
	require.Empty(t, receipt.Reference)
	require.Equal(t, "115.00", receipt.Total.StringFixed(2))
	require.Equal(t, 3, receipt.ItemCount)

	count, err := f.cart.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, navdomain.SectionSuccess, f.nav.State().Current)

	last, ok := f.svc.LastReceipt(ctx)
	require.True(t, ok)
	require.Equal(t, receipt.OrderID, last.OrderID)

	// both the stored receipt and the returned one are copies
	receipt.OrderID = "changed-by-caller"
	last.OrderID = "changed-again"
	again, _ := f.svc.LastReceipt(ctx)
	require.Equal(t, "order-1", again.OrderID)
}

func TestPlaceOrder_UPIWithReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _ = f.cart.Add(ctx, 6)

	receipt, err := f.svc.PlaceOrder(ctx, ports.PlaceOrderInput{Method: "upi", Reference: " TXN123 "})
	require.NoError(t, err)
	require.Equal(t, " TXN123 ", receipt.Reference)
	require.Equal(t, domain.PaymentUPI, f.svc.SelectedPaymentMethod(ctx))
}

func TestPlaceOrder_UPIWhitespaceReferenceIsPresent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _ = f.cart.Add(ctx, 1)

	receipt, err := f.svc.PlaceOrder(ctx, ports.PlaceOrderInput{Method: "upi", Reference: "   "})
	require.NoError(t, err)
	require.Equal(t, "   ", receipt.Reference)

	count, err := f.cart.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, navdomain.SectionSuccess, f.nav.State().Current)
}

func TestPlaceOrder_UnknownMethod(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{Method: "card"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
}

type failingIssuer struct{}

func (failingIssuer) Issue(context.Context, ports.ReceiptRequest) (*domain.Receipt, error) {
	return nil, errors.New("worker unavailable")
}

func TestPlaceOrder_IssuerFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _ = f.cart.Add(ctx, 1)
	svc := NewService(f.cart, f.nav, failingIssuer{})

	_, err := svc.PlaceOrder(ctx, ports.PlaceOrderInput{Method: "cash"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidInput)

	count, err := f.cart.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, navdomain.SectionShop, f.nav.State().Current)
}

func TestSelectPaymentMethod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.Equal(t, domain.PaymentCash, f.svc.SelectedPaymentMethod(ctx))

	m, err := f.svc.SelectPaymentMethod(ctx, "UPI")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentUPI, m)
	require.Equal(t, domain.PaymentUPI, f.svc.SelectedPaymentMethod(ctx))

	_, err = f.svc.SelectPaymentMethod(ctx, "cheque")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, domain.PaymentUPI, f.svc.SelectedPaymentMethod(ctx))
}
