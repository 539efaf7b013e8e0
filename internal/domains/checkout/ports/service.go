package ports

import (
	"context"

	"github.com/Apurer/go-storefront/internal/domains/checkout/domain"
)

// PlaceOrderInput carries the submitted checkout form.
type PlaceOrderInput struct {
	Method    string
	Reference string
}

// Service exposes the checkout flow to adapters.
type Service interface {
	// SelectPaymentMethod records the method picked on the form, which
	// controls whether the reference field is shown.
	SelectPaymentMethod(ctx context.Context, method string) (domain.PaymentMethod, error)
	SelectedPaymentMethod(ctx context.Context) domain.PaymentMethod
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Receipt, error)
	LastReceipt(ctx context.Context) (*domain.Receipt, bool)
}
