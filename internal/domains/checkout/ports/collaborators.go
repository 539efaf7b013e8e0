package ports

import (
	"context"

	"github.com/shopspring/decimal"

	cartdomain "github.com/Apurer/go-storefront/internal/domains/cart/domain"
	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	navdomain "github.com/Apurer/go-storefront/internal/domains/navigation/domain"
)

// Cart is the slice of the cart store the checkout flow needs.
type Cart interface {
	Snapshot(ctx context.Context) (*cartdomain.Cart, error)
	Clear(ctx context.Context) error
}

// Navigator switches the visible page section.
type Navigator interface {
	Go(ctx context.Context, section navdomain.Section) error
}

// ReceiptRequest is the payload handed to a ReceiptIssuer.
type ReceiptRequest struct {
	Payment   checkoutdomain.Payment `json:"payment"`
	Total     decimal.Decimal        `json:"total"`
	ItemCount int                    `json:"itemCount"`
	TraceID   string                 `json:"traceId,omitempty"`
}

// ReceiptIssuer acknowledges an order, either inline or through a durable
// workflow.
type ReceiptIssuer interface {
	Issue(ctx context.Context, req ReceiptRequest) (*checkoutdomain.Receipt, error)
}
