package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-storefront/internal/domains/cart/domain"
)

// Listener is notified with a snapshot after every cart mutation.
type Listener func(ctx context.Context, cart *domain.Cart)

// Service exposes the cart store use cases to adapters.
type Service interface {
	Add(ctx context.Context, productID int64) (domain.Line, error)
	ChangeQty(ctx context.Context, productID int64, delta int) error
	Remove(ctx context.Context, productID int64) error
	Clear(ctx context.Context) error
	Total(ctx context.Context) (decimal.Decimal, error)
	Count(ctx context.Context) (int, error)
	Snapshot(ctx context.Context) (*domain.Cart, error)
	Subscribe(listener Listener)
}
