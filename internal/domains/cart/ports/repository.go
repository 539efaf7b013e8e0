package ports

import (
	"context"

	"github.com/Apurer/go-storefront/internal/domains/cart/domain"
)

// Repository holds the session's single cart. Implementations store and
// return clones so callers never share line storage.
type Repository interface {
	Load(ctx context.Context) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
}
