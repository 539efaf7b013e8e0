package ports

import (
	"context"

	"github.com/Apurer/go-storefront/internal/domains/catalog/domain"
)

// Service exposes catalog queries to adapters.
type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	Find(ctx context.Context, id int64) (domain.Product, error)
}
