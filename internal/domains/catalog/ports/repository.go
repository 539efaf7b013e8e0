package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-storefront/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository is the read-only source of catalog products.
type Repository interface {
	// List returns every product ordered by id.
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (domain.Product, error)
}
