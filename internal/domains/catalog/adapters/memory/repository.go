package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository serves a fixed product list loaded at construction.
// It is never mutated afterwards, so reads need no locking.
type Repository struct {
	products []domain.Product
	byID     map[int64]int
}

// NewRepository builds a repository over the default storefront catalog.
func NewRepository() *Repository {
	repo, err := NewRepositoryWith(domain.DefaultProducts())
	if err != nil {
		panic(err)
	}
	return repo
}

// NewRepositoryWith validates the given products and rejects duplicate ids.
func NewRepositoryWith(products []domain.Product) (*Repository, error) {
	sorted := append([]domain.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	byID := make(map[int64]int, len(sorted))
	for i, p := range sorted {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = i
	}
	return &Repository{products: sorted, byID: byID}, nil
}

func (r *Repository) List(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, ports.ErrNotFound
	}
	return r.products[idx], nil
}
