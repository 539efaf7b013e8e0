package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront/internal/domains/catalog/ports"
)

// ErrInvalidInput signals the request violated a catalog invariant.
var ErrInvalidInput = errors.New("invalid catalog input")

// Service answers catalog queries from a read-only repository.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog in stable id order.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// Find returns a single product or ports.ErrNotFound.
func (s *Service) Find(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidID)
	}
	return s.repo.GetByID(ctx, id)
}

var _ ports.Service = (*Service)(nil)
