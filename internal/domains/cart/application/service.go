package application

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-storefront/internal/domains/cart/domain"
	"github.com/Apurer/go-storefront/internal/domains/cart/ports"
)

// Service orchestrates cart store use cases: load, mutate, save, notify.
type Service struct {
	repo    ports.Repository
	catalog ports.ProductLookup

	mu        sync.RWMutex
	listeners []ports.Listener
}

func NewService(repo ports.Repository, catalog ports.ProductLookup) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Subscribe registers a listener that receives a snapshot after each mutation.
func (s *Service) Subscribe(listener ports.Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Add puts one unit of productID in the cart. Unknown ids return
// ErrUnknownProduct and leave the cart untouched.
func (s *Service) Add(ctx context.Context, productID int64) (domain.Line, error) {
	if productID <= 0 {
		return domain.Line{}, mapError(domain.ErrInvalidProductID)
	}
	if s.catalog == nil {
		return domain.Line{}, errors.New("cart catalog lookup not configured")
	}
	product, err := s.catalog.Lookup(ctx, productID)
	if err != nil {
		return domain.Line{}, mapError(err)
	}
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Line{}, err
	}
	line, err := cart.Add(product.ID, product.Name, product.Price)
	if err != nil {
		return domain.Line{}, mapError(err)
	}
	if err := s.commit(ctx, cart); err != nil {
		return domain.Line{}, err
	}
	return line, nil
}

// ChangeQty adjusts a line by delta, removing it when the result is <= 0.
// Absent lines are a no-op.
func (s *Service) ChangeQty(ctx context.Context, productID int64, delta int) error {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	found, err := cart.ChangeQty(productID, delta)
	if err != nil {
		return mapError(err)
	}
	if !found {
		return nil
	}
	return s.commit(ctx, cart)
}

// Remove deletes a line; absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, productID int64) error {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	cart.Remove(productID)
	return s.commit(ctx, cart)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	cart.Clear()
	return s.commit(ctx, cart)
}

// Total returns the unrounded sum of price × qty.
func (s *Service) Total(ctx context.Context) (decimal.Decimal, error) {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return cart.Total(), nil
}

// Count returns the number of units in the cart.
func (s *Service) Count(ctx context.Context) (int, error) {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (s *Service) Snapshot(ctx context.Context) (*domain.Cart, error) {
	return s.repo.Load(ctx)
}

func (s *Service) commit(ctx context.Context, cart *domain.Cart) error {
	if err := s.repo.Save(ctx, cart); err != nil {
		return err
	}
	s.mu.RLock()
	listeners := append([]ports.Listener(nil), s.listeners...)
	s.mu.RUnlock()
	for _, listener := range listeners {
		listener(ctx, cart.Clone())
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
