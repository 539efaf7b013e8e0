package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-storefront/internal/domains/cart/domain"
	"github.com/Apurer/go-storefront/internal/domains/cart/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps the session cart in process memory. Nothing survives a
// restart.
type Repository struct {
	mu   sync.RWMutex
	cart *domain.Cart
}

func NewRepository() *Repository {
	return &Repository{cart: domain.New()}
}

func (r *Repository) Load(_ context.Context) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cart.Clone(), nil
}

func (r *Repository) Save(_ context.Context, cart *domain.Cart) error {
	if cart == nil {
		return errors.New("cart is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart = cart.Clone()
	return nil
}
