package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidID    = errors.New("product id must be greater than zero")
	ErrEmptyName    = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price must be greater or equal to zero")
)

// Product is a purchasable catalog entry. Values are immutable once built.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Image string
}

// NewProduct validates and constructs a Product.
func NewProduct(id int64, name string, price decimal.Decimal, image string) (Product, error) {
	p := Product{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Price: price,
		Image: strings.TrimSpace(image),
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Validate enforces catalog invariants.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidID
	}
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}
