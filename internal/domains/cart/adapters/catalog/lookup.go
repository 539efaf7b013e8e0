package catalog

import (
	"context"
	"errors"

	cartports "github.com/Apurer/go-storefront/internal/domains/cart/ports"
	catalogports "github.com/Apurer/go-storefront/internal/domains/catalog/ports"
)

// Lookup adapts the catalog service to the cart's ProductLookup port.
type Lookup struct {
	catalog catalogports.Service
}

func NewLookup(catalog catalogports.Service) *Lookup {
	return &Lookup{catalog: catalog}
}

func (l *Lookup) Lookup(ctx context.Context, productID int64) (cartports.ProductSnapshot, error) {
	if l == nil || l.catalog == nil {
		return cartports.ProductSnapshot{}, errors.New("catalog lookup not configured")
	}
	p, err := l.catalog.Find(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return cartports.ProductSnapshot{}, cartports.ErrProductNotFound
		}
		return cartports.ProductSnapshot{}, err
	}
	return cartports.ProductSnapshot{ID: p.ID, Name: p.Name, Price: p.Price}, nil
}

var _ cartports.ProductLookup = (*Lookup)(nil)
