package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned by a ProductLookup for unknown ids.
var ErrProductNotFound = errors.New("product not found in catalog")

// ProductSnapshot is the catalog data copied onto a cart line.
type ProductSnapshot struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// ProductLookup resolves product ids against the catalog (outbound port).
type ProductLookup interface {
	Lookup(ctx context.Context, productID int64) (ProductSnapshot, error)
}
