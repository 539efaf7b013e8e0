package mapper

import (
	catalogdomain "github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront/internal/shared/money"
)

// Product is the transport shape of a catalog entry.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// FromDomainProduct converts a catalog product for the JSON API.
func FromDomainProduct(p catalogdomain.Product) Product {
	return Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: money.Amount(p.Price),
		Image: p.Image,
	}
}

// FromDomainProducts converts a product list preserving order.
func FromDomainProducts(list []catalogdomain.Product) []Product {
	result := make([]Product, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomainProduct(p))
	}
	return result
}
