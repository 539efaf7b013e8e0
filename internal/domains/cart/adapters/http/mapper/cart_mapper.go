package mapper

import (
	cartdomain "github.com/Apurer/go-storefront/internal/domains/cart/domain"
	"github.com/Apurer/go-storefront/internal/shared/money"
)

// AddItemRequest is the body of POST /api/v1/cart/items. A pointer keeps
// "missing" apart from an explicit 0, which is a lookup miss.
type AddItemRequest struct {
	ProductID *int64 `json:"productId" binding:"required"`
}

// ChangeQtyRequest is the body of PATCH /api/v1/cart/items/:productId.
// A delta of 0 is a valid no-op.
type ChangeQtyRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// Line is the transport shape of a cart line.
type Line struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Qty       int    `json:"qty"`
	Subtotal  string `json:"subtotal"`
}

// Cart is the transport shape of the cart with display-rounded totals.
type Cart struct {
	Items []Line `json:"items"`
	Count int    `json:"count"`
	Total string `json:"total"`
}

// FromDomainCart converts a cart snapshot for the JSON API.
func FromDomainCart(cart *cartdomain.Cart) Cart {
	if cart == nil {
		cart = cartdomain.New()
	}
	lines := cart.Lines()
	items := make([]Line, 0, len(lines))
	for _, l := range lines {
		items = append(items, FromDomainLine(l))
	}
	return Cart{
		Items: items,
		Count: cart.Count(),
		Total: money.Amount(cart.Total()),
	}
}

// FromDomainLine converts a single cart line.
func FromDomainLine(l cartdomain.Line) Line {
	return Line{
		ProductID: l.ProductID,
		Name:      l.Name,
		Price:     money.Amount(l.Price),
		Qty:       l.Qty,
		Subtotal:  money.Amount(l.Subtotal()),
	}
}
