package storefrontserver

import (
	"context"
	"io"

	cartdomain "github.com/Apurer/go-storefront/internal/domains/cart/domain"
	catalogdomain "github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	navapp "github.com/Apurer/go-storefront/internal/domains/navigation/application"
)

// Storefront is the session the handlers drive. Each call is one complete
// shopper action.
type Storefront interface {
	Products(ctx context.Context) ([]catalogdomain.Product, error)
	Product(ctx context.Context, id int64) (catalogdomain.Product, error)

	Cart(ctx context.Context) (*cartdomain.Cart, error)
	AddToCart(ctx context.Context, productID int64) (cartdomain.Line, error)
	ChangeQty(ctx context.Context, productID int64, delta int) error
	RemoveFromCart(ctx context.Context, productID int64) error
	ClearCart(ctx context.Context) error

	Navigation(ctx context.Context) navapp.State
	Navigate(ctx context.Context, section string) (navapp.State, error)

	SelectPaymentMethod(ctx context.Context, method string) (checkoutdomain.PaymentMethod, error)
	PlaceOrder(ctx context.Context, input checkoutports.PlaceOrderInput) (*checkoutdomain.Receipt, error)

	WritePage(ctx context.Context, w io.Writer) error
}
