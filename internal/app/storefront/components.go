package storefront

import (
	"context"
	"io"
	"log/slog"

	cartcatalog "github.com/Apurer/go-storefront/internal/domains/cart/adapters/catalog"
	cartmemory "github.com/Apurer/go-storefront/internal/domains/cart/adapters/memory"
	cartobs "github.com/Apurer/go-storefront/internal/domains/cart/adapters/observability"
	cartapp "github.com/Apurer/go-storefront/internal/domains/cart/application"
	catalogmemory "github.com/Apurer/go-storefront/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/Apurer/go-storefront/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/Apurer/go-storefront/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-storefront/internal/domains/catalog/ports"
	checkoutobs "github.com/Apurer/go-storefront/internal/domains/checkout/adapters/observability"
	checkoutworkflows "github.com/Apurer/go-storefront/internal/domains/checkout/adapters/workflows"
	checkoutapp "github.com/Apurer/go-storefront/internal/domains/checkout/application"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	navapp "github.com/Apurer/go-storefront/internal/domains/navigation/application"
	platformobservability "github.com/Apurer/go-storefront/internal/platform/observability"
	"github.com/Apurer/go-storefront/internal/view"
)

// BuildComponents wires the bounded contexts with their observability
// decorators. A nil issuer means receipts are issued inline; nil
// instruments mean no-op tracing and metrics.
func BuildComponents(
	catalogRepo catalogports.Repository,
	issuer checkoutports.ReceiptIssuer,
	currencySymbol string,
	instruments *platformobservability.Instruments,
) (Components, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if instruments != nil && instruments.Logger != nil {
		logger = instruments.Logger
	}
	if catalogRepo == nil {
		catalogRepo = catalogmemory.NewRepository()
	}
	if issuer == nil {
		issuer = checkoutworkflows.NewInlineReceipts()
	}

	catalogService := catalogobs.New(
		catalogapp.NewService(catalogRepo),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	cartService := cartobs.New(
		cartapp.NewService(cartmemory.NewRepository(), cartcatalog.NewLookup(catalogService)),
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)
	navigator := navapp.NewService(nil)
	checkoutService := checkoutobs.New(
		checkoutapp.NewService(cartService, navigator, issuer),
		checkoutobs.WithLogger(logger),
		checkoutobs.WithTracer(instruments.Tracer("internal.checkout.application")),
		checkoutobs.WithMeter(instruments.Meter("internal.checkout.application")),
	)
	renderer, err := view.NewRenderer(currencySymbol)
	if err != nil {
		return Components{}, err
	}
	return Components{
		Catalog:   catalogService,
		Cart:      cartService,
		Navigator: navigator,
		Checkout:  checkoutService,
		Renderer:  renderer,
		Alerts:    view.NewNotifier(),
		Logger:    logger,
	}, nil
}

// NewInMemorySession builds a session over the seed catalog with inline
// receipts and no telemetry export.
func NewInMemorySession(ctx context.Context) (*Session, error) {
	components, err := BuildComponents(nil, nil, "", nil)
	if err != nil {
		return nil, err
	}
	return NewSession(ctx, components)
}
