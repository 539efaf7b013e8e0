package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	cartdomain "github.com/Apurer/go-storefront/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-storefront/internal/domains/cart/ports"
	catalogdomain "github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-storefront/internal/domains/catalog/ports"
	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	checkoutports "github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	navapp "github.com/Apurer/go-storefront/internal/domains/navigation/application"
	navdomain "github.com/Apurer/go-storefront/internal/domains/navigation/domain"
	"github.com/Apurer/go-storefront/internal/view"
)

// Components are the collaborators a Session coordinates.
type Components struct {
	Catalog   catalogports.Service
	Cart      cartports.Service
	Navigator *navapp.Service
	Checkout  checkoutports.Service
	Renderer  *view.Renderer
	Alerts    *view.Notifier
	Logger    *slog.Logger
}

// Session is the single storefront document of the process. Every action
// runs to completion under one lock, in the order requests arrive.
type Session struct {
	mu sync.Mutex

	catalog  catalogports.Service
	cart     cartports.Service
	nav      *navapp.Service
	checkout checkoutports.Service
	renderer *view.Renderer
	alerts   *view.Notifier
	logger   *slog.Logger
}

// NewSession subscribes the renderer to cart changes, re-renders the cart
// whenever the cart section is entered, and draws the initial catalog.
func NewSession(ctx context.Context, c Components) (*Session, error) {
	if c.Catalog == nil || c.Cart == nil || c.Navigator == nil || c.Checkout == nil || c.Renderer == nil {
		return nil, errors.New("storefront session: missing component")
	}
	if c.Alerts == nil {
		c.Alerts = view.NewNotifier()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		catalog:  c.Catalog,
		cart:     c.Cart,
		nav:      c.Navigator,
		checkout: c.Checkout,
		renderer: c.Renderer,
		alerts:   c.Alerts,
		logger:   c.Logger,
	}

	s.cart.Subscribe(s.renderCart)
	s.nav.OnEnter(navdomain.SectionCart, func(ctx context.Context) {
		cart, err := s.cart.Snapshot(ctx)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to refresh cart on enter", slog.String("error", err.Error()))
			return
		}
		s.renderCart(ctx, cart)
	})

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := s.renderer.RenderCatalog(products); err != nil {
		return nil, err
	}
	cart, err := s.cart.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	s.renderCart(ctx, cart)
	return s, nil
}

func (s *Session) renderCart(ctx context.Context, cart *cartdomain.Cart) {
	if err := s.renderer.RenderCart(cart); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to render cart", slog.String("error", err.Error()))
	}
	if err := s.renderer.RenderBadge(cart.Count()); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to render cart badge", slog.String("error", err.Error()))
	}
}

func (s *Session) Products(ctx context.Context) ([]catalogdomain.Product, error) {
	return s.catalog.List(ctx)
}

func (s *Session) Product(ctx context.Context, id int64) (catalogdomain.Product, error) {
	return s.catalog.Find(ctx, id)
}

func (s *Session) Cart(ctx context.Context) (*cartdomain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot(ctx)
}

// AddToCart adds one unit and acknowledges it with an alert.
func (s *Session) AddToCart(ctx context.Context, productID int64) (cartdomain.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, err := s.cart.Add(ctx, productID)
	if err != nil {
		return line, err
	}
	s.alerts.Alert(fmt.Sprintf("%s added to cart!", line.Name))
	return line, nil
}

func (s *Session) ChangeQty(ctx context.Context, productID int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ChangeQty(ctx, productID, delta)
}

func (s *Session) RemoveFromCart(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(ctx, productID)
}

func (s *Session) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clear(ctx)
}

func (s *Session) Navigation(_ context.Context) navapp.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.State()
}

// Navigate shows section. Unknown sections return navdomain.ErrUnknownSection.
func (s *Session) Navigate(ctx context.Context, section string) (navapp.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, err := navdomain.ParseSection(section)
	if err != nil {
		return s.nav.State(), err
	}
	if err := s.nav.Go(ctx, target); err != nil {
		return s.nav.State(), err
	}
	return s.nav.State(), nil
}

func (s *Session) SelectPaymentMethod(ctx context.Context, method string) (checkoutdomain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected, err := s.checkout.SelectPaymentMethod(ctx, method)
	if err != nil {
		s.alerts.Alert(checkoutdomain.ShopperMessage(err))
	}
	return selected, err
}

// PlaceOrder runs the checkout flow. Validation failures raise the shopper
// message and leave the cart and section as they were.
func (s *Session) PlaceOrder(ctx context.Context, input checkoutports.PlaceOrderInput) (*checkoutdomain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	receipt, err := s.checkout.PlaceOrder(ctx, input)
	if err != nil {
		s.alerts.Alert(checkoutdomain.ShopperMessage(err))
		return nil, err
	}
	s.alerts.Alert(checkoutdomain.MessageOrderPlaced)
	return receipt, nil
}

// WritePage composes the document and shows, then drops, pending alerts.
func (s *Session) WritePage(ctx context.Context, w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := view.PageData{
		Nav:     s.nav.State(),
		Payment: s.checkout.SelectedPaymentMethod(ctx),
		Alerts:  s.alerts.Drain(),
	}
	if data.Nav.Current == navdomain.SectionSuccess {
		if receipt, ok := s.checkout.LastReceipt(ctx); ok {
			data.Receipt = receipt
		}
	}
	return s.renderer.Page(w, data)
}
