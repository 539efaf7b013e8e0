package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	"github.com/Apurer/go-storefront/internal/domains/checkout/ports"
	navdomain "github.com/Apurer/go-storefront/internal/domains/navigation/domain"
)

// Service runs the checkout flow: validate, acknowledge, clear, navigate.
type Service struct {
	cart      ports.Cart
	navigator ports.Navigator
	issuer    ports.ReceiptIssuer

	mu       sync.RWMutex
	selected domain.PaymentMethod
	last     *domain.Receipt
}

func NewService(cart ports.Cart, navigator ports.Navigator, issuer ports.ReceiptIssuer) *Service {
	return &Service{
		cart:      cart,
		navigator: navigator,
		issuer:    issuer,
		selected:  domain.PaymentCash,
	}
}

func (s *Service) SelectPaymentMethod(_ context.Context, method string) (domain.PaymentMethod, error) {
	m, err := domain.ParsePaymentMethod(method)
	if err != nil {
		return "", mapError(err)
	}
	s.mu.Lock()
	s.selected = m
	s.mu.Unlock()
	return m, nil
}

func (s *Service) SelectedPaymentMethod(_ context.Context) domain.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// PlaceOrder validates the payment and, on success, clears the cart and
// shows the confirmation section. Validation failures change nothing.
func (s *Service) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Receipt, error) {
	if s.cart == nil || s.navigator == nil || s.issuer == nil {
		return nil, errors.New("checkout service not configured")
	}
	method, err := domain.ParsePaymentMethod(input.Method)
	if err != nil {
		return nil, mapError(err)
	}
	payment := domain.Payment{Method: method, Reference: input.Reference}
	if err := payment.Validate(); err != nil {
		return nil, mapError(err)
	}
	if !method.RequiresReference() {
		payment.Reference = ""
	}

	cart, err := s.cart.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	receipt, err := s.issuer.Issue(ctx, ports.ReceiptRequest{
		Payment:   payment,
		Total:     cart.Total(),
		ItemCount: cart.Count(),
	})
	if err != nil {
		return nil, fmt.Errorf("issue receipt: %w", err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	if err := s.navigator.Go(ctx, navdomain.SectionSuccess); err != nil {
		return nil, fmt.Errorf("show confirmation: %w", err)
	}

	s.mu.Lock()
	s.selected = method
	last := *receipt
	s.last = &last
	s.mu.Unlock()
	return receipt, nil
}

func (s *Service) LastReceipt(_ context.Context) (*domain.Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil, false
	}
	last := *s.last
	return &last, true
}

var _ ports.Service = (*Service)(nil)
