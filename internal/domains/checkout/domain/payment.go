package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is one of the supported checkout options.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentUPI  PaymentMethod = "upi"
)

var (
	ErrInvalidPaymentMethod = errors.New("payment method is not supported")
	ErrReferenceRequired    = errors.New("transaction reference is required for electronic payments")
)

// PaymentMethods lists the supported methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentUPI}
}

// ParsePaymentMethod validates a raw method name. Blank defaults to cash.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw))); m {
	case "":
		return PaymentCash, nil
	case PaymentCash, PaymentUPI:
		return m, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// RequiresReference reports whether the method needs a transaction id.
func (m PaymentMethod) RequiresReference() bool {
	return m == PaymentUPI
}

// Payment is the shopper's chosen method plus optional reference.
type Payment struct {
	Method    PaymentMethod
	Reference string
}

// Validate only checks presence; references are not verified anywhere.
func (p Payment) Validate() error {
	switch p.Method {
	case PaymentCash:
		return nil
	case PaymentUPI:
		if p.Reference == "" {
			return ErrReferenceRequired
		}
		return nil
	default:
		return ErrInvalidPaymentMethod
	}
}

// Receipt acknowledges a placed order. No money moves.
type Receipt struct {
	OrderID   string          `json:"orderId"`
	Method    PaymentMethod   `json:"method"`
	Reference string          `json:"reference,omitempty"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	PlacedAt  time.Time       `json:"placedAt"`
}
