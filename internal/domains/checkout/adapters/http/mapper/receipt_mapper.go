package mapper

import (
	"time"

	checkoutdomain "github.com/Apurer/go-storefront/internal/domains/checkout/domain"
	"github.com/Apurer/go-storefront/internal/shared/money"
)

// PlaceOrderRequest is the JSON body of POST /checkout.
type PlaceOrderRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	Reference     string `json:"reference,omitempty"`
}

// SelectPaymentMethodRequest is the JSON body of PUT /checkout/payment-method.
type SelectPaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// PaymentMethodSelection echoes the method now selected on the form.
type PaymentMethodSelection struct {
	PaymentMethod     string `json:"paymentMethod"`
	RequiresReference bool   `json:"requiresReference"`
}

// Receipt is the transport shape of an order acknowledgement.
type Receipt struct {
	OrderID   string    `json:"orderId"`
	Method    string    `json:"paymentMethod"`
	Reference string    `json:"reference,omitempty"`
	Total     string    `json:"total"`
	ItemCount int       `json:"itemCount"`
	PlacedAt  time.Time `json:"placedAt"`
	Message   string    `json:"message"`
}

func FromDomainReceipt(r *checkoutdomain.Receipt) Receipt {
	if r == nil {
		return Receipt{}
	}
	return Receipt{
		OrderID:   r.OrderID,
		Method:    string(r.Method),
		Reference: r.Reference,
		Total:     money.Amount(r.Total),
		ItemCount: r.ItemCount,
		PlacedAt:  r.PlacedAt,
		Message:   checkoutdomain.MessageOrderPlaced,
	}
}

func FromPaymentMethod(m checkoutdomain.PaymentMethod) PaymentMethodSelection {
	return PaymentMethodSelection{PaymentMethod: string(m), RequiresReference: m.RequiresReference()}
}
