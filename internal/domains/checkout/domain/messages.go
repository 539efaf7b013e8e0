package domain

import "errors"

const (
	MessageOrderPlaced       = "Order Placed Successfully!"
	MessageReferenceRequired = "Please enter a dummy UPI Transaction ID."
	MessageInvalidMethod     = "Please choose a payment method."
)

// ShopperMessage turns a checkout validation error into the alert text shown
// to the shopper. It returns "" for errors that are not validation failures.
func ShopperMessage(err error) string {
	switch {
	case errors.Is(err, ErrReferenceRequired):
		return MessageReferenceRequired
	case errors.Is(err, ErrInvalidPaymentMethod):
		return MessageInvalidMethod
	default:
		return ""
	}
}
