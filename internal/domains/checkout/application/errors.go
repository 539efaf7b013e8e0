package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-storefront/internal/domains/checkout/domain"
)

// ErrInvalidInput signals a checkout validation failure. Cart and
// navigation are untouched when it is returned.
var ErrInvalidInput = errors.New("invalid checkout input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidPaymentMethod) ||
		errors.Is(err, domain.ErrReferenceRequired) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
