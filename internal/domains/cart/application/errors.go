package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-storefront/internal/domains/cart/domain"
	"github.com/Apurer/go-storefront/internal/domains/cart/ports"
)

var (
	// ErrInvalidInput signals the request violated a cart invariant.
	ErrInvalidInput = errors.New("invalid cart input")
	// ErrUnknownProduct is a lookup-miss: the product id is not in the catalog.
	ErrUnknownProduct = errors.New("unknown product")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	// Non-positive ids can never be in the catalog, so they miss like any other.
	if errors.Is(err, ports.ErrProductNotFound) || errors.Is(err, domain.ErrInvalidProductID) {
		return fmt.Errorf("%w: %w", ErrUnknownProduct, err)
	}
	if errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrQtyOverflow) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
