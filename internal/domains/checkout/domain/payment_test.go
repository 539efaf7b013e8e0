package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod(" UPI ")
	require.NoError(t, err)
	require.Equal(t, PaymentUPI, m)

	m, err = ParsePaymentMethod("")
	require.NoError(t, err)
	require.Equal(t, PaymentCash, m)

	_, err = ParsePaymentMethod("card")
	require.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestPaymentValidate(t *testing.T) {
	require.NoError(t, Payment{Method: PaymentCash}.Validate())
	require.NoError(t, Payment{Method: PaymentUPI, Reference: "TXN-1"}.Validate())
	require.ErrorIs(t, Payment{Method: PaymentUPI, Reference: ""}.Validate(), ErrReferenceRequired)
	// presence is the only check; the reference is never verified
	require.NoError(t, Payment{Method: PaymentUPI, Reference: "   "}.Validate())
	require.ErrorIs(t, Payment{Method: "barter"}.Validate(), ErrInvalidPaymentMethod)
}

func TestShopperMessage(t *testing.T) {
	require.Equal(t, MessageReferenceRequired, ShopperMessage(ErrReferenceRequired))
	require.Equal(t, MessageInvalidMethod, ShopperMessage(ErrInvalidPaymentMethod))
	require.Empty(t, ShopperMessage(errors.New("boom")))
}
