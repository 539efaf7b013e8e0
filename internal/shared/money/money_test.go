package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAmount_RoundsForDisplayOnly(t *testing.T) {
	d := decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))
	require.Equal(t, "0.30", Amount(d))
	require.Equal(t, "2.68", Amount(decimal.RequireFromString("2.675")))
	require.Equal(t, "0.00", Amount(decimal.Zero))
}

func TestFormat_PrefixesSymbol(t *testing.T) {
	require.Equal(t, "$89.99", Format(DefaultSymbol, decimal.RequireFromString("89.99")))
	require.Equal(t, "€25.00", Format("€", decimal.NewFromInt(25)))
}
