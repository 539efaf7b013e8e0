// Package money formats decimal amounts for display. Arithmetic stays
// unrounded; rounding happens only here.
package money

import "github.com/shopspring/decimal"

// DefaultSymbol prefixes amounts shown to shoppers.
const DefaultSymbol = "$"

// Amount renders d rounded half-up to two decimal places, e.g. "115.00".
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Format renders d with a currency symbol, e.g. "$89.99".
func Format(symbol string, d decimal.Decimal) string {
	return symbol + Amount(d)
}
