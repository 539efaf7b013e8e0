package domain

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductID = errors.New("product id must be greater than zero")
	ErrInvalidPrice     = errors.New("line price must be greater or equal to zero")
	ErrQtyOverflow      = errors.New("line quantity out of range")
)

// Line is one cart entry. Name and Price are snapshots taken when the
// product was first added.
type Line struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Qty       int
}

// Subtotal is Price × Qty, unrounded.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Cart is an ordered collection of lines with at most one line per product
// and every Qty >= 1.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add increments the line for productID, or appends a new line with Qty 1
// using the supplied name and price snapshot. It returns the resulting line.
func (c *Cart) Add(productID int64, name string, price decimal.Decimal) (Line, error) {
	if productID <= 0 {
		return Line{}, ErrInvalidProductID
	}
	if i := c.index(productID); i >= 0 {
		if c.lines[i].Qty == math.MaxInt {
			return Line{}, ErrQtyOverflow
		}
		c.lines[i].Qty++
		return c.lines[i], nil
	}
	if price.IsNegative() {
		return Line{}, ErrInvalidPrice
	}
	line := Line{ProductID: productID, Name: name, Price: price, Qty: 1}
	c.lines = append(c.lines, line)
	return line, nil
}

// ChangeQty adds delta to the line's quantity. A result <= 0 removes the
// line. It reports whether a line for productID existed. A delta that would
// push the quantity past math.MaxInt leaves the line as it was.
func (c *Cart) ChangeQty(productID int64, delta int) (bool, error) {
	i := c.index(productID)
	if i < 0 {
		return false, nil
	}
	if delta > 0 && c.lines[i].Qty > math.MaxInt-delta {
		return true, ErrQtyOverflow
	}
	next := c.lines[i].Qty + delta
	if next <= 0 {
		c.removeAt(i)
		return true, nil
	}
	c.lines[i].Qty = next
	return true, nil
}

// Remove deletes the line for productID. Removing an absent id is a no-op.
func (c *Cart) Remove(productID int64) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total sums Price × Qty across lines without rounding.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Count sums quantities across lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

// Line returns the line for productID.
func (c *Cart) Line(productID int64) (Line, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clone returns an independent copy.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return New()
	}
	return &Cart{lines: c.Lines()}
}

func (c *Cart) index(productID int64) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
}
