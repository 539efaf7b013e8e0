package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	teePrice   = decimal.RequireFromString("25.00")
	dressPrice = decimal.RequireFromString("45.00")
)

func TestAdd_RepeatedAddsKeepOneLine(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		_, err := c.Add(1, "Tee", teePrice)
		require.NoError(t, err)
	}
	require.Len(t, c.Lines(), 1)
	line, ok := c.Line(1)
	require.True(t, ok)
	require.Equal(t, 5, line.Qty)
	require.Equal(t, 5, c.Count())
}

func TestAdd_KeepsSnapshotFromFirstAdd(t *testing.T) {
	c := New()
	_, err := c.Add(1, "Tee", teePrice)
	require.NoError(t, err)
	line, err := c.Add(1, "Renamed", decimal.NewFromInt(99))
	require.NoError(t, err)
	require.Equal(t, "Tee", line.Name)
	require.True(t, line.Price.Equal(teePrice))
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	c := New()
	_, err := c.Add(0, "x", teePrice)
	require.ErrorIs(t, err, ErrInvalidProductID)
	_, err = c.Add(1, "x", decimal.NewFromInt(-1))
	require.ErrorIs(t, err, ErrInvalidPrice)
	require.True(t, c.IsEmpty())
}

func TestTotal_MixedLines(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	_, _ = c.Add(3, "Dress", dressPrice)
	_, _ = c.Add(3, "Dress", dressPrice)
	require.True(t, c.Total().Equal(decimal.RequireFromString("115.00")), c.Total().String())
	require.Equal(t, 3, c.Count())
}

func TestChangeQty_ToZeroRemovesLine(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	_, _ = c.Add(1, "Tee", teePrice)

	found, err := c.ChangeQty(1, -2)
	require.NoError(t, err)
	require.True(t, found)
	_, ok := c.Line(1)
	require.False(t, ok)
	require.True(t, c.IsEmpty())
}

func TestChangeQty_BelowZeroRemovesLine(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	found, err := c.ChangeQty(1, -7)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, c.IsEmpty())
}

func TestChangeQty_AbsentIsNoop(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	found, err := c.ChangeQty(42, 1)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 1, c.Count())
}

func TestChangeQty_Increment(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	found, err := c.ChangeQty(1, 2)
	require.NoError(t, err)
	require.True(t, found)
	line, _ := c.Line(1)
	require.Equal(t, 3, line.Qty)
}

func TestRemove_IsIdempotent(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	_, _ = c.Add(3, "Dress", dressPrice)
	before := c.Lines()

	require.False(t, c.Remove(99))
	require.Equal(t, before, c.Lines())

	require.True(t, c.Remove(1))
	require.False(t, c.Remove(1))
	require.Len(t, c.Lines(), 1)
}

func TestRemove_PreservesOrderOfRemainingLines(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "A", teePrice)
	_, _ = c.Add(2, "B", teePrice)
	_, _ = c.Add(3, "C", teePrice)
	c.Remove(2)
	lines := c.Lines()
	require.Equal(t, int64(1), lines[0].ProductID)
	require.Equal(t, int64(3), lines[1].ProductID)
}

func TestClear_ResetsCountAndTotal(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	_, _ = c.Add(3, "Dress", dressPrice)
	c.Clear()
	require.Equal(t, 0, c.Count())
	require.True(t, c.Total().IsZero())
	require.Equal(t, "0.00", c.Total().StringFixed(2))
}

func TestClone_IsIndependent(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	clone := c.Clone()
	_, _ = clone.ChangeQty(1, 5)
	line, _ := c.Line(1)
	require.Equal(t, 1, line.Qty)
}

func TestChangeQty_OverflowKeepsLine(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)
	_, _ = c.Add(1, "Tee", teePrice)

	found, err := c.ChangeQty(1, math.MaxInt)
	require.ErrorIs(t, err, ErrQtyOverflow)
	require.True(t, found)
	line, ok := c.Line(1)
	require.True(t, ok)
	require.Equal(t, 2, line.Qty)
}

func TestChangeQty_LargestSafeIncrement(t *testing.T) {
	c := New()
	_, _ = c.Add(1, "Tee", teePrice)

	_, err := c.ChangeQty(1, math.MaxInt-1)
	require.NoError(t, err)
	line, _ := c.Line(1)
	require.Equal(t, math.MaxInt, line.Qty)

	_, err = c.Add(1, "Tee", teePrice)
	require.ErrorIs(t, err, ErrQtyOverflow)
}
