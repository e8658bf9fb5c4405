package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func makeItem(t *testing.T, price string, quantity int, discount string) *order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Test Product",
		"TP-001",
		quantity,
		money(t, price),
		money(t, discount),
		"",
	)
	require.NoError(t, err)
	return item
}

func TestLineTotal(t *testing.T) {
	t.Run("computes unitPrice times quantity minus discount", func(t *testing.T) {
		total, err := order.LineTotal(money(t, "50000"), 1, money(t, "5000"))
		require.NoError(t, err)
		assert.True(t, total.IsEqual(money(t, "45000")))
	})

	t.Run("discount may consume the whole line", func(t *testing.T) {
		total, err := order.LineTotal(money(t, "10.00"), 2, money(t, "20.00"))
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.LineTotal(money(t, "10.00"), quantity, money(t, "0"))
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := order.LineTotal(money(t, "-1.00"), 1, money(t, "0"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		_, err := order.LineTotal(money(t, "10.00"), 1, money(t, "-0.01"))
		require.Error(t, err)
	})

	t.Run("rejects discount exceeding the line amount", func(t *testing.T) {
		_, err := order.LineTotal(money(t, "10.00"), 2, money(t, "20.01"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTotals(t *testing.T) {
	t.Run("matches the worked storefront scenario", func(t *testing.T) {
		// Two items at 100000 plus one at 50000 with a 5000 line discount,
		// order discount 10000, tax 10000.
		items := []*order.Item{
			makeItem(t, "100000", 2, "0"),
			makeItem(t, "50000", 1, "5000"),
		}

		total, grandTotal, err := order.Totals(items, money(t, "10000"), money(t, "10000"))
		require.NoError(t, err)
		assert.True(t, total.IsEqual(money(t, "245000")), "total is %s", total)
		assert.True(t, grandTotal.IsEqual(money(t, "245000")), "grandTotal is %s", grandTotal)
	})

	t.Run("total is the sum of item totals", func(t *testing.T) {
		items := []*order.Item{
			makeItem(t, "0.10", 3, "0"),
			makeItem(t, "0.20", 1, "0.05"),
		}

		total, grandTotal, err := order.Totals(items, money(t, "0"), money(t, "0"))
		require.NoError(t, err)
		assert.True(t, total.IsEqual(money(t, "0.45")))
		assert.True(t, grandTotal.IsEqual(total))
	})

	t.Run("rejects a negative grand total instead of clamping", func(t *testing.T) {
		items := []*order.Item{makeItem(t, "10.00", 1, "0")}

		_, _, err := order.Totals(items, money(t, "10.01"), money(t, "0"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "grandTotal")
	})

	t.Run("rejects negative order discount and tax", func(t *testing.T) {
		items := []*order.Item{makeItem(t, "10.00", 1, "0")}

		_, _, err := order.Totals(items, money(t, "-1"), money(t, "0"))
		require.Error(t, err)

		_, _, err = order.Totals(items, money(t, "0"), money(t, "-1"))
		require.Error(t, err)
	})

	t.Run("tax can offset the discount exactly", func(t *testing.T) {
		items := []*order.Item{makeItem(t, "10.00", 1, "0")}

		_, grandTotal, err := order.Totals(items, money(t, "10.00"), money(t, "0"))
		require.NoError(t, err)
		assert.True(t, grandTotal.IsZero())
	})
}
