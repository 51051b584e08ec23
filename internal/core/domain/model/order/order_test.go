package order_test

import (
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("creates order with pending status and creation date", func(t *testing.T) {
		before := time.Now()
		o, err := order.NewOrder("Ada", decimal.RequireFromString("123.45"))
		after := time.Now()

		require.NoError(t, err)
		assert.Equal(t, order.DefaultStatus, o.Status())
		assert.Equal(t, "Ada", o.CustomerName())
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("123.45")))
		assert.False(t, o.OrderDate().Before(before))
		assert.False(t, o.OrderDate().After(after))
		assert.Zero(t, o.ID())
		assert.False(t, o.IsPersisted())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects empty customer name", func(t *testing.T) {
		_, err := order.NewOrder("", decimal.NewFromInt(10))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := order.NewOrder("Ada", amount)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("collects all violations at once", func(t *testing.T) {
		_, err := order.NewOrder("", decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("amount keeps exact decimal representation", func(t *testing.T) {
		o, err := order.NewOrder("Ada", decimal.RequireFromString("0.1"))
		require.NoError(t, err)
		assert.Equal(t, "0.1", o.TotalAmount().String())
	})
}

func TestRestoreOrder(t *testing.T) {
	orderDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("restores persisted state verbatim", func(t *testing.T) {
		o, err := order.RestoreOrder(7, "Grace", orderDate, "Shipped", decimal.RequireFromString("99.90"))

		require.NoError(t, err)
		assert.Equal(t, int64(7), o.ID())
		assert.True(t, o.IsPersisted())
		assert.Equal(t, "Grace", o.CustomerName())
		assert.Equal(t, orderDate, o.OrderDate())
		assert.Equal(t, "Shipped", o.Status())
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("99.90")))
	})

	t.Run("rejects non-positive identifier", func(t *testing.T) {
		_, err := order.RestoreOrder(0, "Grace", orderDate, "Shipped", decimal.NewFromInt(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty status", func(t *testing.T) {
		_, err := order.RestoreOrder(7, "Grace", orderDate, "", decimal.NewFromInt(1))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero order date", func(t *testing.T) {
		_, err := order.RestoreOrder(7, "Grace", time.Time{}, "Shipped", decimal.NewFromInt(1))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_SetID(t *testing.T) {
	t.Run("assigns identifier once", func(t *testing.T) {
		o, err := order.NewOrder("Ada", decimal.NewFromInt(10))
		require.NoError(t, err)

		require.NoError(t, o.SetID(42))
		assert.Equal(t, int64(42), o.ID())
		assert.True(t, o.IsPersisted())
	})

	t.Run("refuses reassignment", func(t *testing.T) {
		o, err := order.NewOrder("Ada", decimal.NewFromInt(10))
		require.NoError(t, err)
		require.NoError(t, o.SetID(42))

		require.ErrorIs(t, o.SetID(43), order.ErrIDAlreadyAssigned)
		assert.Equal(t, int64(42), o.ID())
	})

	t.Run("refuses non-positive identifier", func(t *testing.T) {
		o, err := order.NewOrder("Ada", decimal.NewFromInt(10))
		require.NoError(t, err)

		require.ErrorIs(t, o.SetID(0), errs.ErrValueIsInvalid)
		assert.False(t, o.IsPersisted())
	})
}

func TestOrder_Update(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("Ada", decimal.RequireFromString("123.45"))
		require.NoError(t, err)
		require.NoError(t, o.SetID(1))
		return o
	}

	t.Run("replaces all mutable fields", func(t *testing.T) {
		o := newOrder(t)
		originalDate := o.OrderDate()

		err := o.Update("Grace", "Shipped", decimal.RequireFromString("200.00"))

		require.NoError(t, err)
		assert.Equal(t, "Grace", o.CustomerName())
		assert.Equal(t, "Shipped", o.Status())
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("200.00")))
		assert.Equal(t, int64(1), o.ID())
		assert.Equal(t, originalDate, o.OrderDate())
	})

	t.Run("accepts any non-empty status label", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Update("Ada", "Whatever The Caller Says", decimal.NewFromInt(1)))
		assert.Equal(t, "Whatever The Caller Says", o.Status())
	})

	t.Run("leaves order untouched on invalid input", func(t *testing.T) {
		o := newOrder(t)

		err := o.Update("", "", decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Ada", o.CustomerName())
		assert.Equal(t, order.DefaultStatus, o.Status())
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("123.45")))
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.RestoreOrder(1, "Ada", time.Now(), "Pending", decimal.NewFromInt(1))
	require.NoError(t, err)
	b, err := order.RestoreOrder(1, "Grace", time.Now(), "Shipped", decimal.NewFromInt(2))
	require.NoError(t, err)
	c, err := order.RestoreOrder(2, "Ada", time.Now(), "Pending", decimal.NewFromInt(1))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
