package inmem_test

import (
	"testing"
	"time"

	"ordermanagement/internal/adapters/out/inmem"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, customerName string, amount string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(customerName, decimal.RequireFromString(amount))
	require.NoError(t, err)
	return o
}

func TestRepository_Add_AssignsSequentialIdentifiers(t *testing.T) {
	repo := inmem.NewRepository()
	ctx := t.Context()

	first := newOrder(t, "Alice Johnson", "123.45")
	second := newOrder(t, "Bob Smith", "99.90")

	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	assert.Equal(t, int64(1), first.ID())
	assert.Equal(t, int64(2), second.ID())
}

func TestRepository_Add_NotConstructedOrder(t *testing.T) {
	repo := inmem.NewRepository()
	err := repo.Add(t.Context(), &order.Order{})
	require.Error(t, err)
}

func TestRepository_Get_RoundTripsStoredState(t *testing.T) {
	repo := inmem.NewRepository()
	ctx := t.Context()

	stored := newOrder(t, "Alice Johnson", "123.45")
	require.NoError(t, repo.Add(ctx, stored))

	retrieved, err := repo.Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.True(t, retrieved.IsEqual(stored))
	assert.True(t, retrieved.TotalAmount().Equal(decimal.RequireFromString("123.45")))
}

func TestRepository_Get_DetachesFromCallerMutations(t *testing.T) {
	repo := inmem.NewRepository()
	ctx := t.Context()

	stored := newOrder(t, "Alice Johnson", "123.45")
	require.NoError(t, repo.Add(ctx, stored))

	first, err := repo.Get(ctx, stored.ID())
	require.NoError(t, err)
	require.NoError(t, first.Update("Mallory", "Cancelled", decimal.NewFromInt(1)))

	// Mutating a retrieved aggregate must not leak into the store.
	second, err := repo.Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", second.CustomerName())
	assert.Equal(t, order.DefaultStatus, second.Status())
}

func TestRepository_Get_UnknownID(t *testing.T) {
	repo := inmem.NewRepository()

	_, err := repo.Get(t.Context(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_GetAll_PreservesInsertionOrder(t *testing.T) {
	repo := inmem.NewRepository()
	ctx := t.Context()

	names := []string{"Alice Johnson", "Bob Smith", "Carol White"}
	for _, name := range names {
		require.NoError(t, repo.Add(ctx, newOrder(t, name, "10.00")))
	}

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, len(names))
	for i, o := range orders {
		assert.Equal(t, names[i], o.CustomerName())
	}
}

func TestRepository_Update_ReplacesStoredState(t *testing.T) {
	repo := inmem.NewRepository()
	ctx := t.Context()

	stored := newOrder(t, "Alice Johnson", "123.45")
	require.NoError(t, repo.Add(ctx, stored))
	require.NoError(t, stored.Update("Bob Smith", "Shipped", decimal.RequireFromString("99.90")))
	require.NoError(t, repo.Update(ctx, stored))

	retrieved, err := repo.Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "Bob Smith", retrieved.CustomerName())
	assert.Equal(t, "Shipped", retrieved.Status())
	assert.True(t, retrieved.TotalAmount().Equal(decimal.RequireFromString("99.90")))
}

func TestRepository_Update_UnknownID(t *testing.T) {
	repo := inmem.NewRepository()

	ghost, err := order.RestoreOrder(9999, "Alice Johnson", time.Now(), order.DefaultStatus, decimal.NewFromInt(10))
	require.NoError(t, err)

	err = repo.Update(t.Context(), ghost)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_Delete_RemovesOrder(t *testing.T) {
	repo := inmem.NewRepository()
	ctx := t.Context()

	stored := newOrder(t, "Alice Johnson", "123.45")
	require.NoError(t, repo.Add(ctx, stored))
	require.NoError(t, repo.Delete(ctx, stored.ID()))

	_, err := repo.Get(ctx, stored.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRepository_Delete_UnknownID(t *testing.T) {
	repo := inmem.NewRepository()

	err := repo.Delete(t.Context(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
