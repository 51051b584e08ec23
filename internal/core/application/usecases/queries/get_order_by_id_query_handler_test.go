package queries_test

import (
	"testing"

	"ordermanagement/internal/adapters/out/inmem"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderByIDQueryHandler_Handle_ExistingOrder(t *testing.T) {
	repo := inmem.NewRepository()
	stored := seedOrder(t, repo, "Alice Johnson", "123.45")

	h := queries.NewGetOrderByIDQueryHandler(repo)
	query, err := queries.NewGetOrderByIDQuery(stored.ID())
	require.NoError(t, err)

	response, found, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, stored.ID(), response.ID)
	assert.Equal(t, "Alice Johnson", response.CustomerName)
	assert.Equal(t, order.DefaultStatus, response.Status)
	assert.Equal(t, stored.OrderDate(), response.OrderDate)
	assert.True(t, response.TotalAmount.Equal(decimal.RequireFromString("123.45")))
}

func TestGetOrderByIDQueryHandler_Handle_AbsentOrder_ReportsFalse(t *testing.T) {
	repo := inmem.NewRepository()

	h := queries.NewGetOrderByIDQueryHandler(repo)
	query, err := queries.NewGetOrderByIDQuery(9999)
	require.NoError(t, err)

	response, found, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, response)
}

func TestGetOrderByIDQueryHandler_Handle_NotConstructedQuery(t *testing.T) {
	repo := inmem.NewRepository()
	h := queries.NewGetOrderByIDQueryHandler(repo)

	_, found, err := h.Handle(t.Context(), queries.GetOrderByIDQuery{})
	require.Error(t, err)
	assert.False(t, found)
}
