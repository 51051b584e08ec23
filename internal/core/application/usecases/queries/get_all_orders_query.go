// Package queries contains read-only operations over the order store.
// Query handlers go through the OrderRepository port rather than a concrete
// storage technology, so any backing store can serve reads.
package queries

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the store, in the order the
// store yields them. An empty store produces an empty result, never an error.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderQueryResponse is the read-only projection of an order exposed to
// callers, decoupling the wire shape from the persisted aggregate.
type OrderQueryResponse struct {
	ID           int64
	CustomerName string
	OrderDate    time.Time
	Status       string
	TotalAmount  decimal.Decimal
}

// NewOrderQueryResponse projects an order aggregate into its response shape.
func NewOrderQueryResponse(o *order.Order) OrderQueryResponse {
	return OrderQueryResponse{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		OrderDate:    o.OrderDate(),
		Status:       o.Status(),
		TotalAmount:  o.TotalAmount(),
	}
}
