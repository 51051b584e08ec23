package queries

import (
	"errors"

	"ordermanagement/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
	ErrQueryOrderIDIsInvalid = errors.New("order ID must be greater than 0")
)

// GetOrderByIDQuery retrieves a single order by its identifier. A missing
// order is a normal outcome reported through the handler's boolean result.
type GetOrderByIDQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the order with the given identifier.
func NewGetOrderByIDQuery(orderID int64) (GetOrderByIDQuery, error) {
	if orderID <= 0 {
		return GetOrderByIDQuery{}, ErrQueryOrderIDIsInvalid
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier being looked up.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}
