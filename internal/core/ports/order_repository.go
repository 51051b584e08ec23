package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations report absence with errs.ErrObjectNotFound so callers can
// branch with errors.Is; they never return a nil order together with a nil
// error.
type OrderRepository interface {
	// Add persists a new order and assigns its identifier on the aggregate.
	// The order must be valid and not yet persisted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an already-persisted order.
	// Returns errs.ErrObjectNotFound if the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound when no order has that identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every order in store-defined iteration order.
	// An empty store yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order with the given identifier.
	// Returns errs.ErrObjectNotFound when no order has that identifier.
	Delete(ctx context.Context, id int64) error
}
