// Package inmem provides a map-backed OrderRepository and a pass-through
// Unit of Work. It backs tests that exercise handlers and the HTTP adapter
// without a database, honoring the same contract as the postgres adapter:
// store-assigned identifiers, errs.ErrObjectNotFound for absence, and
// insertion-ordered GetAll.
package inmem

import (
	"context"
	"slices"
	"sync"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

var _ ports.OrderRepository = (*Repository)(nil)

// Repository is an in-memory OrderRepository. Safe for concurrent use.
type Repository struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int64]*order.Order
	ids    []int64 // insertion order for GetAll
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		orders: make(map[int64]*order.Order),
	}
}

// Add persists a new order, assigning the next sequential identifier.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if err := aggregate.SetID(r.nextID); err != nil {
		r.nextID--
		return err
	}

	snapshot, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.orders[aggregate.ID()] = snapshot
	r.ids = append(r.ids, aggregate.ID())
	return nil
}

// Update replaces the stored state of an existing order.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	snapshot, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.orders[aggregate.ID()] = snapshot
	return nil
}

// Get retrieves an order by identifier.
func (r *Repository) Get(_ context.Context, id int64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	return clone(stored)
}

// GetAll retrieves every order in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.ids))
	for _, id := range r.ids {
		snapshot, err := clone(r.orders[id])
		if err != nil {
			return nil, err
		}
		orders = append(orders, snapshot)
	}

	return orders, nil
}

// Delete removes the order with the given identifier.
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	delete(r.orders, id)
	r.ids = slices.DeleteFunc(r.ids, func(storedID int64) bool {
		return storedID == id
	})
	return nil
}

// clone detaches stored state from caller-held aggregates.
func clone(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.CustomerName(), o.OrderDate(), o.Status(), o.TotalAmount())
}
