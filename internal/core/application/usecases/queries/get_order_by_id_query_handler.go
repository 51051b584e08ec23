package queries

import (
	"context"
	"errors"

	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// GetOrderByIDQueryHandler looks up a single order. Absence is reported with
// a false second return value, never as an error.
type GetOrderByIDQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderByIDQueryHandler creates a handler for by-identifier lookups.
func NewGetOrderByIDQueryHandler(repo ports.OrderRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{repo: repo}
}

// Handle executes the lookup. The boolean result is false when no order has
// the queried identifier.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderQueryResponse, bool, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, false, err
	}

	o, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return OrderQueryResponse{}, false, nil
		}
		return OrderQueryResponse{}, false, err
	}

	return NewOrderQueryResponse(o), true, nil
}
