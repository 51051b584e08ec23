package queries

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// GetAllOrdersQueryHandler lists every order in the store.
type GetAllOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for the get-all query.
func NewGetAllOrdersQueryHandler(repo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{repo: repo}
}

// Handle executes the query. The result order is store-defined; no sorting is
// applied here.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderQueryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderQueryResponse(o))
	}

	return responses, nil
}
