package commands

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles whole-record order updates. The lookup
// and the re-save run in one transaction; when the order does not exist the
// handler reports absence instead of an error and leaves no partial effects.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the customer name, status and total amount of the order
// identified by the command. The second return value is false when no order
// has that identifier; the identifier and order date are never touched.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, bool, error) {
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if err = existing.Update(cmd.CustomerName(), cmd.Status(), cmd.TotalAmount()); err != nil {
		return nil, false, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return existing, true, nil
}
