package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// UpdateOrderItemsCommandHandler handles full replacement of an order's
// item set. The existence check, the deletion of the superseded items and
// the insertion of the new set all happen inside one transaction, so the
// order is never observably itemless.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemsCommandHandler creates a handler for item replacement.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderItemsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, swaps in the new validated item set with fresh
// item identities, and persists the aggregate. Returns the updated
// aggregate, or errs.ObjectNotFoundError if the order does not exist.
// Status, id and creation timestamp are untouched.
func (h *UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), input.Product(), input.Size(), input.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ReplaceItems(items); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
