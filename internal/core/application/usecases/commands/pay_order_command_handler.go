package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// PayOrderCommandHandler flips an order to the paid status.
// The status write happens inside one transaction; the item set is untouched.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPayOrderCommandHandler creates a handler for order payment.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the unconditional pay transition and
// persists it. Returns the updated aggregate, or errs.ObjectNotFoundError
// if the order does not exist.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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

	aggregate.Pay()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
