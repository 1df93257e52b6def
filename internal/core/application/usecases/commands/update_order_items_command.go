package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand represents a request to replace an order's entire
// item set. The semantics are full replacement, not patch: every existing
// item is superseded by the new list.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []ItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates a command to replace an order's items.
// Validates that the order ID is valid and the replacement list is non-empty
// with every entry properly constructed.
func NewUpdateOrderItemsCommand(orderID kernel.UUID, items []ItemInput) (UpdateOrderItemsCommand, error) {
	cmd := UpdateOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identity of the order to update.
func (c UpdateOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the validated replacement item inputs.
func (c UpdateOrderItemsCommand) Items() []ItemInput {
	return c.items
}

func (c *UpdateOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemsCommand) setItems(items []ItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
