// Package ports defines the persistence contracts for the order domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the aggregate together with its owned items;
// items never exist in the store without their order.
type OrderRepository interface {
	// Add persists a new order aggregate together with all its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// item set is replaced wholesale with the aggregate's current items;
	// superseded item rows are deleted, never merged.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its complete item set. Returns errs.ObjectNotFoundError if no order
	// with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and all item rows referencing it.
	// Returns errs.ObjectNotFoundError if no order with that id exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
